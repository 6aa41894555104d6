package wikitext

// openEntity implements spec.md §4.8's HTML character reference forms:
// named ("&amp;"), decimal ("&#169;"), and hexadecimal ("&#x3b1;").
// A named reference is only recognized when it is both a known name
// (delegated to namedEntity's table) and properly terminated by ';' —
// anything else abandons the attempt and the leading '&' falls back
// to literal text, letting whatever follows it tokenize fresh (spec.md
// §9's rollback-as-re-scan, e.g. the "&n{{bs}}p;" scenario).
func (t *tokenizer) openEntity(ctx parseContext) ([]Token, bool) {
	start := t.pos
	release := t.depthGuard()
	defer release()

	t.consume(1) // '&'

	if t.peek() == '#' {
		return t.openNumericEntity(start)
	}

	nameStart := t.pos
	t.acceptWhile(isEntityNameChar)
	name := t.sliceFrom(nameStart)
	if name == "" || t.peek() != ';' || !namedEntity(name) {
		t.pos = start
		return nil, false
	}

	tokens := []Token{
		simpleToken(HTMLEntityStart, start, start+1),
		textToken(name, nameStart, t.pos),
	}
	semiStart := t.pos
	t.consume(1)
	tokens = append(tokens, simpleToken(HTMLEntityEnd, semiStart, t.pos))
	return tokens, true
}

// openNumericEntity scans "#" followed by an optional 'x'/'X' hex
// marker and a run of digits, producing a named reference's Start/
// body-Text/End shape with a marker after Start: HTMLEntityNumeric is a
// zero-width marker carrying only the Hexadecimal flag (§3 gives it no
// text attribute), and the "#", the optional "x"/"X", and the digits
// all belong to the following body Text token.
func (t *tokenizer) openNumericEntity(start int) ([]Token, bool) {
	bodyStart := t.pos // at '#'
	t.consume(1)       // '#'

	hex := false
	if r := t.peek(); r == 'x' || r == 'X' {
		hex = true
		t.consume(1)
	}

	digitsStart := t.pos
	if hex {
		t.acceptWhile(isASCIIHexDigit)
	} else {
		t.acceptWhile(isASCIIDigit)
	}

	if t.pos == digitsStart || t.peek() != ';' {
		t.pos = start
		return nil, false
	}

	tokens := []Token{
		simpleToken(HTMLEntityStart, start, start+1),
		{Kind: HTMLEntityNumeric, Hexadecimal: hex, start: bodyStart, end: bodyStart},
		textToken(t.sliceFrom(bodyStart), bodyStart, t.pos),
	}
	semiStart := t.pos
	t.consume(1) // ';'
	tokens = append(tokens, simpleToken(HTMLEntityEnd, semiStart, t.pos))
	return tokens, true
}
