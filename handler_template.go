package wikitext

// openTemplate implements spec.md §4.2. It has already been decided
// (by openBrace) that the brace run at t.pos should be read as a
// 2-brace template opener; this function performs the actual
// speculative parse and rolls all the way back to the opening '{' on
// any invalidation.
func (t *tokenizer) openTemplate(ctx parseContext) ([]Token, bool) {
	start := t.pos
	release := t.depthGuard()
	defer release()

	t.consume(2) // "{{"
	tokens := []Token{simpleToken(TemplateOpen, start, t.pos)}

	nameTokens, foundParam, ok := t.scanTemplateName(ctx.with(ctxTemplateName))
	if !ok {
		t.pos = start
		return nil, false
	}
	tokens = append(tokens, nameTokens...)

	if !foundParam {
		closeStart := t.pos
		t.consume(2)
		tokens = append(tokens, simpleToken(TemplateClose, closeStart, t.pos))
		return tokens, true
	}

	sepStart := t.pos
	t.consume(1)
	tokens = append(tokens, simpleToken(TemplateParamSeparator, sepStart, t.pos))

	paramCtx := ctx.with(ctxTemplateParam)
	for {
		valTokens, stop := t.scanTemplateParamValue(paramCtx)
		if stop == 0 {
			t.pos = start
			return nil, false
		}
		tokens = append(tokens, valTokens...)

		if stop == '}' {
			closeStart := t.pos
			t.consume(2)
			tokens = append(tokens, simpleToken(TemplateClose, closeStart, t.pos))
			return tokens, true
		}

		sepStart := t.pos
		t.consume(1)
		tokens = append(tokens, simpleToken(TemplateParamSeparator, sepStart, t.pos))
	}
}

// scanTemplateName scans the content of a template before its first
// '|' or its closing "}}", enforcing template-name validity (spec.md
// §4.2): a wikilink, heading, or non-comment tag anywhere in the name
// invalidates the whole template, and once a newline has been seen,
// any further non-whitespace literal character (outside a comment)
// invalidates it too.
//
// foundParam reports which terminator was hit: true for '|', false
// for "}}". ok is false when the name is invalid or input ran out.
func (t *tokenizer) scanTemplateName(ctx parseContext) (tokens []Token, foundParam bool, ok bool) {
	var buf textBuf
	sawNewline := false

	for {
		if t.eof() {
			return nil, false, false
		}
		if t.hasPrefix("}}") {
			return buf.flush(tokens, t.pos), false, true
		}
		if t.peek() == '|' {
			return buf.flush(tokens, t.pos), true, true
		}
		if t.forbiddenHere(ctx) {
			return nil, false, false
		}

		start := t.pos
		if sub, okOpen := t.tryOpen(ctx); okOpen {
			tokens = buf.flush(tokens, start)
			tokens = append(tokens, sub...)
			continue
		}
		t.pos = start

		r := t.next()
		switch {
		case r == '\n':
			sawNewline = true
		case sawNewline && !isLineBlank(r):
			return nil, false, false
		}
		buf.writeRune(r, start)
	}
}

// scanTemplateParamValue scans one template parameter's value: text
// and nested constructs up to the next top-level '|' or the "}}"
// close, recognizing the first bare '=' as TemplateParamEquals (later
// ones are literal, spec.md §4.2). stop is '|', '}', or 0 on EOF.
func (t *tokenizer) scanTemplateParamValue(ctx parseContext) (tokens []Token, stop byte) {
	var buf textBuf
	sawEquals := false

	for {
		if t.eof() {
			return nil, 0
		}
		if t.hasPrefix("}}") {
			return buf.flush(tokens, t.pos), '}'
		}
		if t.peek() == '|' {
			return buf.flush(tokens, t.pos), '|'
		}
		if !sawEquals && t.peek() == '=' {
			eqStart := t.pos
			tokens = buf.flush(tokens, eqStart)
			t.consume(1)
			tokens = append(tokens, simpleToken(TemplateParamEquals, eqStart, t.pos))
			sawEquals = true
			continue
		}

		start := t.pos
		if sub, ok := t.tryOpen(ctx); ok {
			tokens = buf.flush(tokens, start)
			tokens = append(tokens, sub...)
			continue
		}
		t.pos = start

		r := t.next()
		buf.writeRune(r, start)
	}
}

func isLineBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// forbiddenHere reports whether the upcoming input opens a construct
// that is forbidden (rather than merely unrecognized) in the current
// restrictive context, per spec.md §4.2 (template name) and §4.4
// (wikilink title). A forbidden construct invalidates the whole
// enclosing frame instead of being silently treated as literal text.
func (t *tokenizer) forbiddenHere(ctx parseContext) bool {
	switch {
	case ctx.has(ctxTemplateName):
		return t.hasPrefix("[[") ||
			(t.atLineStart() && t.peek() == '=') ||
			(t.peek() == '<' && isTagNameStart(t.peekAt(1))) ||
			t.hasPrefix("''") ||
			t.listMarkerHere()

	case ctx.has(ctxWikilinkTitle):
		if ctx.has(ctxImageLink) {
			return false
		}
		if t.peek() == '<' && isTagNameStart(t.peekAt(1)) {
			return true
		}
		if t.hasPrefix("''") || t.listMarkerHere() {
			return true
		}
		if t.atLineStart() && t.peek() == '=' {
			return true
		}
		if t.peek() == '[' {
			return true
		}
		if _, ok := matchURLScheme(t.scanner); ok {
			return true
		}
		return false

	default:
		return false
	}
}
