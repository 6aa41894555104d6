package wikitext

// openArgument implements spec.md §4.3. Unlike a template name, an
// argument's name and default-value segments place no extra
// restrictions on what may appear inside them beyond the generic
// construct set (templates, wikilinks, external links, entities,
// comments, tags all permitted). Headings do not open inside an
// argument: allowsHeading only permits them in an empty context.
func (t *tokenizer) openArgument(ctx parseContext) ([]Token, bool) {
	start := t.pos
	release := t.depthGuard()
	defer release()

	t.consume(3) // "{{{"
	tokens := []Token{simpleToken(ArgumentOpen, start, t.pos)}

	nameTokens, stop := t.scanArgumentSegment(ctx.with(ctxArgumentName), true)
	if stop == 0 {
		t.pos = start
		return nil, false
	}
	tokens = append(tokens, nameTokens...)

	if stop == '}' {
		closeStart := t.pos
		t.consume(3)
		tokens = append(tokens, simpleToken(ArgumentClose, closeStart, t.pos))
		return tokens, true
	}

	sepStart := t.pos
	t.consume(1)
	tokens = append(tokens, simpleToken(ArgumentSeparator, sepStart, t.pos))

	defaultTokens, stop2 := t.scanArgumentSegment(ctx.with(ctxArgumentDefault), false)
	if stop2 == 0 {
		t.pos = start
		return nil, false
	}
	tokens = append(tokens, defaultTokens...)

	closeStart := t.pos
	t.consume(3)
	tokens = append(tokens, simpleToken(ArgumentClose, closeStart, t.pos))
	return tokens, true
}

// scanArgumentSegment scans up to the next "}}}" close, and — when
// stopOnPipe is true — up to the next top-level '|' as well (the
// first separator only; scanning the default-value segment passes
// stopOnPipe=false so later '|' characters are ordinary literal text,
// spec.md §4.3).
func (t *tokenizer) scanArgumentSegment(ctx parseContext, stopOnPipe bool) (tokens []Token, stop byte) {
	var buf textBuf

	for {
		if t.eof() {
			return nil, 0
		}
		if t.hasPrefix("}}}") {
			return buf.flush(tokens, t.pos), '}'
		}
		if stopOnPipe && t.peek() == '|' {
			return buf.flush(tokens, t.pos), '|'
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
