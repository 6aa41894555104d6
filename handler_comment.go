package wikitext

// openComment implements spec.md §4.8's HTML comment form. A comment
// body is always literal — no nested construct is recognized inside
// one, matching ordinary HTML comment semantics. An unterminated
// comment (no "-->" before EOF) is not a comment at all: the handler
// rolls back, and "<!--" together with everything after it is folded
// into ordinary literal text one rune at a time by the caller, which
// is what lets an incomplete comment inside a restrictive context like
// a wikilink title invalidate that construct the moment the literal
// text crosses a newline (spec.md §4.8).
func (t *tokenizer) openComment(ctx parseContext) ([]Token, bool) {
	start := t.pos
	release := t.depthGuard()
	defer release()

	t.consume(4) // "<!--"
	bodyStart := t.pos
	for !t.eof() && !t.hasPrefix("-->") {
		t.consume(1)
	}

	if !t.hasPrefix("-->") {
		t.pos = start
		return nil, false
	}

	tokens := []Token{simpleToken(CommentStart, start, start+4)}
	if bodyStart != t.pos {
		tokens = append(tokens, textToken(t.sliceFrom(bodyStart), bodyStart, t.pos))
	}
	closeStart := t.pos
	t.consume(3)
	tokens = append(tokens, simpleToken(CommentEnd, closeStart, t.pos))
	return tokens, true
}
