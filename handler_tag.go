package wikitext

import "strings"

// openStandardTag implements the "<name attrs>...</name>" and
// self-closing "<name attrs/>" forms of spec.md §4.7. Attribute
// scanning mirrors the teacher's token-by-token approach to its own
// delimited constructs: each attribute contributes a TagAttrStart
// (with its surrounding padding) and, when it has a value, a
// TagAttrEquals; a quoted value is bracketed by a pair of TagAttrQuote
// tokens, an unquoted one is a bare Text token.
func (t *tokenizer) openStandardTag(ctx parseContext) ([]Token, bool) {
	start := t.pos
	release := t.depthGuard()
	defer release()

	t.consume(1) // '<'
	nameStart := t.pos
	t.acceptWhile(isTagNameChar)
	name := t.sliceFrom(nameStart)
	tokens := []Token{{Kind: TagOpenOpen, Text: name, start: start, end: t.pos}}

	for {
		padStart := t.pos
		t.acceptWhile(isTagPadding)
		pad := t.sliceFrom(padStart)

		if t.eof() {
			t.pos = start
			return nil, false
		}
		if t.hasPrefix("/>") {
			t.consume(2)
			tokens = append(tokens, Token{Kind: TagCloseSelfclose, Padding: &pad, start: padStart, end: t.pos})
			return tokens, true
		}
		if t.peek() == '>' {
			t.consume(1)
			tokens = append(tokens, Token{Kind: TagCloseOpen, Padding: &pad, start: padStart, end: t.pos})
			break
		}
		if !isTagNameStart(t.peek()) {
			t.pos = start
			return nil, false
		}

		attrNameStart := t.pos
		t.acceptWhile(isTagNameChar)
		attrName := t.sliceFrom(attrNameStart)

		beforeEqStart := t.pos
		t.acceptWhile(isTagPadding)
		padBeforeEq := t.sliceFrom(beforeEqStart)

		attr := Token{Kind: TagAttrStart, Text: attrName, PadFirst: pad, PadBeforeEq: padBeforeEq, start: padStart, end: t.pos}

		if t.peek() != '=' {
			tokens = append(tokens, attr)
			continue
		}

		eqStart := t.pos
		t.consume(1)
		padAfterEqStart := t.pos
		t.acceptWhile(isTagPadding)
		attr.PadAfterEq = t.sliceFrom(padAfterEqStart)
		tokens = append(tokens, attr, simpleToken(TagAttrEquals, eqStart, t.pos))

		if r := t.peek(); r == '"' || r == '\'' {
			quoteStart := t.pos
			t.consume(1)
			tokens = append(tokens, Token{Kind: TagAttrQuote, Char: string(r), start: quoteStart, end: t.pos})

			valTokens, ok := t.scanTagAttrValue(ctx.with(ctxTagAttrValue), r)
			if !ok {
				t.pos = start
				return nil, false
			}
			tokens = append(tokens, valTokens...)

			closeQuoteStart := t.pos
			t.consume(1)
			tokens = append(tokens, Token{Kind: TagAttrQuote, Char: string(r), start: closeQuoteStart, end: t.pos})
		} else {
			valStart := t.pos
			t.acceptWhile(isUnquotedAttrValueChar)
			if t.pos > valStart {
				tokens = append(tokens, textToken(t.sliceFrom(valStart), valStart, t.pos))
			}
		}
	}

	bodyTokens, ok := t.scanTagBody(ctx.with(ctxTagBody), name)
	if !ok {
		t.pos = start
		return nil, false
	}
	tokens = append(tokens, bodyTokens...)
	return tokens, true
}

// scanTagBody scans a standard tag's body up to its matching closing
// tag, recognizing "</name" case-insensitively the way browsers and
// MediaWiki's own Sanitizer do. Reaching EOF without a matching closer
// invalidates the whole tag, unlike the wiki-markup synthetic tags
// which close implicitly.
func (t *tokenizer) scanTagBody(ctx parseContext, name string) ([]Token, bool) {
	var buf textBuf
	var tokens []Token
	lname := strings.ToLower(name)

	for {
		if t.eof() {
			return nil, false
		}
		if t.peek() == '<' && t.peekAt(1) == '/' {
			save := t.pos
			t.consume(2)
			closeNameStart := t.pos
			t.acceptWhile(isTagNameChar)
			closeName := t.sliceFrom(closeNameStart)
			nameEnd := t.pos

			if closeName != "" && strings.ToLower(closeName) == lname {
				t.acceptWhile(isTagPadding)
				if t.peek() == '>' {
					t.consume(1)
					tokens = buf.flush(tokens, save)
					tokens = append(tokens, Token{Kind: TagOpenClose, Text: closeName, start: save, end: nameEnd})
					tokens = append(tokens, simpleToken(TagCloseClose, nameEnd, t.pos))
					return tokens, true
				}
			}
			t.pos = save
		}

		bstart := t.pos
		if sub, ok := t.tryOpen(ctx); ok {
			tokens = buf.flush(tokens, bstart)
			tokens = append(tokens, sub...)
			continue
		}
		t.pos = bstart

		r := t.next()
		buf.writeRune(r, bstart)
	}
}

// scanTagAttrValue scans a quoted attribute value, which may contain
// nested constructs (a template supplying part of the value is
// common), stopping at the matching quote rune or a newline.
func (t *tokenizer) scanTagAttrValue(ctx parseContext, quote rune) ([]Token, bool) {
	var buf textBuf
	var tokens []Token

	for {
		if t.eof() || t.peek() == '\n' {
			return nil, false
		}
		if t.peek() == quote {
			return buf.flush(tokens, t.pos), true
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

// openStyleTag implements the apostrophe wiki-markup for italics
// ("''") and bold ("'''") (spec.md §4.7 item 2). A run of three or
// more apostrophes commits to bold and consumes exactly three,
// leaving any excess as ordinary literal apostrophes; anything else
// that reaches this handler is a plain two-apostrophe italic marker.
// The style never invalidates: if its matching marker never recurs, it
// closes implicitly at end of input via a TagCloseSelfclose, the same
// as any other tag whose closer never arrives. When the marker does
// recur, it's a real closing marker and rounds trip through the
// standard TagOpenClose/TagCloseClose pair instead, like any tag with
// a body (spec.md §4.7 item 3 reserves TagCloseSelfclose for the
// no-body and implicit-close cases only).
func (t *tokenizer) openStyleTag(ctx parseContext) ([]Token, bool) {
	start := t.pos
	release := t.depthGuard()
	defer release()

	var name string
	var width int
	if t.runLen('\'') >= 3 {
		name, width = "b", 3
	} else {
		name, width = "i", 2
	}
	marker := strings.Repeat("'", width)
	wm := marker

	t.consume(width)
	tokens := []Token{{Kind: TagOpenOpen, WikiMarkup: &wm, Text: name, start: start, end: t.pos}}

	bodyCtx := ctx.with(ctxTagBody)
	var buf textBuf
	var body []Token
	closed := false

	for {
		if t.eof() {
			break
		}
		if t.hasPrefix(marker) {
			closed = true
			break
		}
		bstart := t.pos
		if sub, ok := t.tryOpen(bodyCtx); ok {
			body = buf.flush(body, bstart)
			body = append(body, sub...)
			continue
		}
		t.pos = bstart

		r := t.next()
		buf.writeRune(r, bstart)
	}
	body = buf.flush(body, t.pos)
	tokens = append(tokens, body...)

	if closed {
		closeStart := t.pos
		t.consume(width)
		tokens = append(tokens, Token{Kind: TagOpenClose, WikiMarkup: &wm, start: closeStart, end: t.pos})
		tokens = append(tokens, Token{Kind: TagCloseClose, WikiMarkup: &wm, start: t.pos, end: t.pos})
	} else {
		tokens = append(tokens, Token{Kind: TagCloseSelfclose, WikiMarkup: &wm, Implicit: true, start: t.pos, end: t.pos})
	}
	return tokens, true
}

// openListTag implements the wiki-markup definition/list markers
// (';', ':', '*', '#'; spec.md §4.7 item 2). Each marker is a void
// element: it carries no body of its own and self-closes on the same
// position it opened at, exactly like scenario `link_inside_dl_2`'s
// three back-to-back ';' each producing their own empty `dt` before
// the line's remaining content resumes at the enclosing context.
func (t *tokenizer) openListTag(ctx parseContext) ([]Token, bool) {
	marker := t.peek()
	name := wikiMarkupTag[marker]
	wm := string(marker)

	start := t.pos
	t.consume(1)
	mid := t.pos

	return []Token{
		{Kind: TagOpenOpen, WikiMarkup: &wm, Text: name, start: start, end: mid},
		{Kind: TagCloseSelfclose, WikiMarkup: &wm, start: mid, end: mid},
	}, true
}

func isTagPadding(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

func isUnquotedAttrValueChar(r rune) bool {
	return r != -1 && r != ' ' && r != '\t' && r != '\n' && r != '>' && r != '/'
}
