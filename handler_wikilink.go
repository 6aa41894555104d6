package wikitext

// openWikilink implements spec.md §4.4, including the image-file-link
// exception: when the title begins with a recognized image namespace
// prefix ("File:"/"Image:"), the title is scanned with ctxImageLink, so
// an external link may open in it and the title restrictions of
// forbiddenHere do not apply. The display text after the first '|'
// permits external links for every wikilink, image or not.
func (t *tokenizer) openWikilink(ctx parseContext) ([]Token, bool) {
	start := t.pos
	release := t.depthGuard()
	defer release()

	t.consume(2) // "[["
	tokens := []Token{simpleToken(WikilinkOpen, start, t.pos)}

	imageLink := hasFoldPrefix(t.scanner, "File:") || hasFoldPrefix(t.scanner, "Image:")

	titleCtx := ctx.with(ctxWikilinkTitle)
	if imageLink {
		titleCtx = titleCtx.with(ctxImageLink)
	}

	titleTokens, foundSep, ok := t.scanWikilinkTitle(titleCtx)
	if !ok {
		t.pos = start
		return nil, false
	}
	tokens = append(tokens, titleTokens...)

	if !foundSep {
		closeStart := t.pos
		t.consume(2)
		tokens = append(tokens, simpleToken(WikilinkClose, closeStart, t.pos))
		return tokens, true
	}

	sepStart := t.pos
	t.consume(1)
	tokens = append(tokens, simpleToken(WikilinkSeparator, sepStart, t.pos))

	textCtx := ctx.with(ctxWikilinkText)
	if imageLink {
		textCtx = textCtx.with(ctxImageLink)
	}

	bodyTokens, ok2 := t.scanWikilinkText(textCtx)
	if !ok2 {
		t.pos = start
		return nil, false
	}
	tokens = append(tokens, bodyTokens...)

	closeStart := t.pos
	t.consume(2)
	tokens = append(tokens, simpleToken(WikilinkClose, closeStart, t.pos))
	return tokens, true
}

// scanWikilinkTitle scans up to the first '|' or the closing "]]".
// The title may not span a newline, and tags, headings, styles, and
// external links all invalidate the wikilink attempt entirely (spec.md
// §4.4). In an image-link title none of these invalidate: external
// links open there, and tag, heading and style markup stays literal.
func (t *tokenizer) scanWikilinkTitle(ctx parseContext) (tokens []Token, foundSep bool, ok bool) {
	var buf textBuf

	for {
		if t.eof() {
			return nil, false, false
		}
		if t.hasPrefix("]]") {
			return buf.flush(tokens, t.pos), false, true
		}
		if t.peek() == '|' {
			return buf.flush(tokens, t.pos), true, true
		}
		if t.peek() == '\n' {
			return nil, false, false
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
		buf.writeRune(r, start)
	}
}

// scanWikilinkText scans the display-text portion: zero or more
// '|'-separated segments up to the closing "]]", each segment itself
// permitting tags, external links, styles, and further wikilinks.
func (t *tokenizer) scanWikilinkText(ctx parseContext) ([]Token, bool) {
	var tokens []Token
	for {
		segTokens, stop := t.scanWikilinkSegment(ctx)
		if stop == 0 {
			return nil, false
		}
		tokens = append(tokens, segTokens...)
		if stop == ']' {
			return tokens, true
		}

		sepStart := t.pos
		t.consume(1)
		tokens = append(tokens, simpleToken(WikilinkSeparator, sepStart, t.pos))
	}
}

func (t *tokenizer) scanWikilinkSegment(ctx parseContext) (tokens []Token, stop byte) {
	var buf textBuf
	for {
		if t.eof() {
			return nil, 0
		}
		if t.hasPrefix("]]") {
			return buf.flush(tokens, t.pos), ']'
		}
		if t.peek() == '|' {
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

// hasFoldPrefix is a case-insensitive scanner.hasPrefix.
func hasFoldPrefix(s *scanner, want string) bool {
	wr := []rune(want)
	if s.pos+len(wr) > len(s.src) {
		return false
	}
	for i, r := range wr {
		if foldRune(s.src[s.pos+i]) != foldRune(r) {
			return false
		}
	}
	return true
}

func foldRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
