package wikitext

// maxFrameDepth bounds how many nested speculative constructs the
// tokenizer will open before giving up (spec.md §5/§7.2). It is a
// plain counter rather than a manually managed stack of value structs:
// Go's own call stack already gives each speculative descent its own
// frame (its local text buffer and token accumulator), which is the
// "plain value structs owned by a stack vector" spec.md §9 asks for —
// only here the vector is the goroutine stack instead of an explicit
// slice, since nothing needs to survive a failed attempt: on failure
// a handler simply rewinds its scanner position and returns, same as
// popping a frame and discarding its contents.
const maxFrameDepth = 100

// tokenizer drives the whole scan. It embeds *scanner for the cursor
// primitives and tracks recursion depth to enforce maxFrameDepth.
type tokenizer struct {
	*scanner
	depth int
}

// depthGuard increments the frame depth for the duration of a
// speculative descent and panics with depthLimitSignal if the ceiling
// is exceeded; Tokenize recovers that signal and turns it into a
// ResourceError (spec.md §7.2). Handlers call it immediately after
// recognizing an opener and before doing any speculative work, and
// must defer the returned release so the count unwinds on every path.
func (t *tokenizer) depthGuard() (release func()) {
	t.depth++
	if t.depth > maxFrameDepth {
		panic(depthLimitSignal{depth: t.depth})
	}
	return func() { t.depth-- }
}

// listMarkerHere reports whether the upcoming rune is a list marker
// (';', ':', '*', '#') eligible to open here: either it sits at column
// 0 itself, or the current line's own first character is a list
// marker. The second clause is what lets later markers on the same
// line — after literal text the first marker didn't consume, like the
// ':' following "malito" — still open, while a line that never opened
// in list mode (one starting with ordinary text) leaves a later ';'
// as plain punctuation.
func (t *tokenizer) listMarkerHere() bool {
	return isListMarker(t.peek()) && isListMarker(t.lineStartRune())
}

// textBuf accumulates a run of literal characters for later flush as
// a single coalesced Text token (spec.md §2 item 1, invariants P4/P5).
type textBuf struct {
	runes []rune
	start int
	open  bool
}

func (b *textBuf) writeRune(r rune, pos int) {
	if !b.open {
		b.open = true
		b.start = pos
	}
	b.runes = append(b.runes, r)
}

func (b *textBuf) writeString(s string, start int) {
	for i, r := range []rune(s) {
		b.writeRune(r, start+i)
	}
}

// flush appends a coalesced Text token (if any text is pending) to
// tokens and resets the buffer. Empty buffers produce nothing (P5).
func (b *textBuf) flush(tokens []Token, end int) []Token {
	if !b.open || len(b.runes) == 0 {
		b.open = false
		b.runes = nil
		return tokens
	}
	tokens = append(tokens, textToken(string(b.runes), b.start, end))
	b.open = false
	b.runes = nil
	return tokens
}

// dropLast removes the last n runes from the buffer without flushing
// them, for handlers that only learn in hindsight that a literal
// suffix they've been accumulating actually belongs to a closing
// token instead (the heading handler's trailing '=' run). It returns
// the rune position at which the dropped suffix begins.
func (b *textBuf) dropLast(n int) int {
	b.runes = b.runes[:len(b.runes)-n]
	return b.start + len(b.runes)
}

// scanBody is the top-level body loop Tokenize runs over the input:
// "plain text interspersed with nested constructs" (spec.md §4.1's
// dispatcher). The per-construct handlers each carry their own loop of
// the same accumulate-or-descend shape, with their own stop conditions
// and context masks. It stops as soon as isEnd reports true or at end
// of input. When a nested construct attempt fails, per spec.md §9's
// "rollback as re-scan", exactly one rune of the failed opener is
// folded into the text buffer and scanning resumes from the very next
// rune, letting the rest of the attempted span be reconsidered fresh.
func (t *tokenizer) scanBody(ctx parseContext, isEnd func() bool) []Token {
	var tokens []Token
	var buf textBuf

	for {
		if t.eof() || isEnd() {
			break
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

	return buf.flush(tokens, t.pos)
}
