package wikitext

import "strings"

// scanner holds the rune-level cursor primitives the handlers build
// on top of. It plays the same role as the teacher's lexer.go cursor
// (next/backup/peek/accept/acceptRun), generalized from byte offsets
// into a string to rune offsets into a decoded []rune slice so every
// handler can index and backtrack in O(1) without re-decoding UTF-8.
type scanner struct {
	src []rune
	pos int
}

func newScanner(input string) *scanner {
	return &scanner{src: []rune(input)}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() rune {
	if s.eof() {
		return -1
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(offset int) rune {
	i := s.pos + offset
	if i < 0 || i >= len(s.src) {
		return -1
	}
	return s.src[i]
}

// hasPrefix reports whether the upcoming runes spell out want.
func (s *scanner) hasPrefix(want string) bool {
	wr := []rune(want)
	if s.pos+len(wr) > len(s.src) {
		return false
	}
	for i, r := range wr {
		if s.src[s.pos+i] != r {
			return false
		}
	}
	return true
}

// consume advances past a prefix already confirmed present.
func (s *scanner) consume(n int) {
	s.pos += n
}

func (s *scanner) next() rune {
	if s.eof() {
		return -1
	}
	r := s.src[s.pos]
	s.pos++
	return r
}

// accept consumes the next rune if it's in the valid set.
func (s *scanner) accept(set string) bool {
	if strings.ContainsRune(set, s.peek()) {
		s.pos++
		return true
	}
	return false
}

// acceptRun consumes a run of runes all contained in set.
func (s *scanner) acceptRun(set string) int {
	n := 0
	for strings.ContainsRune(set, s.peek()) {
		s.pos++
		n++
	}
	return n
}

// acceptWhile consumes a run of runes matching pred.
func (s *scanner) acceptWhile(pred func(rune) bool) int {
	n := 0
	for !s.eof() && pred(s.peek()) {
		s.pos++
		n++
	}
	return n
}

// runLen returns the length of a maximal run of r starting at pos.
func (s *scanner) runLen(r rune) int {
	n := 0
	for s.peekAt(n) == r {
		n++
	}
	return n
}

// atLineStart reports whether pos is at column 0: either the very
// start of input or immediately after a '\n'.
func (s *scanner) atLineStart() bool {
	return s.pos == 0 || s.src[s.pos-1] == '\n'
}

func (s *scanner) sliceFrom(start int) string {
	return string(s.src[start:s.pos])
}

// lineStartRune returns the first rune of the current line (the line
// containing pos), or -1 if pos is on an empty final line.
func (s *scanner) lineStartRune() rune {
	i := s.pos
	for i > 0 && s.src[i-1] != '\n' {
		i--
	}
	if i >= len(s.src) {
		return -1
	}
	return s.src[i]
}
