package wikitext

// Tokenize consumes a Unicode string and returns its wikitext token
// sequence (spec.md §6). It never fails on malformed markup — the
// offending bytes simply surface as literal Text tokens — and returns
// a non-nil error only when the input nests deeper than the tokenizer
// is willing to recurse (spec.md §7.2).
func Tokenize(input string) (tokens []Token, err error) {
	t := &tokenizer{scanner: newScanner(input)}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(depthLimitSignal)
			if !ok {
				panic(r)
			}
			tokens = nil
			err = newResourceError(sig.depth)
		}
	}()

	tokens = t.scanBody(0, func() bool { return false })
	return tokens, nil
}
