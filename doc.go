// Package wikitext tokenizes wikitext, the markup language used by
// large wiki platforms, into a flat ordered sequence of typed tokens
// representing templates, template arguments, wikilinks, external
// links, HTML tags, HTML comments, HTML entities, and headings.
//
// The package is a single entry point:
//
//	tokens, err := wikitext.Tokenize("{{foo|bar=[[baz]]}}")
//	if err != nil {
//	    panic(err)
//	}
//
// Ill-formed markup is never reported as an error: unmatched braces,
// invalid tags, and truncated comments are all emitted as literal
// Text tokens. The only error this package returns is a ResourceError
// for inputs nested more deeply than the tokenizer is willing to
// recurse.
//
// Building an AST from the token stream, rendering, and reading input
// from files are left to callers; this package only tokenizes.
package wikitext
