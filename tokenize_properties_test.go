package wikitext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// structuredCorpus seeds the property checks below.
// It deliberately overlaps with the scenario fixtures in
// tokenize_scenarios_test.go but also covers inputs those scenarios
// don't: empty strings, pure closers, unterminated constructs, quoted
// attribute values, and a grab bag of the more obscure handler paths.
var structuredCorpus = []string{
	"",
	"plain text, nothing special",
	"{{template}}",
	"{{template|a|b=c}}",
	"{{{arg}}}",
	"{{{arg|default}}}",
	"[[wikilink]]",
	"[[wikilink|display text]]",
	"[http://example.com bracketed link]",
	"http://example.com/bare",
	"== heading ==",
	"===== deep heading =====",
	"<!-- a comment -->",
	"<ref name=\"x\">cited text</ref>",
	"<br/>",
	"&amp; &#169; &#x3b1;",
	"'''bold''' ''italic''",
	";term:definition",
	"* item one\n* item two",
	"{{foo[[bar]]}}",
	"&n{{bs}}p;",
	";;;mailto:example",
	";;;malito:example",
	"http://example.com/foo''bar''",
	"[[File:Example.png|thumb|http://example.com]]",
	"== Head{{ing}} [[with]] {{{funky|{{stuf}}}}} ==",
	"{{foobar\n<!-- comment -->invalid|key=value}}",
	"{{",
	"[[",
	"<ref>",
	"}}}}",
	"]]]]",
	"<!--unterminated",
	"&unterminated",
	"{{{{{{{{{",
	"a & b < c > d",
}

func TestRoundTripFidelity(t *testing.T) {
	for _, input := range structuredCorpus {
		t.Run(input, func(t *testing.T) {
			tokens, err := Tokenize(input)
			require.NoError(t, err)

			rs := []rune(input)
			var rebuilt []rune
			for _, tok := range tokens {
				rebuilt = append(rebuilt, rs[tok.start:tok.end]...)
			}
			require.Equal(t, input, string(rebuilt), "round-trip fidelity (P1)")
		})
	}
}

func TestNoAdjacentOrEmptyText(t *testing.T) {
	for _, input := range structuredCorpus {
		t.Run(input, func(t *testing.T) {
			tokens, err := Tokenize(input)
			require.NoError(t, err)

			for i, tok := range tokens {
				if tok.Kind == Text {
					require.NotEmpty(t, tok.Text, "P5: empty Text token at index %d", i)
				}
				if i > 0 && tok.Kind == Text && tokens[i-1].Kind == Text {
					t.Fatalf("P4: adjacent Text tokens at index %d", i)
				}
			}
		})
	}
}

func TestWellNestedness(t *testing.T) {
	for _, input := range structuredCorpus {
		t.Run(input, func(t *testing.T) {
			tokens, err := Tokenize(input)
			require.NoError(t, err)
			checkWellNested(t, tokens)
		})
	}
}

// checkWellNested walks the token stream with a single stack shared
// across every paired kind, so a closer can only match the innermost
// still-open frame — not merely some frame of the same kind.
func checkWellNested(t *testing.T, tokens []Token) {
	t.Helper()
	var stack []string

	push := func(label string) { stack = append(stack, label) }
	popExpect := func(kind Kind, label string) {
		if len(stack) == 0 || stack[len(stack)-1] != label {
			t.Fatalf("%s seen with stack %v, expected top %q", kind, stack, label)
		}
		stack = stack[:len(stack)-1]
	}
	replaceTop := func(kind Kind, from, to string) {
		if len(stack) == 0 || stack[len(stack)-1] != from {
			t.Fatalf("%s seen with stack %v, expected top %q", kind, stack, from)
		}
		stack[len(stack)-1] = to
	}
	replaceTopAny := func(kind Kind, from []string, to string) {
		if len(stack) == 0 {
			t.Fatalf("%s seen with empty stack, expected top in %v", kind, from)
		}
		top := stack[len(stack)-1]
		for _, f := range from {
			if top == f {
				stack[len(stack)-1] = to
				return
			}
		}
		t.Fatalf("%s seen with stack %v, expected top in %v", kind, stack, from)
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case TemplateOpen:
			push("template")
		case TemplateClose:
			popExpect(tok.Kind, "template")
		case ArgumentOpen:
			push("argument")
		case ArgumentClose:
			popExpect(tok.Kind, "argument")
		case WikilinkOpen:
			push("wikilink")
		case WikilinkClose:
			popExpect(tok.Kind, "wikilink")
		case ExternalLinkOpen:
			push("externallink")
		case ExternalLinkClose:
			popExpect(tok.Kind, "externallink")
		case HeadingStart:
			push("heading")
		case HeadingEnd:
			popExpect(tok.Kind, "heading")
		case CommentStart:
			push("comment")
		case CommentEnd:
			popExpect(tok.Kind, "comment")
		case HTMLEntityStart:
			push("entity")
		case HTMLEntityEnd:
			popExpect(tok.Kind, "entity")
		case TagOpenOpen:
			push("tag-open")
		case TagCloseSelfclose:
			popExpect(tok.Kind, "tag-open")
		case TagCloseOpen:
			replaceTop(tok.Kind, "tag-open", "tag-body")
		case TagOpenClose:
			// Standard tags reach here via an intervening TagCloseOpen
			// ("tag-body"); style tags close directly from "tag-open"
			// since they have no attribute/body-open phase of their own.
			replaceTopAny(tok.Kind, []string{"tag-open", "tag-body"}, "tag-closing")
		case TagCloseClose:
			popExpect(tok.Kind, "tag-closing")
		}
	}

	if len(stack) != 0 {
		t.Fatalf("unbalanced at end of input: %v", stack)
	}
}

func TestIdempotentOnLiteralText(t *testing.T) {
	literals := []string{
		"plain text, nothing special",
		"no markup here whatsoever",
		"   spaced   out   ",
		"numbers 12345 and punctuation !?.",
	}

	for _, s := range literals {
		t.Run(s, func(t *testing.T) {
			tokens, err := Tokenize(s)
			require.NoError(t, err)
			if len(tokens) != 1 || tokens[0].Kind != Text || tokens[0].Text != s {
				t.Skipf("input %q isn't pure literal text under this tokenizer, skipping idempotence check", s)
				return
			}

			doubled, err := Tokenize(s + s)
			require.NoError(t, err)
			require.Len(t, doubled, 1)
			require.Equal(t, Text, doubled[0].Kind)
			require.Equal(t, s+s, doubled[0].Text)
		})
	}
}

func TestBoundaryScenarios(t *testing.T) {
	t.Run("empty input yields no tokens", func(t *testing.T) {
		tokens, err := Tokenize("")
		require.NoError(t, err)
		require.Empty(t, tokens)
	})

	unmatchedOpeners := []string{"{{", "[[", "<ref>", "{{{"}
	for _, input := range unmatchedOpeners {
		t.Run("unmatched opener "+input, func(t *testing.T) {
			tokens, err := Tokenize(input)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			require.Equal(t, Text, tokens[0].Kind)
			require.Equal(t, input, tokens[0].Text)
		})
	}

	t.Run("pure closing braces", func(t *testing.T) {
		input := strings.Repeat("}", 6)
		tokens, err := Tokenize(input)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		require.Equal(t, Text, tokens[0].Kind)
		require.Equal(t, input, tokens[0].Text)
	})
}
