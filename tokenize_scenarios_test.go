package wikitext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// strp is a small helper for building the *string fields on Token
// (WikiMarkup, Padding) inline in table literals.
func strp(s string) *string { return &s }

// tok is shorthand for building an expected Token in scenario tables;
// only the fields a given test cares about are ever set.
func tok(kind Kind, opts ...func(*Token)) Token {
	t := Token{Kind: kind}
	for _, o := range opts {
		o(&t)
	}
	return t
}

func withText(s string) func(*Token)        { return func(t *Token) { t.Text = s } }
func withLevel(n int) func(*Token)           { return func(t *Token) { t.Level = n } }
func withBrackets(b bool) func(*Token)       { return func(t *Token) { t.Brackets = b } }
func withWikiMarkup(s string) func(*Token)   { return func(t *Token) { t.WikiMarkup = strp(s) } }

// assertTokens compares got against want by every field except the
// unexported rune-offset span, which round-trip tests cover instead.
func assertTokens(t *testing.T, want, got []Token) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Token{})); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

// TestTokenizeScenarios exercises the eight concrete end-to-end cases
// named in spec.md section 8, each of which pins a specific invalidation
// or disambiguation rule.
func TestTokenizeScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "wikilink_in_template_name_invalidates_template",
			input: "{{foo[[bar]]}}",
			want: []Token{
				tok(Text, withText("{{foo")),
				tok(WikilinkOpen),
				tok(Text, withText("bar")),
				tok(WikilinkClose),
				tok(Text, withText("}}")),
			},
		},
		{
			name:  "template_in_entity_body_invalidates_entity",
			input: "&n{{bs}}p;",
			want: []Token{
				tok(Text, withText("&n")),
				tok(TemplateOpen),
				tok(Text, withText("bs")),
				tok(TemplateClose),
				tok(Text, withText("p;")),
			},
		},
		{
			name:  "known_scheme_after_list_markers",
			input: ";;;mailto:example",
			want: []Token{
				tok(TagOpenOpen, withText("dt"), withWikiMarkup(";")),
				tok(TagCloseSelfclose, withWikiMarkup(";")),
				tok(TagOpenOpen, withText("dt"), withWikiMarkup(";")),
				tok(TagCloseSelfclose, withWikiMarkup(";")),
				tok(TagOpenOpen, withText("dt"), withWikiMarkup(";")),
				tok(TagCloseSelfclose, withWikiMarkup(";")),
				tok(ExternalLinkOpen, withBrackets(false)),
				tok(Text, withText("mailto:example")),
				tok(ExternalLinkClose),
			},
		},
		{
			name:  "unknown_scheme_after_list_markers_is_not_a_url",
			input: ";;;malito:example",
			want: []Token{
				tok(TagOpenOpen, withText("dt"), withWikiMarkup(";")),
				tok(TagCloseSelfclose, withWikiMarkup(";")),
				tok(TagOpenOpen, withText("dt"), withWikiMarkup(";")),
				tok(TagCloseSelfclose, withWikiMarkup(";")),
				tok(TagOpenOpen, withText("dt"), withWikiMarkup(";")),
				tok(TagCloseSelfclose, withWikiMarkup(";")),
				tok(Text, withText("malito")),
				tok(TagOpenOpen, withText("dd"), withWikiMarkup(":")),
				tok(TagCloseSelfclose, withWikiMarkup(":")),
				tok(Text, withText("example")),
			},
		},
		{
			name:  "bare_url_ends_at_style_marker",
			input: "http://example.com/foo''bar''",
			want: []Token{
				tok(ExternalLinkOpen, withBrackets(false)),
				tok(Text, withText("http://example.com/foo")),
				tok(ExternalLinkClose),
				tok(TagOpenOpen, withText("i"), withWikiMarkup("''")),
				tok(Text, withText("bar")),
				tok(TagOpenClose, withWikiMarkup("''")),
				tok(TagCloseClose, withWikiMarkup("''")),
			},
		},
		{
			name:  "image_wikilink_permits_bare_url_in_text",
			input: "[[File:Example.png|thumb|http://example.com]]",
			want: []Token{
				tok(WikilinkOpen),
				tok(Text, withText("File:Example.png")),
				tok(WikilinkSeparator),
				tok(Text, withText("thumb")),
				tok(WikilinkSeparator),
				tok(ExternalLinkOpen, withBrackets(false)),
				tok(Text, withText("http://example.com")),
				tok(ExternalLinkClose),
				tok(WikilinkClose),
			},
		},
		{
			name:  "heading_encloses_template_wikilink_and_argument",
			input: "== Head{{ing}} [[with]] {{{funky|{{stuf}}}}} ==",
			want: []Token{
				tok(HeadingStart, withLevel(2)),
				tok(Text, withText(" Head")),
				tok(TemplateOpen),
				tok(Text, withText("ing")),
				tok(TemplateClose),
				tok(Text, withText(" ")),
				tok(WikilinkOpen),
				tok(Text, withText("with")),
				tok(WikilinkClose),
				tok(Text, withText(" ")),
				tok(ArgumentOpen),
				tok(Text, withText("funky")),
				tok(ArgumentSeparator),
				tok(TemplateOpen),
				tok(Text, withText("stuf")),
				tok(TemplateClose),
				tok(ArgumentClose),
				tok(Text, withText(" ")),
				tok(HeadingEnd),
			},
		},
		{
			name:  "stray_text_after_comment_invalidates_template",
			input: "{{foobar\n<!-- comment -->invalid|key=value}}",
			want: []Token{
				tok(Text, withText("{{foobar\n")),
				tok(CommentStart),
				tok(Text, withText(" comment ")),
				tok(CommentEnd),
				tok(Text, withText("invalid|key=value}}")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			require.NoError(t, err)
			assertTokens(t, tt.want, got)
		})
	}
}
