package wikitext

import "fmt"

// Kind classifies a Token the way the teacher's TokenType classified a
// lexer.Token; each Kind carries only the attributes listed for it in
// the token schema (unused fields on other kinds are simply left zero).
type Kind int

const (
	Text Kind = iota

	TemplateOpen
	TemplateClose
	TemplateParamSeparator
	TemplateParamEquals

	ArgumentOpen
	ArgumentClose
	ArgumentSeparator

	WikilinkOpen
	WikilinkClose
	WikilinkSeparator

	ExternalLinkOpen
	ExternalLinkSeparator
	ExternalLinkClose

	HeadingStart
	HeadingEnd

	CommentStart
	CommentEnd

	HTMLEntityStart
	HTMLEntityEnd
	HTMLEntityNumeric

	TagOpenOpen
	TagAttrStart
	TagAttrEquals
	TagAttrQuote
	TagCloseOpen
	TagCloseSelfclose
	TagOpenClose
	TagCloseClose
)

var kindNames = [...]string{
	Text:                    "Text",
	TemplateOpen:            "TemplateOpen",
	TemplateClose:           "TemplateClose",
	TemplateParamSeparator:  "TemplateParamSeparator",
	TemplateParamEquals:     "TemplateParamEquals",
	ArgumentOpen:            "ArgumentOpen",
	ArgumentClose:           "ArgumentClose",
	ArgumentSeparator:       "ArgumentSeparator",
	WikilinkOpen:            "WikilinkOpen",
	WikilinkClose:           "WikilinkClose",
	WikilinkSeparator:       "WikilinkSeparator",
	ExternalLinkOpen:        "ExternalLinkOpen",
	ExternalLinkSeparator:   "ExternalLinkSeparator",
	ExternalLinkClose:       "ExternalLinkClose",
	HeadingStart:            "HeadingStart",
	HeadingEnd:              "HeadingEnd",
	CommentStart:            "CommentStart",
	CommentEnd:              "CommentEnd",
	HTMLEntityStart:         "HTMLEntityStart",
	HTMLEntityEnd:           "HTMLEntityEnd",
	HTMLEntityNumeric:       "HTMLEntityNumeric",
	TagOpenOpen:             "TagOpenOpen",
	TagAttrStart:            "TagAttrStart",
	TagAttrEquals:           "TagAttrEquals",
	TagAttrQuote:            "TagAttrQuote",
	TagCloseOpen:            "TagCloseOpen",
	TagCloseSelfclose:       "TagCloseSelfclose",
	TagOpenClose:            "TagOpenClose",
	TagCloseClose:           "TagCloseClose",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single element of the flat output sequence (spec.md §3).
// It is a tagged variant implemented, in the teacher's style, as one
// struct with a discriminant (Kind) and a fixed set of optional
// fields; only the fields documented for a given Kind are meaningful.
//
// start/end record the token's rune-offset span in the original input
// and exist purely so that round-trip fidelity (P1) can be verified
// mechanically; they are not part of the token's public identity and
// are excluded whenever tokens are compared by kind/attribute.
type Token struct {
	Kind Kind

	// Text holds the literal run for a Text token. On TagOpenOpen,
	// TagAttrStart and a standard tag's TagOpenClose it holds the tag or
	// attribute name; that name is not emitted as a separate Text token.
	Text string

	// Level is the heading depth (1-6), set on HeadingStart.
	Level int

	// Brackets is true for a bracketed external link, set on ExternalLinkOpen.
	Brackets bool

	// Hexadecimal distinguishes &#x..; from &#..;, set on HTMLEntityNumeric.
	Hexadecimal bool

	// WikiMarkup preserves the original wiki-markup spelling of a
	// synthetic tag (e.g. "''", ";"), set on TagOpenOpen/TagCloseSelfclose
	// and, for a closed style tag, on TagOpenClose/TagCloseClose. Nil
	// means the tag used standard <name> markup.
	WikiMarkup *string

	// PadFirst/PadBeforeEq/PadAfterEq are the whitespace runs around an
	// attribute name and its '=', set on TagAttrStart. Each may be "".
	PadFirst    string
	PadBeforeEq string
	PadAfterEq  string

	// Char is the quote character ("\"" or "'"), set on TagAttrQuote.
	Char string

	// Padding is the whitespace before '>' or '/>', set on TagCloseOpen/
	// TagCloseSelfclose. Nil means no padding was scanned (synthetic tag).
	Padding *string

	// Implicit is true when a wiki-markup tag was closed by end-of-input
	// rather than an explicit closer, set on TagCloseSelfclose.
	Implicit bool

	start, end int
}

func textToken(s string, start, end int) Token {
	return Token{Kind: Text, Text: s, start: start, end: end}
}

func simpleToken(k Kind, start, end int) Token {
	return Token{Kind: k, start: start, end: end}
}
