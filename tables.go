package wikitext

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// urlSchemes is the fixed table of recognized external-link schemes
// (spec.md §4.6, §9 "tables, not code"). The set mirrors MediaWiki's
// default $wgUrlProtocols list.
var urlSchemes = []string{
	"http", "https", "ftp", "ftps", "mailto", "news", "gopher",
	"irc", "ircs", "telnet", "git", "svn", "sftp", "worldwind",
	"geo", "urn",
}

// urlChars are the characters permitted to continue a URL once a
// scheme has matched; whitespace and the structural characters '{',
// '<', '[', ']' and '|' are excluded so embedded templates and comments
// can still be recognized by the external-link handler (spec.md §4.6).
// The apostrophe is a URL character; scanBareURL checks for a style-tag
// marker explicitly.
const urlChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
	"-._~:/?#@!$&'()*+,;=%"

// urlTrimPunctuation is trimmed off the trailing end of a bare URL
// one rune at a time (spec.md §4.6, pinned in DESIGN.md).
const urlTrimPunctuation = ".,;:!?"

// matchURLScheme reports whether the scanner is positioned at a
// recognized "scheme:" prefix, matched case-insensitively, and
// returns the matched scheme text if so. The scanner is left
// untouched either way; the caller advances past the match.
func matchURLScheme(s *scanner) (string, bool) {
	for _, scheme := range urlSchemes {
		n := len(scheme)
		if s.pos+n+1 > len(s.src) {
			continue
		}
		candidate := string(s.src[s.pos : s.pos+n])
		if !strings.EqualFold(candidate, scheme) {
			continue
		}
		if s.src[s.pos+n] != ':' {
			continue
		}
		// must be followed by at least one URL character
		if s.pos+n+1 < len(s.src) && strings.ContainsRune(urlChars, s.src[s.pos+n+1]) {
			return candidate, true
		}
		// mailto:/news: style schemes permit a bare address with no
		// leading slashes, still requiring one following URL char,
		// already covered by the check above.
	}
	return "", false
}

// tagIdentStart/tagIdentChars classify standard HTML tag and
// attribute name characters, in the teacher's table-not-code style
// (lexer.go's tokenIdentifierChars).
const tagIdentStart = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const tagIdentChars = tagIdentStart + "0123456789-"

func isTagNameStart(r rune) bool {
	return strings.ContainsRune(tagIdentStart, r)
}

func isTagNameChar(r rune) bool {
	return strings.ContainsRune(tagIdentChars, r)
}

func isListMarker(r rune) bool {
	return strings.ContainsRune(";:*#", r)
}

// wikiMarkupTag maps a list-mode wiki-markup marker to its synthetic
// tag name (spec.md §4.7 item 2); see tokenizer.listMarkerHere for
// when a marker is eligible to open.
var wikiMarkupTag = map[rune]string{
	';': "dt",
	':': "dd",
	'*': "li",
	'#': "li",
}

// namedEntity reports whether name is a recognized HTML named
// character reference, without requiring the trailing ';' the table
// itself stores. Delegated to golang.org/x/net/html's entity tables
// rather than a hand-maintained copy (spec.md §9, see DESIGN.md).
func namedEntity(name string) bool {
	if _, ok := html.Entity[name+";"]; ok {
		return true
	}
	if _, ok := html.Entity2[name+";"]; ok {
		return true
	}
	return false
}

func isASCIIHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isEntityNameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
