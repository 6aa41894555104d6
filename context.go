package wikitext

// parseContext is a bit set describing which construct(s) the current
// frame is parsing inside (spec.md §2 item 3, §9 "context as a bit
// set"). It replaces the teacher's context.go, which held a template
// *execution* Context (variable bindings); a tokenizer never evaluates
// anything, so that concept has no place here and the file is
// repurposed for the parse-time context mask instead.
type parseContext uint32

const (
	ctxTemplateName parseContext = 1 << iota
	ctxTemplateParam
	ctxArgumentName
	ctxArgumentDefault
	ctxWikilinkTitle
	ctxWikilinkText
	ctxHeading
	ctxExternalLinkURL
	ctxExternalLinkText
	ctxTagBody
	ctxTagAttrValue
	ctxEntityScan
	ctxImageLink
)

func (c parseContext) has(f parseContext) bool         { return c&f != 0 }
func (c parseContext) with(f parseContext) parseContext { return c | f }

// allowsTemplate reports whether a template/argument may open here.
func (c parseContext) allowsTemplate() bool {
	return !c.has(ctxEntityScan)
}

// allowsWikilink reports whether a wikilink may open here.
func (c parseContext) allowsWikilink() bool {
	return !c.has(ctxTemplateName) && !c.has(ctxWikilinkTitle) &&
		!c.has(ctxExternalLinkURL) && !c.has(ctxEntityScan)
}

// allowsExternalLink reports whether a bracketed or bare external link
// may open here. Inside a wikilink title one may open only when the
// title is an image link (ctxImageLink, set by the wikilink handler).
func (c parseContext) allowsExternalLink() bool {
	return !c.has(ctxTemplateName) && !c.has(ctxExternalLinkURL) &&
		!c.has(ctxEntityScan) &&
		(!c.has(ctxWikilinkTitle) || c.has(ctxImageLink))
}

// allowsTag reports whether an HTML/wiki-markup tag may open here.
// Comments are exempt from this check; they are tried before tags and
// permitted almost everywhere (spec.md §4.8). A quoted attribute value
// may hold templates, entities, wikilinks, and comments but not a
// fresh nested tag (spec.md §4.7).
func (c parseContext) allowsTag() bool {
	return !c.has(ctxTemplateName) && !c.has(ctxWikilinkTitle) &&
		!c.has(ctxExternalLinkURL) && !c.has(ctxEntityScan) &&
		!c.has(ctxTagAttrValue)
}

// allowsHeading reports whether a heading may open here. Headings are
// a line-structural construct; nesting one inside any other construct
// is never valid in this implementation.
func (c parseContext) allowsHeading() bool {
	return c == 0
}
