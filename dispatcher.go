package wikitext

// tryOpen is the dispatcher (spec.md §4.1): it looks at the upcoming
// runes together with ctx and, if an opener is recognized and
// permitted, hands control to the matching handler. Handlers return
// ok=false (with the scanner rewound to the position tryOpen was
// called at) when the construct turns out to be invalid; scanBody
// then folds a single rune into the running text buffer and retries
// dispatch from the next position, which is the "rollback as re-scan"
// strategy from spec.md §9.
func (t *tokenizer) tryOpen(ctx parseContext) ([]Token, bool) {
	if t.hasPrefix("<!--") {
		return t.openComment(ctx)
	}

	if t.peek() == '{' && ctx.allowsTemplate() {
		if toks, ok := t.openBrace(ctx); ok {
			return toks, true
		}
	}

	if t.hasPrefix("[[") && ctx.allowsWikilink() {
		return t.openWikilink(ctx)
	}

	if ctx.allowsExternalLink() {
		if t.peek() == '[' {
			return t.openExternalLinkBracketed(ctx)
		}
		if scheme, ok := matchURLScheme(t.scanner); ok {
			return t.openExternalLinkBare(ctx, scheme)
		}
	}

	if ctx.allowsHeading() && t.atLineStart() && t.peek() == '=' {
		return t.openHeading(ctx)
	}

	if ctx.allowsTag() {
		if t.peek() == '<' && isTagNameStart(t.peekAt(1)) {
			return t.openStandardTag(ctx)
		}
		if t.hasPrefix("''") {
			return t.openStyleTag(ctx)
		}
		if t.listMarkerHere() {
			return t.openListTag(ctx)
		}
	}

	if t.peek() == '&' && !ctx.has(ctxEntityScan) {
		return t.openEntity(ctx)
	}

	return nil, false
}

// openBrace decides, for a run of '{' at the current position,
// whether this opens an argument or a template (spec.md §4.1/§4.3
// "brace runs are tokenized greedily") and dispatches accordingly.
func (t *tokenizer) openBrace(ctx parseContext) ([]Token, bool) {
	n := t.runLen('{')
	consume, isArgument := chooseBraceRun(n)
	if consume == 0 {
		return nil, false
	}
	if isArgument {
		return t.openArgument(ctx)
	}
	return t.openTemplate(ctx)
}

// chooseBraceRun picks how many '{' characters the opener at this
// position consumes. Preferring a 3-brace argument open exactly when
// the run divides evenly by 3 ("stacks cleanly") and a 2-brace
// template open otherwise is spec.md §9's acknowledged approximation
// of mwparserfromhell's brace-run rule; see DESIGN.md.
func chooseBraceRun(n int) (consume int, isArgument bool) {
	switch {
	case n >= 3 && n%3 == 0:
		return 3, true
	case n >= 2:
		return 2, false
	default:
		return 0, false
	}
}
