// Package rewrite points x.com and twitter.com links at a mirror domain
// whose pages Discord can preview.
package rewrite

import (
	"regexp"
	"strings"
)

const DefaultMirror = "vxtwitter.com"

// legacyPattern matches the host only at a boundary, so netflix.com and
// similar lookalikes are left alone. The scheme is optional and kept.
var legacyPattern = regexp.MustCompile(`(?i)(^|[^\w.-])((?:https?://)?)(?:www\.|mobile\.)?(?:x|twitter)\.com/`)

type Rewriter struct {
	Mirror string
}

func New(mirror string) *Rewriter {
	if mirror == "" {
		mirror = DefaultMirror
	}
	return &Rewriter{Mirror: mirror}
}

// Rewrite splits text on whitespace and rewrites each legacy link to the
// mirror, then joins the tokens with single spaces. Tokens already carrying
// the mirror domain, and links wrapped in <...>, are kept as they are.
// changed is false when no token was rewritten; out is then the joined input.
func (r *Rewriter) Rewrite(text string) (out string, changed bool) {
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		next := r.rewriteToken(tok)
		if next != tok {
			tokens[i] = next
			changed = true
		}
	}
	return strings.Join(tokens, " "), changed
}

func (r *Rewriter) rewriteToken(tok string) string {
	if strings.Contains(strings.ToLower(tok), strings.ToLower(r.Mirror)) {
		return tok
	}
	if strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">") {
		return tok
	}
	return legacyPattern.ReplaceAllString(tok, "${1}${2}"+r.Mirror+"/")
}
