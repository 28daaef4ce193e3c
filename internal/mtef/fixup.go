package mtef

import "regexp"

// These four patterns collapse adjacent subscript/superscript groups that
// the renderer can emit back-to-back (e.g. a SUB template immediately
// followed by another SUB template on the same base), merging them into
// one braced group the way a human-written equation would be.
var (
	reBracedSub = regexp.MustCompile(`_\{\s*([^}]+)\s*\}\s*_\{\s*([^}]+)\s*\}`)
	reBareSub   = regexp.MustCompile(`_([^_^{}\s\\])\s*_([^_^{}\s\\])`)
	reBracedSup = regexp.MustCompile(`\^\{\s*([^}]+)\s*\}\s*\^\{\s*([^}]+)\s*\}`)
	reBareSup   = regexp.MustCompile(`\^([^_^{}\s\\])\s*\^([^_^{}\s\\])`)
)

// fixupScripts repeatedly applies the script-merging substitutions until
// none of them match anymore, so multi-way merges (three or more adjacent
// groups) collapse fully rather than leaving a residual pair.
func fixupScripts(s string) string {
	for {
		next := s
		next = reBracedSub.ReplaceAllString(next, `_{$1 $2}`)
		next = reBareSub.ReplaceAllString(next, `_{$1$2}`)
		next = reBracedSup.ReplaceAllString(next, `^{$1 $2}`)
		next = reBareSup.ReplaceAllString(next, `^{$1$2}`)
		if next == s {
			return next
		}
		s = next
	}
}
