package dict

import (
	"strings"

	jmdict "github.com/yomidevs/jmdict-go"
)

// CleanGloss reduces a dictionary gloss to the form substituted into text:
// a trailing parenthetical qualifier is cut, the "to " of verb infinitives
// is dropped, surrounding space is trimmed. "to run (of a person)" becomes
// "run"; a gloss that cleans away to nothing comes back empty.
func CleanGloss(g string) string {
	s := strings.TrimSpace(g)
	if strings.HasSuffix(s, ")") {
		if i := strings.Index(s, " ("); i > 0 {
			s = strings.TrimSpace(s[:i])
		}
	}
	s = strings.TrimPrefix(s, "to ")
	return strings.TrimSpace(s)
}

// commonPriorities are the JMdict priority markers that tag frequent words.
var commonPriorities = map[string]struct{}{
	"news1": {},
	"ichi1": {},
	"spec1": {},
	"spec2": {},
	"gai1":  {},
}

// entryCommon reports whether any kanji or reading element of the entry
// carries a frequency priority marker.
func entryCommon(e *jmdict.JmdictEntry) bool {
	for _, k := range e.Kanji {
		if hasCommonPriority(k.Priorities) {
			return true
		}
	}
	for _, r := range e.Readings {
		if hasCommonPriority(r.Priorities) {
			return true
		}
	}
	return false
}

func hasCommonPriority(priorities []string) bool {
	for _, p := range priorities {
		if _, ok := commonPriorities[p]; ok {
			return true
		}
	}
	return false
}
