package dict

import (
	"strings"

	"jimaku/internal/token"
)

// codeSet describes which JMdict sense codes a token category accepts.
// Prefixes cover conjugation families too numerous to enumerate.
type codeSet struct {
	exact    []string
	prefixes []string
}

func (cs codeSet) matches(pos []string) bool {
	for _, code := range pos {
		for _, e := range cs.exact {
			if code == e {
				return true
			}
		}
		for _, p := range cs.prefixes {
			if strings.HasPrefix(code, p) {
				return true
			}
		}
	}
	return false
}

// senseCodes maps token categories to the JMdict sense codes a translation
// may carry. Categories without an entry never produce candidates; lookup
// treats that as an empty result, not an error. The v5/v4/v2 prefixes cover
// the godan, yodan and nidan verb classes (v5r, v5k-s, v4b, v2a-s, ...).
var senseCodes = map[token.Category]codeSet{
	token.CategoryNoun:         {exact: []string{"n", "n-adv", "n-t"}},
	token.CategoryProperNoun:   {exact: []string{"n-pr", "n"}},
	token.CategoryPronoun:      {exact: []string{"pn"}},
	token.CategoryNumber:       {exact: []string{"num", "ctr"}},
	token.CategoryVerb:         {exact: []string{"v1", "v1-s", "vk", "vz", "vn", "vr", "vs", "vs-c", "vs-i", "vs-s", "iv"}, prefixes: []string{"v5", "v4", "v2"}},
	token.CategoryAdjective:    {exact: []string{"adj-i", "adj-ix", "adj-na", "adj-no", "adj-t", "adj-f", "adj-kari", "adj-ku", "adj-shiku", "adj-nari"}},
	token.CategoryAdverb:       {exact: []string{"adv", "adv-to"}},
	token.CategoryParticle:     {exact: []string{"prt"}},
	token.CategoryAuxiliary:    {exact: []string{"aux", "aux-v", "aux-adj", "cop-da"}},
	token.CategoryConjunction:  {exact: []string{"conj"}},
	token.CategoryAdnominal:    {exact: []string{"adj-pn"}},
	token.CategoryInterjection: {exact: []string{"int"}},
	token.CategoryPrefix:       {exact: []string{"pref", "n-pref"}},
	token.CategorySuffix:       {exact: []string{"suf", "n-suf", "ctr"}},
}
