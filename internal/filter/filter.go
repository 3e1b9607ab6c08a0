// Package filter decides what the annotation pass does with each token.
package filter

import (
	"jimaku/internal/kana"
	"jimaku/internal/token"
)

// Config holds the compiled filter rules. Classification is a pure function
// of a token and this configuration.
type Config struct {
	Rules         map[token.Category]token.Action // category rules; absent category means ActionNone
	ExcludeLemmas map[string]struct{}             // dictionary forms that are always left alone
	JapaneseOnly  bool                            // force ActionNone for tokens containing non-Japanese script
}

// New returns a Config with the given category rules and no exclusions.
func New(rules map[token.Category]token.Action) Config {
	return Config{Rules: rules}
}

// ExcludeSet builds the lemma exclusion set from a list of dictionary forms.
func ExcludeSet(lemmas []string) map[string]struct{} {
	if len(lemmas) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(lemmas))
	for _, l := range lemmas {
		set[l] = struct{}{}
	}
	return set
}

// Classify returns the action for tok. Excluded dictionary forms and, with
// JapaneseOnly set, tokens containing foreign script are forced to ActionNone
// before the category rules apply. A category without a rule is ActionNone;
// that is the documented default, never an error.
func (c Config) Classify(tok token.Token) token.Action {
	if c.JapaneseOnly && !kana.IsJapanese(tok.Surface) {
		return token.ActionNone
	}
	if _, excluded := c.ExcludeLemmas[tok.DictForm()]; excluded {
		return token.ActionNone
	}
	if action, ok := c.Rules[tok.Category]; ok {
		return action
	}
	return token.ActionNone
}
