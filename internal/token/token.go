// Package token defines the data model shared across the annotation pipeline:
// tokens produced by morphological analysis, the action the filter engine
// assigns to each of them, dictionary candidates, and per-token selection state.
package token

import "strings"

// Category is the part-of-speech category of a token. The set is closed:
// analyzer-specific POS labels are folded into these values by CategoryFromPOS,
// and configuration keys are validated by ParseCategory.
type Category string

const (
	CategoryNoun         Category = "noun"
	CategoryProperNoun   Category = "proper-noun"
	CategoryPronoun      Category = "pronoun"
	CategoryNumber       Category = "number"
	CategoryVerb         Category = "verb"
	CategoryAdjective    Category = "adjective"
	CategoryAdverb       Category = "adverb"
	CategoryParticle     Category = "particle"
	CategoryAuxiliary    Category = "auxiliary"
	CategoryConjunction  Category = "conjunction"
	CategoryAdnominal    Category = "adnominal"
	CategoryInterjection Category = "interjection"
	CategoryPrefix       Category = "prefix"
	CategorySuffix       Category = "suffix"
	CategorySymbol       Category = "symbol"
	CategoryFiller       Category = "filler"
	CategoryOther        Category = "other"
)

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryNoun, CategoryProperNoun, CategoryPronoun, CategoryNumber,
		CategoryVerb, CategoryAdjective, CategoryAdverb, CategoryParticle,
		CategoryAuxiliary, CategoryConjunction, CategoryAdnominal,
		CategoryInterjection, CategoryPrefix, CategorySuffix,
		CategorySymbol, CategoryFiller, CategoryOther,
	}
}

// ParseCategory validates a category name from configuration.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, true
		}
	}
	return CategoryOther, false
}

// CategoryFromPOS folds an analyzer POS feature chain into a Category.
// It understands both the IPA labels (名詞,固有名詞,... with sub-POS in the
// second element) and the UniDic labels (代名詞 and 接尾辞 at the top level).
func CategoryFromPOS(pos []string) Category {
	if len(pos) == 0 {
		return CategoryOther
	}
	sub := ""
	if len(pos) > 1 {
		sub = pos[1]
	}
	switch pos[0] {
	case "名詞":
		switch sub {
		case "固有名詞":
			return CategoryProperNoun
		case "代名詞":
			return CategoryPronoun
		case "数", "数詞":
			return CategoryNumber
		case "接尾":
			return CategorySuffix
		default:
			return CategoryNoun
		}
	case "代名詞":
		return CategoryPronoun
	case "動詞":
		return CategoryVerb
	case "形容詞", "形状詞":
		return CategoryAdjective
	case "副詞":
		return CategoryAdverb
	case "助詞":
		return CategoryParticle
	case "助動詞":
		return CategoryAuxiliary
	case "接続詞":
		return CategoryConjunction
	case "連体詞":
		return CategoryAdnominal
	case "感動詞":
		return CategoryInterjection
	case "接頭詞", "接頭辞":
		return CategoryPrefix
	case "接尾辞":
		return CategorySuffix
	case "記号", "補助記号", "空白":
		return CategorySymbol
	case "フィラー":
		return CategoryFiller
	default:
		return CategoryOther
	}
}

// Action is the filter engine's decision for a token.
type Action string

const (
	ActionNone         Action = "none"     // leave the token alone
	ActionPhoneticOnly Action = "phonetic" // compute a phonetic rendering only
	ActionSuggest      Action = "suggest"  // compute phonetic rendering and dictionary candidates
)

// ParseAction validates an action name from configuration.
func ParseAction(s string) (Action, bool) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionNone:
		return ActionNone, true
	case ActionPhoneticOnly:
		return ActionPhoneticOnly, true
	case ActionSuggest:
		return ActionSuggest, true
	}
	return ActionNone, false
}

// Token is one unit of the analyzed source text. Tokens are immutable once
// produced; Start and End are byte offsets into the source string.
type Token struct {
	Surface  string   // text exactly as it appears in the source
	Lemma    string   // dictionary form reported by the analyzer, may equal Surface
	Category Category // folded part-of-speech category
	POS      string   // raw analyzer POS chain, e.g. "名詞,一般"
	Reading  string   // katakana reading reported by the analyzer, may be empty
	Position int      // index within the token sequence
	Start    int      // byte offset of Surface in the source text
	End      int      // byte offset just past Surface
}

// DictForm returns the form used as dictionary lookup key: the lemma when the
// analyzer reported one, otherwise the surface form.
func (t Token) DictForm() string {
	if t.Lemma != "" {
		return t.Lemma
	}
	return t.Surface
}

// Candidate is one dictionary suggestion for a token.
type Candidate struct {
	Text     string   // cleaned gloss, substituted into the text when selected
	Gloss    string   // gloss as it appears in the dictionary
	POS      []string // POS codes of the sense the gloss belongs to
	Sequence int      // dictionary entry sequence number
	Common   bool     // entry carries a frequency priority marker
}
