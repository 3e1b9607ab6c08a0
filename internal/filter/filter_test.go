package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jimaku/internal/token"
)

func TestClassify(t *testing.T) {
	cfg := Config{
		Rules: map[token.Category]token.Action{
			token.CategoryNoun: token.ActionSuggest,
			token.CategoryVerb: token.ActionPhoneticOnly,
		},
		ExcludeLemmas: ExcludeSet([]string{"くる", "いう"}),
		JapaneseOnly:  true,
	}

	tests := []struct {
		name string
		tok  token.Token
		want token.Action
	}{
		{
			"configured noun",
			token.Token{Surface: "猫", Lemma: "猫", Category: token.CategoryNoun},
			token.ActionSuggest,
		},
		{
			"configured verb",
			token.Token{Surface: "走る", Lemma: "走る", Category: token.CategoryVerb},
			token.ActionPhoneticOnly,
		},
		{
			"unconfigured category defaults to none",
			token.Token{Surface: "が", Lemma: "が", Category: token.CategoryParticle},
			token.ActionNone,
		},
		{
			"excluded lemma forced to none",
			token.Token{Surface: "来る", Lemma: "くる", Category: token.CategoryVerb},
			token.ActionNone,
		},
		{
			"inflected form matches excluded lemma",
			token.Token{Surface: "言っ", Lemma: "いう", Category: token.CategoryVerb},
			token.ActionNone,
		},
		{
			"foreign script forced to none",
			token.Token{Surface: "Tokyo", Lemma: "Tokyo", Category: token.CategoryNoun},
			token.ActionNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Classify(tt.tok))
		})
	}
}

func TestClassifyZeroConfig(t *testing.T) {
	var cfg Config
	tok := token.Token{Surface: "猫", Category: token.CategoryNoun}
	assert.Equal(t, token.ActionNone, cfg.Classify(tok))
}

func TestClassifyWithoutJapaneseOnly(t *testing.T) {
	cfg := New(map[token.Category]token.Action{token.CategoryNoun: token.ActionSuggest})
	tok := token.Token{Surface: "Tokyo", Category: token.CategoryNoun}
	assert.Equal(t, token.ActionSuggest, cfg.Classify(tok))
}
