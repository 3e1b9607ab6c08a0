package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFromPOS(t *testing.T) {
	tests := []struct {
		name string
		pos  []string
		want Category
	}{
		{"ipa noun", []string{"名詞", "一般"}, CategoryNoun},
		{"ipa proper noun", []string{"名詞", "固有名詞", "人名", "名"}, CategoryProperNoun},
		{"ipa pronoun", []string{"名詞", "代名詞", "一般"}, CategoryPronoun},
		{"ipa number", []string{"名詞", "数"}, CategoryNumber},
		{"ipa noun suffix", []string{"名詞", "接尾", "助数詞"}, CategorySuffix},
		{"verb", []string{"動詞", "自立"}, CategoryVerb},
		{"adjective", []string{"形容詞", "自立"}, CategoryAdjective},
		{"adverb", []string{"副詞", "一般"}, CategoryAdverb},
		{"particle", []string{"助詞", "格助詞", "一般"}, CategoryParticle},
		{"auxiliary", []string{"助動詞"}, CategoryAuxiliary},
		{"symbol", []string{"記号", "句点"}, CategorySymbol},
		{"unidic pronoun", []string{"代名詞"}, CategoryPronoun},
		{"unidic adjectival noun", []string{"形状詞", "一般"}, CategoryAdjective},
		{"unidic suffix", []string{"接尾辞", "名詞的"}, CategorySuffix},
		{"unidic whitespace", []string{"空白"}, CategorySymbol},
		{"unknown label", []string{"未知"}, CategoryOther},
		{"empty chain", nil, CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryFromPOS(tt.pos))
		})
	}
}

func TestParseCategory(t *testing.T) {
	got, ok := ParseCategory(" Noun ")
	require.True(t, ok)
	assert.Equal(t, CategoryNoun, got)

	_, ok = ParseCategory("gerund")
	assert.False(t, ok)
}

func TestParseAction(t *testing.T) {
	got, ok := ParseAction("Suggest")
	require.True(t, ok)
	assert.Equal(t, ActionSuggest, got)

	got, ok = ParseAction("phonetic")
	require.True(t, ok)
	assert.Equal(t, ActionPhoneticOnly, got)

	_, ok = ParseAction("translate")
	assert.False(t, ok)
}

func TestDictForm(t *testing.T) {
	tok := Token{Surface: "走っ", Lemma: "走る"}
	assert.Equal(t, "走る", tok.DictForm())

	tok = Token{Surface: "ネコ"}
	assert.Equal(t, "ネコ", tok.DictForm())
}

func TestValidateSelection(t *testing.T) {
	ann := Annotated{
		Token:      Token{Surface: "猫"},
		Action:     ActionSuggest,
		Phonetic:   "ねこ",
		Candidates: []Candidate{{Text: "cat"}, {Text: "feline"}},
	}

	tests := []struct {
		name    string
		sel     Selection
		wantErr bool
	}{
		{"original always valid", Original(), false},
		{"phonetic available", Phonetic(), false},
		{"first candidate", CandidateAt(0), false},
		{"last candidate", CandidateAt(1), false},
		{"candidate out of range", CandidateAt(2), true},
		{"negative candidate", CandidateAt(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ann.Validate(tt.sel)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
		})
	}

	bare := Annotated{Token: Token{Surface: "が"}, Action: ActionNone}
	require.ErrorIs(t, bare.Validate(Phonetic()), ErrInvalidSelection)
	require.ErrorIs(t, bare.Validate(CandidateAt(0)), ErrInvalidSelection)
}

func TestSelectedText(t *testing.T) {
	ann := Annotated{
		Token:      Token{Surface: "猫"},
		Phonetic:   "ねこ",
		Candidates: []Candidate{{Text: "cat"}, {Text: "feline"}},
	}

	assert.Equal(t, "猫", ann.SelectedText())

	ann.Selection = Phonetic()
	assert.Equal(t, "ねこ", ann.SelectedText())

	ann.Selection = CandidateAt(1)
	assert.Equal(t, "feline", ann.SelectedText())

	// Unreachable selections fall back to the surface form.
	ann.Selection = CandidateAt(9)
	assert.Equal(t, "猫", ann.SelectedText())
}
