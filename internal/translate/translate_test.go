package translate

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jimaku/internal/annotate"
	"jimaku/internal/filter"
	"jimaku/internal/token"
)

// fakeTokenizer segments text at predeclared surfaces, in order.
type fakeTokenizer struct {
	surfaces map[string][]token.Token
}

func (f *fakeTokenizer) Tokenize(text string) ([]token.Token, error) {
	toks := append([]token.Token(nil), f.surfaces[text]...)
	cursor := 0
	for i := range toks {
		at := strings.Index(text[cursor:], toks[i].Surface)
		if at < 0 {
			continue
		}
		toks[i].Start = cursor + at
		toks[i].End = toks[i].Start + len(toks[i].Surface)
		toks[i].Position = i
		cursor = toks[i].End
	}
	return toks, nil
}

type fakeDict struct {
	candidates map[string][]token.Candidate
}

func (f *fakeDict) Lookup(_ context.Context, form string, _ token.Category) ([]token.Candidate, error) {
	return f.candidates[form], nil
}

func newTranslator(tk Tokenizer, candidates map[string][]token.Candidate) *Translator {
	cfg := filter.Config{
		Rules: map[token.Category]token.Action{
			token.CategoryNoun:      token.ActionSuggest,
			token.CategoryVerb:      token.ActionSuggest,
			token.CategoryAdjective: token.ActionSuggest,
		},
		JapaneseOnly: true,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	an := annotate.New(cfg, nil, &fakeDict{candidates: candidates}, log)
	return New(tk, an)
}

func TestTranslateDumb(t *testing.T) {
	text := "魔王を倒した。"
	tk := &fakeTokenizer{surfaces: map[string][]token.Token{
		text: {
			{Surface: "魔王", Lemma: "魔王", Category: token.CategoryNoun},
			{Surface: "を", Lemma: "を", Category: token.CategoryParticle},
			{Surface: "倒し", Lemma: "倒す", Category: token.CategoryVerb},
			{Surface: "た", Lemma: "た", Category: token.CategoryAuxiliary},
			{Surface: "。", Lemma: "。", Category: token.CategorySymbol},
		},
	}}
	tr := newTranslator(tk, map[string][]token.Candidate{
		"魔王": {{Text: "demon king"}, {Text: "satan"}},
		"倒す": {{Text: "defeat"}, {Text: "knock down"}},
	})

	got, err := tr.Translate(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, "DEMON-KING-を DEFEAT-た。", got)
}

func TestTranslateKeepsUntranslatableTokens(t *testing.T) {
	text := "猫が 走る"
	tk := &fakeTokenizer{surfaces: map[string][]token.Token{
		text: {
			{Surface: "猫", Lemma: "猫", Category: token.CategoryNoun},
			{Surface: "が", Lemma: "が", Category: token.CategoryParticle},
			{Surface: "走る", Lemma: "走る", Category: token.CategoryVerb},
		},
	}}

	// No dictionary hits at all: everything stays, separators included.
	tr := newTranslator(tk, nil)
	got, err := tr.Translate(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, "猫が 走る", got)

	// Only the noun resolves; the verb keeps its surface.
	tr = newTranslator(tk, map[string][]token.Candidate{
		"猫": {{Text: "cat"}},
	})
	got, err = tr.Translate(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, "CAT-が 走る", got)
}

func TestTranslateSkipsForeignTokens(t *testing.T) {
	text := "Tokyoへ行く"
	tk := &fakeTokenizer{surfaces: map[string][]token.Token{
		text: {
			{Surface: "Tokyo", Lemma: "Tokyo", Category: token.CategoryNoun},
			{Surface: "へ", Lemma: "へ", Category: token.CategoryParticle},
			{Surface: "行く", Lemma: "行く", Category: token.CategoryVerb},
		},
	}}
	tr := newTranslator(tk, map[string][]token.Candidate{
		"Tokyo": {{Text: "tokyo"}},
		"行く":    {{Text: "go"}},
	})

	got, err := tr.Translate(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, "Tokyoへ GO", got, "foreign token is left alone even with a dictionary hit")
}

func TestTranslateEmptyText(t *testing.T) {
	tr := newTranslator(&fakeTokenizer{}, nil)

	got, err := tr.Translate(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFormatGloss(t *testing.T) {
	assert.Equal(t, "DEMON-KING", formatGloss("demon king"))
	assert.Equal(t, "CAT", formatGloss(" cat "))
	assert.Equal(t, "RUN-ABOUT", formatGloss("run about"))
}
