package dict

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jmdict "github.com/yomidevs/jmdict-go"

	"jimaku/internal/token"
)

func strptr(s string) *string { return &s }

func testDictionary() *Dictionary {
	entries := []jmdict.JmdictEntry{
		{
			Sequence: 1467640,
			Kanji:    []jmdict.JmdictKanji{{Expression: "猫", Priorities: []string{"ichi1"}}},
			Readings: []jmdict.JmdictReading{{Reading: "ねこ", Priorities: []string{"ichi1"}}},
			Sense: []jmdict.JmdictSense{
				{
					PartsOfSpeech: []string{"n"},
					Glossary: []jmdict.JmdictGlossary{
						{Content: "cat (esp. the domestic cat, Felis catus)"},
						{Content: "feline"},
						{Content: "Katze", Language: strptr("ger")},
					},
				},
			},
		},
		{
			Sequence: 1402540,
			Kanji:    []jmdict.JmdictKanji{{Expression: "走る", Priorities: []string{"ichi1"}}},
			Readings: []jmdict.JmdictReading{{Reading: "はしる"}},
			Sense: []jmdict.JmdictSense{
				{
					PartsOfSpeech: []string{"v5r", "vi"},
					Glossary:      []jmdict.JmdictGlossary{{Content: "to run"}, {Content: "to dash"}},
				},
				{
					// inherits v5r,vi from the sense above
					Glossary: []jmdict.JmdictGlossary{{Content: "to flow (of liquid)"}},
				},
			},
		},
		{
			Sequence: 1574490,
			Kanji:    []jmdict.JmdictKanji{{Expression: "飴"}},
			Readings: []jmdict.JmdictReading{{Reading: "あめ"}},
			Sense: []jmdict.JmdictSense{
				{
					PartsOfSpeech: []string{"n"},
					Glossary:      []jmdict.JmdictGlossary{{Content: "hard candy"}},
				},
			},
		},
		{
			Sequence: 1586250,
			Kanji:    []jmdict.JmdictKanji{{Expression: "雨", Priorities: []string{"ichi1", "news1"}}},
			Readings: []jmdict.JmdictReading{{Reading: "あめ", Priorities: []string{"ichi1"}}},
			Sense: []jmdict.JmdictSense{
				{
					PartsOfSpeech: []string{"n"},
					Glossary:      []jmdict.JmdictGlossary{{Content: "rain"}},
				},
			},
		},
	}
	entities := map[string]string{
		"n":   "noun (common) (futsuumeishi)",
		"v5r": "Godan verb with 'ru' ending",
	}
	return newDictionary(entries, entities)
}

func TestLookupByKanjiAndReading(t *testing.T) {
	d := testDictionary()
	ctx := context.Background()

	byKanji, err := d.Lookup(ctx, "猫", token.CategoryNoun)
	require.NoError(t, err)
	require.Len(t, byKanji, 2, "foreign-language gloss must be skipped")
	assert.Equal(t, "cat", byKanji[0].Text)
	assert.Equal(t, "cat (esp. the domestic cat, Felis catus)", byKanji[0].Gloss)
	assert.Equal(t, "feline", byKanji[1].Text)
	assert.True(t, byKanji[0].Common)
	assert.Equal(t, 1467640, byKanji[0].Sequence)

	byReading, err := d.Lookup(ctx, "ねこ", token.CategoryNoun)
	require.NoError(t, err)
	assert.Equal(t, byKanji, byReading)
}

func TestLookupVerbSenses(t *testing.T) {
	d := testDictionary()

	got, err := d.Lookup(context.Background(), "走る", token.CategoryVerb)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "run", got[0].Text)
	assert.Equal(t, "dash", got[1].Text)
	assert.Equal(t, "flow", got[2].Text, "pos-less sense inherits the verb codes")

	// The same form carries no noun sense.
	got, err = d.Lookup(context.Background(), "走る", token.CategoryNoun)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLookupUnmappedCategory(t *testing.T) {
	d := testDictionary()

	got, err := d.Lookup(context.Background(), "猫", token.CategorySymbol)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLookupMiss(t *testing.T) {
	d := testDictionary()

	got, err := d.Lookup(context.Background(), "犬", token.CategoryNoun)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLookupCommonFirst(t *testing.T) {
	d := testDictionary()

	got, err := d.Lookup(context.Background(), "あめ", token.CategoryNoun)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rain", got[0].Text, "common entry sorts to the front")
	assert.Equal(t, "hard candy", got[1].Text)
}

func TestLookupCancelled(t *testing.T) {
	d := testDictionary()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Lookup(ctx, "猫", token.CategoryNoun)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEntityDesc(t *testing.T) {
	d := testDictionary()
	assert.Equal(t, "Godan verb with 'ru' ending", d.EntityDesc("v5r"))
	assert.Equal(t, "mystery", d.EntityDesc("mystery"))
}

func TestCleanGloss(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"to run", "run"},
		{"cat (esp. the domestic cat)", "cat"},
		{"to flow (of liquid)", "flow"},
		{"run about (of children)", "run about"},
		{"  demon king  ", "demon king"},
		{"feline", "feline"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanGloss(tt.in), "in=%q", tt.in)
	}
}
