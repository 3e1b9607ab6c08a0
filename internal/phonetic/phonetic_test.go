package phonetic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jimaku/internal/tokenize"
)

func newConverter(t *testing.T, script Script) *Converter {
	t.Helper()
	tk, err := tokenize.New(tokenize.Options{})
	require.NoError(t, err)
	return New(tk, script)
}

func TestPhonetizeHiragana(t *testing.T) {
	c := newConverter(t, ScriptHiragana)

	got, err := c.Phonetize(context.Background(), "猫")
	require.NoError(t, err)
	assert.Equal(t, "ねこ", got)

	got, err = c.Phonetize(context.Background(), "走る")
	require.NoError(t, err)
	assert.Equal(t, "はしる", got)
}

func TestPhonetizeKatakana(t *testing.T) {
	c := newConverter(t, ScriptKatakana)

	got, err := c.Phonetize(context.Background(), "猫")
	require.NoError(t, err)
	assert.Equal(t, "ネコ", got)
}

func TestPhonetizeRomaji(t *testing.T) {
	c := newConverter(t, ScriptRomaji)

	got, err := c.Phonetize(context.Background(), "走る")
	require.NoError(t, err)
	assert.Equal(t, "hashiru", got)
}

func TestPhonetizeAbsent(t *testing.T) {
	c := newConverter(t, ScriptHiragana)

	got, err := c.Phonetize(context.Background(), "cat")
	require.NoError(t, err)
	assert.Empty(t, got, "latin text has no reading")
}

func TestPhonetizeKanaFallback(t *testing.T) {
	c := newConverter(t, ScriptHiragana)

	// Kana-only surfaces render even when the analyzer has no entry for them.
	got, err := c.Phonetize(context.Background(), "ぴょんぴょん")
	require.NoError(t, err)
	assert.Equal(t, "ぴょんぴょん", got)
}

func TestPhonetizeCancelled(t *testing.T) {
	c := newConverter(t, ScriptHiragana)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Phonetize(ctx, "猫")
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseScript(t *testing.T) {
	got, err := ParseScript(" Romaji ")
	require.NoError(t, err)
	assert.Equal(t, ScriptRomaji, got)

	got, err = ParseScript("")
	require.NoError(t, err)
	assert.Equal(t, ScriptHiragana, got)

	_, err = ParseScript("kanji")
	require.Error(t, err)
}
