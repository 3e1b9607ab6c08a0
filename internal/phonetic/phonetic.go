// Package phonetic renders surface forms into kana or romaji using the
// analyzer's reading data.
package phonetic

import (
	"context"
	"fmt"
	"strings"

	"jimaku/internal/kana"
	"jimaku/internal/token"
	"jimaku/internal/tokenize"
)

// Script selects the output script of a phonetic rendering.
type Script string

const (
	ScriptHiragana Script = "hiragana"
	ScriptKatakana Script = "katakana"
	ScriptRomaji   Script = "romaji"
)

// ParseScript validates a script name from configuration. The empty string
// means hiragana.
func ParseScript(s string) (Script, error) {
	switch Script(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScriptHiragana:
		return ScriptHiragana, nil
	case ScriptKatakana:
		return ScriptKatakana, nil
	case ScriptRomaji:
		return ScriptRomaji, nil
	}
	return ScriptHiragana, fmt.Errorf("unknown phonetic script %q", s)
}

// Converter phonetizes surface forms through the morphological analyzer.
type Converter struct {
	tk     *tokenize.Tokenizer
	script Script
}

// New returns a Converter rendering into the given script.
func New(tk *tokenize.Tokenizer, script Script) *Converter {
	if script == "" {
		script = ScriptHiragana
	}
	return &Converter{tk: tk, script: script}
}

// Phonetize returns the phonetic rendering of surface in the configured
// script. An empty result with a nil error means no rendering is available,
// which happens when the analyzer has no reading for part of the surface.
func (c *Converter) Phonetize(ctx context.Context, surface string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	toks, err := c.tk.Tokenize(surface)
	if err != nil {
		return "", fmt.Errorf("phonetize %q: %w", surface, err)
	}
	var b strings.Builder
	for _, t := range toks {
		r := reading(t)
		if r == "" {
			return "", nil
		}
		b.WriteString(r)
	}
	return c.convert(b.String()), nil
}

// reading returns the katakana reading of a token, letting kana-only
// surfaces stand in for themselves when the analyzer reports none.
func reading(t token.Token) string {
	if t.Reading != "" {
		return t.Reading
	}
	for _, r := range t.Surface {
		if !kana.IsKana(r) {
			return ""
		}
	}
	return t.Surface
}

func (c *Converter) convert(katakana string) string {
	switch c.script {
	case ScriptKatakana:
		return kana.HiraganaToKatakana(katakana)
	case ScriptRomaji:
		return kana.ToRomaji(katakana)
	default:
		return kana.KatakanaToHiragana(katakana)
	}
}
