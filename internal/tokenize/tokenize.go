// Package tokenize wraps the kagome morphological analyzer as the token
// source of the annotation pipeline.
package tokenize

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"jimaku/internal/token"
)

// DictName selects the embedded analyzer dictionary.
type DictName string

const (
	DictIPA DictName = "ipa"
	DictUni DictName = "uni"
)

// Mode selects the kagome segmentation mode. Search and extended modes split
// long compounds into shorter units.
type Mode string

const (
	ModeNormal   Mode = "normal"
	ModeSearch   Mode = "search"
	ModeExtended Mode = "extended"
)

// Options configure a Tokenizer. Zero values mean the IPA dictionary in
// normal mode.
type Options struct {
	Dict DictName
	Mode Mode
}

// Tokenizer produces ordered, immutable tokens with byte offsets into the
// source text. Tokenizing the same text twice yields the same sequence, and
// a Tokenizer is safe for concurrent use.
type Tokenizer struct {
	kg   *tokenizer.Tokenizer
	mode tokenizer.TokenizeMode
}

// New builds a Tokenizer from opts.
func New(opts Options) (*Tokenizer, error) {
	d, err := loadDict(opts.Dict)
	if err != nil {
		return nil, err
	}
	mode, err := parseMode(opts.Mode)
	if err != nil {
		return nil, err
	}
	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("initialize tokenizer: %w", err)
	}
	return &Tokenizer{kg: kg, mode: mode}, nil
}

func loadDict(name DictName) (*dict.Dict, error) {
	switch name {
	case "", DictIPA:
		return ipa.Dict(), nil
	case DictUni:
		return uni.Dict(), nil
	default:
		return nil, fmt.Errorf("unknown tokenizer dictionary %q", name)
	}
}

func parseMode(m Mode) (tokenizer.TokenizeMode, error) {
	switch m {
	case "", ModeNormal:
		return tokenizer.Normal, nil
	case ModeSearch:
		return tokenizer.Search, nil
	case ModeExtended:
		return tokenizer.Extended, nil
	default:
		return tokenizer.Normal, fmt.Errorf("unknown tokenizer mode %q", m)
	}
}

// Tokenize analyzes text and returns the token sequence. Byte offsets are
// located against the source text itself so that everything between
// consecutive tokens (and before the first one) survives reconstruction
// untouched. Whitespace-only input yields no tokens and no error.
func (t *Tokenizer) Tokenize(text string) ([]token.Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	out := make([]token.Token, 0, len(text)/3)
	cursor := 0
	for _, kt := range t.kg.Analyze(text, t.mode) {
		if kt.Class == tokenizer.DUMMY || kt.Surface == "" {
			continue
		}
		at := strings.Index(text[cursor:], kt.Surface)
		if at < 0 {
			return nil, fmt.Errorf("tokenize: surface %q not found after byte %d", kt.Surface, cursor)
		}
		start := cursor + at
		end := start + len(kt.Surface)

		out = append(out, token.Token{
			Surface:  kt.Surface,
			Lemma:    feature(kt.BaseForm()),
			Category: token.CategoryFromPOS(kt.POS()),
			POS:      strings.Join(kt.POS(), ","),
			Reading:  feature(kt.Reading()),
			Position: len(out),
			Start:    start,
			End:      end,
		})
		cursor = end
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("tokenize: no tokens for %d bytes of text", len(text))
	}
	return out, nil
}

// feature normalizes a kagome feature value: missing features and the "*"
// placeholder used for unknown words both come back empty.
func feature(v string, ok bool) string {
	if !ok || v == "*" {
		return ""
	}
	return v
}
