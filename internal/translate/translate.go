// Package translate provides the non-interactive batch mode: every token the
// filter marks for suggestion is replaced by its first dictionary candidate.
package translate

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"jimaku/internal/annotate"
	"jimaku/internal/session"
	"jimaku/internal/token"
)

// Tokenizer is the token source of a batch pass.
type Tokenizer interface {
	Tokenize(text string) ([]token.Token, error)
}

// Translator runs batch passes over raw text.
type Translator struct {
	tk Tokenizer
	an *annotate.Annotator
}

// New returns a Translator using the given token source and annotator.
func New(tk Tokenizer, an *annotate.Annotator) *Translator {
	return &Translator{tk: tk, an: an}
}

// Translate tokenizes and annotates text, then bakes the annotations in:
// each token with candidates becomes its first candidate, upper-cased with
// inner spaces turned into hyphens. Within a word, whatever follows a
// translated token is attached with a hyphen. Words are separated by a
// single space, reusing whitespace carried over from the source where there
// is some. Untranslated tokens keep their original text and trailing
// separator. A word begins at every noun or verb.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	toks, err := t.tk.Tokenize(text)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	anns, err := t.an.AnnotateAll(ctx, toks)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	sess, err := session.New(text, anns)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	return bake(sess), nil
}

// wordStarts are the categories that open a new word during baking.
var wordStarts = map[token.Category]bool{
	token.CategoryNoun: true,
	token.CategoryVerb: true,
}

func bake(s *session.Session) string {
	anns := s.Tokens()
	var b strings.Builder
	b.WriteString(s.Prefix())
	for w, word := range splitWords(anns) {
		if w > 0 && !endsInSpace(b.String()) {
			b.WriteByte(' ')
		}
		b.WriteString(bakeWord(s, anns, word))
	}
	return b.String()
}

func endsInSpace(s string) bool {
	return strings.TrimRightFunc(s, unicode.IsSpace) != s
}

// splitWords groups token indices into words, opening a new word at every
// noun or verb.
func splitWords(anns []token.Annotated) [][]int {
	var words [][]int
	var cur []int
	for i := range anns {
		if wordStarts[anns[i].Token.Category] && len(cur) > 0 {
			words = append(words, cur)
			cur = nil
		}
		cur = append(cur, i)
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}

func bakeWord(s *session.Session, anns []token.Annotated, word []int) string {
	var b strings.Builder
	hyphen := false
	for _, i := range word {
		if hyphen {
			b.WriteByte('-')
		}
		ann := anns[i]
		if ann.Action == token.ActionSuggest && len(ann.Candidates) > 0 {
			b.WriteString(formatGloss(ann.Candidates[0].Text))
			hyphen = true
			continue
		}
		b.WriteString(ann.Token.Surface)
		b.WriteString(s.Separator(i))
		hyphen = false
	}
	return b.String()
}

// formatGloss spells an applied gloss the way the batch output carries it:
// upper-cased, inner whitespace collapsed to hyphens.
func formatGloss(gloss string) string {
	return strings.ToUpper(strings.Join(strings.Fields(gloss), "-"))
}
