// Package session owns the annotated token sequence of one piece of source
// text and reconstructs the text from the per-token selections.
package session

import (
	"fmt"
	"strings"

	"jimaku/internal/token"
)

// Session holds the ordered annotated tokens of one source text together
// with the separators between them. A Session belongs to a single editor
// instance; every mutation goes through Select.
type Session struct {
	source string
	prefix string // source text before the first token
	tokens []token.Annotated
	seps   []string // seps[i] trails token i; the last entry runs to the end of the source
}

// New builds a Session from the source text and the annotated tokens produced
// for it. Token offsets must be in order, non-overlapping and point at their
// surface in the source; every sequence coming out of the tokenizer holds to
// that.
func New(source string, toks []token.Annotated) (*Session, error) {
	s := &Session{
		source: source,
		tokens: toks,
		seps:   make([]string, len(toks)),
	}
	if len(toks) == 0 {
		s.prefix = source
		return s, nil
	}
	cursor := 0
	for i := range toks {
		t := toks[i].Token
		if t.Start < cursor || t.Start > t.End || t.End > len(source) {
			return nil, fmt.Errorf("token %d (%q): offsets [%d,%d) out of order at byte %d",
				i, t.Surface, t.Start, t.End, cursor)
		}
		if source[t.Start:t.End] != t.Surface {
			return nil, fmt.Errorf("token %d: surface %q not at bytes [%d,%d) of source",
				i, t.Surface, t.Start, t.End)
		}
		if i == 0 {
			s.prefix = source[:t.Start]
		} else {
			s.seps[i-1] = source[cursor:t.Start]
		}
		cursor = t.End
	}
	s.seps[len(toks)-1] = source[cursor:]
	return s, nil
}

// Len returns the number of tokens.
func (s *Session) Len() int { return len(s.tokens) }

// Source returns the unmodified source text.
func (s *Session) Source() string { return s.source }

// Prefix returns the source text before the first token.
func (s *Session) Prefix() string { return s.prefix }

// Separator returns the source text that trails token i.
func (s *Session) Separator(i int) string {
	if i < 0 || i >= len(s.seps) {
		return ""
	}
	return s.seps[i]
}

// Token returns a snapshot of the annotated token at index i. The candidate
// slice is copied, so callers cannot reach back into session state.
func (s *Session) Token(i int) (token.Annotated, error) {
	if err := s.check(i); err != nil {
		return token.Annotated{}, err
	}
	ann := s.tokens[i]
	ann.Candidates = append([]token.Candidate(nil), ann.Candidates...)
	return ann, nil
}

// Tokens returns the annotated tokens in order. The slice is fresh but shares
// candidate backing arrays; treat it as read-only.
func (s *Session) Tokens() []token.Annotated {
	return append([]token.Annotated(nil), s.tokens...)
}

// Select applies a selection change to token i. An unreachable selection is
// rejected with token.ErrInvalidSelection and leaves the session untouched.
func (s *Session) Select(i int, sel token.Selection) error {
	if err := s.check(i); err != nil {
		return err
	}
	if err := s.tokens[i].Validate(sel); err != nil {
		return err
	}
	s.tokens[i].Selection = sel
	return nil
}

// ResetSelections puts every token back to its original surface form.
func (s *Session) ResetSelections() {
	for i := range s.tokens {
		s.tokens[i].Selection = token.Original()
	}
}

// Render reconstructs the text from the current selections. It is a pure
// function of session state: separators pass through byte-for-byte, so with
// every token on its original selection the result is the source itself.
func (s *Session) Render() string {
	var b strings.Builder
	b.Grow(len(s.source) + 16)
	b.WriteString(s.prefix)
	for i := range s.tokens {
		b.WriteString(s.tokens[i].SelectedText())
		b.WriteString(s.seps[i])
	}
	return b.String()
}

func (s *Session) check(i int) error {
	if i < 0 || i >= len(s.tokens) {
		return fmt.Errorf("token index %d out of range (have %d)", i, len(s.tokens))
	}
	return nil
}
