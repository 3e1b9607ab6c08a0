package token

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection is returned when a selection is not reachable for the
// token it targets. Callers test for it with errors.Is.
var ErrInvalidSelection = errors.New("invalid selection")

// SelectionKind enumerates the display choices a token can be in.
type SelectionKind int

const (
	SelectOriginal  SelectionKind = iota // show the surface form as-is
	SelectPhonetic                       // show the phonetic rendering
	SelectCandidate                      // show one dictionary candidate
)

func (k SelectionKind) String() string {
	switch k {
	case SelectOriginal:
		return "original"
	case SelectPhonetic:
		return "phonetic"
	case SelectCandidate:
		return "candidate"
	default:
		return fmt.Sprintf("selection(%d)", int(k))
	}
}

// Selection is the display choice for a single token. The zero value selects
// the original surface form.
type Selection struct {
	Kind      SelectionKind
	Candidate int // index into Annotated.Candidates, meaningful only for SelectCandidate
}

// Original selects the token's surface form.
func Original() Selection { return Selection{} }

// Phonetic selects the token's phonetic rendering.
func Phonetic() Selection { return Selection{Kind: SelectPhonetic} }

// CandidateAt selects the i-th dictionary candidate.
func CandidateAt(i int) Selection { return Selection{Kind: SelectCandidate, Candidate: i} }

func (s Selection) String() string {
	if s.Kind == SelectCandidate {
		return fmt.Sprintf("candidate(%d)", s.Candidate)
	}
	return s.Kind.String()
}

// Annotated couples a token with the filter decision and the lookup results
// gathered for it. Selection starts at the original surface form and changes
// only through the owning session.
type Annotated struct {
	Token      Token
	Action     Action
	Phonetic   string      // empty when no rendering is available
	Candidates []Candidate // populated only for suggest-classified tokens, may still be empty
	Selection  Selection
}

// HasPhonetic reports whether a phonetic rendering is available.
func (a *Annotated) HasPhonetic() bool { return a.Phonetic != "" }

// Validate checks that sel is reachable for this token: a phonetic selection
// requires a rendering, a candidate selection must be in range. The returned
// error wraps ErrInvalidSelection.
func (a *Annotated) Validate(sel Selection) error {
	switch sel.Kind {
	case SelectOriginal:
		return nil
	case SelectPhonetic:
		if !a.HasPhonetic() {
			return fmt.Errorf("%w: %q has no phonetic rendering", ErrInvalidSelection, a.Token.Surface)
		}
		return nil
	case SelectCandidate:
		if sel.Candidate < 0 || sel.Candidate >= len(a.Candidates) {
			return fmt.Errorf("%w: candidate %d out of range for %q (have %d)",
				ErrInvalidSelection, sel.Candidate, a.Token.Surface, len(a.Candidates))
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %v", ErrInvalidSelection, sel.Kind)
	}
}

// SelectedText resolves the current selection to the text shown for the token.
// An unreachable selection falls back to the surface form.
func (a *Annotated) SelectedText() string {
	switch a.Selection.Kind {
	case SelectPhonetic:
		if a.HasPhonetic() {
			return a.Phonetic
		}
	case SelectCandidate:
		if i := a.Selection.Candidate; i >= 0 && i < len(a.Candidates) {
			return a.Candidates[i].Text
		}
	}
	return a.Token.Surface
}
