// Package anki exports annotated vocabulary as Anki .apkg decks.
package anki

import (
	"strings"

	"jimaku/internal/token"
)

// Note is one flashcard-to-be: the dictionary form on the front, the
// phonetic rendering and the candidate glosses on the back.
type Note struct {
	Front   string
	Reading string
	Back    string
	Tags    string
}

// maxGlosses caps how many candidate glosses end up on a card back.
const maxGlosses = 8

// NotesFromTokens collects the vocabulary worth studying from an annotated
// pass: every suggest-classified token that found candidates, deduplicated by
// dictionary form in first-seen order.
func NotesFromTokens(anns []token.Annotated) []Note {
	seen := make(map[string]struct{}, len(anns))
	var notes []Note
	for _, ann := range anns {
		if ann.Action != token.ActionSuggest || len(ann.Candidates) == 0 {
			continue
		}
		form := ann.Token.DictForm()
		if _, dup := seen[form]; dup {
			continue
		}
		seen[form] = struct{}{}
		notes = append(notes, Note{
			Front:   form,
			Reading: ann.Phonetic,
			Back:    joinGlosses(ann.Candidates),
			Tags:    "jimaku",
		})
	}
	return notes
}

func joinGlosses(cands []token.Candidate) string {
	n := len(cands)
	if n > maxGlosses {
		n = maxGlosses
	}
	parts := make([]string, 0, n)
	for _, c := range cands[:n] {
		parts = append(parts, c.Text)
	}
	return strings.Join(parts, "; ")
}
