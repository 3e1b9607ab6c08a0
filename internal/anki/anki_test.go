package anki

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jimaku/internal/token"
)

func TestNotesFromTokens(t *testing.T) {
	anns := []token.Annotated{
		{
			Token:      token.Token{Surface: "猫", Lemma: "猫", Category: token.CategoryNoun},
			Action:     token.ActionSuggest,
			Phonetic:   "ねこ",
			Candidates: []token.Candidate{{Text: "cat"}, {Text: "feline"}},
		},
		{
			Token:  token.Token{Surface: "が", Category: token.CategoryParticle},
			Action: token.ActionNone,
		},
		{
			// suggest-classified but nothing found: not worth a card
			Token:  token.Token{Surface: "魔王", Lemma: "魔王", Category: token.CategoryNoun},
			Action: token.ActionSuggest,
		},
		{
			Token:    token.Token{Surface: "走る", Category: token.CategoryVerb},
			Action:   token.ActionPhoneticOnly,
			Phonetic: "はしる",
		},
		{
			// same dictionary form again, inflected
			Token:      token.Token{Surface: "猫", Lemma: "猫", Category: token.CategoryNoun},
			Action:     token.ActionSuggest,
			Candidates: []token.Candidate{{Text: "cat"}},
		},
	}

	notes := NotesFromTokens(anns)
	require.Len(t, notes, 1, "only suggest tokens with candidates, deduplicated")

	assert.Equal(t, "猫", notes[0].Front)
	assert.Equal(t, "ねこ", notes[0].Reading)
	assert.Equal(t, "cat; feline", notes[0].Back)
	assert.Equal(t, "jimaku", notes[0].Tags)
}

func TestNotesFromTokensGlossCap(t *testing.T) {
	cands := make([]token.Candidate, maxGlosses+4)
	for i := range cands {
		cands[i] = token.Candidate{Text: "gloss"}
	}
	notes := NotesFromTokens([]token.Annotated{{
		Token:      token.Token{Surface: "語", Lemma: "語", Category: token.CategoryNoun},
		Action:     token.ActionSuggest,
		Candidates: cands,
	}})
	require.Len(t, notes, 1)
	assert.Len(t, strings.Split(notes[0].Back, "; "), maxGlosses)
}
