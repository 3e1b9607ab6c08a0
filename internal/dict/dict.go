// Package dict answers dictionary lookups against JMdict, the collaborative
// Japanese-English dictionary file.
package dict

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	jmdict "github.com/yomidevs/jmdict-go"

	"jimaku/internal/token"
)

// Dictionary holds a loaded JMdict with an exact-match index over kanji
// expressions and readings. It is immutable after Load and safe for
// concurrent lookups.
type Dictionary struct {
	entries  []jmdict.JmdictEntry
	index    map[string][]int  // expression/reading -> entry indices, in file order
	entities map[string]string // sense code -> human readable description
}

// Load reads a JMdict XML file, transparently ungzipping *.gz paths, and
// builds the lookup index.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open dictionary: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	loaded, entities, err := jmdict.LoadJmdict(r)
	if err != nil {
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}
	return newDictionary(loaded.Entries, entities), nil
}

func newDictionary(entries []jmdict.JmdictEntry, entities map[string]string) *Dictionary {
	d := &Dictionary{
		entries:  entries,
		index:    make(map[string][]int, len(entries)*2),
		entities: entities,
	}
	for i := range d.entries {
		seen := make(map[string]struct{}, 4)
		for _, k := range d.entries[i].Kanji {
			d.add(k.Expression, i, seen)
		}
		for _, r := range d.entries[i].Readings {
			d.add(r.Reading, i, seen)
		}
	}
	return d
}

func (d *Dictionary) add(key string, i int, seen map[string]struct{}) {
	if key == "" {
		return
	}
	if _, dup := seen[key]; dup {
		return
	}
	seen[key] = struct{}{}
	d.index[key] = append(d.index[key], i)
}

// Size returns the number of loaded entries.
func (d *Dictionary) Size() int { return len(d.entries) }

// EntityDesc expands a JMdict sense code such as "v5r" into its description.
// Unknown codes come back unchanged.
func (d *Dictionary) EntityDesc(code string) string {
	if desc, ok := d.entities[code]; ok {
		return desc
	}
	return code
}

// Lookup returns translation candidates for a dictionary form, restricted to
// senses whose part-of-speech codes fit the token category. A category with
// no code mapping, or a form the dictionary does not carry, yields an empty
// result and no error. Candidates keep dictionary order, with entries bearing
// a frequency priority marker sorted to the front.
func (d *Dictionary) Lookup(ctx context.Context, form string, cat token.Category) ([]token.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	codes, mapped := senseCodes[cat]
	if !mapped {
		return nil, nil
	}

	var out []token.Candidate
	for _, i := range d.index[form] {
		e := &d.entries[i]
		common := entryCommon(e)
		// An empty pos list inherits the previous sense's codes.
		var pos []string
		for _, s := range e.Sense {
			if len(s.PartsOfSpeech) > 0 {
				pos = s.PartsOfSpeech
			}
			if !codes.matches(pos) {
				continue
			}
			for _, g := range s.Glossary {
				if g.Language != nil && *g.Language != "eng" {
					continue
				}
				text := CleanGloss(g.Content)
				if text == "" {
					continue
				}
				out = append(out, token.Candidate{
					Text:     text,
					Gloss:    g.Content,
					POS:      pos,
					Sequence: e.Sequence,
					Common:   common,
				})
			}
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Common && !out[b].Common
	})
	return out, nil
}
