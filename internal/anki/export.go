package anki

import (
	"archive/zip"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// model and deck mirror the JSON blobs Anki keeps in the col table.
type model struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Type      int        `json:"type"` // 0 = standard, 1 = cloze
	Mod       int64      `json:"mod"`
	USN       int        `json:"usn"`
	SortField int        `json:"sortf"`
	DeckID    int64      `json:"did"`
	Templates []template `json:"tmpls"`
	Fields    []field    `json:"flds"`
	CSS       string     `json:"css"`
	LatexPre  string     `json:"latexPre"`
	LatexPost string     `json:"latexPost"`
	Req       [][]any    `json:"req"`
}

type field struct {
	Name   string   `json:"name"`
	Ord    int      `json:"ord"`
	Sticky bool     `json:"sticky"`
	RTL    bool     `json:"rtl"`
	Font   string   `json:"font"`
	Size   int      `json:"size"`
	Media  []string `json:"media"`
}

type template struct {
	Name   string `json:"name"`
	Ord    int    `json:"ord"`
	Qfmt   string `json:"qfmt"`
	Afmt   string `json:"afmt"`
	BQfmt  string `json:"bqfmt"`
	BAfmt  string `json:"bafmt"`
	DeckID *int64 `json:"did"`
}

type deck struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Desc             string `json:"desc"`
	Mod              int64  `json:"mod"`
	USN              int    `json:"usn"`
	Conf             int64  `json:"conf"`
	Dyn              int    `json:"dyn"`
	Collapsed        bool   `json:"collapsed"`
	BrowserCollapsed bool   `json:"browserCollapsed"`
	ExtendNew        int    `json:"extendNew"`
	ExtendRev        int    `json:"extendRev"`
	NewToday         [2]int `json:"newToday"`
	RevToday         [2]int `json:"revToday"`
	LrnToday         [2]int `json:"lrnToday"`
	TimeToday        [2]int `json:"timeToday"`
}

const modelCSS = `.card {
  font-family: sans-serif;
  font-size: 28px;
  text-align: center;
  color: black;
  background-color: white;
}
.reading { font-size: 20px; color: #4ecdc4; }`

const latexPre = "\\documentclass[12pt]{article}\n\\special{papersize=3in,5in}\n" +
	"\\usepackage[utf8]{inputenc}\n\\pagestyle{empty}\n\\begin{document}\n"

// Export writes the notes as a fresh .apkg deck. The package is a zip
// holding a SQLite collection plus an empty media manifest.
func Export(outPath, deckName string, notes []Note) error {
	if len(notes) == 0 {
		return fmt.Errorf("no notes to export")
	}
	if deckName == "" {
		deckName = "jimaku vocabulary"
	}

	tempDir, err := os.MkdirTemp("", "jimaku-apkg-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if err := writeCollection(filepath.Join(tempDir, "collection.anki2"), deckName, notes); err != nil {
		return err
	}
	// Empty media manifest; cards carry no audio or images.
	if err := os.WriteFile(filepath.Join(tempDir, "media"), []byte("{}"), 0644); err != nil {
		return fmt.Errorf("writing media manifest: %w", err)
	}
	return zipDir(tempDir, outPath)
}

func writeCollection(dbPath, deckName string, notes []Note) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	now := time.Now()
	millis := now.UnixMilli()
	deckID := millis
	modelID := millis + 1

	colConf, err := colJSON(deckID, modelID, deckName, now)
	if err != nil {
		return err
	}
	if _, err := db.Exec(
		`INSERT INTO col (id, crt, mod, scm, ver, dty, usn, ls, conf, models, decks, dconf, tags)
		 VALUES (1, ?, ?, ?, 11, 0, 0, 0, ?, ?, ?, ?, '{}')`,
		now.Unix(), millis, millis, colConf.conf, colConf.models, colConf.decks, colConf.dconf,
	); err != nil {
		return fmt.Errorf("writing collection row: %w", err)
	}

	for i, n := range notes {
		noteID := millis + int64(i)
		cardID := millis + int64(len(notes)+i)
		flds := strings.Join([]string{n.Front, n.Reading, n.Back}, "\x1f")
		if _, err := db.Exec(
			`INSERT INTO notes (id, guid, mid, mod, usn, tags, flds, sfld, csum, flags, data)
			 VALUES (?, ?, ?, ?, -1, ?, ?, ?, ?, 0, '')`,
			noteID, uuid.NewString(), modelID, now.Unix(), " "+n.Tags+" ", flds, n.Front, fieldChecksum(n.Front),
		); err != nil {
			return fmt.Errorf("writing note %q: %w", n.Front, err)
		}
		if _, err := db.Exec(
			`INSERT INTO cards (id, nid, did, ord, mod, usn, type, queue, due, ivl, factor, reps, lapses, left, odue, odid, flags, data)
			 VALUES (?, ?, ?, 0, ?, -1, 0, 0, ?, 0, 0, 0, 0, 0, 0, 0, 0, '')`,
			cardID, noteID, deckID, now.Unix(), i+1,
		); err != nil {
			return fmt.Errorf("writing card for %q: %w", n.Front, err)
		}
	}
	return nil
}

type colBlobs struct {
	conf, models, decks, dconf string
}

func colJSON(deckID, modelID int64, deckName string, now time.Time) (colBlobs, error) {
	m := model{
		ID:        modelID,
		Name:      "jimaku vocab",
		Mod:       now.Unix(),
		USN:       -1,
		DeckID:    deckID,
		Templates: []template{{
			Name: "Card 1",
			Qfmt: "{{Front}}",
			Afmt: "{{FrontSide}}<hr id=answer><div class=reading>{{Reading}}</div>{{Back}}",
		}},
		Fields: []field{
			{Name: "Front", Ord: 0, Font: "Arial", Size: 20, Media: []string{}},
			{Name: "Reading", Ord: 1, Font: "Arial", Size: 20, Media: []string{}},
			{Name: "Back", Ord: 2, Font: "Arial", Size: 20, Media: []string{}},
		},
		CSS:       modelCSS,
		LatexPre:  latexPre,
		LatexPost: "\\end{document}",
		Req:       [][]any{{0, "any", []int{0}}},
	}
	d := deck{
		ID:   deckID,
		Name: deckName,
		Desc: "Vocabulary picked while editing subtitles with jimaku.",
		Mod:  now.Unix(),
		USN:  -1,
		Conf: 1,
	}
	defaultDeck := deck{ID: 1, Name: "Default", Mod: now.Unix(), Conf: 1}

	conf := map[string]any{
		"nextPos": 1, "estTimes": true, "activeDecks": []int64{deckID},
		"sortType": "noteFld", "timeLim": 0, "sortBackwards": false,
		"addToCur": true, "curDeck": deckID, "newBury": true, "newSpread": 0,
		"dueCounts": true, "curModel": strconv.FormatInt(modelID, 10), "collapseTime": 1200,
	}
	dconf := map[string]any{
		"1": map[string]any{
			"id": 1, "name": "Default", "mod": 0, "usn": 0,
			"replayq": true, "autoplay": true, "timer": 0, "maxTaken": 60,
			"new": map[string]any{
				"perDay": 20, "delays": []int{1, 10}, "separate": true,
				"ints": []int{1, 4, 7}, "initialFactor": 2500, "bury": true, "order": 1,
			},
			"rev": map[string]any{
				"perDay": 200, "ivlFct": 1, "maxIvl": 36500, "ease4": 1.3,
				"bury": true, "fuzz": 0.05, "minSpace": 1,
			},
			"lapse": map[string]any{
				"leechFails": 8, "minInt": 1, "delays": []int{10},
				"leechAction": 0, "mult": 0,
			},
		},
	}

	blobs := colBlobs{}
	for _, part := range []struct {
		dst *string
		v   any
	}{
		{&blobs.conf, conf},
		{&blobs.models, map[string]model{strconv.FormatInt(modelID, 10): m}},
		{&blobs.decks, map[string]deck{"1": defaultDeck, strconv.FormatInt(deckID, 10): d}},
		{&blobs.dconf, dconf},
	} {
		out, err := json.Marshal(part.v)
		if err != nil {
			return colBlobs{}, fmt.Errorf("marshaling collection metadata: %w", err)
		}
		*part.dst = string(out)
	}
	return blobs, nil
}

// fieldChecksum is the first 8 hex digits of the SHA256 of the sort field,
// read as an integer. Anki uses it for duplicate detection.
func fieldChecksum(sortField string) int64 {
	h := sha256.Sum256([]byte(sortField))
	csum, _ := strconv.ParseInt(fmt.Sprintf("%x", h[:4]), 16, 64)
	return csum
}

func zipDir(dir, outPath string) error {
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	zw := zip.NewWriter(outFile)
	defer zw.Close()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(relPath)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		return fmt.Errorf("creating zip: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE col (
    id integer primary key,
    crt integer not null,
    mod integer not null,
    scm integer not null,
    ver integer not null,
    dty integer not null,
    usn integer not null,
    ls integer not null,
    conf text not null,
    models text not null,
    decks text not null,
    dconf text not null,
    tags text not null
);
CREATE TABLE notes (
    id integer primary key,
    guid text not null,
    mid integer not null,
    mod integer not null,
    usn integer not null,
    tags text not null,
    flds text not null,
    sfld integer not null,
    csum integer not null,
    flags integer not null,
    data text not null
);
CREATE TABLE cards (
    id integer primary key,
    nid integer not null,
    did integer not null,
    ord integer not null,
    mod integer not null,
    usn integer not null,
    type integer not null,
    queue integer not null,
    due integer not null,
    ivl integer not null,
    factor integer not null,
    reps integer not null,
    lapses integer not null,
    left integer not null,
    odue integer not null,
    odid integer not null,
    flags integer not null,
    data text not null
);
CREATE TABLE revlog (
    id integer primary key,
    cid integer not null,
    usn integer not null,
    ease integer not null,
    ivl integer not null,
    lastIvl integer not null,
    factor integer not null,
    time integer not null,
    type integer not null
);
CREATE TABLE graves (
    usn integer not null,
    oid integer not null,
    type integer not null
);
CREATE INDEX ix_notes_usn on notes (usn);
CREATE INDEX ix_cards_usn on cards (usn);
CREATE INDEX ix_revlog_usn on revlog (usn);
CREATE INDEX ix_cards_nid on cards (nid);
CREATE INDEX ix_cards_sched on cards (did, queue, due);
CREATE INDEX ix_revlog_cid on revlog (cid);
CREATE INDEX ix_notes_csum on notes (csum);
`
