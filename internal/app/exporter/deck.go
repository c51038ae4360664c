package exporter

import (
	"bytes"
	"encoding/csv"
	"html"
	"path/filepath"
	"strings"

	ankidomain "github.com/CermP/anki-companion/internal/domain/anki"
	"github.com/CermP/anki-companion/internal/infra/ankiconnect"
	"github.com/CermP/anki-companion/internal/infra/exportfs"
)

// utf8BOM prefixes every CSV so spreadsheet tools detect UTF-8.
const utf8BOM = "\uFEFF"

// exportDeck writes one deck to decks/<category>/<base>.csv, one row per
// note: the note's fields in collection order, then its tags space-joined.
// Failures never escape the deck boundary: whatever goes wrong is logged and
// the deck contributes zero, leaving the other decks untouched.
func (e *Exporter) exportDeck(deckName string, dirs exportDirs) int {
	e.logf("deck %s", deckName)
	deckPath := ankidomain.PathForDeck(deckName)

	ids, err := e.Client.FindNotes(ankiconnect.DeckQuery(deckName))
	if err != nil {
		e.logf("  find notes: %v", err)
		return 0
	}
	if len(ids) == 0 {
		e.logf("  no notes")
		return 0
	}

	notes, err := e.Client.NotesInfo(ids)
	if err != nil {
		e.logf("  note details: %v", err)
		return 0
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	for _, note := range notes {
		row := make([]string, 0, len(note.Fields)+1)
		for _, value := range note.FieldValues() {
			// Entities are decoded before the media scan so rewritten paths
			// land in plain markup.
			decoded := html.UnescapeString(value)
			row = append(row, e.rewriteMedia(decoded, deckPath.MediaDir, dirs.media))
		}
		row = append(row, strings.Join(note.Tags, " "))
		if err := w.Write(row); err != nil {
			e.logf("  encode row: %v", err)
			return 0
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		e.logf("  encode csv: %v", err)
		return 0
	}

	csvPath := filepath.Join(dirs.decks, deckPath.Category, deckPath.FileBase+".csv")
	if err := exportfs.WriteFileAtomic(csvPath, buf.Bytes()); err != nil {
		e.logf("  write csv: %v", err)
		return 0
	}

	e.logf("  %d cards -> %s", len(notes), csvPath)
	return len(notes)
}
