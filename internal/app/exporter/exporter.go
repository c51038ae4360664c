// Package exporter drives the export pipeline: deck enumeration, per-deck
// note retrieval, media relocation, and CSV serialization into the
// destination tree.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CermP/anki-companion/internal/infra/ankiconnect"
	"github.com/CermP/anki-companion/internal/infra/exportfs"
)

// Exporter runs sequential deck exports against one destination directory.
// It is stateless across runs apart from the files it leaves behind; re-runs
// overwrite CSVs and skip media already on disk. Not safe for concurrent use
// against the same destination.
type Exporter struct {
	Client *ankiconnect.Client

	// Logf receives one human-readable status line per event. Defaults to
	// stderr; the interactive surface plugs its own sink in here.
	Logf func(format string, args ...any)

	// ShowProgress enables the terminal progress bar.
	ShowProgress bool

	media *mediaStore
}

// Stats aggregates what one run accomplished.
type Stats struct {
	Decks        int
	Cards        int
	MediaFiles   int
	MediaMissing int
}

type exportDirs struct {
	decks string
	media string
}

// Run enumerates the collection's decks, applies the selection, and exports
// each selected deck in order. An empty deck list or an empty effective
// selection is a no-op, not an error. Only destination setup and deck
// enumeration can fail the whole run; everything later is contained per deck.
func (e *Exporter) Run(destDir string, sel Selection) (Stats, error) {
	dirs, err := ensureLayout(destDir)
	if err != nil {
		return Stats{}, err
	}

	decks, err := e.Client.DeckNames()
	if err != nil {
		return Stats{}, fmt.Errorf("list decks: %w", err)
	}
	if len(decks) == 0 {
		e.logf("no decks in collection")
		return Stats{}, nil
	}
	return e.run(dirs, sel.apply(decks))
}

// RunDecks exports the given decks by name, in order. The interactive picker
// uses this directly with its chosen subset.
func (e *Exporter) RunDecks(destDir string, decks []string) (Stats, error) {
	dirs, err := ensureLayout(destDir)
	if err != nil {
		return Stats{}, err
	}
	return e.run(dirs, decks)
}

// ensureLayout creates the two destination subtrees every run relies on.
func ensureLayout(destDir string) (exportDirs, error) {
	dirs := exportDirs{
		decks: filepath.Join(destDir, "decks"),
		media: filepath.Join(destDir, "media"),
	}
	for _, dir := range []string{dirs.decks, dirs.media} {
		if err := exportfs.EnsureDir(dir); err != nil {
			return exportDirs{}, err
		}
	}
	return dirs, nil
}

func (e *Exporter) run(dirs exportDirs, decks []string) (Stats, error) {
	if len(decks) == 0 {
		e.logf("no decks selected")
		return Stats{}, nil
	}

	e.media = &mediaStore{client: e.Client, logf: e.logf}
	bar := newDeckProgress(len(decks), e.ShowProgress)

	var stats Stats
	for _, deck := range decks {
		count := e.exportDeck(deck, dirs)
		if count > 0 {
			stats.Decks++
		}
		stats.Cards += count
		bar.Advance(deck)
	}
	bar.Finish("done")

	stats.MediaFiles = e.media.fetched
	stats.MediaMissing = e.media.missing
	e.logf("exported %d cards from %d decks (%d media files, %d missing)",
		stats.Cards, stats.Decks, stats.MediaFiles, stats.MediaMissing)
	return stats, nil
}

func (e *Exporter) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
