package anki

import "strings"

// DeckPath describes where a deck's artifacts land inside the export tree:
// decks/<Category>/<FileBase>.csv for the rows and media/<MediaDir>/ for the
// image files its notes reference. Every component is sanitizer output, so the
// original deck name never appears in a filesystem path.
type DeckPath struct {
	Category string
	FileBase string
	MediaDir string
}

// SplitDeckName splits a full deck name into its hierarchy segments.
func SplitDeckName(name string) []string {
	return strings.Split(name, DeckSeparator)
}

// PathForDeck derives the export layout for a deck. A deck without hierarchy
// files under the fallback category; otherwise the first segment becomes the
// category and the remaining segments join into the CSV base name. Media is
// grouped by the deck's leaf segment.
func PathForDeck(name string) DeckPath {
	parts := SplitDeckName(name)

	p := DeckPath{MediaDir: SlugifyOr(parts[len(parts)-1], "_")}
	if len(parts) == 1 {
		p.Category = FallbackCategory
		p.FileBase = SlugifyOr(parts[0], "_")
		return p
	}

	p.Category = SlugifyOr(parts[0], "_")
	rest := make([]string, len(parts)-1)
	for i, part := range parts[1:] {
		rest[i] = Slugify(part)
	}
	p.FileBase = strings.Join(rest, "_")
	if strings.Trim(p.FileBase, "_") == "" {
		p.FileBase = "_"
	}
	return p
}
