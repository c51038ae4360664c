package exporter

import (
	"path/filepath"

	"github.com/CermP/anki-companion/internal/infra/ankiconnect"
	"github.com/CermP/anki-companion/internal/infra/exportfs"
)

// mediaStore materializes referenced media files into the export tree. A file
// already present at its destination is never fetched again, which makes
// downloads idempotent within a run and across re-runs that keep the output.
type mediaStore struct {
	client  *ankiconnect.Client
	logf    func(format string, args ...any)
	fetched int
	missing int
}

// Fetch places filename into destDir and reports success. Failure is soft:
// the miss is logged and counted, and the caller keeps going with whatever
// markup it already has.
func (m *mediaStore) Fetch(filename, destDir string) bool {
	target := filepath.Join(destDir, filename)
	if exportfs.FileExists(target) {
		return true
	}

	data, found, err := m.client.RetrieveMediaFile(filename)
	if err != nil {
		m.missing++
		m.logf("  media %s: %v", filename, err)
		return false
	}
	if !found {
		m.missing++
		m.logf("  media not in collection: %s", filename)
		return false
	}

	if err := exportfs.WriteFileAtomic(target, data); err != nil {
		m.missing++
		m.logf("  media %s: %v", filename, err)
		return false
	}
	m.fetched++
	return true
}
