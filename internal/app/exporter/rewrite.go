package exporter

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// imageExtensions is the set of media kinds the export relocates. Anything
// else referenced from note HTML is left alone.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".svg":  true,
	".webp": true,
}

// imageReferences returns the distinct image paths referenced by src
// attributes in an HTML fragment, in document order. The captured string is
// used verbatim as the media identifier; no relative/absolute resolution is
// attempted. Only references spelled as quoted src attributes count: those
// are the occurrences the textual rewrite can reach, so an unquoted or
// entity-encoded attribute is neither fetched nor rewritten.
func imageReferences(fragment string) []string {
	if !strings.Contains(fragment, "src=") {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var refs []string
	seen := map[string]bool{}
	doc.Find("[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if src == "" || seen[src] {
			return
		}
		if !imageExtensions[strings.ToLower(path.Ext(src))] {
			return
		}
		if !strings.Contains(fragment, `src="`+src+`"`) && !strings.Contains(fragment, `src='`+src+`'`) {
			return
		}
		seen[src] = true
		refs = append(refs, src)
	})
	return refs
}

// rewriteMedia downloads every image the fragment references into the deck's
// media folder and points the markup at the exported location. Each distinct
// filename is fetched once, but every textual occurrence of its src attribute
// is rewritten, and the rewrite happens even when the download fails: a
// broken reference beats silently dropped markup, and the miss is reported
// separately by the media store.
func (e *Exporter) rewriteMedia(fragment, mediaSubfolder, mediaBaseDir string) string {
	refs := imageReferences(fragment)
	for _, filename := range refs {
		e.media.Fetch(filename, filepath.Join(mediaBaseDir, mediaSubfolder))

		relocated := "../media/" + mediaSubfolder + "/" + filename
		fragment = strings.ReplaceAll(fragment, `src="`+filename+`"`, `src="`+relocated+`"`)
		fragment = strings.ReplaceAll(fragment, `src='`+filename+`'`, `src='`+relocated+`'`)
	}
	return fragment
}
