package exporter

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
)

// deckProgress renders a per-deck progress bar on stderr. It stays silent
// when stderr is not a terminal, so piped or logged runs only see the status
// lines.
type deckProgress struct {
	enabled   bool
	total     int
	current   int
	lastWidth int
	bar       progress.Model
}

func newDeckProgress(total int, enabled bool) *deckProgress {
	if total <= 0 {
		total = 1
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 32
	if cols, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && cols > 0 {
		width := cols - 36
		if width < 16 {
			width = 16
		}
		if width > 64 {
			width = 64
		}
		bar.Width = width
	}

	return &deckProgress{
		enabled: enabled && isTerminal(os.Stderr),
		total:   total,
		bar:     bar,
	}
}

func (p *deckProgress) Advance(label string) {
	if !p.enabled {
		return
	}
	p.current++
	if p.current > p.total {
		p.current = p.total
	}
	p.render(label)
}

func (p *deckProgress) Finish(label string) {
	if !p.enabled {
		return
	}
	p.current = p.total
	p.render(label)
	fmt.Fprint(os.Stderr, "\n")
	p.lastWidth = 0
}

func (p *deckProgress) render(label string) {
	percent := float64(p.current) / float64(p.total)
	line := fmt.Sprintf("%s %d/%d %s", p.bar.ViewAs(percent), p.current, p.total, strings.TrimSpace(label))
	pad := ""
	if p.lastWidth > len(line) {
		pad = strings.Repeat(" ", p.lastWidth-len(line))
	}
	fmt.Fprintf(os.Stderr, "\r%s%s", line, pad)
	p.lastWidth = len(line)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("TERM")), "dumb") {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
