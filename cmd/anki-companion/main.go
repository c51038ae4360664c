package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/CermP/anki-companion/internal/app/exporter"
	"github.com/CermP/anki-companion/internal/config"
	"github.com/CermP/anki-companion/internal/infra/ankiconnect"
	"github.com/CermP/anki-companion/internal/ui/picker"
)

const usage = `usage: anki-companion [flags] [command]

commands:
  export <dir> [all|i,j,k]  export decks to <dir> (comma-separated zero-based
                            deck indices, default all)
  list                      print deck names with their indices
  (none)                    pick decks and destination interactively

flags:
`

func main() {
	var (
		cfgPath string
		url     string
		timeout int
	)
	flag.StringVar(&cfgPath, "config", "", "path to config file (default ~/.config/anki-companion/config.toml)")
	flag.StringVar(&url, "url", "", "AnkiConnect endpoint (overrides config)")
	flag.IntVar(&timeout, "timeout", -1, "request timeout in seconds, 0 for none (overrides config)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fatal("%v", err)
	}
	if url != "" {
		cfg.AnkiURL = url
	}
	if timeout >= 0 {
		cfg.TimeoutSeconds = timeout
	}

	client := ankiconnect.New(cfg.AnkiURL, cfg.Timeout())

	args := flag.Args()
	switch {
	case len(args) == 0:
		runInteractive(client)
	case args[0] == "list":
		runList(client)
	case args[0] == "export":
		runExport(client, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
}

func runList(client *ankiconnect.Client) {
	decks, err := client.DeckNames()
	if err != nil {
		fatal("%v", err)
	}
	if len(decks) == 0 {
		fmt.Println("no decks in collection")
		return
	}
	for i, name := range decks {
		fmt.Printf("%3d  %s\n", i, name)
	}
}

func runExport(client *ankiconnect.Client, args []string) {
	if len(args) == 0 {
		fatal("export: destination directory is required")
	}
	dest := args[0]
	if info, err := os.Stat(dest); err != nil || !info.IsDir() {
		fatal("destination %s is not an existing directory", dest)
	}

	sel := exporter.SelectAll()
	if len(args) > 1 {
		var err error
		if sel, err = exporter.ParseSelection(args[1]); err != nil {
			fatal("%v", err)
		}
	}

	exp := exporter.Exporter{Client: client, ShowProgress: true}
	stats, err := exp.Run(dest, sel)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("done: %d cards from %d decks\n", stats.Cards, stats.Decks)
}

func runInteractive(client *ankiconnect.Client) {
	decks, err := client.DeckNames()
	if err != nil {
		fatal("%v\nis Anki running with the AnkiConnect add-on enabled?", err)
	}
	if len(decks) == 0 {
		fmt.Println("no decks in collection")
		return
	}

	chosen, dest, ok, err := picker.Run(decks)
	if err != nil {
		fatal("%v", err)
	}
	if !ok {
		fmt.Println("export cancelled")
		return
	}
	if info, err := os.Stat(dest); err != nil || !info.IsDir() {
		fatal("destination %s is not an existing directory", dest)
	}

	exp := exporter.Exporter{Client: client, ShowProgress: true}
	stats, err := exp.RunDecks(dest, chosen)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("done: %d cards from %d decks\n", stats.Cards, stats.Decks)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
