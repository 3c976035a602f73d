package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the generator.
type cliFlags struct {
	config     string
	dryRun     bool
	quiet      bool
	verbose    bool
	version    bool
	lessonHTML bool
}

const usageHeader = `Usage: portfolio-data [flags] [vault] [output]

Generate articles.json and books.json from an Obsidian vault and copy
article images into the output directory.

  vault   Path to the vault root (default: current directory)
  output  Path to the output directory (default: ./data)

Flags:
`

// parseFlags parses CLI arguments. It returns the flags and the remaining
// positional arguments (vault and output paths).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("portfolio-data", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageHeader)
		fmt.Fprint(os.Stderr, fs.FlagUsages())
	}

	f := &cliFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file path or name (searched in . and ~/.config/portfolio-data)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "show what would be done without making changes")
	fs.BoolVar(&f.lessonHTML, "lesson-html", false, "also render book lessons to HTML")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress and warning output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	positional := fs.Args()
	if positional == nil {
		positional = []string{}
	}

	return f, positional, nil
}
