// Command bibleref is the CLI for the bibleref reference library.
// It parses verse and passage references, prints canonical forms, and
// answers inclusion, overlap, and length queries.
package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/bibleref/core/ref"
	"github.com/FocuswithJustin/bibleref/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for bibleref.
var CLI struct {
	// Global flags
	LogLevel string `name:"log-level" default:"warn" help:"Log level (debug, info, warn, error)"`

	Parse    ParseCmd    `cmd:"" help:"Parse references and print their canonical form"`
	Books    BooksCmd    `cmd:"" help:"List the books of the Bible"`
	Includes IncludesCmd `cmd:"" help:"Test whether a passage includes a verse"`
	Overlap  OverlapCmd  `cmd:"" help:"Test whether two passages overlap"`
	Length   LengthCmd   `cmd:"" help:"Count the verses in a passage"`
	Sort     SortCmd     `cmd:"" help:"Sort references into canonical order"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// ParseCmd parses one or more references and prints canonical forms.
type ParseCmd struct {
	Refs     []string `arg:"" name:"ref" help:"Verse or passage references"`
	Describe bool     `help:"Print the debug form instead of the canonical form"`
}

// Run executes the parse command.
func (cmd *ParseCmd) Run() error {
	for _, arg := range cmd.Refs {
		out, err := renderRef(arg, cmd.Describe)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

// renderRef parses a reference string as a passage (single verses are
// passages with coinciding endpoints) and renders it canonically.
func renderRef(arg string, describe bool) (string, error) {
	p, err := ref.ParsePassage(arg)
	if err != nil {
		return "", err
	}
	logging.Debug("parsed reference", "input", arg, "canonical", p.Format())
	if describe {
		if p.Start == p.End {
			return p.Start.Describe(), nil
		}
		return p.Describe(), nil
	}
	return p.Format(), nil
}

// BooksCmd lists the books of the Bible.
type BooksCmd struct {
	Abbrs     bool   `help:"Include registered abbreviations for each book"`
	Testament string `help:"Restrict to one testament (OT or NT)"`
}

// Run executes the books command.
func (cmd *BooksCmd) Run() error {
	if cmd.Abbrs && cmd.Testament == "" {
		fmt.Println(ref.BookAbbreviations())
		return nil
	}
	for _, b := range ref.Books() {
		if cmd.Testament != "" && b.Testament() != ref.Testament(cmd.Testament) {
			continue
		}
		if cmd.Abbrs {
			fmt.Printf("%s:%s\n", b.Name(), strings.Join(b.Aliases(), ","))
		} else {
			fmt.Println(b.Name())
		}
	}
	return nil
}

// IncludesCmd tests whether a passage includes a verse.
type IncludesCmd struct {
	Passage string `arg:"" help:"Passage reference"`
	Verse   string `arg:"" help:"Verse reference"`
}

// Run executes the includes command.
func (cmd *IncludesCmd) Run() error {
	p, err := ref.ParsePassage(cmd.Passage)
	if err != nil {
		return err
	}
	v, err := ref.ParseVerse(cmd.Verse)
	if err != nil {
		return err
	}
	fmt.Println(p.Includes(v))
	return nil
}

// OverlapCmd tests whether two passages overlap.
type OverlapCmd struct {
	First  string `arg:"" help:"First passage reference"`
	Second string `arg:"" help:"Second passage reference"`
}

// Run executes the overlap command.
func (cmd *OverlapCmd) Run() error {
	a, err := ref.ParsePassage(cmd.First)
	if err != nil {
		return err
	}
	b, err := ref.ParsePassage(cmd.Second)
	if err != nil {
		return err
	}
	fmt.Println(a.Overlap(b))
	return nil
}

// LengthCmd counts the verses in a passage.
type LengthCmd struct {
	Passage string `arg:"" help:"Passage reference"`
}

// Run executes the length command.
func (cmd *LengthCmd) Run() error {
	p, err := ref.ParsePassage(cmd.Passage)
	if err != nil {
		return err
	}
	fmt.Println(p.Length())
	return nil
}

// SortCmd sorts references into canonical order.
type SortCmd struct {
	Refs []string `arg:"" name:"ref" help:"Verse or passage references"`
}

// Run executes the sort command.
func (cmd *SortCmd) Run() error {
	passages, err := parseAll(cmd.Refs)
	if err != nil {
		return err
	}
	slices.SortFunc(passages, ref.Passage.Compare)
	for _, p := range passages {
		fmt.Println(p.Format())
	}
	return nil
}

// parseAll parses every argument as a passage.
func parseAll(args []string) ([]ref.Passage, error) {
	passages := make([]ref.Passage, 0, len(args))
	for _, arg := range args {
		p, err := ref.ParsePassage(arg)
		if err != nil {
			return nil, err
		}
		passages = append(passages, p)
	}
	return passages, nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Printf("bibleref %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bibleref"),
		kong.Description("Bible reference parsing and comparison"),
		kong.UsageOnError(),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.FormatText)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
