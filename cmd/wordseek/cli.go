package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wordseek"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   wordseek.PageFetcher
	Extractor wordseek.Extractor
	Converter wordseek.Converter
	Entries   wordseek.EntryService

	// Sections returns the HTML of the language section of a page.
	Sections func(html, language string) (string, error)

	// NewWriter returns the exporter for a --save directory.
	NewWriter func(dir string) wordseek.EntryWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel  string        `name:"log-level" default:"warn" enum:"debug,info,warn,error" env:"WORDSEEK_LOG_LEVEL" help:"Log level (${enum})"`
	LogFormat string        `name:"log-format" default:"text" enum:"text,json" env:"WORDSEEK_LOG_FORMAT" help:"Log format (${enum})"`
	BaseURL   string        `name:"base-url" default:"${base_url}" env:"WORDSEEK_BASE_URL" help:"Wiktionary site to query"`
	UserAgent string        `name:"user-agent" default:"${user_agent}" env:"WORDSEEK_USER_AGENT" help:"User-Agent sent to Wiktionary"`
	Timeout   time.Duration `default:"10s" env:"WORDSEEK_TIMEOUT" help:"HTTP request timeout"`
	DB        string        `name:"db" env:"WORDSEEK_DB" help:"Archive database path (default ~/.wordseek/wordseek.db)"`

	Lookup  LookupCmd  `cmd:"" default:"withargs" help:"Look up a word (default command)"`
	Batch   BatchCmd   `cmd:"" help:"Look up every word of a file"`
	Section SectionCmd `cmd:"" help:"Print the language section of a page as Markdown"`
	Render  RenderCmd  `cmd:"" help:"Render an XML export in another format"`
	Archive ArchiveCmd `cmd:"" help:"Read the local archive"`
	Serve   ServeCmd   `cmd:"" help:"Serve lookups over HTTP"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Word     string   `arg:"" help:"Word to look up"`
	Language []string `arg:"" optional:"" help:"Language, e.g. middle english (default English)"`
	Format   string   `short:"f" default:"text" enum:"${formats}" help:"Output format (${enum})"`
	Strict   bool     `help:"Fail when the word has no etymology in the language"`
	Save     string   `type:"path" help:"Export the entry as Markdown under this directory"`
	Archive  bool     `help:"Store the entry in the local archive"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string   `arg:"" help:"File with one word per line, - for standard input"`
	Language    []string `arg:"" optional:"" help:"Language, e.g. middle english (default English)"`
	Format      string   `short:"f" default:"text" enum:"${formats}" help:"Output format (${enum})"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent lookup limit"`
	Strict      bool     `help:"Fail words that have no etymology in the language"`
	Save        string   `type:"path" help:"Export entries as Markdown under this directory"`
	Archive     bool     `help:"Store entries in the local archive"`
}

// SectionCmd is the "section" subcommand.
type SectionCmd struct {
	Word     string   `arg:"" help:"Word to look up"`
	Language []string `arg:"" optional:"" help:"Language, e.g. middle english (default English)"`
	Raw      bool     `help:"Print the section HTML instead of Markdown"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	File   string `arg:"" help:"XML export written with --format xml, - for standard input"`
	Format string `short:"f" default:"text" enum:"${formats}" help:"Output format (${enum})"`
}

// ArchiveCmd groups the archive subcommands.
type ArchiveCmd struct {
	List   ArchiveListCmd   `cmd:"" help:"List archived entries"`
	Show   ArchiveShowCmd   `cmd:"" help:"Show an archived entry"`
	Delete ArchiveDeleteCmd `cmd:"" help:"Delete an archived entry"`
}

// ArchiveListCmd is the "archive list" subcommand.
type ArchiveListCmd struct {
	Language []string `help:"Only list entries of this language"`
	Limit    int      `default:"50" help:"Maximum number of entries"`
	Offset   int      `help:"Number of entries to skip"`
}

// ArchiveShowCmd is the "archive show" subcommand.
type ArchiveShowCmd struct {
	Word     string   `arg:"" help:"Archived word"`
	Language []string `arg:"" optional:"" help:"Language (default English)"`
	Format   string   `short:"f" default:"text" enum:"${formats}" help:"Output format (${enum})"`
}

// ArchiveDeleteCmd is the "archive delete" subcommand.
type ArchiveDeleteCmd struct {
	Word     string   `arg:"" help:"Archived word"`
	Language []string `arg:"" optional:"" help:"Language (default English)"`
	Force    bool     `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"WORDSEEK_ADDR" help:"Listen address"`
}
