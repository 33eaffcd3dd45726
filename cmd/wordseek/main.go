package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wordseek"
	"github.com/fwojciec/wordseek/fs"
	"github.com/fwojciec/wordseek/goquery"
	"github.com/fwojciec/wordseek/htmltomarkdown"
	wordseekhttp "github.com/fwojciec/wordseek/http"
	wordseekslog "github.com/fwojciec/wordseek/slog"
	"github.com/fwojciec/wordseek/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// Standard input for commands reading "-". Defaults to os.Stdin.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. Built from flags when nil.
	Fetcher wordseek.PageFetcher
	Entries wordseek.EntryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wordseek"),
		kong.Description("Look up etymologies, pronunciations and definitions on Wiktionary."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"base_url":   wordseekhttp.DefaultBaseURL,
			"user_agent": wordseekhttp.DefaultUserAgent,
			"formats":    strings.Join(Formats, ","),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wordseek --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := wordseekslog.NewLogger(stderr, cli.LogLevel, cli.LogFormat)
	deps.Logger = logger

	// Wire lookup services
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = wordseekhttp.NewFetcher(
			wordseekhttp.WithBaseURL(cli.BaseURL),
			wordseekhttp.WithUserAgent(cli.UserAgent),
			wordseekhttp.WithTimeout(cli.Timeout),
		)
	}
	deps.Fetcher = wordseekslog.NewLoggingFetcher(fetcher, logger)
	deps.Extractor = wordseekslog.NewLoggingExtractor(goquery.NewExtractor(
		goquery.WithStrict(cli.Lookup.Strict || cli.Batch.Strict),
		goquery.WithLogger(logger),
	), logger)
	deps.Converter = htmltomarkdown.NewConverter(
		htmltomarkdown.WithDomain(strings.TrimSuffix(cli.BaseURL, "/") + "/wiki/"),
	)
	deps.Sections = goquery.LanguageSectionHTML
	deps.NewWriter = func(dir string) wordseek.EntryWriter {
		return fs.NewWriter(dir)
	}

	// Open the archive only for commands that use it
	needsArchive := cmd == "archive" ||
		(cmd == "lookup" && cli.Lookup.Archive) ||
		(cmd == "batch" && cli.Batch.Archive)
	if needsArchive {
		entries, err := m.openArchive(cli.DB, stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Entries = entries
	}

	return kongCtx.Run(deps)
}

// openArchive returns the archive service, opening the database at path
// (or m.DBPath) unless an EntryService was injected.
func (m *Main) openArchive(path string, stderr io.Writer) (wordseek.EntryService, error) {
	if m.Entries != nil {
		return m.Entries, nil
	}
	if path == "" {
		path = m.DBPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WORDSEEK_DB to use a different database path\n")
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}

	return sqlite.NewEntryService(m.DB), nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "wordseek.db"
	}
	return filepath.Join(home, ".wordseek", "wordseek.db")
}
