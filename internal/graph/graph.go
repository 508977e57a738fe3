// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph is the host-editor boundary: page creation, reference
// insertion, block appends, and user notification. The concrete Graph
// writes a local note-graph directory (pages/ and journals/ markdown
// files) and keeps a SQLite index of generated pages keyed by citekey
// for fast existence checks.
package graph

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/citepage/internal/render"
	"github.com/pdiddy/citepage/pkg/types"
)

// Severity classifies a user notification.
type Severity string

const (
	Info  Severity = "info"
	Error Severity = "error"
)

// Host abstracts the document database and editor operations the
// renderer hands its output to.
type Host interface {
	// PageExists reports whether a page with the given citekey property
	// already exists, and returns its title when it does.
	PageExists(ctx context.Context, citekey string) (bool, string, error)

	// CreatePage creates a page with the rendered title and ordered
	// property map.
	CreatePage(ctx context.Context, title string, props render.Properties) error

	// InsertAt inserts text at the current edit position (for Graph:
	// the end of today's journal page).
	InsertAt(ctx context.Context, text string) error

	// AppendBlock appends a block of text to the end of the named page.
	AppendBlock(ctx context.Context, page, text string) error

	// Notify shows the user a message of the given severity.
	Notify(severity Severity, msg string)
}

const (
	pagesDir    = "pages"
	journalsDir = "journals"
	indexFile   = "pages.db"
)

// Graph is a filesystem-backed Host. Pages land in <dir>/pages/ as
// markdown files with a key:: value property block; journal appends go
// to <dir>/journals/YYYY_MM_DD.md.
type Graph struct {
	db     *sql.DB
	dir    string
	out    io.Writer
	errOut io.Writer

	// now is swapped in tests to pin the journal date.
	now func() time.Time
}

// Open opens or creates the note graph at cfg.Dir, including its SQLite
// page index.
func Open(cfg types.GraphConfig, out, errOut io.Writer) (*Graph, error) {
	for _, d := range []string{pagesDir, journalsDir} {
		if err := os.MkdirAll(filepath.Join(cfg.Dir, d), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s directory: %w", d, err)
		}
	}

	dbPath := filepath.Join(cfg.Dir, indexFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening page index: %w", err)
	}

	g := &Graph{db: db, dir: cfg.Dir, out: out, errOut: errOut, now: time.Now}
	if err := g.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating page index schema: %w", err)
	}
	return g, nil
}

// Close releases the page index connection.
func (g *Graph) Close() error {
	return g.db.Close()
}

func (g *Graph) createSchema() error {
	_, err := g.db.Exec(`CREATE TABLE IF NOT EXISTS pages (
		citekey TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		file TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// PageExists implements Host using the SQLite index.
func (g *Graph) PageExists(ctx context.Context, citekey string) (bool, string, error) {
	if citekey == "" {
		return false, "", nil
	}
	var title string
	err := g.db.QueryRowContext(ctx,
		`SELECT title FROM pages WHERE citekey = ?`, citekey).Scan(&title)
	if err == sql.ErrNoRows {
		return false, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("querying page index: %w", err)
	}
	return true, title, nil
}

// CreatePage writes the page file and registers it in the index. The
// page is indexed under its citekey property when the rendered
// properties carry one; pages without it are still created but cannot be
// found by PageExists, matching the host editor's behavior.
func (g *Graph) CreatePage(ctx context.Context, title string, props render.Properties) error {
	file := pageFileName(title)
	path := filepath.Join(g.dir, pagesDir, file)

	var b strings.Builder
	for _, p := range props {
		fmt.Fprintf(&b, "%s:: %s\n", p.Key, p.Value)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing page %s: %w", file, err)
	}

	if citekey, ok := props.Get("citekey"); ok && citekey != "" && citekey != "NA" {
		_, err := g.db.ExecContext(ctx,
			`INSERT INTO pages (citekey, title, file, created_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(citekey) DO UPDATE SET title = excluded.title, file = excluded.file`,
			citekey, title, file, g.now().UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("indexing page %s: %w", file, err)
		}
	}
	return nil
}

// InsertAt appends text to today's journal page.
func (g *Graph) InsertAt(ctx context.Context, text string) error {
	return g.AppendBlock(ctx, g.journalPage(), text)
}

// InsertRef inserts a [[title]] reference at the edit position.
func (g *Graph) InsertRef(ctx context.Context, title string) error {
	return g.InsertAt(ctx, fmt.Sprintf("[[%s]]", title))
}

// AppendBlock appends one block line to the named journal page, creating
// the page if needed.
func (g *Graph) AppendBlock(_ context.Context, page, text string) error {
	path := filepath.Join(g.dir, journalsDir, page+".md")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal %s: %w", page, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "- %s\n", text); err != nil {
		return fmt.Errorf("appending to journal %s: %w", page, err)
	}
	return nil
}

// Notify implements Host by writing to the configured streams.
func (g *Graph) Notify(severity Severity, msg string) {
	w := g.out
	if severity == Error {
		w = g.errOut
	}
	fmt.Fprintln(w, msg)
}

// Rebuild rescans pages/ and refills the index from each page's citekey
// property. Used after files are moved or edited outside citepage.
func (g *Graph) Rebuild(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(filepath.Join(g.dir, pagesDir))
	if err != nil {
		return 0, fmt.Errorf("reading pages directory: %w", err)
	}

	if _, err := g.db.ExecContext(ctx, `DELETE FROM pages`); err != nil {
		return 0, fmt.Errorf("clearing page index: %w", err)
	}

	indexed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(g.dir, pagesDir, e.Name()))
		if err != nil {
			return indexed, fmt.Errorf("reading page %s: %w", e.Name(), err)
		}
		citekey := pageProperty(string(data), "citekey")
		if citekey == "" || citekey == "NA" {
			continue
		}
		title := strings.TrimSuffix(e.Name(), ".md")
		_, err = g.db.ExecContext(ctx,
			`INSERT INTO pages (citekey, title, file, created_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(citekey) DO UPDATE SET title = excluded.title, file = excluded.file`,
			citekey, title, e.Name(), g.now().UTC().Format(time.RFC3339))
		if err != nil {
			return indexed, fmt.Errorf("indexing page %s: %w", e.Name(), err)
		}
		indexed++
	}
	return indexed, nil
}

// journalPage returns today's journal page name (e.g. "2026_09_01").
func (g *Graph) journalPage() string {
	return g.now().Format("2006_01_02")
}

// pageProperty extracts a key:: value property from a page's property
// block (the leading run of key:: value lines).
func pageProperty(content, key string) string {
	for _, line := range strings.Split(content, "\n") {
		k, v, ok := strings.Cut(line, "::")
		if !ok {
			break
		}
		if strings.TrimSpace(k) == key {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// pageFileName maps a page title to a safe markdown file name. Slashes
// are replaced by the title renderer already; the remaining characters
// the common filesystems reject are percent-free substitutions kept
// readable.
func pageFileName(title string) string {
	r := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "'",
		"<", "(",
		">", ")",
		"|", "_",
	)
	name := strings.TrimSpace(r.Replace(title))
	if name == "" {
		name = "untitled"
	}
	return name + ".md"
}
