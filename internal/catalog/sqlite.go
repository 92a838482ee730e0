package catalog

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// SQLiteSource serves the lists from a private in-memory SQLite database that
// is built from the seed when the source is created and dropped on Close.
// Nothing is written to disk.
type SQLiteSource struct {
	db *sql.DB
	mu sync.RWMutex

	stmtItems  *sql.Stmt
	stmtLookup *sql.Stmt
}

// Ensure SQLiteSource implements Source.
var _ Source = (*SQLiteSource)(nil)

// NewSQLiteSource opens an in-memory database, creates the schema and loads
// the seed in a single transaction.
func NewSQLiteSource(seed Seed) (*SQLiteSource, error) {
	seed = seed.clone()
	if err := seed.normalize(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory catalog: %w", err)
	}
	// Every new connection to :memory: is a fresh empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	src := &SQLiteSource{db: db}

	if err := src.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if err := src.load(seed); err != nil {
		db.Close()
		return nil, fmt.Errorf("loading seed: %w", err)
	}
	if err := src.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}
	return src, nil
}

func (s *SQLiteSource) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}
	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}

func (s *SQLiteSource) load(seed Seed) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO items (section, position, name, description, poster_url, rating)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, sec := range Sections() {
		for pos, it := range seed.List(sec) {
			if _, err := stmt.Exec(int(sec), pos, it.Name, it.Description, it.PosterURL, it.Rating); err != nil {
				return fmt.Errorf("inserting %s %q: %w", sec, it.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}

func (s *SQLiteSource) prepareStatements() error {
	var err error

	s.stmtItems, err = s.db.Prepare(`
		SELECT name, description, poster_url, rating
		FROM items
		WHERE section = ?
		ORDER BY position ASC
	`)
	if err != nil {
		return fmt.Errorf("preparing Items: %w", err)
	}

	s.stmtLookup, err = s.db.Prepare(`
		SELECT name, description, poster_url, rating
		FROM items
		WHERE section = ? AND name = ?
	`)
	if err != nil {
		return fmt.Errorf("preparing Lookup: %w", err)
	}
	return nil
}

// Items implements Source. Query failures yield an empty list; the data is
// static and was validated on load, so they only happen after Close.
func (s *SQLiteSource) Items(sec Section) []Item {
	items, err := s.QueryItems(sec)
	if err != nil {
		return nil
	}
	return items
}

// QueryItems is Items with the query error exposed.
func (s *SQLiteSource) QueryItems(sec Section) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.stmtItems.Query(int(sec))
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", sec, err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		it := Item{Section: sec}
		if err := rows.Scan(&it.Name, &it.Description, &it.PosterURL, &it.Rating); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", sec, err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Lookup implements Source.
func (s *SQLiteSource) Lookup(sec Section, name string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it := Item{Section: sec}
	err := s.stmtLookup.QueryRow(int(sec), name).Scan(&it.Name, &it.Description, &it.PosterURL, &it.Rating)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, fmt.Errorf("%s %q: %w", sec, name, ErrNotFound)
	}
	if err != nil {
		return Item{}, fmt.Errorf("looking up %s %q: %w", sec, name, err)
	}
	return it, nil
}

// Close implements Source.
func (s *SQLiteSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []*sql.Stmt{s.stmtItems, s.stmtLookup} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}
