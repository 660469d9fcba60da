package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/tubedash/internal/adapters/driven/storage/notify"
	"github.com/custodia-labs/tubedash/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SavedReportStore = (*Store)(nil)

// Store persists saved reports in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
	hub  *notify.Hub
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.tubedash/data/reports.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tubedash", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "reports.db")

	// WAL lets the dashboard read while the CLI writes.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}
	s.hub = notify.NewHub(s.List)

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_saved_reports.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Add stores a new saved report and notifies the owner's subscribers.
func (s *Store) Add(ctx context.Context, report domain.SavedReport) error {
	params := report.Params
	if params == nil {
		params = map[string]string{}
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshalling params: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saved_reports (id, owner, kind, title, start_date, end_date, params, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.Owner, string(report.Kind), report.Title,
		report.Range.Start, report.Range.End, string(paramsJSON), report.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("inserting saved report: %w", err)
	}

	return s.hub.Publish(ctx, report.Owner)
}

// List returns the owner's saved reports, newest first.
func (s *Store) List(ctx context.Context, owner string) ([]domain.SavedReport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner, kind, title, start_date, end_date, params, created_at
		FROM saved_reports WHERE owner = ?
		ORDER BY created_at DESC, id DESC
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("querying saved reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.SavedReport{}
	for rows.Next() {
		r, err := scanSavedReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *r)
	}
	return reports, rows.Err()
}

// Delete removes a saved report owned by owner.
func (s *Store) Delete(ctx context.Context, owner, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM saved_reports WHERE owner = ? AND id = ?", owner, id)
	if err != nil {
		return fmt.Errorf("deleting saved report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting saved report: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}

	return s.hub.Publish(ctx, owner)
}

// Subscribe streams the owner's list on every change until ctx is done.
func (s *Store) Subscribe(ctx context.Context, owner string) (<-chan []domain.SavedReport, error) {
	return s.hub.Subscribe(ctx, owner)
}

func scanSavedReport(rows *sql.Rows) (*domain.SavedReport, error) {
	var (
		r          domain.SavedReport
		kind       string
		paramsJSON string
		createdAt  int64
	)
	if err := rows.Scan(&r.ID, &r.Owner, &kind, &r.Title,
		&r.Range.Start, &r.Range.End, &paramsJSON, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning saved report: %w", err)
	}

	r.Kind = domain.ReportKind(kind)
	r.CreatedAt = time.Unix(0, createdAt)
	if err := json.Unmarshal([]byte(paramsJSON), &r.Params); err != nil {
		return nil, fmt.Errorf("unmarshalling params: %w", err)
	}
	return &r, nil
}
