package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"umdproc/internal/config"
	"umdproc/internal/dump"
)

// Store manages processed-dump persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

const timeLayout = "2006-01-02T15:04:05Z"

// Open initializes or connects to the processed-dump database under the
// configured log directory.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.LogDir, "umdproc.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record upserts the outcome of one processing pass, keyed by base path.
// A fresh run id is minted on every call.
func (s *Store) Record(ctx context.Context, report dump.Report) (*Record, error) {
	ctx = ensureContext(ctx)
	now := time.Now().UTC().Format(timeLayout)
	runID := uuid.NewString()

	var layerbreak sql.NullInt64
	if report.Layerbreak != nil {
		layerbreak = sql.NullInt64{Int64: *report.Layerbreak, Valid: true}
	}

	err := s.execWithRetry(ctx, `
INSERT INTO dumps (run_id, base_path, media, complete, missing, title, category, version,
                   layerbreak, size_bytes, volume_descriptor, artifact_count, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(base_path) DO UPDATE SET
    run_id = excluded.run_id,
    media = excluded.media,
    complete = excluded.complete,
    missing = excluded.missing,
    title = excluded.title,
    category = excluded.category,
    version = excluded.version,
    layerbreak = excluded.layerbreak,
    size_bytes = excluded.size_bytes,
    volume_descriptor = excluded.volume_descriptor,
    artifact_count = excluded.artifact_count,
    updated_at = excluded.updated_at`,
		runID, report.BasePath, string(report.Media), boolToInt(report.Complete),
		strings.Join(report.Missing, ";"), report.Title, string(report.Category),
		report.Version, layerbreak, report.SizeBytes, report.VolumeDescriptor,
		len(report.Artifacts), now, now)
	if err != nil {
		return nil, fmt.Errorf("record dump: %w", err)
	}
	return s.GetByBasePath(ctx, report.BasePath)
}

// Get returns a record by row id.
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), selectColumns+" WHERE id = ?", id)
	return scanRecord(row)
}

// GetByBasePath returns the record for a dump base path, or nil when none
// exists.
func (s *Store) GetByBasePath(ctx context.Context, basePath string) (*Record, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), selectColumns+" WHERE base_path = ?", basePath)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return record, err
}

// List returns all records, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), selectColumns+" ORDER BY updated_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list dumps: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// Clear removes every record.
func (s *Store) Clear(ctx context.Context) error {
	return s.execWithRetry(ensureContext(ctx), "DELETE FROM dumps")
}

const selectColumns = `
SELECT id, run_id, base_path, media, complete, missing, title, category, version,
       layerbreak, size_bytes, volume_descriptor, artifact_count, created_at, updated_at
FROM dumps`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		record             Record
		complete           int
		createdAt, updated string
	)
	err := row.Scan(&record.ID, &record.RunID, &record.BasePath, &record.Media,
		&complete, &record.Missing, &record.Title, &record.Category, &record.Version,
		&record.Layerbreak, &record.SizeBytes, &record.VolumeDescriptor,
		&record.ArtifactCount, &createdAt, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan dump record: %w", err)
	}
	record.Complete = complete != 0
	if record.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if record.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &record, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		_, lastErr = s.db.ExecContext(ctx, query, args...)
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
