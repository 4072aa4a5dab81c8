package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store manages journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Run is one recorded batch run.
type Run struct {
	ID          string
	StartedAt   time.Time
	FinishedAt  time.Time
	OrderPath   string
	OutputDir   string
	Succeeded   int
	Failed      int
	Unsupported int
}

// Document is one per-document outcome within a run.
type Document struct {
	RunID        string
	DocumentPath string
	Outcome      string
	Detail       string
	OutputPath   string
	RecordedAt   time.Time
}

// Open initializes or connects to the journal database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
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

	store := &Store{db: db, path: path}
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

// BeginRun inserts a new run and returns its identifier.
func (s *Store) BeginRun(ctx context.Context, orderPath, outputDir string) (string, error) {
	runID := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, started_at, order_path, output_dir) VALUES (?, ?, ?, ?)`,
		runID, now, orderPath, outputDir,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return runID, nil
}

// RecordDocument appends one document outcome to a run.
func (s *Store) RecordDocument(ctx context.Context, doc Document) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (run_id, document_path, outcome, detail, output_path, recorded_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		doc.RunID, doc.DocumentPath, doc.Outcome, nullableString(doc.Detail), nullableString(doc.OutputPath), now,
	)
	if err != nil {
		return fmt.Errorf("insert document outcome: %w", err)
	}
	return nil
}

// FinishRun stamps the run's completion time and final counts.
func (s *Store) FinishRun(ctx context.Context, runID string, succeeded, failed, unsupported int) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, succeeded = ?, failed = ?, unsupported = ? WHERE run_id = ?`,
		now, succeeded, failed, unsupported, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finish run: unknown run %s", runID)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first. A limit <= 0 uses 20.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, started_at, finished_at, order_path, output_dir, succeeded, failed, unsupported
         FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started string
		var finished sql.NullString
		if err := rows.Scan(&run.ID, &started, &finished, &run.OrderPath, &run.OutputDir,
			&run.Succeeded, &run.Failed, &run.Unsupported); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt = parseTimestamp(started)
		if finished.Valid {
			run.FinishedAt = parseTimestamp(finished.String)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunDocuments returns the per-document outcomes of a run, in recorded order.
func (s *Store) RunDocuments(ctx context.Context, runID string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, document_path, outcome, detail, output_path, recorded_at
         FROM documents WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		var detail, outputPath sql.NullString
		var recorded string
		if err := rows.Scan(&doc.RunID, &doc.DocumentPath, &doc.Outcome, &detail, &outputPath, &recorded); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc.Detail = detail.String
		doc.OutputPath = outputPath.String
		doc.RecordedAt = parseTimestamp(recorded)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimestamp(value string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return ts
}
