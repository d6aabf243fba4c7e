package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"ptrack/internal/modules/tracker/domain"
	trackerout "ptrack/internal/modules/tracker/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteActivityProjector flattens the document's sessions into a query
// index. The document stays the source of truth; the table is disposable
// and rebuilt wholesale on every save and by reindex.
type SQLiteActivityProjector struct {
	db *sql.DB
}

func NewSQLiteActivityProjector(dbPath string) (trackerout.ActivityProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteActivityProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteActivityProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS activity (
  session_id TEXT PRIMARY KEY,
  program_id TEXT NOT NULL,
  program_name TEXT NOT NULL,
  color TEXT,
  date TEXT NOT NULL,
  correct INTEGER NOT NULL,
  answered INTEGER NOT NULL,
  total INTEGER NOT NULL,
  completed INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS activity_date ON activity(date);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create activity table: %w", err)
	}
	return nil
}

func (s *SQLiteActivityProjector) Rebuild(ctx context.Context, doc domain.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM activity`); err != nil {
		return fmt.Errorf("reset activity: %w", err)
	}
	const stmt = `
INSERT INTO activity (session_id, program_id, program_name, color, date, correct, answered, total, completed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	for _, p := range doc.Programs {
		for _, sess := range p.Sessions {
			completed := 0
			if sess.Complete() {
				completed = 1
			}
			if _, err := tx.ExecContext(ctx, stmt,
				sess.ID, p.ID, p.Name, p.Color, sess.Date,
				sess.Correct, sess.Answered, sess.Total, completed,
			); err != nil {
				return fmt.Errorf("insert activity row: %w", err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}
	return nil
}
