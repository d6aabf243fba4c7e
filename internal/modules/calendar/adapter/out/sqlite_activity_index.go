package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	calendarout "ptrack/internal/modules/calendar/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteActivityIndex reads the activity table the tracker module
// projects. It never writes; reindex and document saves own the data.
type SQLiteActivityIndex struct {
	db *sql.DB
}

func NewSQLiteActivityIndex(dbPath string) (calendarout.ActivityIndex, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &SQLiteActivityIndex{db: db}, nil
}

func (s *SQLiteActivityIndex) DaysWithActivity(ctx context.Context, from, to string) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT DISTINCT date FROM activity
WHERE date >= ? AND date <= ?;
`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query activity days: %w", err)
	}
	defer rows.Close()

	days := make(map[string]bool)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan activity day: %w", err)
		}
		days[date] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity days: %w", err)
	}
	return days, nil
}
