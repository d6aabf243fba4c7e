package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"ptrack/internal/modules/stats/domain"
	statsout "ptrack/internal/modules/stats/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteStatsIndex struct {
	db *sql.DB
}

func NewSQLiteStatsIndex(dbPath string) (statsout.StatsIndex, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &SQLiteStatsIndex{db: db}, nil
}

func (s *SQLiteStatsIndex) ProgramTotals(ctx context.Context) ([]domain.ProgramTotals, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT program_id, program_name, color,
       COUNT(*) AS sessions,
       SUM(completed) AS completed,
       SUM(answered) AS answered,
       SUM(correct) AS correct
FROM activity
GROUP BY program_id, program_name, color
ORDER BY program_name ASC, program_id ASC;
`)
	if err != nil {
		return nil, fmt.Errorf("query program totals: %w", err)
	}
	defer rows.Close()

	var out []domain.ProgramTotals
	for rows.Next() {
		var t domain.ProgramTotals
		if err := rows.Scan(&t.ProgramID, &t.ProgramName, &t.Color, &t.Sessions, &t.Completed, &t.Answered, &t.Correct); err != nil {
			return nil, fmt.Errorf("scan program totals: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate program totals: %w", err)
	}
	return out, nil
}

func (s *SQLiteStatsIndex) ActiveDates(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT date FROM activity ORDER BY date ASC;`)
	if err != nil {
		return nil, fmt.Errorf("query active dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan active date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active dates: %w", err)
	}
	return dates, nil
}
