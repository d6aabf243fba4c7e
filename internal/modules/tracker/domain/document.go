package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	SchemaVersion = 1

	// DateLayout is the calendar-day format sessions are keyed by.
	DateLayout = "2006-01-02"
)

// Session is one day's practice attempt against a Program. A nil
// CompletedAt means the session is still open.
type Session struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	Correct     int        `json:"correct"`
	Answered    int        `json:"answered"`
	Total       int        `json:"total"`
}

// Program is a named tracked subject with a fixed question-count
// denominator. Sessions are kept in creation order.
type Program struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TotalQuestions int       `json:"totalQuestions"`
	Color          string    `json:"color"`
	CreatedAt      time.Time `json:"createdAt"`
	Sessions       []Session `json:"sessions"`
}

// Document is the complete persisted state: all programs and their
// sessions, stored and replaced as one unit.
type Document struct {
	Programs []Program `json:"programs"`
}

func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

func (s Session) Complete() bool {
	return s.CompletedAt != nil
}

func (p Program) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("program id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("program name is required")
	}
	if p.TotalQuestions < 1 {
		return fmt.Errorf("total questions must be positive")
	}
	return nil
}

// Program returns a pointer into the document's program slice, so callers
// can mutate the document in place before handing it back to the store.
func (d *Document) Program(id string) (*Program, bool) {
	for i := range d.Programs {
		if d.Programs[i].ID == id {
			return &d.Programs[i], true
		}
	}
	return nil, false
}

// RemovePrograms deletes every program whose id is in ids and reports how
// many were removed. Unknown ids are ignored.
func (d *Document) RemovePrograms(ids []string) int {
	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}
	kept := d.Programs[:0]
	removed := 0
	for _, p := range d.Programs {
		if _, ok := selected[p.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	d.Programs = kept
	return removed
}
