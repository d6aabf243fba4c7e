package domain

import "math"

// Label is the call-to-action shown on a program card.
type Label string

const (
	LabelContinue Label = "Continue"
	LabelDoAgain  Label = "Do again"
	LabelStart    Label = "Start"
)

// OpenSession returns today's uncompleted session, if any. Sessions are
// scanned in creation order; the first match wins.
func OpenSession(p *Program, day string) *Session {
	for i := range p.Sessions {
		s := &p.Sessions[i]
		if s.Date == day && !s.Complete() {
			return s
		}
	}
	return nil
}

// LatestSessionOn returns the most recently created session on the given
// day, completed or not. Used for status display even after the open
// session is gone.
func LatestSessionOn(p *Program, day string) *Session {
	for i := len(p.Sessions) - 1; i >= 0; i-- {
		if p.Sessions[i].Date == day {
			return &p.Sessions[i]
		}
	}
	return nil
}

// DisplaySession picks the session whose numbers a program card shows:
// an in-progress session's live counts win over today's finished session.
func DisplaySession(p *Program, day string) *Session {
	if s := OpenSession(p, day); s != nil {
		return s
	}
	return LatestSessionOn(p, day)
}

// ButtonLabel derives the card action in precedence order: an open
// session means Continue, a completed session today means Do again,
// otherwise Start.
func ButtonLabel(p *Program, day string) Label {
	if OpenSession(p, day) != nil {
		return LabelContinue
	}
	if latest := LatestSessionOn(p, day); latest != nil && latest.Complete() {
		return LabelDoAgain
	}
	return LabelStart
}

// Percent rounds correct/total to a whole percentage, with 0 for an
// empty denominator.
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Percent uses the session's own question-count snapshot, so a past
// session's number never drifts.
func (s Session) Percent() int {
	return Percent(s.Correct, s.Total)
}

// Card is the derived display state of one program for a given day,
// recomputed on every render from the document.
type Card struct {
	Program Program
	Correct int
	Percent int
	Label   Label
	Done    bool
	Open    bool
}

// BuildCard derives a program's card for the given day.
func BuildCard(p Program, day string) Card {
	card := Card{Program: p, Label: ButtonLabel(&p, day)}
	if s := DisplaySession(&p, day); s != nil {
		card.Correct = s.Correct
		card.Percent = s.Percent()
	}
	if latest := LatestSessionOn(&p, day); latest != nil && latest.Complete() {
		card.Done = true
	}
	card.Open = OpenSession(&p, day) != nil
	return card
}

// Cards derives display state for every program in document order.
func Cards(d Document, day string) []Card {
	out := make([]Card, 0, len(d.Programs))
	for _, p := range d.Programs {
		out = append(out, BuildCard(p, day))
	}
	return out
}

// Entry is a (program, session) pair surfaced by calendar queries.
type Entry struct {
	Program Program
	Session Session
}

// HasActivity reports whether any program has any session, open or
// completed, on the given day.
func HasActivity(d Document, day string) bool {
	for i := range d.Programs {
		for j := range d.Programs[i].Sessions {
			if d.Programs[i].Sessions[j].Date == day {
				return true
			}
		}
	}
	return false
}

// SessionsOnDate collects every (program, session) pair on the given day
// in program-then-session order.
func SessionsOnDate(d Document, day string) []Entry {
	var out []Entry
	for _, p := range d.Programs {
		for _, s := range p.Sessions {
			if s.Date == day {
				out = append(out, Entry{Program: p, Session: s})
			}
		}
	}
	return out
}
