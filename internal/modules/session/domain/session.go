package domain

import "time"

const SchemaVersion = 1

// ActiveSession is the persisted pointer to the one session currently
// being answered. It survives between CLI invocations the way an open
// drawer survives between clicks.
type ActiveSession struct {
	SessionID   string    `json:"session_id"`
	ProgramID   string    `json:"program_id"`
	ProgramName string    `json:"program_name"`
	StartedAt   time.Time `json:"started_at"`
}
