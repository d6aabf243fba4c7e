package dto

import "time"

type StartInput struct {
	ProgramID string
}

type StartOutput struct {
	SessionID   string
	ProgramID   string
	ProgramName string
	StartedAt   time.Time
	Resumed     bool
	Correct     int
	Answered    int
	Total       int
}

type AnswerInput struct {
	Correct bool
}

type AnswerOutput struct {
	SessionID string
	Correct   int
	Answered  int
	Total     int
	Percent   int
	Completed bool
}

type SaveOutput struct {
	SessionID string
	Correct   int
	Answered  int
	Total     int
	Percent   int
	Completed bool
}

type CancelOutput struct {
	SessionID string
	ProgramID string
}

type CompleteOutput struct {
	SessionID string
	Correct   int
	Total     int
	Percent   int
}

type StatusOutput struct {
	SessionID   string
	ProgramID   string
	ProgramName string
	StartedAt   time.Time
	Correct     int
	Answered    int
	Total       int
	Percent     int
}
