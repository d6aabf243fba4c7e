package dto

import "time"

type CreateProgramInput struct {
	Name           string
	TotalQuestions int
}

type ProgramOutput struct {
	ID             string
	Name           string
	TotalQuestions int
	Color          string
	CreatedAt      time.Time
}

// CardOutput is one program's derived display state for today.
type CardOutput struct {
	ID             string
	Name           string
	TotalQuestions int
	Color          string
	Correct        int
	Percent        int
	Label          string
	Done           bool
	Open           bool
}

type SessionOutput struct {
	ID          string
	Date        string
	StartedAt   time.Time
	CompletedAt *time.Time
	Correct     int
	Answered    int
	Total       int
	Percent     int
}

type ProgramDetailOutput struct {
	ID             string
	Name           string
	TotalQuestions int
	Color          string
	CreatedAt      time.Time
	Sessions       []SessionOutput
}

type DeleteProgramsInput struct {
	IDs []string
}

type DeleteProgramsOutput struct {
	Removed int
}
