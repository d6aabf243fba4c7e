package dto

type ProgramStatsOutput struct {
	ProgramID   string
	ProgramName string
	Color       string
	Sessions    int
	Completed   int
	Answered    int
	Correct     int
	Accuracy    int
}

type OverviewOutput struct {
	Programs       []ProgramStatsOutput
	TotalSessions  int
	TotalCompleted int
	TotalAnswered  int
	TotalCorrect   int
	Accuracy       int
	CurrentStreak  int
}
