package dto

type DayOutput struct {
	Date     string
	Number   int
	Label    string
	Today    bool
	Selected bool
	HasData  bool
}

type WeekInput struct {
	Selected string
}

type MonthInput struct {
	Year     int
	Month    int
	Selected string
}

type MonthOutput struct {
	Year  int
	Month int
	Label string
	Days  []DayOutput
}

// DaySessionOutput is one logged session on the selected day, in
// program-then-session order.
type DaySessionOutput struct {
	ProgramID   string
	ProgramName string
	Color       string
	SessionID   string
	Correct     int
	Answered    int
	Total       int
	Percent     int
	Completed   bool
}
