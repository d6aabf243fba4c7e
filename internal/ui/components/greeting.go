package components

import "time"

// Greeting returns the time-of-day salutation shown in the header.
// The name comes from config and may be empty.
func Greeting(now time.Time, name string) string {
	hour := now.Hour()
	var salutation string
	switch {
	case hour < 12:
		salutation = "Good Morning"
	case hour < 16:
		salutation = "Good Day"
	case hour < 19:
		salutation = "Good Afternoon"
	default:
		salutation = "Good Evening"
	}
	if name == "" {
		return salutation
	}
	return salutation + ", " + name
}
