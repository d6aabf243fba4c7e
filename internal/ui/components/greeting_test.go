package components_test

import (
	"testing"
	"time"

	"ptrack/internal/ui/components"
)

func TestGreetingFollowsTimeOfDay(t *testing.T) {
	t.Parallel()
	cases := []struct {
		hour int
		want string
	}{
		{0, "Good Morning, Nonhle"},
		{11, "Good Morning, Nonhle"},
		{12, "Good Day, Nonhle"},
		{15, "Good Day, Nonhle"},
		{16, "Good Afternoon, Nonhle"},
		{18, "Good Afternoon, Nonhle"},
		{19, "Good Evening, Nonhle"},
		{23, "Good Evening, Nonhle"},
	}
	for _, tc := range cases {
		now := time.Date(2026, 3, 11, tc.hour, 30, 0, 0, time.UTC)
		if got := components.Greeting(now, "Nonhle"); got != tc.want {
			t.Fatalf("hour %d: got %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestGreetingWithoutName(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	if got := components.Greeting(now, ""); got != "Good Morning" {
		t.Fatalf("got %q", got)
	}
}
