package palette

import "math/rand"

// Default is the accent palette programs are colored from at creation.
var Default = []string{
	"#6366f1", "#22c55e", "#f97316",
	"#ec4899", "#14b8a6", "#eab308",
}

// Picker chooses a display accent for a new program. Injectable so tests
// can assert deterministic colors.
type Picker interface {
	Pick() string
}

type RandomPicker struct {
	Colors []string
}

func (p RandomPicker) Pick() string {
	colors := p.Colors
	if len(colors) == 0 {
		colors = Default
	}
	return colors[rand.Intn(len(colors))]
}
