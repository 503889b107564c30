package patterns

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Pattern selects the starting scene of a simulation.
type Pattern int

const (
	Random Pattern = iota + 1
	Gliders
	Oscillators
	PulsarScene
)

var patternNames = map[Pattern]string{
	Random:      "random",
	Gliders:     "gliders",
	Oscillators: "oscillators",
	PulsarScene: "pulsar",
}

// Patterns lists every scene in menu order.
func Patterns() []Pattern {
	return []Pattern{Random, Gliders, Oscillators, PulsarScene}
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePattern accepts a scene name (case-insensitive) or its menu number 1-4.
func ParsePattern(s string) (Pattern, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range Patterns() {
		if s == p.String() || s == string(rune('0'+int(p))) {
			return p, nil
		}
	}
	return 0, errors.Errorf("[ParsePattern] unknown pattern %q", s)
}

// Build creates a width x height grid seeded with the given scene.
func Build(p Pattern, width, height int) *model.Grid {
	if p == Random {
		return model.RandomGrid(width, height)
	}

	g := model.NewGrid(width, height)
	switch p {
	case Gliders:
		Glider(g, 5, 5)
		Glider(g, 15, 10)
		Glider(g, 25, 5)
	case Oscillators:
		Blinker(g, 10, 10)
		Toad(g, 20, 10)
		Beacon(g, 30, 10)
	case PulsarScene:
		Pulsar(g, 30, 10)
	}
	return g
}
