package ui

import (
	"strings"

	"conway-ca/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Lines formats a snapshot as "Label: value" rows, one group per line.
func Lines(snap core.ParameterSnapshot) []string {
	lines := make([]string, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		parts := make([]string, 0, len(g.Params))
		for _, p := range g.Params {
			parts = append(parts, p.Label+": "+p.Value)
		}
		lines = append(lines, strings.Join(parts, "  "))
	}
	return lines
}
