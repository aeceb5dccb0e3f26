package cmd

import (
	"fmt"
	"strings"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

// resolveAgentName validates a CLI agent argument against the enabled
// registry, naming the valid choices on a miss.
func resolveAgentName(a *app, raw string) (domain.AgentName, error) {
	name := domain.AgentName(strings.ToLower(strings.TrimSpace(raw)))

	valid := a.service.AgentNames()
	for _, candidate := range valid {
		if candidate == name {
			return name, nil
		}
	}

	names := make([]string, 0, len(valid))
	for _, candidate := range valid {
		names = append(names, string(candidate))
	}

	return "", fmt.Errorf("unknown agent %q (valid agents: %s): %w",
		raw, strings.Join(names, ", "), domain.ErrAgentNotFound)
}
