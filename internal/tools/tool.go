package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

// Tool is a focused analysis step an agent can run to augment its report.
type Tool interface {
	Name() domain.ToolName
	Description() string
	Run(ctx context.Context, input string) (domain.ToolResult, error)
}

// Registry holds the available tools keyed by name.
type Registry struct {
	tools map[domain.ToolName]Tool
}

// NewRegistry returns a registry populated with the built-in tools. When
// enabled is false the registry stays empty and every lookup misses.
func NewRegistry(enabled bool) *Registry {
	r := &Registry{tools: make(map[domain.ToolName]Tool)}
	if enabled {
		r.Register(UXAudit{})
		r.Register(TrustExplainer{})
	}

	return r
}

// Register adds a tool, replacing any previous registration under the same
// name.
func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get returns the named tool or an error wrapping domain.ErrToolNotFound.
func (r *Registry) Get(name domain.ToolName) (Tool, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("tool %q: %w", name, domain.ErrToolNotFound)
	}

	return tool, nil
}

// Names lists the registered tool names in lexical order.
func (r *Registry) Names() []domain.ToolName {
	names := make([]domain.ToolName, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// displayName turns a snake_case key into a report heading label.
func displayName(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}
