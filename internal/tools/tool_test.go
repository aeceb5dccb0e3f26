package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

func TestNewRegistryRegistersBuiltins(t *testing.T) {
	registry := NewRegistry(true)

	assert.Equal(t,
		[]domain.ToolName{domain.ToolTrustExplainer, domain.ToolUXAudit},
		registry.Names())

	tool, err := registry.Get(domain.ToolUXAudit)
	require.NoError(t, err)
	assert.Equal(t, domain.ToolUXAudit, tool.Name())
}

func TestNewRegistryDisabled(t *testing.T) {
	registry := NewRegistry(false)

	assert.Empty(t, registry.Names())

	_, err := registry.Get(domain.ToolUXAudit)
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestGetUnknownTool(t *testing.T) {
	registry := NewRegistry(true)

	_, err := registry.Get("metrics_probe")
	require.ErrorIs(t, err, domain.ErrToolNotFound)
	assert.Contains(t, err.Error(), "metrics_probe")
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		name string
		key  string
		want string
	}{
		{name: "single word", key: "usability", want: "Usability"},
		{name: "snake case", key: "ease_of_use", want: "Ease Of Use"},
		{name: "already capitalised", key: "UX", want: "UX"},
		{name: "empty", key: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, displayName(tc.key))
		})
	}
}
