package patterns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

var testTime = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func newTestRegistry() *Registry {
	return NewRegistry(fakeClock{now: testTime}, nil)
}

func TestNewRegistrySeedsDefaults(t *testing.T) {
	registry := newTestRegistry()

	names := make([]domain.PatternName, 0, 5)
	for _, entry := range registry.List() {
		names = append(names, entry.Name)
	}

	assert.Equal(t, []domain.PatternName{
		PatternDesignEnhancement,
		PatternUXAudit,
		PatternTrustBuilding,
		PatternComprehensiveEvaluation,
		PatternBasicEvaluation,
	}, names)
}

func TestRegistryGet(t *testing.T) {
	registry := newTestRegistry()

	entry, err := registry.Get(PatternUXAudit)
	require.NoError(t, err)
	assert.Equal(t, domain.PatternTypeToolEnhancement, entry.Type)
	assert.Equal(t, domain.AgentVPDesign, entry.Agent)
	assert.Equal(t, []domain.ToolName{domain.ToolUXAudit}, entry.Tools)
	assert.Equal(t, 0.85, entry.ConfidenceThreshold)

	_, err = registry.Get("missing_pattern")
	require.ErrorIs(t, err, domain.ErrPatternNotFound)
}

func TestRegisterRejectsInvalidEntries(t *testing.T) {
	registry := newTestRegistry()

	err := registry.Register(domain.PatternEntry{Name: "broken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent is required")
}

func TestRegisterUpdateKeepsCounters(t *testing.T) {
	registry := newTestRegistry()
	registry.RecordUsage(PatternDesignEnhancement, 0.9, true)

	entry, err := registry.Get(PatternDesignEnhancement)
	require.NoError(t, err)
	entry.Enhancement = "updated enhancement"
	require.NoError(t, registry.Register(entry))

	stats := registry.StatsFor(PatternDesignEnhancement)
	assert.Equal(t, 1, stats.UsageCount)

	updated, err := registry.Get(PatternDesignEnhancement)
	require.NoError(t, err)
	assert.Equal(t, "updated enhancement", updated.Enhancement)
}

func TestRecordUsageThreadsCounters(t *testing.T) {
	registry := newTestRegistry()

	applications := []struct {
		confidence float64
		success    bool
	}{
		{confidence: 0.9, success: true},
		{confidence: 0.7, success: false},
		{confidence: 0.8, success: true},
	}
	for _, app := range applications {
		registry.RecordUsage(PatternUXAudit, app.confidence, app.success)
	}

	stats := registry.StatsFor(PatternUXAudit)
	assert.Equal(t, 3, stats.UsageCount)
	assert.Equal(t, 2, stats.SuccessCount)
	assert.InDelta(t, 2.0/3.0, stats.SuccessRate(), 0.0001)
	assert.InDelta(t, 0.8, stats.AvgConfidence, 0.0001)
	assert.Equal(t, testTime, stats.LastUsed)
}

func TestRecordUsageUnknownNameCreatesCounters(t *testing.T) {
	registry := newTestRegistry()
	registry.RecordUsage("imported_later", 0.9, true)

	stats := registry.StatsFor("imported_later")
	assert.Equal(t, 1, stats.UsageCount)
}

func TestRankingsOrder(t *testing.T) {
	registry := newTestRegistry()

	// trust_building: perfect rate, two uses. design_enhancement: one of
	// three. ux_audit: perfect rate, one use.
	registry.RecordUsage(PatternTrustBuilding, 0.9, true)
	registry.RecordUsage(PatternTrustBuilding, 0.85, true)
	registry.RecordUsage(PatternDesignEnhancement, 0.8, true)
	registry.RecordUsage(PatternDesignEnhancement, 0.5, false)
	registry.RecordUsage(PatternDesignEnhancement, 0.6, false)
	registry.RecordUsage(PatternUXAudit, 0.9, true)

	rankings := registry.TopPatterns(3)
	require.Len(t, rankings, 3)
	assert.Equal(t, PatternTrustBuilding, rankings[0].Name)
	assert.Equal(t, PatternUXAudit, rankings[1].Name)
	assert.Equal(t, PatternDesignEnhancement, rankings[2].Name)
}

func TestSeedStatsAndSnapshot(t *testing.T) {
	registry := newTestRegistry()
	registry.SeedStats(map[domain.PatternName]domain.PatternStats{
		PatternUXAudit: {UsageCount: 4, SuccessCount: 3, AvgConfidence: 0.82},
	})
	registry.RecordUsage(PatternUXAudit, 0.9, true)

	stats := registry.StatsFor(PatternUXAudit)
	assert.Equal(t, 5, stats.UsageCount)
	assert.Equal(t, 4, stats.SuccessCount)

	snapshot := registry.StatsSnapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, 5, snapshot[PatternUXAudit].UsageCount)
}

func TestListByCategory(t *testing.T) {
	registry := newTestRegistry()

	evaluation := registry.ListByCategory("evaluation")
	require.Len(t, evaluation, 2)
	assert.Equal(t, PatternComprehensiveEvaluation, evaluation[0].Name)
	assert.Equal(t, PatternBasicEvaluation, evaluation[1].Name)

	assert.Empty(t, registry.ListByCategory("unknown"))
}
