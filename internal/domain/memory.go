package domain

import (
	"sort"
	"strings"
	"time"
)

// Memory is the context store's persistent state: the append-only interaction
// log, shared state, and per-pattern usage counters. It round-trips through a
// single JSON document on export/import.
type Memory struct {
	SessionID     SessionID
	Interactions  []InteractionRecord
	SharedState   SharedState
	PatternMemory map[PatternName]PatternStats
}

func NewMemory(sessionID SessionID) Memory {
	return Memory{
		SessionID:     sessionID,
		SharedState:   make(SharedState),
		PatternMemory: make(map[PatternName]PatternStats),
	}
}

// Append adds a record to the interaction log.
func (m *Memory) Append(record InteractionRecord) {
	m.Interactions = append(m.Interactions, record)
}

// Absorb merges an imported memory into m: interactions are appended, shared
// state and pattern counters are merged last-write-wins. The session id of m
// is kept.
func (m *Memory) Absorb(other Memory) {
	m.Interactions = append(m.Interactions, other.Interactions...)

	if m.SharedState == nil {
		m.SharedState = make(SharedState, len(other.SharedState))
	}
	m.SharedState.Merge(other.SharedState)

	if m.PatternMemory == nil {
		m.PatternMemory = make(map[PatternName]PatternStats, len(other.PatternMemory))
	}
	for name, stats := range other.PatternMemory {
		m.PatternMemory[name] = stats
	}
}

// Clear drops the log, shared state, and pattern counters, keeping the
// session id.
func (m *Memory) Clear() {
	m.Interactions = nil
	m.SharedState = make(SharedState)
	m.PatternMemory = make(map[PatternName]PatternStats)
}

// MemoryStats summarizes the interaction log.
type MemoryStats struct {
	SessionID         SessionID
	TotalInteractions int
	AvgConfidence     float64
	AvgExecutionTime  time.Duration
	SharedStateKeys   []string
}

func (m Memory) Stats() MemoryStats {
	stats := MemoryStats{SessionID: m.SessionID}

	for key := range m.SharedState {
		stats.SharedStateKeys = append(stats.SharedStateKeys, key)
	}
	sort.Strings(stats.SharedStateKeys)

	if len(m.Interactions) == 0 {
		return stats
	}

	var confidence float64
	var elapsed time.Duration
	for _, record := range m.Interactions {
		confidence += record.Confidence
		elapsed += record.ExecutionTime
	}

	n := len(m.Interactions)
	stats.TotalInteractions = n
	stats.AvgConfidence = confidence / float64(n)
	stats.AvgExecutionTime = elapsed / time.Duration(n)

	return stats
}

// Relevant returns up to limit records whose prompt shares a word with query,
// newest first.
func (m Memory) Relevant(query string, limit int) []InteractionRecord {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 || limit <= 0 {
		return nil
	}

	relevant := make([]InteractionRecord, 0, limit)
	for i := len(m.Interactions) - 1; i >= 0; i-- {
		prompt := strings.ToLower(m.Interactions[i].InputPrompt)
		for _, word := range words {
			if strings.Contains(prompt, word) {
				relevant = append(relevant, m.Interactions[i])
				break
			}
		}
		if len(relevant) >= limit {
			break
		}
	}

	return relevant
}
