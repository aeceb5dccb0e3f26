package domain

import "errors"

var (
	ErrAgentNotFound   = errors.New("agent not found")
	ErrToolNotFound    = errors.New("tool not found")
	ErrPatternNotFound = errors.New("pattern not found")
	ErrEmptyInput      = errors.New("input prompt is empty")
	ErrNotARepository  = errors.New("not a git repository")
	ErrPushDisabled    = errors.New("push is disabled in config")
)
