package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/ports"
)

const commitTimeLayout = "2006-01-02 15:04:05"

// PushService wraps the auto-push sequence: inspect the working tree, stage
// everything, commit with a timestamped message, and push when configured.
// auto_commit gates the commit step, github_push gates the push step.
type PushService struct {
	git        ports.GitClient
	clock      ports.Clock
	autoCommit bool
	githubPush bool
	logger     *zap.Logger
}

// PushReport records what the auto-push sequence actually did.
type PushReport struct {
	Clean         bool
	FilesChanged  int
	CommitMessage string
	Committed     bool
	Pushed        bool
}

func NewPushService(git ports.GitClient, clock ports.Clock, autoCommit, githubPush bool, logger *zap.Logger) *PushService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PushService{
		git:        git,
		clock:      clock,
		autoCommit: autoCommit,
		githubPush: githubPush,
		logger:     logger,
	}
}

// AutoPush runs the sequence once. A clean tree reports Clean without
// committing. No retries, no conflict handling.
func (s *PushService) AutoPush(ctx context.Context) (PushReport, error) {
	if !s.autoCommit && !s.githubPush {
		return PushReport{}, domain.ErrPushDisabled
	}

	changed, err := s.git.ChangedFiles(ctx)
	if err != nil {
		return PushReport{}, fmt.Errorf("inspect working tree: %w", err)
	}

	if len(changed) == 0 {
		s.logger.Info("working tree clean, nothing to push")
		return PushReport{Clean: true}, nil
	}

	report := PushReport{FilesChanged: len(changed)}

	if err := s.git.AddAll(ctx); err != nil {
		return report, fmt.Errorf("stage changes: %w", err)
	}

	report.CommitMessage = fmt.Sprintf("Auto-update %s (%d files changed)",
		s.clock.Now().Format(commitTimeLayout), len(changed))
	if err := s.git.Commit(ctx, report.CommitMessage); err != nil {
		return report, fmt.Errorf("commit changes: %w", err)
	}
	report.Committed = true

	s.logger.Info("changes committed",
		zap.String("message", report.CommitMessage),
		zap.Int("files", len(changed)))

	if !s.githubPush {
		return report, nil
	}

	if err := s.git.Push(ctx); err != nil {
		return report, fmt.Errorf("push commit: %w", err)
	}
	report.Pushed = true

	s.logger.Info("commit pushed")

	return report, nil
}
