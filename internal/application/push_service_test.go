package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

type fakeGitClient struct {
	changed       []string
	changedErr    error
	commitErr     error
	pushErr       error
	addCalls      int
	commitMessage string
	pushCalls     int
}

func (g *fakeGitClient) ChangedFiles(context.Context) ([]string, error) {
	return g.changed, g.changedErr
}

func (g *fakeGitClient) AddAll(context.Context) error {
	g.addCalls++
	return nil
}

func (g *fakeGitClient) Commit(_ context.Context, message string) error {
	if g.commitErr != nil {
		return g.commitErr
	}
	g.commitMessage = message
	return nil
}

func (g *fakeGitClient) Push(context.Context) error {
	g.pushCalls++
	return g.pushErr
}

func pushClock() fixedClock {
	return fixedClock{now: time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)}
}

func TestAutoPushDisabledWhenBothFlagsOff(t *testing.T) {
	git := &fakeGitClient{changed: []string{"a.txt"}}
	service := NewPushService(git, pushClock(), false, false, nil)

	_, err := service.AutoPush(context.Background())
	require.ErrorIs(t, err, domain.ErrPushDisabled)
	assert.Zero(t, git.addCalls)
}

func TestAutoPushCleanTree(t *testing.T) {
	git := &fakeGitClient{}
	service := NewPushService(git, pushClock(), true, true, nil)

	report, err := service.AutoPush(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Clean)
	assert.False(t, report.Committed)
	assert.Zero(t, git.addCalls)
	assert.Zero(t, git.pushCalls)
}

func TestAutoPushCommitsAndPushes(t *testing.T) {
	git := &fakeGitClient{changed: []string{"a.txt", "b.txt"}}
	service := NewPushService(git, pushClock(), true, true, nil)

	report, err := service.AutoPush(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.FilesChanged)
	assert.True(t, report.Committed)
	assert.True(t, report.Pushed)
	assert.Equal(t, 1, git.addCalls)
	assert.Equal(t, 1, git.pushCalls)
	assert.Equal(t, "Auto-update 2026-08-31 14:30:05 (2 files changed)", git.commitMessage)
}

func TestAutoPushCommitOnlyWhenPushDisabled(t *testing.T) {
	git := &fakeGitClient{changed: []string{"a.txt"}}
	service := NewPushService(git, pushClock(), true, false, nil)

	report, err := service.AutoPush(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Committed)
	assert.False(t, report.Pushed)
	assert.Zero(t, git.pushCalls)
	assert.Contains(t, git.commitMessage, "(1 files changed)")
}

func TestAutoPushNotARepository(t *testing.T) {
	git := &fakeGitClient{changedErr: domain.ErrNotARepository}
	service := NewPushService(git, pushClock(), true, true, nil)

	_, err := service.AutoPush(context.Background())
	require.ErrorIs(t, err, domain.ErrNotARepository)
}

func TestAutoPushCommitFailure(t *testing.T) {
	git := &fakeGitClient{changed: []string{"a.txt"}, commitErr: errors.New("hook rejected")}
	service := NewPushService(git, pushClock(), true, true, nil)

	report, err := service.AutoPush(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit changes")
	assert.False(t, report.Committed)
	assert.Zero(t, git.pushCalls)
}

func TestAutoPushPushFailure(t *testing.T) {
	git := &fakeGitClient{changed: []string{"a.txt"}, pushErr: errors.New("no remote")}
	service := NewPushService(git, pushClock(), true, true, nil)

	report, err := service.AutoPush(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "push commit")
	assert.True(t, report.Committed)
	assert.False(t, report.Pushed)
}
