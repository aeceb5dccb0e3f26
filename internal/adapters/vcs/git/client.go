package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/ports"
)

var ErrUnavailable = errors.New("git command unavailable")

type runFunc func(ctx context.Context, args ...string) (stdout string, stderr string, err error)

// Client shells out to the git binary for the auto-push sequence.
type Client struct {
	run runFunc
}

var _ ports.GitClient = (*Client)(nil)

func NewClient() *Client {
	return &Client{run: runGitCommand}
}

// ChangedFiles parses `git status --porcelain`, one path per dirty entry.
func (c *Client) ChangedFiles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stdout, stderr, err := c.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, formatError("status", err, stderr)
	}

	var files []string
	for _, line := range strings.Split(stdout, "\n") {
		if len(line) < 4 {
			continue
		}
		// Porcelain lines are "XY path"; renames carry "old -> new".
		path := strings.TrimSpace(line[3:])
		if idx := strings.Index(path, " -> "); idx >= 0 {
			path = path[idx+4:]
		}
		if path != "" {
			files = append(files, path)
		}
	}

	return files, nil
}

func (c *Client) AddAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := c.run(ctx, "add", "-A")
	if err != nil {
		return formatError("add", err, stderr)
	}

	return nil
}

func (c *Client) Commit(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := c.run(ctx, "commit", "-m", message)
	if err != nil {
		return formatError("commit", err, stderr)
	}

	return nil
}

func (c *Client) Push(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := c.run(ctx, "push")
	if err != nil {
		return formatError("push", err, stderr)
	}

	return nil
}

func runGitCommand(ctx context.Context, args ...string) (string, string, error) {
	path, err := exec.LookPath("git")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate git command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, err error, stderr string) error {
	if strings.Contains(stderr, "not a git repository") {
		return fmt.Errorf("git %s: %w", op, domain.ErrNotARepository)
	}
	if stderr == "" {
		return fmt.Errorf("git %s: %w", op, err)
	}

	return fmt.Errorf("git %s: %w: %s", op, err, stderr)
}
