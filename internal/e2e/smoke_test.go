package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runFusion(t, binaryPath, home, "", "run", "vp_design", "design a dashboard")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Agent: vp_design")
	assert.Contains(t, stdout, "Confidence: 0.85")

	stdout, stderr, err = runFusion(t, binaryPath, home, "", "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Fusion Agent OS")
	assert.Contains(t, stdout, "interactions: 1")
}

func TestSmokePushFlow(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	home := t.TempDir()
	binaryPath := buildBinary(t)
	repo := initGitRepo(t)

	configPath := filepath.Join(repo, ".fusion.json")
	require.NoError(t, os.WriteFile(configPath,
		[]byte(`{"auto_commit": true, "github_push": false}`), 0o600))

	require.NoError(t, os.WriteFile(filepath.Join(repo, "notes.txt"), []byte("draft\n"), 0o644))

	stdout, stderr, err := runFusion(t, binaryPath, home, repo, "push", "--config", configPath)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "committed: Auto-update")
	assert.Contains(t, stdout, "push skipped (github_push disabled)")

	stdout, stderr, err = runFusion(t, binaryPath, home, repo, "push", "--config", configPath)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "no changes")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "fusion-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/fusion")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build fusion binary: %s", string(output))
	return binaryPath
}

func runFusion(t *testing.T, binaryPath, home, dir string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func initGitRepo(t *testing.T) string {
	t.Helper()

	repo := t.TempDir()
	for _, args := range [][]string{
		{"init"},
		{"config", "user.email", "e2e@example.com"},
		{"config", "user.name", "e2e"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = repo
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, string(output))
	}

	return repo
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
