package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testEnv returns an Environment with captured output and a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

func writeVaultFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestRun - CLI orchestration
// ---------------------------------------------------------------------------

func TestRun_GeneratesOutput(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	out := filepath.Join(t.TempDir(), "data")
	writeVaultFile(t, filepath.Join(vault, "blog", "articles", "2024", "published", "a.md"),
		"---\ntitle: A\ndate: 2024-01-01\nstatus: published\n---\n")
	writeVaultFile(t, filepath.Join(vault, "blog", "books", "b.md"),
		"---\ntitle: B\nstatus: read\nrating: 5\n---\nLesson.\n")

	env, stdout, _ := testEnv()
	err := run(context.Background(), &cliFlags{}, []string{vault, out}, env)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	if !strings.Contains(stdout.String(), "Generated 1 articles and 1 books") {
		t.Errorf("stdout = %q", stdout.String())
	}
	for _, name := range []string{"articles.json", "books.json"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRun_DryRun(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	out := filepath.Join(t.TempDir(), "data")
	writeVaultFile(t, filepath.Join(vault, "blog", "books", "b.md"),
		"---\ntitle: B\nstatus: read\n---\n")

	env, stdout, stderr := testEnv()
	err := run(context.Background(), &cliFlags{dryRun: true}, []string{vault, out}, env)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	if !strings.Contains(stderr.String(), "DRY RUN MODE") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "[DRY RUN] Would generate 0 articles and 1 books") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("dry run created output")
	}
}

func TestRun_QuietSuppressesOutput(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	out := filepath.Join(t.TempDir(), "data")

	env, stdout, stderr := testEnv()
	err := run(context.Background(), &cliFlags{quiet: true}, []string{vault, out}, env)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	// Warnings about missing article/book dirs must also be suppressed.
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	err := run(context.Background(), &cliFlags{version: true}, nil, env)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stdout.String(), "portfolio-data") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRun_TooManyArgs(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	err := run(context.Background(), &cliFlags{}, []string{"a", "b", "c"}, env)
	if !errors.Is(err, ErrTooManyArgs) {
		t.Errorf("run() error = %v, want ErrTooManyArgs", err)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	out := filepath.Join(t.TempDir(), "data")
	writeVaultFile(t, filepath.Join(vault, "blog", "books", "b.md"),
		"---\ntitle: B\nstatus: read\n---\nHabits *compound*.\n")

	cfgPath := filepath.Join(t.TempDir(), "gen.yaml")
	writeVaultFile(t, cfgPath, "vault:\n  dir: "+vault+"\noutput:\n  dir: "+out+"\nbooks:\n  lessonHTML: true\n")

	env, _, _ := testEnv()
	err := run(context.Background(), &cliFlags{config: cfgPath}, []string{}, env)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(out, "books.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "lesson_html") {
		t.Errorf("books.json missing lesson_html: %s", raw)
	}
}

func TestRun_MissingConfig(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	err := run(context.Background(), &cliFlags{config: filepath.Join(t.TempDir(), "nope.yaml")}, []string{}, env)
	if err == nil {
		t.Fatal("run() expected error for missing config")
	}
	if exitCodeFor(err) != ExitUsage {
		t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
	}
}
