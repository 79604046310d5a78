package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
)

const twoMovesBoard = "1 2 3 4\n5 6 7 8\n9 10 0 11\n13 14 15 12\n"

// execute runs the root command with an isolated config and cache directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[search]\nmax_expansions = 50000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeBoard(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFifteenCommand(t *testing.T) {
	if _, err := execute(t, "fifteen", writeBoard(t, twoMovesBoard)); err != nil {
		t.Fatalf("fifteen: %v", err)
	}
}

func TestFifteenCommandInvalidBoard(t *testing.T) {
	_, err := execute(t, "fifteen", writeBoard(t, "1 2 3\n"))
	if !errors.Is(err, errors.ErrCodeInvalidBoard) {
		t.Errorf("err = %v, want code %v", err, errors.ErrCodeInvalidBoard)
	}
}

func TestFifteenCommandLimit(t *testing.T) {
	unsolvable := "1 2 3 4\n5 6 7 8\n9 10 11 12\n13 15 14 0\n"
	_, err := execute(t, "fifteen", "--max-expansions", "100", "--no-cache", writeBoard(t, unsolvable))
	if !errors.Is(err, errors.ErrCodeLimitExceeded) {
		t.Errorf("err = %v, want code %v", err, errors.ErrCodeLimitExceeded)
	}
}

func TestSuperqueensCommand(t *testing.T) {
	if _, err := execute(t, "superqueens", "--n", "5", "--place", "0"); err != nil {
		t.Fatalf("superqueens: %v", err)
	}
	_, err := execute(t, "superqueens", "--n", "4", "--place", "1,1")
	if !errors.Is(err, errors.ErrCodeInvalidPlacement) {
		t.Errorf("err = %v, want code %v", err, errors.ErrCodeInvalidPlacement)
	}
}

func TestTreeCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.dot")
	if _, err := execute(t, "tree", "--format", "dot", "--detailed", "-o", out, writeBoard(t, twoMovesBoard)); err != nil {
		t.Fatalf("tree: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph G {") {
		t.Errorf("tree output is not DOT:\n%s", data)
	}
}

func TestTreeCommandRejectsBoardForSuperqueens(t *testing.T) {
	_, err := execute(t, "tree", "-p", "superqueens", "board.txt")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want code %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(cfgPath, []byte("[cache]\nbackend = \"memcached\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config", cfgPath, "superqueens", "--n", "4"})
	if err := root.Execute(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want code %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion should mention the program name")
	}
}
