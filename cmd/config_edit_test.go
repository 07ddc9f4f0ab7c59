package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveConfigEditPath(t *testing.T) {
	t.Run("uses explicit flag first", func(t *testing.T) {
		got, err := resolveConfigEditPath("./custom.yaml", "/tmp/active.yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "./custom.yaml" {
			t.Fatalf("expected explicit config path, got %q", got)
		}
	})

	t.Run("uses active config when flag is empty", func(t *testing.T) {
		got, err := resolveConfigEditPath("", "/tmp/active.yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/tmp/active.yaml" {
			t.Fatalf("expected active config path, got %q", got)
		}
	})

	t.Run("falls back to home config path", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		got, err := resolveConfigEditPath("", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := filepath.Join(home, ".weeklog.yaml")
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}

func TestEnsureConfigFileWithTemplate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "myconfig.yaml")

	created, err := ensureConfigFileWithTemplate(configPath)
	if err != nil {
		t.Fatalf("unexpected error creating template config: %v", err)
	}
	if !created {
		t.Fatalf("expected file to be created")
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("unexpected error reading config file: %v", err)
	}
	if !strings.Contains(string(content), "anchor_day") {
		t.Fatalf("expected template content, got: %s", content)
	}

	created, err = ensureConfigFileWithTemplate(configPath)
	if err != nil {
		t.Fatalf("unexpected error for existing config: %v", err)
	}
	if created {
		t.Fatalf("expected existing file to be left alone")
	}
}

func TestResolveEditorValue(t *testing.T) {
	if got := resolveEditorValue("code --wait", "nano"); got != "code --wait" {
		t.Fatalf("expected VISUAL to win, got %q", got)
	}
	if got := resolveEditorValue("", "nano"); got != "nano" {
		t.Fatalf("expected EDITOR fallback, got %q", got)
	}
	if got := resolveEditorValue(" ", ""); got != "vi" {
		t.Fatalf("expected vi default, got %q", got)
	}
}

func TestBuildEditorCommand(t *testing.T) {
	command, err := buildEditorCommand("code --wait", "/tmp/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(command.Args) != 3 || command.Args[1] != "--wait" || command.Args[2] != "/tmp/config.yaml" {
		t.Fatalf("unexpected editor args: %v", command.Args)
	}

	if _, err := buildEditorCommand("  ", "/tmp/config.yaml"); err == nil {
		t.Fatal("expected error for empty editor value")
	}
}
