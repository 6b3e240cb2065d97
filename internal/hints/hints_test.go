package hints

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestForMissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		contains []string
		excludes []string
	}{
		{
			name:     "directory suggests a file inside it",
			path:     dir,
			contains: []string{"input is a directory", filepath.Join(dir, "README.md")},
		},
		{
			name:     "absent markdown file",
			path:     filepath.Join(dir, "absent.md"),
			contains: []string{"check the path"},
			excludes: []string{".md"},
		},
		{
			name:     "absent file without markdown extension",
			path:     filepath.Join(dir, "notes.txt"),
			contains: []string{"check the path", "usually end in .md", "; "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForMissingInput(tt.path)

			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint %q should start with hint prefix", hint)
			}
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint %q should contain %q", hint, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(hint, unwanted) {
					t.Errorf("hint %q should not contain %q", hint, unwanted)
				}
			}
		})
	}
}

func TestForMissingInput_RegularFileIsNotDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("# x\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	hint := ForMissingInput(path)
	if strings.Contains(hint, "input is a directory") {
		t.Errorf("hint %q should not take the directory branch", hint)
	}
	if !strings.Contains(hint, "check the path") {
		t.Errorf("hint %q should suggest checking the path", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains []string
		excludes []string
	}{
		{
			name:     "suggests user config path",
			paths:    []string{"work.yaml", "work.yml", "/home/u/.config/markdown2html/work.yaml"},
			contains: []string{"--config", "or create /home/u/.config/markdown2html/work.yaml"},
		},
		{
			name:     "local paths only",
			paths:    []string{"work.yaml", "work.yml"},
			contains: []string{"--config"},
			excludes: []string{"or create"},
		},
		{
			name:     "no paths",
			paths:    nil,
			contains: []string{"--config"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint %q should contain %q", hint, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(hint, unwanted) {
					t.Errorf("hint %q should not contain %q", hint, unwanted)
				}
			}
		})
	}
}

func TestForOutputDirectory(t *testing.T) {
	t.Parallel()

	if hint := ForOutputDirectory(); !strings.Contains(hint, "writable") {
		t.Errorf("hint %q should mention writable", hint)
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForStyleNotFound(nil); hint != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", hint)
	}

	hint := ForStyleNotFound([]string{"default", "minimal"})
	if !strings.Contains(hint, "available: default, minimal") {
		t.Errorf("hint %q should list styles", hint)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"text", "do this", "\n  hint: do this"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := format(tt.input); got != tt.want {
				t.Errorf("format(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatHints(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints = %q", got)
	}
}
