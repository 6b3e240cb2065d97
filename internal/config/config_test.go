package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Convert.BlankLineBreaks {
		t.Error("Convert.BlankLineBreaks = true, want false")
	}
	if cfg.Output.Standalone {
		t.Error("Output.Standalone = true, want false")
	}
	if cfg.Output.Style != "" {
		t.Errorf("Output.Style = %q, want empty", cfg.Output.Style)
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if err != nil && !strings.Contains(err.Error(), "test.field") {
					t.Errorf("error %q should name the field", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero config", Config{}, false},
		{"title at limit", Config{Output: OutputConfig{Title: strings.Repeat("t", MaxTitleLength)}}, false},
		{"title too long", Config{Output: OutputConfig{Title: strings.Repeat("t", MaxTitleLength+1)}}, true},
		{"style too long", Config{Output: OutputConfig{Style: strings.Repeat("s", MaxStyleLength+1)}}, true},
		{"base path too long", Config{Assets: AssetsConfig{BasePath: strings.Repeat("p", MaxPathLength+1)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "test.yaml", `convert:
  blankLineBreaks: true
output:
  standalone: true
  title: "Notes"
  style: "minimal"
assets:
  basePath: "./assets"
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		want := &Config{
			Convert: ConvertConfig{BlankLineBreaks: true},
			Output:  OutputConfig{Standalone: true, Title: "Notes", Style: "minimal"},
			Assets:  AssetsConfig{BasePath: "./assets"},
		}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "partial.yml", "output:\n  standalone: true\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Convert.BlankLineBreaks {
			t.Error("Convert.BlankLineBreaks = true, want default false")
		}
		if !cfg.Output.Standalone {
			t.Error("Output.Standalone = false, want true")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "invalid.yaml", "output: [unclosed")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "unknown.yaml", "output:\n  standalone: true\nfooter:\n  enabled: true\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("field too long returns ErrFieldTooLong", func(t *testing.T) {
		long := strings.Repeat("x", MaxTitleLength+1)
		path := writeConfig(t, t.TempDir(), "toolong.yaml", "output:\n  title: \""+long+"\"\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("empty file returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "empty.yaml", "")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	userDir, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	appDir := filepath.Join(userDir, appDirName)
	if err := os.MkdirAll(appDir, 0o750); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, appDir, "work.yml", "convert:\n  blankLineBreaks: true\n")

	t.Run("found in user config directory", func(t *testing.T) {
		cfg, err := LoadConfig("work")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Convert.BlankLineBreaks {
			t.Error("Convert.BlankLineBreaks = false, want true")
		}
	})

	t.Run("missing name lists searched paths", func(t *testing.T) {
		_, err := LoadConfig("absent-config-name")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), filepath.Join(appDirName, "absent-config-name.yaml")) {
			t.Errorf("error %q should list the user config path", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("demo")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the local candidates", paths)
	}
	if paths[0] != "demo.yaml" || paths[1] != "demo.yml" {
		t.Errorf("local candidates = %v, want [demo.yaml demo.yml]", paths[:2])
	}
}
