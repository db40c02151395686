package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance without user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Render.Indent != "  " {
		t.Errorf("expected default indent of two spaces, got %q", cfg.Render.Indent)
	}
	if cfg.Render.LineSeparator != "\n" {
		t.Errorf("expected default line separator \\n, got %q", cfg.Render.LineSeparator)
	}
	if cfg.Output.Dir != "generated" {
		t.Errorf("expected default output dir 'generated', got %q", cfg.Output.Dir)
	}
	if !cfg.Output.Overwrite {
		t.Error("expected overwrite to default to true")
	}
	if len(cfg.Watch.Extensions) != 2 {
		t.Errorf("expected two default watch extensions, got %v", cfg.Watch.Extensions)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if cfg.Watch.DebounceMS != 300 {
		t.Errorf("expected debounce 300ms, got %d", cfg.Watch.DebounceMS)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config { return *Default() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"tab indent", func(c *Config) { c.Render.Indent = "\t" }, false},
		{"empty indent", func(c *Config) { c.Render.Indent = "" }, false},
		{"visible indent", func(c *Config) { c.Render.Indent = ".." }, true},
		{"crlf", func(c *Config) { c.Render.LineSeparator = "\r\n" }, false},
		{"bare cr", func(c *Config) { c.Render.LineSeparator = "\r" }, true},
		{"empty output dir", func(c *Config) { c.Output.Dir = "" }, true},
		{"negative verbosity", func(c *Config) { c.Log.Verbosity = -1 }, true},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMS = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[render]
indent = "    "

[output]
dir = "src/main/java"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Render.Indent != "    " {
		t.Errorf("expected four-space indent, got %q", cfg.Render.Indent)
	}
	// Keys missing from the file fall back to defaults
	if cfg.Render.LineSeparator != "\n" {
		t.Errorf("expected default line separator, got %q", cfg.Render.LineSeparator)
	}
	if cfg.Output.Dir != "src/main/java" {
		t.Errorf("expected output dir from file, got %q", cfg.Output.Dir)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("[render]\nline_separator = \"x\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestMergeConfigFile_KeepsSiblingKeys(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.toml")
	project := filepath.Join(dir, "project.toml")
	os.WriteFile(user, []byte("[render]\nindent = \"\\t\"\n"), 0644)
	os.WriteFile(project, []byte("[render]\nline_separator = \"\\r\\n\"\n"), 0644)

	v := viper.New()
	SetDefaults(v)
	mergeConfigFile(v, user)
	mergeConfigFile(v, project)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}
	if cfg.Render.Indent != "\t" {
		t.Errorf("user indent lost: got %q", cfg.Render.Indent)
	}
	if cfg.Render.LineSeparator != "\r\n" {
		t.Errorf("project line separator not applied: got %q", cfg.Render.LineSeparator)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("JAVAGEN_OUTPUT_DIR", "out")
	t.Chdir(t.TempDir())
	Reset()
	defer Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("expected JAVAGEN_OUTPUT_DIR to win, got %q", cfg.Output.Dir)
	}
	if GetString("output.dir") != "out" {
		t.Errorf("GetString() = %q", GetString("output.dir"))
	}
}

func TestSave_RotatesBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	for i := 0; i < 4; i++ {
		cfg.Log.Verbosity = i
		if err := Save(cfg, path); err != nil {
			t.Fatalf("Save() #%d failed: %v", i, err)
		}
	}

	for _, suffix := range []string{".back1", ".back2", ".back3"} {
		if _, err := os.Stat(path + suffix); err != nil {
			t.Errorf("expected backup %s: %v", suffix, err)
		}
	}

	saved, err := Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if saved.Log.Verbosity != 3 {
		t.Errorf("expected last saved verbosity 3, got %d", saved.Log.Verbosity)
	}
	if saved.Render.Indent != "  " {
		t.Errorf("indent not persisted: %q", saved.Render.Indent)
	}

	back1, err := Read(path + ".back1")
	if err != nil {
		t.Fatalf("Read(.back1) failed: %v", err)
	}
	if back1.Log.Verbosity != 2 {
		t.Errorf("expected .back1 to hold the previous save, got verbosity %d", back1.Log.Verbosity)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Output.Dir = ""
	if err := Save(cfg, filepath.Join(t.TempDir(), FileName)); err == nil {
		t.Fatal("expected Save to reject an invalid config")
	}
}

func TestIsBackupFile(t *testing.T) {
	tests := map[string]bool{
		"javagen.toml":       false,
		"javagen.toml.back1": true,
		"javagen.toml.back3": true,
		"Foo.yaml":           false,
		"notes.background":   false,
	}
	for path, want := range tests {
		if got := isBackupFile(path); got != want {
			t.Errorf("isBackupFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcher_DebouncesChanges(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(50*time.Millisecond, dir)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Stop()

	w.SetFilter(func(path string) bool { return filepath.Ext(path) == ".yaml" })

	changes := make(chan []string, 4)
	w.OnChange(func(paths []string) { changes <- paths })
	w.Start()

	os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("x"), 0644)

	select {
	case paths := <-changes:
		if len(paths) != 2 {
			t.Fatalf("expected both yaml files in one batch, got %v", paths)
		}
		if filepath.Base(paths[0]) != "a.yaml" || filepath.Base(paths[1]) != "b.yaml" {
			t.Errorf("unexpected paths %v", paths)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcher_HandlersDoNotOverlap(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(20*time.Millisecond, dir)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Stop()

	var running, maxRunning atomic.Int32
	done := make(chan struct{}, 4)
	w.OnChange(func(paths []string) {
		n := running.Add(1)
		for {
			m := maxRunning.Load()
			if n <= m || maxRunning.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(300 * time.Millisecond)
		running.Add(-1)
		done <- struct{}{}
	})
	w.Start()

	os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("x"), 0644)
	time.Sleep(100 * time.Millisecond)
	os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("x"), 0644)

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for batch %d", i+1)
		}
	}

	if got := maxRunning.Load(); got != 1 {
		t.Errorf("expected handlers to run one at a time, %d ran at once", got)
	}
}
