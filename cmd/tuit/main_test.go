package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/tuit/internal/generator"
	"github.com/verte-zerg/tuit/internal/keyboard"
	"github.com/verte-zerg/tuit/internal/model"
)

func testKeyboard(t *testing.T) (*keyboard.Layout, *keyboard.ComboTable) {
	t.Helper()
	layout, err := keyboard.Build(0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return layout, keyboard.DefaultTable()
}

func validConfig() model.Config {
	return model.Config{
		ChunkSize:  defaultChunkSize,
		FeedbackMs: defaultFeedbackMs,
		MismatchMs: defaultMismatchMs,
		DrillWords: defaultWords,
		CapsPct:    defaultCaps,
		PunctPct:   defaultPunct,
		PunctSet:   defaultPunctSet,
	}
}

func TestValidateConfig(t *testing.T) {
	layout, table := testKeyboard(t)
	if err := validateConfig(validConfig(), layout, table); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	tests := []struct {
		name   string
		mutate func(*model.Config)
	}{
		{"chunk size", func(c *model.Config) { c.ChunkSize = 0 }},
		{"feedback", func(c *model.Config) { c.FeedbackMs = -1 }},
		{"mismatch", func(c *model.Config) { c.MismatchMs = -5 }},
		{"words", func(c *model.Config) { c.DrillWords = 0 }},
		{"caps", func(c *model.Config) { c.CapsPct = 1.5 }},
		{"punct", func(c *model.Config) { c.PunctPct = -0.1 }},
		{"punct set", func(c *model.Config) { c.PunctSet = ".€" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := validateConfig(cfg, layout, table); err == nil {
				t.Fatalf("validateConfig accepted %+v", cfg)
			}
		})
	}
}

func TestDescribeKeys(t *testing.T) {
	layout, table := testKeyboard(t)
	got := describeKeys(layout, table, "B! é")
	want := []string{
		"'B'\tcombo\tShift+b",
		"'!'\tcombo\tShift+1",
		"' '\tspace\tSpace",
		"'é'\tliteral\té\t(not on keyboard)",
	}
	if len(got) != len(want) {
		t.Fatalf("describeKeys returned %d lines, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPromptFilename(t *testing.T) {
	var out bytes.Buffer
	name, err := promptFilename(strings.NewReader("  notes.txt \n"), &out)
	if err != nil {
		t.Fatalf("promptFilename: %v", err)
	}
	if name != "notes.txt" {
		t.Fatalf("name = %q, want %q", name, "notes.txt")
	}
	if !strings.Contains(out.String(), filePrompt) {
		t.Fatalf("prompt not written: %q", out.String())
	}
	name, err = promptFilename(strings.NewReader(""), &out)
	if err != nil || name != "" {
		t.Fatalf("promptFilename(EOF) = %q, %v", name, err)
	}
}

func TestDrillWordsFiltersUntypeable(t *testing.T) {
	layout, table := testKeyboard(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("café\nkeyboard\nnaïve\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := validConfig()
	cfg.WordList = path
	cfg.DrillWords = 5
	cfg.CapsPct = 0
	cfg.PunctPct = 0
	words, err := drillWords(cfg, layout, table, generator.NewWithSeed(3))
	if err != nil {
		t.Fatalf("drillWords: %v", err)
	}
	if len(words) != 5 {
		t.Fatalf("drillWords returned %d words, want 5", len(words))
	}
	for _, w := range words {
		if w != "keyboard" {
			t.Fatalf("drillWords returned %q", w)
		}
	}
}

func TestDrillWordsNothingTypeable(t *testing.T) {
	layout, table := testKeyboard(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("café\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := validConfig()
	cfg.WordList = path
	if _, err := drillWords(cfg, layout, table, generator.NewWithSeed(1)); err == nil {
		t.Fatalf("drillWords accepted a list with no typeable words")
	}
}

func TestNegatedBoolConfig(t *testing.T) {
	cmd := newRootCmd()
	noSound := false
	off := false
	applyNegatedBoolConfig(cmd, "no-sound", &noSound, &off)
	if !noSound {
		t.Fatalf("sound = false in config did not set --no-sound")
	}
	if err := cmd.Flags().Set("no-sound", "false"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	noSound = false
	applyNegatedBoolConfig(cmd, "no-sound", &noSound, &off)
	if noSound {
		t.Fatalf("config overrode an explicit flag")
	}
}

func TestLibraryCommands(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	file := filepath.Join(t.TempDir(), "sutta.txt")
	if err := os.WriteFile(file, []byte("The Buddha’s first teaching\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := newRootCmd()
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		err := root.Execute()
		return out.String(), err
	}

	if _, err := run("library", "add", "sutta", file); err != nil {
		t.Fatalf("library add: %v", err)
	}
	out, err := run("library", "list")
	if err != nil {
		t.Fatalf("library list: %v", err)
	}
	if !strings.HasPrefix(out, "sutta\t4 words\t") {
		t.Fatalf("library list = %q", out)
	}
	out, err = run("library", "show", "sutta")
	if err != nil {
		t.Fatalf("library show: %v", err)
	}
	if out != "The Buddha's first teaching\n" {
		t.Fatalf("library show = %q", out)
	}
	if _, err := run("library", "rm", "sutta"); err != nil {
		t.Fatalf("library rm: %v", err)
	}
	if _, err := run("library", "show", "sutta"); err == nil {
		t.Fatalf("library show after rm succeeded")
	}
}

func TestDefaultConfigTemplateParses(t *testing.T) {
	tmpl := defaultConfigTemplate()
	for _, key := range []string{"chunk-size", "sound", "feedback-ms", "mismatch-ms", "words", "caps", "punct", "punct-set", "wordlist"} {
		if !strings.Contains(tmpl, "# "+key+" = ") {
			t.Errorf("template missing %q", key)
		}
	}
}
