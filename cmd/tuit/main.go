// Package main provides the CLI entrypoint for tuit.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuit/internal/config"
	"github.com/verte-zerg/tuit/internal/generator"
	"github.com/verte-zerg/tuit/internal/keyboard"
	"github.com/verte-zerg/tuit/internal/model"
	"github.com/verte-zerg/tuit/internal/session"
	"github.com/verte-zerg/tuit/internal/sound"
	"github.com/verte-zerg/tuit/internal/store"
	"github.com/verte-zerg/tuit/internal/text"
	"github.com/verte-zerg/tuit/internal/tui"
	"github.com/verte-zerg/tuit/internal/wordlist"
)

const (
	defaultChunkSize  = session.DefaultChunkSize
	defaultFeedbackMs = 100
	defaultMismatchMs = 300
	defaultWords      = 24
	defaultCaps       = 0.3
	defaultPunct      = 0.2
)

const defaultPunctSet = ".,;:'\"!?-"

const filePrompt = "Optionally enter a text filename (in this folder), or press ENTER for default:"

var (
	practiceChunkSize  int
	practiceNoSound    bool
	practiceFeedbackMs int
	practiceMismatchMs int
	practiceText       string
	practiceDrill      bool
	practiceWords      int
	practiceCaps       float64
	practicePunct      float64
	practicePunctSet   string
	practiceWordList   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuit [FILE]",
		Short:         "Terminal typing tutor with an on-screen keyboard",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceChunkSize, "chunk-size", defaultChunkSize, "words per practice set")
	rootCmd.Flags().BoolVar(&practiceNoSound, "no-sound", false, "disable the mismatch tone")
	rootCmd.Flags().IntVar(&practiceFeedbackMs, "feedback-ms", defaultFeedbackMs, "how long a correct key stays highlighted")
	rootCmd.Flags().IntVar(&practiceMismatchMs, "mismatch-ms", defaultMismatchMs, "how long a wrong key stays highlighted")
	rootCmd.Flags().StringVar(&practiceText, "text", "", "practice a text saved in the library")
	rootCmd.Flags().BoolVar(&practiceDrill, "drill", false, "practice generated words")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per generated drill")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().StringVar(&practiceWordList, "wordlist", "", "word list for drills (one word per line)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLibraryCmd())
	rootCmd.AddCommand(newKeysCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "chunk-size", &practiceChunkSize, fileCfg.Practice.ChunkSize)
	applyNegatedBoolConfig(cmd, "no-sound", &practiceNoSound, fileCfg.Practice.Sound)
	applyIntConfig(cmd, "feedback-ms", &practiceFeedbackMs, fileCfg.Practice.FeedbackMs)
	applyIntConfig(cmd, "mismatch-ms", &practiceMismatchMs, fileCfg.Practice.MismatchMs)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Drill.Words)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Drill.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Drill.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Drill.PunctSet)
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Drill.WordList)

	cfg := model.Config{
		ChunkSize:  practiceChunkSize,
		Sound:      !practiceNoSound,
		FeedbackMs: practiceFeedbackMs,
		MismatchMs: practiceMismatchMs,
		DrillWords: practiceWords,
		CapsPct:    practiceCaps,
		PunctPct:   practicePunct,
		PunctSet:   practicePunctSet,
		WordList:   practiceWordList,
	}

	table := keyboard.DefaultTable()
	layout, err := keyboard.Build(0)
	if err != nil {
		return fmt.Errorf("keyboard layout is unusable: %w", err)
	}
	if err := validateConfig(cfg, layout, table); err != nil {
		return err
	}
	if practiceDrill && practiceText != "" {
		return fmt.Errorf("--drill and --text cannot be combined")
	}
	if len(args) > 0 && (practiceDrill || practiceText != "") {
		return fmt.Errorf("FILE cannot be combined with --drill or --text")
	}

	var words []string
	switch {
	case practiceText != "":
		words, err = libraryWords(cmd.Context(), practiceText)
	case practiceDrill:
		words, err = drillWords(cfg, layout, table, generator.New())
	default:
		words, err = fileWords(cmd, args)
	}
	if err != nil {
		return err
	}

	player := newPlayer(cfg)
	if closer, ok := player.(*sound.Speaker); ok {
		defer closer.Close()
	}

	sess := session.New(words, session.Options{ChunkSize: cfg.ChunkSize, Table: table})
	m, err := tui.NewModel(cfg, sess, player)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return m.Err()
}

func fileWords(cmd *cobra.Command, args []string) ([]string, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		var err error
		name, err = promptFilename(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return nil, err
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	src, err := text.Load(cwd, name)
	if err != nil {
		return nil, err
	}
	if src.Reason.UsesDefault() {
		logErrln(src.Reason.Message())
	}
	return src.Words, nil
}

func promptFilename(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprintf(out, "%s\n> ", filePrompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read filename: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func libraryWords(ctx context.Context, name string) ([]string, error) {
	st, err := openStore()
	if err != nil {
		return nil, err
	}
	defer closeStore(st)
	entry, err := st.GetText(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("no text named %q in the library (see: tuit library list)", name)
		}
		return nil, fmt.Errorf("failed to load text: %w", err)
	}
	words := text.Words(entry.Body)
	if len(words) == 0 {
		return nil, fmt.Errorf("text %q is empty", name)
	}
	return words, nil
}

func drillWords(cfg model.Config, layout *keyboard.Layout, table *keyboard.ComboTable, gen *generator.Generator) ([]string, error) {
	source := text.Default().Words
	if cfg.WordList != "" {
		loaded, err := wordlist.LoadWords(cfg.WordList)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", cfg.WordList, err)
		}
		source = loaded
	}
	source = wordlist.Filter(source, wordlist.Typeable(layout, table))
	if len(source) == 0 {
		return nil, fmt.Errorf("word list has no words that can be typed on the keyboard")
	}
	return gen.Generate(source, generator.Options{
		Count:    cfg.DrillWords,
		CapsPct:  cfg.CapsPct,
		PunctPct: cfg.PunctPct,
		PunctSet: []rune(cfg.PunctSet),
	}), nil
}

func newPlayer(cfg model.Config) sound.Player {
	if !cfg.Sound {
		return sound.Silent{}
	}
	sp, err := sound.NewSpeaker()
	if err != nil {
		logErrf("audio unavailable, using terminal bell: %v\n", err)
		return sound.Bell{W: os.Stderr}
	}
	return sp
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

// applyNegatedBoolConfig maps a positive config switch onto a --no-* flag.
func applyNegatedBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = !*value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuit configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# chunk-size = %d          # Words per practice set
# sound = true            # Play a tone on a wrong key
# feedback-ms = %d        # How long a correct key stays highlighted
# mismatch-ms = %d        # How long a wrong key stays highlighted

[drill]
# words = %d              # Words per generated drill
# caps = %.2f             # Probability of capitalized first letter (0-1)
# punct = %.2f            # Punctuation probability per word (0-1)
# punct-set = %q  # Punctuation set
# wordlist = ""           # Word list file (default: the built-in phrase)
`,
		defaultChunkSize,
		defaultFeedbackMs,
		defaultMismatchMs,
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg model.Config, layout *keyboard.Layout, table *keyboard.ComboTable) error {
	if cfg.ChunkSize <= 0 {
		return fmt.Errorf("--chunk-size must be > 0")
	}
	if cfg.FeedbackMs < 0 {
		return fmt.Errorf("--feedback-ms must be >= 0")
	}
	if cfg.MismatchMs < 0 {
		return fmt.Errorf("--mismatch-ms must be >= 0")
	}
	if cfg.DrillWords <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	for _, r := range cfg.PunctSet {
		if !layout.CanType(table, r) {
			return fmt.Errorf("--punct-set: %q cannot be typed on the keyboard", r)
		}
	}
	return nil
}

func openStore() (*store.Store, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
