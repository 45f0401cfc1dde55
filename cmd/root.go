package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jansmrcka/teabook/internal/demo"
	"github.com/jansmrcka/teabook/pkg/book"
	"github.com/jansmrcka/teabook/pkg/prefs"
	"github.com/jansmrcka/teabook/pkg/sidebar"
	"github.com/jansmrcka/teabook/pkg/story"
	"github.com/jansmrcka/teabook/pkg/theme"
)

var version = "dev"

var (
	flagTheme     string
	flagStory     string
	flagPrefs     string
	flagNoPersist bool
	flagLogFile   string
	flagLogLevel  string
	flagInline    bool
)

var rootCmd = &cobra.Command{
	Use:     "teabook",
	Short:   "Component storybook for Bubble Tea",
	Version: version,
	RunE:    runBook,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stories grouped by category",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the saved brightness",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light"},
	RunE:      runTheme,
}

func init() {
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "brightness for this session (dark, light)")
	rootCmd.Flags().StringVarP(&flagStory, "story", "s", "", "story to open, e.g. buttons or #/buttons")
	rootCmd.Flags().BoolVar(&flagInline, "inline", false, "render inline instead of the alternate screen")
	rootCmd.PersistentFlags().StringVar(&flagPrefs, "prefs", "", "preference file (default $XDG_CONFIG_HOME/teabook/preferences.json)")
	rootCmd.PersistentFlags().BoolVar(&flagNoPersist, "no-persist", false, "keep the brightness in memory only")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(listCmd, themeCmd)
}

// Execute runs the root CLI command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger returns a file logger, or a discarding one when no file is set.
// The terminal belongs to the TUI, so logs never go to stderr.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "teabook",
		Level:           level,
	})
	return logger, f, nil
}

// openStore picks the preference medium from the flags. A missing config
// directory degrades to no persistence rather than failing.
func openStore(logger *log.Logger) prefs.Store {
	if flagNoPersist {
		return prefs.NewMemoryStore()
	}
	path := flagPrefs
	if path == "" {
		var err error
		if path, err = prefs.DefaultPath(); err != nil {
			logger.Warn("no config directory, brightness will not be saved", "err", err)
			return prefs.Unavailable{}
		}
	}
	return prefs.NewFileStore(path)
}

func runBook(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	p := prefs.Open(openStore(logger),
		prefs.WithDetector(prefs.DefaultDetector()),
		prefs.WithLogger(logger),
	)
	if flagTheme != "" {
		b, err := theme.ParseBrightness(flagTheme)
		if err != nil {
			return err
		}
		p.Set(b)
	}

	model, err := book.New[demo.Theme, demo.Message](demo.NewStories(), demo.Provider(), p,
		book.WithInitialStory(flagStory),
		book.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if !flagInline {
		opts = append(opts, tea.WithAltScreen())
	}
	return book.Run(model, opts...)
}

func runList(cmd *cobra.Command, args []string) error {
	stories := demo.NewStories()
	nav := sidebar.Build(story.TitleOf(stories), stories.Stories())
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, nav.Title)
	for _, sec := range nav.Sections {
		fmt.Fprintf(out, "\n%s\n", strings.ToUpper(sec.Title))
		for _, it := range sec.Items {
			fmt.Fprintf(out, "  %-12s %s\n", it.ID, it.Label)
		}
	}
	return nil
}

func runTheme(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		p := prefs.Open(store, prefs.WithDetector(prefs.DefaultDetector()), prefs.WithLogger(logger))
		fmt.Fprintf(out, "%s (%s)\n", p.Brightness(), p.Source())
		return nil
	}

	b, err := theme.ParseBrightness(args[0])
	if err != nil {
		return err
	}
	if err := store.Save(b); err != nil {
		return fmt.Errorf("save brightness: %w", err)
	}
	if fs, ok := store.(*prefs.FileStore); ok {
		fmt.Fprintf(out, "saved %s to %s\n", b, fs.Path())
		return nil
	}
	fmt.Fprintf(out, "set %s\n", b)
	return nil
}
