/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/feedline/pkg/buildinfo"
	"github.com/fulmenhq/feedline/pkg/config"
	"github.com/fulmenhq/feedline/pkg/exitcode"
	"github.com/fulmenhq/feedline/pkg/feedline"
	"github.com/fulmenhq/feedline/pkg/logger"
	"github.com/fulmenhq/feedline/pkg/pathfilter"
	"github.com/fulmenhq/feedline/pkg/pathsource"
	"github.com/fulmenhq/feedline/pkg/report"
)

// errPathsFailed is returned when at least one path ended in Error. The
// report already names the paths, so Execute exits without logging it.
var errPathsFailed = errors.New("one or more paths failed")

// rootOptions holds flag values for one command instance.
type rootOptions struct {
	color            report.ColorMode
	verbose          int
	quiet            bool
	sort             bool
	jobs             int
	check            bool
	exclude          []string
	respectGitignore bool
	format           string
	configFile       string
}

// newRootCommand creates a fresh root command instance.
// This factory pattern allows tests to create isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{color: report.ColorAuto}

	cmd := &cobra.Command{
		Use:   "feedline [flags] [FILES...]",
		Short: "Ensure files end with exactly one trailing newline",
		Long: `Feedline makes sure every given file ends with a newline byte, appending one
when it is missing. Files are never rewritten: the only change ever made is a
single appended "\n".

Paths come from the arguments or, when none are given, one per line on stdin.
The process exits 1 when any path fails and 2 on configuration errors.

Examples:
   feedline -v --color=always file1.txt        # Fix one file with a verbose report
   ls examples/*.txt | feedline --sort         # Read paths from stdin, sorted output
   find ./src -type f | feedline --color=never | grep '^SKIP'
   git diff --name-only | feedline --check     # Fail when a changed file lacks a feedline`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeLogger(cmd, "")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeedline(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().String("log-level", "warn", "Set log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")

	flags := cmd.Flags()
	flags.Var(&opts.color, "color", "Control when to use colored output (always|never|auto)")
	flags.CountVarP(&opts.verbose, "verbose", "v", "Show every outcome, including skipped paths")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only show errors (overrides --verbose)")
	flags.VarP(newLooseBool(&opts.sort), "sort", "s", "Sort results by status, then path")
	flags.Lookup("sort").NoOptDefVal = "true"
	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "Number of files processed in parallel (0 = number of CPUs)")
	flags.BoolVar(&opts.check, "check", false, "Report files missing a feedline as errors without changing them")
	flags.StringArrayVar(&opts.exclude, "exclude", nil, "Skip paths matching a glob pattern (repeatable)")
	flags.BoolVar(&opts.respectGitignore, "respect-gitignore", false, "Skip paths ignored by .gitignore and .feedlineignore")
	flags.StringVar(&opts.format, "format", "text", "Output format (text|json|yaml|markdown)")
	flags.StringVar(&opts.configFile, "config", "", "Config file (default: .feedline.yaml in . or $HOME)")

	// Wire Cobra's built-in --version
	cmd.Version = buildinfo.Version()
	cmd.SetVersionTemplate("feedline {{.Version}}\n")

	return cmd
}

// rootCmd represents the base command
var rootCmd = newRootCommand()

// Execute runs the root command and exits with the matching exit code.
// This is called by main.main().
func Execute() {
	if err := execute(rootCmd, os.Args[1:]); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// execute runs cmd with args after joining a separate sort value
// ("-s false") onto its flag.
func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(joinSortValue(args))
	return cmd.Execute()
}

func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, errPathsFailed):
		return exitcode.PathError
	default:
		logger.Error("Command execution failed", logger.Err(err),
			logger.String("exit", exitcode.String(exitcode.ConfigError)))
		return exitcode.ConfigError
	}
}

// settings is the effective configuration of a run: config file and
// environment values overridden by any flag the user set.
type settings struct {
	color            report.ColorMode
	verbosity        report.Verbosity
	sort             bool
	jobs             int
	check            bool
	format           report.Format
	exclude          []string
	respectGitignore bool
}

func resolveSettings(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) (settings, error) {
	flags := cmd.Flags()
	var s settings
	var err error

	if s.color, err = report.ParseColorMode(cfg.Color); err != nil {
		return s, err
	}
	if flags.Changed("color") {
		s.color = opts.color
	}

	base, err := report.ParseVerbosity(cfg.Verbosity)
	if err != nil {
		return s, err
	}
	s.verbosity = report.VerbosityFromFlags(base, opts.verbose, opts.quiet)

	s.sort = cfg.Sort
	if flags.Changed("sort") {
		s.sort = opts.sort
	}

	s.jobs = cfg.Jobs
	if flags.Changed("jobs") {
		s.jobs = opts.jobs
	}
	if s.jobs < 0 {
		return s, fmt.Errorf("invalid --jobs %d (must be >= 0)", s.jobs)
	}

	s.check = cfg.Check
	if flags.Changed("check") {
		s.check = opts.check
	}

	s.respectGitignore = cfg.RespectGitignore
	if flags.Changed("respect-gitignore") {
		s.respectGitignore = opts.respectGitignore
	}

	format := cfg.Format
	if flags.Changed("format") {
		format = opts.format
	}
	if s.format, err = report.ParseFormat(format); err != nil {
		return s, err
	}

	s.exclude = append(append([]string{}, cfg.Exclude...), opts.exclude...)
	return s, nil
}

func runFeedline(cmd *cobra.Command, args []string, opts *rootOptions) error {
	cfg, err := config.LoadConfig(config.LoadOptions{File: opts.configFile})
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		if err := initializeLogger(cmd, cfg.LogLevel); err != nil {
			return err
		}
	}
	if cfg.File != "" {
		logger.Debug("Loaded config", logger.String("file", cfg.File))
	}

	s, err := resolveSettings(cmd, cfg, opts)
	if err != nil {
		return err
	}

	source := pathsource.Select(args, cmd.InOrStdin())
	paths, err := source.Paths()
	if err != nil {
		return err
	}
	if source.Name() == "none" {
		logger.Warn("No paths given and stdin is a terminal; nothing to do")
	}
	logger.Debug("Collected paths", logger.String("source", source.Name()), logger.Int("count", len(paths)))

	filter, err := pathfilter.New(pathfilter.Config{
		Excludes:         s.exclude,
		RespectGitignore: s.respectGitignore,
	})
	if err != nil {
		return err
	}

	batch := feedline.Options{Jobs: s.jobs, Check: s.check}
	if filter != nil {
		logger.Debug("Path filter enabled", logger.Strings("exclude", filter.Patterns()),
			logger.Bool("respect_gitignore", s.respectGitignore))
		batch.Filter = filter
	}

	outcomes := feedline.Run(paths, batch)
	if s.sort {
		feedline.Sort(outcomes)
	}

	summary := feedline.Summarize(outcomes)
	logger.Info("Batch finished",
		logger.Int("total", summary.Total),
		logger.Int("success", summary.Success),
		logger.Int("skip", summary.Skip),
		logger.Int("warn", summary.Warn),
		logger.Int("error", summary.Error))

	out := cmd.OutOrStdout()
	renderer := report.NewRenderer(report.Options{
		Format:    s.format,
		Verbosity: s.verbosity,
		UseColor:  s.color.Resolve(out),
		Files:     paths,
	})
	if err := renderer.Render(out, outcomes); err != nil {
		return err
	}

	if feedline.HasErrors(outcomes) {
		return errPathsFailed
	}
	return nil
}

// initializeLogger sets up the logger from the --log-level and --log-json
// flags. fallbackLevel is used when --log-level was not given.
func initializeLogger(cmd *cobra.Command, fallbackLevel string) error {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	if fallbackLevel != "" && !cmd.Flags().Changed("log-level") {
		logLevelStr = fallbackLevel
	}
	jsonLogs, _ := cmd.Flags().GetBool("log-json")

	logLevel, ok := logger.ParseLevel(logLevelStr)
	if !ok {
		return fmt.Errorf("invalid log level %q (expected trace, debug, info, warn or error)", logLevelStr)
	}

	stderr := cmd.ErrOrStderr()
	logConfig := logger.Config{
		Level:     logLevel,
		UseColor:  report.ColorAuto.Resolve(stderr),
		JSON:      jsonLogs,
		Component: "feedline",
		Output:    stderr,
	}

	return logger.Initialize(logConfig)
}
