// ABOUTME: Root command definition and CLI setup
// ABOUTME: Parses the worklog flags and comment, then runs the log engine
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harper/worklog/internal/config"
	"github.com/harper/worklog/internal/logging"
	"github.com/harper/worklog/internal/worklog"
)

// app carries the flags and resolved settings shared by all commands.
type app struct {
	configPath string
	verbose    bool

	dump         bool
	status       bool
	removeRecord bool
	finish       bool

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand builds the worklog command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "worklog [-d] [-s] [-r] [-f] <comment>",
		Short: "Small logging tool to make work and time management real easy",
		Long: `Worklog appends timestamped start, continue and finish records to a log file per day.

The first comment of a session starts it, later comments continue it, and
--finish stops it with the total working time. Use "--" to log a comment that
begins with a subcommand name.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: a.run,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/worklog/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.Flags().BoolVarP(&a.dump, "dump", "d", false, "Dump log file.")
	rootCmd.Flags().BoolVarP(&a.status, "status", "s", false, "Print working status and total time.")
	rootCmd.Flags().BoolVarP(&a.removeRecord, "remove-record", "r", false, "Remove last record from the log.")
	rootCmd.Flags().BoolVarP(&a.finish, "finish", "f", false, "Finish working.")

	rootCmd.AddCommand(a.listCmd())
	rootCmd.AddCommand(a.searchCmd())
	rootCmd.AddCommand(a.syncCmd())
	rootCmd.AddCommand(a.mcpCmd())

	return rootCmd
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, a.verbose)
	a.logger.Debug("config loaded", "directory", cfg.Directory)
	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	engine := worklog.New(worklog.Options{
		Root:   a.cfg.Directory,
		Logger: a.logger,
	})

	res, err := engine.Handle(worklog.Request{
		Dump:         a.dump,
		Status:       a.status,
		RemoveRecord: a.removeRecord,
		Finish:       a.finish,
		Args:         args,
	})
	if err != nil {
		return err
	}
	if err := printResult(out, res, a.cfg.Color); err != nil {
		return err
	}

	if res.Record != nil {
		a.mirrorToProject(*res.Record, res.Worktime)
	}
	if res.Removed {
		a.forgetDay(engine.Now())
	}
	if res.Record != nil || (res.Action == worklog.ActionRemove && !res.Empty) {
		a.autoSync()
	}
	return nil
}

// mirrorToProject copies a new record into the project log when the working
// directory belongs to a project with local logging enabled.
func (a *app) mirrorToProject(rec worklog.Record, worktime string) {
	workingDir, err := os.Getwd()
	if err != nil {
		return
	}
	projectRoot, err := config.FindProjectRoot(workingDir)
	if err != nil || projectRoot == "" {
		return
	}
	projectCfg, err := config.LoadProjectConfig(filepath.Join(projectRoot, config.ProjectFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to read project config: %v\n", err)
		return
	}
	if !projectCfg.LocalLogging {
		return
	}

	logDir := filepath.Join(projectRoot, projectCfg.LogDir)
	if err := logging.WriteProjectLog(logDir, projectCfg.LogFormat, rec, worktime); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write project log: %v\n", err)
		return
	}
	a.logger.Debug("project log updated", "dir", logDir)
}
