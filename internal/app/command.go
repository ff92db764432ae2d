package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kyaoi/colview/internal/config"
	"github.com/kyaoi/colview/internal/logger"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates the colview command tree.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		cfg     *config.Config
	)

	rootCmd := &cobra.Command{
		Use:   "colview [file|dir]",
		Short: "Browse CSV tables and choose which columns to show",
		Long: `colview opens a CSV table, or a .table.md document with a YAML front
matter declaring grouped columns, and lets you choose the displayed columns
in a dialog. When the document declares displayColumns, confirming the
dialog writes the selection back to the file.`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Debug {
				level = slog.LevelDebug
			}
			if err := logger.Init(logger.Options{Enabled: cfg.Debug, LogDir: cfg.LogDir, Level: level}); err != nil {
				return fmt.Errorf("failed to initialise logging: %w", err)
			}
			if used := cfg.FileUsed(); used != "" {
				logger.Debug("config loaded", "file", used)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return Run(targetArg(args), cfg)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return logger.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: "+config.DefaultPath()+")")
	flags.Int("tree-width", config.DefaultTreeWidth, "preferred width of the column tree")
	flags.Bool("show-tree", true, "show the column tree on start")
	flags.String("style", config.DefaultStyle, "glamour style used to render the table")
	flags.Int("dialog-width", config.DefaultDialogWidth, "width of the column dialog")
	flags.Bool("watch", true, "reload the document when it changes on disk")
	flags.Bool("debug", false, "write debug logs")
	flags.String("log-dir", "", "directory for log files (default: ~/.colview/logs)")

	rootCmd.AddCommand(newPrintCommand())
	rootCmd.AddCommand(newKeysCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	defer func() { _ = logger.Close() }()
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func targetArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
