package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quiz-session/internal/cli"
	"quiz-session/internal/config"
	"quiz-session/internal/logging"
)

var (
	// Global flags
	verbose bool
	dbPath  string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Interactive quiz sessions over the console or TCP",
	Long: `quiz keeps a bank of question/answer pairs and lets users manage them,
test themselves on a single question or play through all of them in random
order.

Run without arguments to start a session on this terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		if verbose {
			cfg.LogLevel = "debug"
		}

		// The console session owns the terminal; log only when asked to.
		if cmd == cmd.Root() && !verbose {
			logger = zap.NewNop()
			return nil
		}

		logger, err = logging.New(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runConsole,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path, or :memory: (default from QUIZ_DB_PATH)")

	rootCmd.AddCommand(serveCmd, importCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, closeRepo, err := openRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	return cli.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), newDispatcher(repo))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
