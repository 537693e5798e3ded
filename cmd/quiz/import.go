package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quiz-session/internal/opentdb"
)

var importAmount int

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import questions from the Open Trivia Database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		repo, closeRepo, err := openRepository(ctx)
		if err != nil {
			return err
		}
		defer closeRepo()

		created, err := opentdb.NewClient(nil).Import(ctx, repo, importAmount)
		if err != nil {
			return err
		}

		logger.Info("imported questions", zap.Int("count", len(created)))
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d questions.\n", len(created))
		return nil
	},
}

func init() {
	importCmd.Flags().IntVar(&importAmount, "amount", 10, "Number of questions to fetch (1-50)")
}
