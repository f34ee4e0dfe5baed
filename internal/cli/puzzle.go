package cli

import (
	"github.com/spf13/cobra"
)

func newPuzzlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "puzzles",
		Short: "Show the loaded puzzle pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PuzzlePoolResult

			if err := client.Get("/api/v1/puzzles", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
