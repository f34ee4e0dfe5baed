package cli

import (
	"github.com/spf13/cobra"
)

func newWheelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Wheel reference commands",
	}

	cmd.AddCommand(newWheelOptionsCmd())

	return cmd
}

func newWheelOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the standard wheel segments",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WheelOptionsResult

			if err := client.Get("/api/v1/wheel/options", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
