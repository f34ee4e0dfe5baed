package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameStatusCmd())
	cmd.AddCommand(newGameSpinCmd())
	cmd.AddCommand(newGameGuessCmd())
	cmd.AddCommand(newGameVowelCmd())
	cmd.AddCommand(newGameSolveCmd())
	cmd.AddCommand(newGameNextTeamCmd())
	cmd.AddCommand(newGameNextRoundCmd())
	cmd.AddCommand(newGameEndRoundCmd())
	cmd.AddCommand(newGameLeaderboardCmd())
	cmd.AddCommand(newGameSummaryCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var teams []string
	var rounds int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new game",
		Long: `Create a new game from team definitions.

Each --team flag takes "Name:member1,member2". At least two teams are
required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := make([]map[string]any, 0, len(teams))
			for _, t := range teams {
				name, members, err := parseTeamSpec(t)
				if err != nil {
					return err
				}
				specs = append(specs, map[string]any{"name": name, "members": members})
			}

			req := map[string]any{"teams": specs}
			if rounds > 0 {
				req["total_rounds"] = rounds
			}

			var result CreateResult

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&teams, "team", nil, `Team definition "Name:member1,member2" (repeatable)`)
	cmd.Flags().IntVar(&rounds, "rounds", 0, "Number of rounds (default 3)")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all games on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ListResult

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <game-id>",
		Short: "Start a created game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ActionResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/start", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <game-id>",
		Short: "Show current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StatusResult

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSpinCmd() *cobra.Command {
	var amount int
	var prize string

	cmd := &cobra.Command{
		Use:   "spin <game-id> <result>",
		Short: "Enter a wheel spin result",
		Long: `Enter the physical wheel result for the current team.

The result is a money amount ("500") or a special segment name
("BANKRUPT", "LOSE_A_TURN", "FREE_SPIN", or a prize name with --prize).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"result": strings.ToUpper(args[1])}
			if amount > 0 {
				req["amount"] = amount
			}
			if prize != "" {
				req["result"] = "PRIZE"
				req["prize"] = prize
			}

			// A bare number means a money segment
			if n, err := parseMoney(args[1]); err == nil {
				req["result"] = "MONEY"
				req["amount"] = n
			}

			var result ActionResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/spin", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "Payout for a prize segment")
	cmd.Flags().StringVar(&prize, "prize", "", "Prize tag for a prize segment")

	return cmd
}

func newGameGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <game-id> <letter>",
		Short: "Guess a consonant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			letter := strings.ToUpper(args[1])
			if len(letter) != 1 {
				return fmt.Errorf("letter must be a single character A-Z")
			}

			req := map[string]string{"letter": letter}
			var result ActionResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/guess", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameVowelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vowel <game-id> <letter>",
		Short: "Buy a vowel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vowel := strings.ToUpper(args[1])
			if len(vowel) != 1 {
				return fmt.Errorf("vowel must be a single character")
			}

			req := map[string]string{"vowel": vowel}
			var result ActionResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/vowel", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <game-id> <solution...>",
		Short: "Attempt to solve the puzzle",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			solution := strings.Join(args[1:], " ")

			req := map[string]string{"solution": solution}
			var result ActionResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/solve", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameNextTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-team <game-id>",
		Short: "Pass the turn to the next team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ActionResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/advance-team", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameNextRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-round <game-id>",
		Short: "Advance past a completed round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ActionResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/advance-round", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameEndRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end-round <game-id>",
		Short: "Force-close the current round without a solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ActionResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/end-round", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard <game-id>",
		Short: "Show team standings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LeaderboardResult

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/leaderboard", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <game-id>",
		Short: "Show the money overview and round winners",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SummaryResult

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/summary", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", args[0])); err != nil {
				return err
			}

			fmt.Println("Game deleted")
			return nil
		},
	}
}

// parseTeamSpec splits "Name:member1,member2" into its parts
func parseTeamSpec(spec string) (string, []string, error) {
	name, memberPart, ok := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("team must be \"Name:member1,member2\", got %q", spec)
	}

	var members []string
	for _, m := range strings.Split(memberPart, ",") {
		if m = strings.TrimSpace(m); m != "" {
			members = append(members, m)
		}
	}
	if len(members) == 0 {
		return "", nil, fmt.Errorf("team %q needs at least one member", name)
	}

	return name, members, nil
}

// parseMoney accepts "500" or "$500"
func parseMoney(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	return n, nil
}
