package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/roster"
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Teach and forget character moves",
}

var movesLearnCmd = &cobra.Command{
	Use:   "learn [character-id] [move]",
	Short: "Learn a move from the species learnset",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.roster.LearnMove(cmd.Context(), &roster.LearnMoveInput{
			UserID:      svc.user(),
			CharacterID: args[0],
			MoveName:    args[1],
		})
		if err != nil {
			return err
		}
		return render(out, func(w io.Writer) {
			if !out.Added {
				fmt.Fprintf(w, "Already knows %s\n", args[1])
			}
			fmt.Fprintf(w, "Moves (%d/%d): %s\n", len(out.Moves), out.Limit, strings.Join(out.Moves, ", "))
		})
	},
}

var movesForgetCmd = &cobra.Command{
	Use:   "forget [character-id] [move]",
	Short: "Forget a known move",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.roster.ForgetMove(cmd.Context(), &roster.ForgetMoveInput{
			UserID:      svc.user(),
			CharacterID: args[0],
			MoveName:    args[1],
		})
		if err != nil {
			return err
		}
		return render(out, func(w io.Writer) {
			fmt.Fprintf(w, "Moves: %s\n", strings.Join(out.Moves, ", "))
		})
	},
}

func init() {
	movesCmd.AddCommand(movesLearnCmd)
	movesCmd.AddCommand(movesForgetCmd)
}
