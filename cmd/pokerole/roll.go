package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/roll"
)

var (
	rollCharacter string
	rollSkill     string
	rollChoice    string
	rollDamage    bool
	rollHold      bool
	rollFaces     []int
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll attribute, move and initiative checks",
	Long: `Checks belong to the trainer unless --character names a party member.
Each subject has at most one open check. Use --hold to set up a check and
roll it later with "roll dice", optionally entering physical dice faces.`,
}

var rollAttributeCmd = &cobra.Command{
	Use:   "attribute [stat]",
	Short: "Check an attribute, optionally adding a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		subject := rollSubject()

		out, err := svc.roll.BeginAttributeCheck(ctx, &roll.BeginAttributeCheckInput{
			UserID:   svc.user(),
			Subject:  subject,
			StatName: args[0],
		})
		if err != nil {
			return err
		}
		if rollSkill != "" {
			out, err = svc.roll.ToggleSkill(ctx, &roll.ToggleSkillInput{
				UserID:  svc.user(),
				Subject: subject,
				Skill:   rollSkill,
			})
			if err != nil {
				return err
			}
		}
		return finishCheck(ctx, subject, out)
	},
}

var rollMoveCmd = &cobra.Command{
	Use:   "move [move]",
	Short: "Roll a move's accuracy, and its damage with --damage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		subject := rollSubject()

		out, err := svc.roll.BeginMoveCheck(ctx, &roll.BeginMoveCheckInput{
			UserID:   svc.user(),
			Subject:  subject,
			MoveName: args[0],
			Choice:   rollChoice,
		})
		if err != nil {
			return err
		}
		if out.NeedsChoice() || rollHold {
			return renderCheck(out)
		}

		out, err = rollOnce(ctx, subject, nil)
		if err != nil {
			return err
		}
		if !rollDamage {
			return renderCheck(out)
		}
		if err := renderCheck(out); err != nil {
			return err
		}

		out, err = svc.roll.RequestDamageRoll(ctx, &roll.RequestDamageRollInput{
			UserID:  svc.user(),
			Subject: subject,
			Choice:  rollChoice,
		})
		if err != nil {
			return err
		}
		return finishCheck(ctx, subject, out)
	},
}

var rollInitiativeCmd = &cobra.Command{
	Use:   "initiative",
	Short: "Roll initiative",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		subject := rollSubject()

		out, err := svc.roll.BeginInitiative(ctx, &roll.BeginInitiativeInput{
			UserID:  svc.user(),
			Subject: subject,
		})
		if err != nil {
			return err
		}
		return finishCheck(ctx, subject, out)
	},
}

var rollSkillCmd = &cobra.Command{
	Use:   "skill [skill]",
	Short: "Add or remove a skill on the open attribute check",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.roll.ToggleSkill(cmd.Context(), &roll.ToggleSkillInput{
			UserID:  svc.user(),
			Subject: rollSubject(),
			Skill:   args[0],
		})
		if err != nil {
			return err
		}
		return renderCheck(out)
	},
}

var rollChooseCmd = &cobra.Command{
	Use:   "choose [attribute]",
	Short: "Pick the attribute of an either-or pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.roll.ChooseAttribute(cmd.Context(), &roll.ChooseAttributeInput{
			UserID:  svc.user(),
			Subject: rollSubject(),
			Choice:  args[0],
		})
		if err != nil {
			return err
		}
		return renderCheck(out)
	},
}

var rollDiceCmd = &cobra.Command{
	Use:   "dice",
	Short: "Roll the open check, or commit faces rolled by hand",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := rollOnce(cmd.Context(), rollSubject(), rollFaces)
		if err != nil {
			return err
		}
		return renderCheck(out)
	},
}

var rollDamageCmd = &cobra.Command{
	Use:   "damage",
	Short: "Follow the rolled accuracy check with its damage roll",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		subject := rollSubject()

		out, err := svc.roll.RequestDamageRoll(ctx, &roll.RequestDamageRollInput{
			UserID:  svc.user(),
			Subject: subject,
			Choice:  rollChoice,
		})
		if err != nil {
			return err
		}
		return finishCheck(ctx, subject, out)
	},
}

var rollShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the open check",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := svc.roll.GetSession(cmd.Context(), &roll.GetSessionInput{
			UserID:  svc.user(),
			Subject: rollSubject(),
		})
		if err != nil {
			return err
		}
		rec := out.Record
		return render(rec, func(w io.Writer) {
			if rec.Session != nil {
				fmt.Fprintln(w, rec.Session.Describe())
			}
			if rec.Pending != nil {
				fmt.Fprintf(w, "Waiting for a %s choice: %s\n", rec.Pending.Stage, strings.Join(rec.Pending.Options, " or "))
			}
			fmt.Fprintf(w, "Expires %s\n", rec.ExpiresAt.Local().Format("15:04:05"))
		})
	},
}

var rollCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Discard the open check",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := svc.roll.CloseSession(cmd.Context(), &roll.CloseSessionInput{
			UserID:  svc.user(),
			Subject: rollSubject(),
		})
		if err != nil {
			return err
		}
		return render(out, func(w io.Writer) {
			if out.Closed {
				fmt.Fprintln(w, "Check closed")
			} else {
				fmt.Fprintln(w, "No check was open")
			}
		})
	},
}

func init() {
	rollCmd.PersistentFlags().StringVar(&rollCharacter, "character", "", "character ID; the trainer rolls when empty")

	rollAttributeCmd.Flags().StringVar(&rollSkill, "skill", "", "skill to add to the pool")
	rollAttributeCmd.Flags().BoolVar(&rollHold, "hold", false, "set up the check without rolling")

	rollMoveCmd.Flags().StringVar(&rollChoice, "choice", "", "attribute for an either-or pool")
	rollMoveCmd.Flags().BoolVar(&rollDamage, "damage", false, "roll damage after accuracy")
	rollMoveCmd.Flags().BoolVar(&rollHold, "hold", false, "set up the check without rolling")

	rollInitiativeCmd.Flags().BoolVar(&rollHold, "hold", false, "set up the check without rolling")

	rollDamageCmd.Flags().StringVar(&rollChoice, "choice", "", "attribute for an either-or damage pool")
	rollDamageCmd.Flags().BoolVar(&rollHold, "hold", false, "set up the damage roll without rolling")

	rollDiceCmd.Flags().IntSliceVar(&rollFaces, "faces", nil, "faces rolled by hand, one per die")

	rollCmd.AddCommand(rollAttributeCmd)
	rollCmd.AddCommand(rollMoveCmd)
	rollCmd.AddCommand(rollInitiativeCmd)
	rollCmd.AddCommand(rollSkillCmd)
	rollCmd.AddCommand(rollChooseCmd)
	rollCmd.AddCommand(rollDiceCmd)
	rollCmd.AddCommand(rollDamageCmd)
	rollCmd.AddCommand(rollShowCmd)
	rollCmd.AddCommand(rollCloseCmd)
}

func rollSubject() roll.Subject {
	return roll.Subject{CharacterID: rollCharacter}
}

func rollOnce(ctx context.Context, subject roll.Subject, faces []int) (*roll.CheckOutput, error) {
	return svc.roll.Roll(ctx, &roll.RollInput{
		UserID:  svc.user(),
		Subject: subject,
		Faces:   faces,
	})
}

// finishCheck rolls a freshly set up check unless --hold was given or the
// pool still waits on a choice
func finishCheck(ctx context.Context, subject roll.Subject, out *roll.CheckOutput) error {
	if out.NeedsChoice() || rollHold {
		return renderCheck(out)
	}
	rolled, err := rollOnce(ctx, subject, nil)
	if err != nil {
		return err
	}
	return renderCheck(rolled)
}

func renderCheck(out *roll.CheckOutput) error {
	return render(out, func(w io.Writer) {
		if out.NeedsChoice() {
			fmt.Fprintf(w, "Choose one of: %s\n", strings.Join(out.Options, ", "))
			return
		}
		if out.Session != nil {
			fmt.Fprintln(w, out.Session.Describe())
		}
	})
}
