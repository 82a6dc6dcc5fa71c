package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/roster"
)

var (
	addNickname string
	showBoxes   bool
	battleWon   bool

	editNickname  string
	editNature    string
	editHappiness int
	editLoyalty   int
	editStatus    string
	editRank      string
	editItem      string
	editAccessory string
	editHP        int
	editWill      int
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the party and PC boxes",
}

var rosterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the party, and the boxes with --boxes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := svc.roster.GetRoster(cmd.Context(), &roster.GetRosterInput{UserID: svc.user()})
		if err != nil {
			return err
		}
		return render(out.Roster, func(w io.Writer) {
			printRoster(w, out.Roster, showBoxes)
		})
	},
}

var rosterAddCmd = &cobra.Command{
	Use:   "add [slot] [species]",
	Short: "Create a character from a species in an empty slot",
	Long:  "Slots are written party/N (0-5) or boxN/M (box 0-19, slot 0-29).",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := pokerole.ParseSlotAddress(args[0])
		if err != nil {
			return err
		}
		out, err := svc.roster.AddCharacter(cmd.Context(), &roster.AddCharacterInput{
			UserID:      svc.user(),
			Slot:        slot,
			SpeciesName: args[1],
			Nickname:    addNickname,
		})
		if err != nil {
			return err
		}
		return render(out.Character, func(w io.Writer) {
			fmt.Fprintf(w, "Added to %s\n", out.Slot)
			printCharacter(w, out.Character)
		})
	},
}

var rosterMoveCmd = &cobra.Command{
	Use:   "move [from] [to]",
	Short: "Swap the contents of two slots",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := pokerole.ParseSlotAddress(args[0])
		if err != nil {
			return err
		}
		to, err := pokerole.ParseSlotAddress(args[1])
		if err != nil {
			return err
		}
		out, err := svc.roster.MoveCharacter(cmd.Context(), &roster.MoveCharacterInput{
			UserID: svc.user(),
			From:   from,
			To:     to,
		})
		if err != nil {
			return err
		}
		return render(out, func(w io.Writer) {
			if out.Moved {
				fmt.Fprintf(w, "Swapped %s and %s\n", from, to)
			} else {
				fmt.Fprintln(w, "Nothing to move")
			}
		})
	},
}

var rosterReleaseCmd = &cobra.Command{
	Use:   "release [slot]",
	Short: "Release the character in a slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := pokerole.ParseSlotAddress(args[0])
		if err != nil {
			return err
		}
		out, err := svc.roster.ReleaseCharacter(cmd.Context(), &roster.ReleaseCharacterInput{
			UserID: svc.user(),
			Slot:   slot,
		})
		if err != nil {
			return err
		}
		return render(out.Character, func(w io.Writer) {
			fmt.Fprintf(w, "Released %s from %s\n", out.Character.Nickname, slot)
		})
	},
}

var rosterCharacterCmd = &cobra.Command{
	Use:   "character [id]",
	Short: "Show one character sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.roster.GetCharacter(cmd.Context(), &roster.GetCharacterInput{
			UserID:      svc.user(),
			CharacterID: args[0],
		})
		if err != nil {
			return err
		}
		return render(out.Character, func(w io.Writer) {
			fmt.Fprintf(w, "In %s\n", out.Slot)
			printCharacter(w, out.Character)
		})
	},
}

var rosterUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Edit fields of a character sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		edits, err := characterEditsFromFlags(cmd, args[0])
		if err != nil {
			return err
		}
		out, err := svc.roster.UpdateCharacter(cmd.Context(), &roster.UpdateCharacterInput{
			UserID:      svc.user(),
			CharacterID: args[0],
			Edits:       edits,
		})
		if err != nil {
			return err
		}
		return render(out.Character, func(w io.Writer) {
			printCharacter(w, out.Character)
		})
	},
}

var rosterBattleCmd = &cobra.Command{
	Use:   "battle [id]",
	Short: "Count a battle, and a victory with --victory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.roster.RecordBattle(cmd.Context(), &roster.RecordBattleInput{
			UserID:      svc.user(),
			CharacterID: args[0],
			Victory:     battleWon,
		})
		if err != nil {
			return err
		}
		return render(out, func(w io.Writer) {
			fmt.Fprintf(w, "Battles %d  Victories %d\n", out.Battles, out.Victories)
		})
	},
}

func init() {
	rosterShowCmd.Flags().BoolVar(&showBoxes, "boxes", false, "include occupied box slots")
	rosterAddCmd.Flags().StringVar(&addNickname, "nickname", "", "nickname (defaults to the species name)")
	rosterBattleCmd.Flags().BoolVar(&battleWon, "victory", false, "the battle was won")

	f := rosterUpdateCmd.Flags()
	f.StringVar(&editNickname, "nickname", "", "nickname")
	f.StringVar(&editNature, "nature", "", "nature name; empty clears it")
	f.IntVar(&editHappiness, "happiness", 0, "happiness (0-5)")
	f.IntVar(&editLoyalty, "loyalty", 0, "loyalty (0-5)")
	f.StringVar(&editStatus, "status", "", "status condition")
	f.StringVar(&editRank, "rank", "", "rank")
	f.StringVar(&editItem, "item", "", "held item")
	f.StringVar(&editAccessory, "accessory", "", "accessory")
	f.IntVar(&editHP, "hp", 0, "current HP")
	f.IntVar(&editWill, "will", 0, "current Will")

	rosterCmd.AddCommand(rosterShowCmd)
	rosterCmd.AddCommand(rosterAddCmd)
	rosterCmd.AddCommand(rosterMoveCmd)
	rosterCmd.AddCommand(rosterReleaseCmd)
	rosterCmd.AddCommand(rosterCharacterCmd)
	rosterCmd.AddCommand(rosterUpdateCmd)
	rosterCmd.AddCommand(rosterBattleCmd)
}

// characterEditsFromFlags turns the flags the user actually set into edits.
// HP and Will change the current value only; the maximum comes from the
// stored sheet.
func characterEditsFromFlags(cmd *cobra.Command, characterID string) (roster.CharacterEdits, error) {
	var edits roster.CharacterEdits
	changed := cmd.Flags().Changed

	if changed("nickname") {
		edits.Nickname = &editNickname
	}
	if changed("nature") {
		edits.Nature = &editNature
	}
	if changed("happiness") {
		edits.Happiness = &editHappiness
	}
	if changed("loyalty") {
		edits.Loyalty = &editLoyalty
	}
	if changed("item") {
		edits.Item = &editItem
	}
	if changed("accessory") {
		edits.Accessory = &editAccessory
	}
	if changed("status") {
		st, ok := pokerole.ParseStatus(editStatus)
		if !ok {
			return edits, errors.InvalidArgumentf("unknown status %q", editStatus)
		}
		edits.Status = &st
	}
	if changed("rank") {
		r := pokerole.ParseRank(editRank)
		if !r.IsValid() {
			return edits, errors.InvalidArgumentf("unknown rank %q", editRank)
		}
		edits.Rank = &r
	}

	if changed("hp") || changed("will") {
		out, err := svc.roster.GetCharacter(cmd.Context(), &roster.GetCharacterInput{
			UserID:      svc.user(),
			CharacterID: characterID,
		})
		if err != nil {
			return edits, err
		}
		if changed("hp") {
			hp := pokerole.Stat{Current: editHP, Max: out.Character.HP.Max}
			edits.HP = &hp
		}
		if changed("will") {
			will := pokerole.Stat{Current: editWill, Max: out.Character.Will.Max}
			edits.Will = &will
		}
	}

	if edits == (roster.CharacterEdits{}) {
		return edits, errors.InvalidArgument("no fields to update")
	}
	return edits, nil
}

func printRoster(w io.Writer, r *pokerole.Roster, boxes bool) {
	fmt.Fprintln(w, "Party:")
	for i, c := range r.Party {
		if c == nil {
			fmt.Fprintf(w, "  %-10s (empty)\n", pokerole.Party(i))
			continue
		}
		fmt.Fprintf(w, "  %-10s %-14s %-12s %s HP %d/%d [%s]\n",
			pokerole.Party(i), c.Nickname, c.SpeciesName, c.Status, c.HP.Current, c.HP.Max, c.ID)
	}
	if !boxes {
		return
	}
	for b, box := range r.Boxes {
		for s, c := range box {
			if c == nil {
				continue
			}
			fmt.Fprintf(w, "  %-10s %-14s %-12s [%s]\n",
				pokerole.InBox(b, s), c.Nickname, c.SpeciesName, c.ID)
		}
	}
}
