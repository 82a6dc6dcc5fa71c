package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/roster"
)

var (
	trainerName       string
	trainerAge        int
	trainerMoney      int
	trainerNature     string
	trainerConfidence int
	trainerSeen       int
	trainerCaught     int
)

var trainerCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Manage the trainer sheet and inventory",
}

var trainerShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the trainer sheet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := svc.roster.GetTrainer(cmd.Context(), &roster.GetTrainerInput{UserID: svc.user()})
		if err != nil {
			return err
		}
		return render(out.Trainer, func(w io.Writer) {
			printTrainer(w, out.Trainer)
		})
	},
}

var trainerUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit fields of the trainer sheet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		edits, err := trainerEditsFromFlags(cmd)
		if err != nil {
			return err
		}
		out, err := svc.roster.UpdateTrainer(cmd.Context(), &roster.UpdateTrainerInput{
			UserID: svc.user(),
			Edits:  edits,
		})
		if err != nil {
			return err
		}
		return render(out.Trainer, func(w io.Writer) {
			printTrainer(w, out.Trainer)
		})
	},
}

var trainerItemCmd = &cobra.Command{
	Use:   "item [main|key] [name] [delta]",
	Short: "Add or remove items from a pocket",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := parseDelta(args[2])
		if err != nil {
			return err
		}
		out, err := svc.roster.AdjustInventory(cmd.Context(), &roster.AdjustInventoryInput{
			UserID: svc.user(),
			Pocket: pokerole.Pocket(args[0]),
			Name:   args[1],
			Delta:  delta,
		})
		if err != nil {
			return err
		}
		return render(out.Inventory, func(w io.Writer) {
			printPocket(w, out.Inventory, pokerole.Pocket(args[0]))
		})
	},
}

var trainerPotionCmd = &cobra.Command{
	Use:   "potion [tier] [delta]",
	Short: "Add or use potion charges",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := parseDelta(args[1])
		if err != nil {
			return err
		}
		tier := pokerole.PotionTier(args[0])
		out, err := svc.roster.AdjustInventory(cmd.Context(), &roster.AdjustInventoryInput{
			UserID:     svc.user(),
			PotionTier: tier,
			Delta:      delta,
		})
		if err != nil {
			return err
		}
		return render(out.Inventory.Potions, func(w io.Writer) {
			fmt.Fprintf(w, "%s: %d\n", tier, out.Inventory.Potions[tier])
		})
	},
}

func init() {
	f := trainerUpdateCmd.Flags()
	f.StringVar(&trainerName, "name", "", "trainer name")
	f.IntVar(&trainerAge, "age", 0, "age")
	f.IntVar(&trainerMoney, "money", 0, "money")
	f.StringVar(&trainerNature, "nature", "", "nature name, sets confidence from the nature")
	f.IntVar(&trainerConfidence, "confidence", 0, "confidence, overrides the nature's value")
	f.IntVar(&trainerSeen, "seen", 0, "pokedex seen count")
	f.IntVar(&trainerCaught, "caught", 0, "pokedex caught count")

	trainerCmd.AddCommand(trainerShowCmd)
	trainerCmd.AddCommand(trainerUpdateCmd)
	trainerCmd.AddCommand(trainerItemCmd)
	trainerCmd.AddCommand(trainerPotionCmd)
}

func trainerEditsFromFlags(cmd *cobra.Command) (roster.TrainerEdits, error) {
	var edits roster.TrainerEdits
	changed := cmd.Flags().Changed

	if changed("name") {
		edits.Name = &trainerName
	}
	if changed("age") {
		edits.Age = &trainerAge
	}
	if changed("money") {
		edits.Money = &trainerMoney
	}
	if changed("nature") {
		edits.Nature = &trainerNature
	}
	if changed("confidence") {
		edits.Confidence = &trainerConfidence
	}

	if changed("seen") || changed("caught") {
		out, err := svc.roster.GetTrainer(cmd.Context(), &roster.GetTrainerInput{UserID: svc.user()})
		if err != nil {
			return edits, err
		}
		dex := out.Trainer.Pokedex
		if changed("seen") {
			dex.Seen = trainerSeen
		}
		if changed("caught") {
			dex.Caught = trainerCaught
		}
		edits.Pokedex = &dex
	}

	if edits == (roster.TrainerEdits{}) {
		return edits, errors.InvalidArgument("no fields to update")
	}
	return edits, nil
}

func parseDelta(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.InvalidArgumentf("delta %q is not a whole number", s)
	}
	return n, nil
}

func printPocket(w io.Writer, inv pokerole.Inventory, pocket pokerole.Pocket) {
	items := inv.Pocket(pocket)
	if items == nil || len(*items) == 0 {
		fmt.Fprintf(w, "%s pocket is empty\n", pocket)
		return
	}
	for _, item := range *items {
		fmt.Fprintf(w, "%-20s x%d\n", item.Name, item.Quantity)
	}
}
