package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

// Output formats
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return errors.InvalidArgumentf("unknown output format %q", format)
	}
}

// render writes v as JSON or YAML, or calls text for the human form
func render(v interface{}, text func(w io.Writer)) error {
	return renderTo(os.Stdout, output, v, text)
}

func renderTo(w io.Writer, format string, v interface{}, text func(w io.Writer)) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode json")
		}
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "failed to flush yaml")
		}
	default:
		text(w)
	}
	return nil
}

func printCharacter(w io.Writer, c *pokerole.Character) {
	fmt.Fprintf(w, "%s (%s #%d) [%s]\n", c.Nickname, c.SpeciesName, c.DexID, c.ID)
	fmt.Fprintf(w, "  Type:   %s\n", strings.Join(c.Types(), "/"))
	fmt.Fprintf(w, "  Rank:   %s  Status: %s\n", c.Rank, c.Status)
	fmt.Fprintf(w, "  HP:     %d/%d  Will: %d/%d\n", c.HP.Current, c.HP.Max, c.Will.Current, c.Will.Max)
	a := c.Attributes
	fmt.Fprintf(w, "  STR %d/%d  DEX %d/%d  VIT %d/%d  SPE %d/%d  INS %d/%d\n",
		a.Strength.Current, a.Strength.Max,
		a.Dexterity.Current, a.Dexterity.Max,
		a.Vitality.Current, a.Vitality.Max,
		a.Special.Current, a.Special.Max,
		a.Insight.Current, a.Insight.Max,
	)
	if c.Nature != "" {
		fmt.Fprintf(w, "  Nature: %s (confidence %s)\n", c.Nature, c.Confidence)
	}
	fmt.Fprintf(w, "  Happiness %d  Loyalty %d  Battles %d  Victories %d\n",
		c.Happiness, c.Loyalty, c.Battles, c.Victories)
	if len(c.Moves) > 0 {
		fmt.Fprintf(w, "  Moves:  %s\n", strings.Join(c.Moves, ", "))
	}
}

func printTrainer(w io.Writer, t *pokerole.Trainer) {
	fmt.Fprintf(w, "%s, age %d\n", t.Name, t.Age)
	fmt.Fprintf(w, "  Money:   %d\n", t.Money)
	fmt.Fprintf(w, "  Pokedex: %d seen, %d caught\n", t.Pokedex.Seen, t.Pokedex.Caught)
	fmt.Fprintf(w, "  Nature:  %s (confidence %d)\n", t.Nature, t.Confidence)
	fmt.Fprintf(w, "  HP:      %d/%d  Will: %d/%d\n", t.HP.Current, t.HP.Max, t.Will.Current, t.Will.Max)
	for _, pocket := range []pokerole.Pocket{pokerole.PocketMain, pokerole.PocketKey} {
		items := *t.Inventory.Pocket(pocket)
		if len(items) == 0 {
			continue
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
		}
		fmt.Fprintf(w, "  %-8s %s\n", pocket+":", strings.Join(parts, ", "))
	}
	for _, tier := range pokerole.PotionTiers() {
		if n := t.Inventory.Potions[tier]; n > 0 {
			fmt.Fprintf(w, "  %s: %d\n", tier, n)
		}
	}
}
