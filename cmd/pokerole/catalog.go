package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/catalog"
)

var (
	syncIndexOnly bool

	searchRegion  string
	searchName    string
	searchTypes   []string
	searchRanks   []string
	searchStarter bool
	searchLimit   int
	searchMin     catalog.MinStats
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the Pokerole reference data",
}

var catalogSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the cached reference data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := svc.catalog.Sync(cmd.Context(), &catalog.SyncInput{IndexOnly: syncIndexOnly})
		if err != nil {
			return err
		}
		return render(out, func(w io.Writer) {
			kinds := make([]string, 0, len(out.Indexed))
			for kind := range out.Indexed {
				kinds = append(kinds, kind)
			}
			sort.Strings(kinds)
			for _, kind := range kinds {
				fmt.Fprintf(w, "indexed %-8s %d\n", kind, out.Indexed[kind])
			}
			if !syncIndexOnly {
				fmt.Fprintf(w, "fetched %d species and %d items\n", out.SpeciesFetched, out.ItemsFetched)
			}
		})
	},
}

var catalogSpeciesCmd = &cobra.Command{
	Use:   "species [name]",
	Short: "Show one species",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.catalog.GetSpecies(cmd.Context(), &catalog.GetSpeciesInput{Name: args[0]})
		if err != nil {
			return err
		}
		s := out.Species
		return render(s, func(w io.Writer) {
			types := s.Type1
			if s.Type2 != "" {
				types += "/" + s.Type2
			}
			fmt.Fprintf(w, "#%d %s (%s)\n", s.Number, s.Name, types)
			fmt.Fprintf(w, "  Base HP %d  Rank %s\n", s.BaseHP, s.RecommendedRank)
			fmt.Fprintf(w, "  STR %d/%d  DEX %d/%d  VIT %d/%d  SPE %d/%d  INS %d/%d\n",
				s.Strength, s.MaxStrength, s.Dexterity, s.MaxDexterity, s.Vitality, s.MaxVitality,
				s.Special, s.MaxSpecial, s.Insight, s.MaxInsight)
			fmt.Fprintf(w, "  Abilities: %s\n", joinNonEmpty(s.Ability1, s.Ability2, s.HiddenAbility))
			for _, m := range s.Moves {
				fmt.Fprintf(w, "  %-9s %s\n", m.Learned, m.Name)
			}
		})
	},
}

var catalogMoveCmd = &cobra.Command{
	Use:   "move [name]",
	Short: "Show one move",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.catalog.GetMove(cmd.Context(), &catalog.GetMoveInput{Name: args[0]})
		if err != nil {
			return err
		}
		m := out.Move
		return render(m, func(w io.Writer) {
			fmt.Fprintf(w, "%s (%s, power %d)\n", m.Name, m.Type, m.Power)
			fmt.Fprintf(w, "  Accuracy: %s\n", joinPool(m.Accuracy1, m.Accuracy2))
			if m.HasDamage() {
				fmt.Fprintf(w, "  Damage:   %s\n", joinPool(m.Damage1, m.Damage2))
			}
			fmt.Fprintf(w, "  Target:   %s\n", m.Target)
			if m.Effect != "" {
				fmt.Fprintf(w, "  Effect:   %s\n", m.Effect)
			}
		})
	},
}

var catalogAbilityCmd = &cobra.Command{
	Use:   "ability [name]",
	Short: "Show one ability",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.catalog.GetAbility(cmd.Context(), &catalog.GetAbilityInput{Name: args[0]})
		if err != nil {
			return err
		}
		return render(out.Ability, func(w io.Writer) {
			fmt.Fprintf(w, "%s\n  %s\n", out.Ability.Name, out.Ability.Effect)
		})
	},
}

var catalogNatureCmd = &cobra.Command{
	Use:   "nature [name]",
	Short: "Show one nature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.catalog.GetNature(cmd.Context(), &catalog.GetNatureInput{Name: args[0]})
		if err != nil {
			return err
		}
		n := out.Nature
		return render(n, func(w io.Writer) {
			fmt.Fprintf(w, "%s (confidence %s)\n  %s\n", n.Name, n.Confidence, strings.Join(n.Keywords, ", "))
		})
	},
}

var catalogItemCmd = &cobra.Command{
	Use:   "item [name]",
	Short: "Show one item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.catalog.GetItem(cmd.Context(), &catalog.GetItemInput{Name: args[0]})
		if err != nil {
			return err
		}
		return render(out.Item, func(w io.Writer) {
			fmt.Fprintf(w, "%s\n  %s\n", out.Item.Name, out.Item.Description)
		})
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search species by region, name, type, rank and stats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter := catalog.SpeciesFilter{
			Region:      searchRegion,
			Name:        searchName,
			Types:       searchTypes,
			StarterOnly: searchStarter,
			Min:         searchMin,
		}
		for _, r := range searchRanks {
			filter.Ranks = append(filter.Ranks, pokerole.ParseRank(r))
		}

		out, err := svc.catalog.SearchSpecies(cmd.Context(), &catalog.SearchSpeciesInput{
			Filter: filter,
			Limit:  searchLimit,
		})
		if err != nil {
			return err
		}
		return render(out, func(w io.Writer) {
			for _, s := range out.Species {
				fmt.Fprintf(w, "#%-4d %-20s %s\n", s.Number, s.Name, joinNonEmpty(s.Type1, s.Type2))
			}
			fmt.Fprintf(w, "%d of %d matches\n", len(out.Species), out.Total)
		})
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list [species|move|ability|nature|item]",
	Short: "List the names of one kind of document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := svc.catalog.ListNames(cmd.Context(), &catalog.ListNamesInput{Kind: args[0]})
		if err != nil {
			return err
		}
		return render(out.Names, func(w io.Writer) {
			for _, name := range out.Names {
				fmt.Fprintln(w, name)
			}
		})
	},
}

func init() {
	catalogSyncCmd.Flags().BoolVar(&syncIndexOnly, "index-only", false, "refresh the index without fetching documents")

	f := catalogSearchCmd.Flags()
	f.StringVar(&searchRegion, "region", catalog.RegionNational, "region: "+strings.Join(catalog.Regions(), ", "))
	f.StringVar(&searchName, "name", "", "name substring")
	f.StringSliceVar(&searchTypes, "type", nil, "type (repeatable, any match)")
	f.StringSliceVar(&searchRanks, "rank", nil, "recommended rank (repeatable)")
	f.BoolVar(&searchStarter, "starter", false, "only good starters")
	f.IntVar(&searchLimit, "limit", 0, "maximum results")
	f.IntVar(&searchMin.Strength, "min-strength", 0, "minimum base strength")
	f.IntVar(&searchMin.Dexterity, "min-dexterity", 0, "minimum base dexterity")
	f.IntVar(&searchMin.Vitality, "min-vitality", 0, "minimum base vitality")
	f.IntVar(&searchMin.Special, "min-special", 0, "minimum base special")
	f.IntVar(&searchMin.Insight, "min-insight", 0, "minimum base insight")

	catalogCmd.AddCommand(catalogSyncCmd)
	catalogCmd.AddCommand(catalogSpeciesCmd)
	catalogCmd.AddCommand(catalogMoveCmd)
	catalogCmd.AddCommand(catalogAbilityCmd)
	catalogCmd.AddCommand(catalogNatureCmd)
	catalogCmd.AddCommand(catalogItemCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogListCmd)
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}

func joinPool(primary, secondary string) string {
	if secondary == "" {
		return primary
	}
	return primary + " + " + secondary
}
