package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"astrielle/internal/catalog"
	"astrielle/internal/engine"
	"astrielle/internal/ui"
)

func newOddsCmd() *cobra.Command {
	var rolls int

	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Show per-item draw probabilities, optionally verified by sampling",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}

			var rng engine.RandomSource
			if cfg.Seed != 0 {
				rng = engine.NewSeededSource(cfg.Seed)
			}
			eng, err := engine.NewDrawEngine(cat.Items, cat.Weights, rng)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			total := 0
			for _, it := range cat.Items {
				total += cat.Weights[it.Rarity]
			}

			fmt.Fprintln(out, ui.Heading(ui.IconDice, "Draw Odds"))
			for _, it := range cat.Items {
				p := float64(cat.Weights[it.Rarity]) / float64(total)
				fmt.Fprintf(out, "- %s %s\n",
					ui.RarityStyle(it.Rarity).Render(it.Name),
					ui.Muted.Render(fmt.Sprintf("%.2f%% (weight %d/%d)", p*100, cat.Weights[it.Rarity], total)))
			}

			if rolls > 0 {
				counts := make(map[string]int)
				for i := 0; i < rolls; i++ {
					counts[eng.Roll().Name]++
				}
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("Observed over %d rolls", rolls)))
				for _, it := range cat.Items {
					freq := float64(counts[it.Name]) / float64(rolls)
					fmt.Fprintf(out, "- %s %s\n",
						ui.RarityStyle(it.Rarity).Render(it.Name),
						ui.Muted.Render(fmt.Sprintf("%.2f%% (%d)", freq*100, counts[it.Name])))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rolls, "rolls", 0, "sample this many draws and report observed frequencies")

	return cmd
}
