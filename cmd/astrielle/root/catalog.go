package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"astrielle/internal/catalog"
	"astrielle/internal/ui"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate and list the obtainable item catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconBox, "Item Catalog"))
			for _, it := range cat.Items {
				ui.RenderItem(out, it)
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Gated games"))
			if len(cat.Games) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("- (none)"))
			}
			for name, required := range cat.Games {
				fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(name+":"), ui.Muted.Render("requires "+required))
			}
			return nil
		},
	}

	return cmd
}
