package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"astrielle/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "astrielle",
	Short:         "Astrielle — single-player progression & reward engine",
	Long:          "Astrielle simulates a game-progression session: running earns currencies, an idle game advances passively, and gacha draws grant items that unlock or boost mini-games.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newSimulateCmd(),
		newCatalogCmd(),
		newOddsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
