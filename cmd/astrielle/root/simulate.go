package root

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"astrielle/internal/engine"
	"astrielle/internal/ui"
)

func newSimulateCmd() *cobra.Command {
	var (
		distance int
		seconds  int
		idle     int
		tokens   int
		useItem  string
		useOn    string
		play     []string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted session and print the resulting game state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := newSession(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			s.Run(distance, seconds)
			s.IdleProgress(idle)

			s.Ledger().Add(engine.KindGachaToken, tokens)
			fmt.Fprintln(out, ui.H2.Render(ui.IconDice+" Gacha Rolls"))
			for {
				it := s.RollGacha()
				if it == nil {
					break
				}
				ui.RenderItem(out, *it)
			}
			fmt.Fprintln(out, "")

			if useItem != "" {
				msg, err := s.UseItem(useItem, useOn)
				var notUsable engine.ItemNotUsableError
				switch {
				case err == nil:
					fmt.Fprintln(out, ui.Good.Render(msg))
				case errors.As(err, &notUsable):
					fmt.Fprintln(out, ui.Warn.Render(err.Error()))
				default:
					return err
				}
				fmt.Fprintln(out, "")
			}

			for _, name := range play {
				if err := tryPlay(out, s, name, seconds); err != nil {
					return err
				}
			}
			if len(play) > 0 {
				fmt.Fprintln(out, "")
			}

			ui.RenderSnapshot(out, s.Status())
			return nil
		},
	}

	cmd.Flags().IntVar(&distance, "distance", 2500, "run distance in feet")
	cmd.Flags().IntVar(&seconds, "seconds", 120, "run duration in seconds")
	cmd.Flags().IntVar(&idle, "idle", 60, "idle elapsed time in seconds")
	cmd.Flags().IntVar(&tokens, "tokens", 3, "gacha tokens granted before rolling")
	cmd.Flags().StringVar(&useItem, "use-item", "Fuel Cell", "consumable to use after rolling (empty to skip)")
	cmd.Flags().StringVar(&useOn, "use-on", "Asteroid Mining", "game the consumable is used on")
	cmd.Flags().StringSliceVar(&play, "play", nil, "games to attempt to play for the run duration")

	return cmd
}

// tryPlay composes the unlock check with Play. The engine keeps the two
// independent; the driver is the layer that decides to gate on CanPlay.
func tryPlay(out io.Writer, s *engine.Session, name string, seconds int) error {
	e, ok := s.Entity(name)
	if !ok {
		return fmt.Errorf("unknown game %q", name)
	}
	if !e.CanPlay(s.Inventory()) {
		lockErr := engine.LockedGameError{Game: name}
		if g, ok := e.(*engine.Game); ok {
			lockErr.RequiredItem = g.RequiredItem()
		}
		fmt.Fprintln(out, ui.Bad.Render(ui.IconLock+" "+lockErr.Error()))
		return nil
	}
	if !e.Play(seconds) {
		fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s: not enough playtime for %ds", name, seconds)))
		return nil
	}
	fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s: played for %ds", name, seconds)))
	return nil
}
