package main

import (
	"fmt"
	"slices"

	"github.com/kevin-chtw/tw_riichi/hand"
	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/spf13/cobra"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var manualCmd = &cobra.Command{
	Use:   "manual <file>",
	Short: "Run every hand of a fixture file and check the declared waits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := mahjong.LoadManual(args[0])
		if err != nil {
			return err
		}
		if !m.Enabled() {
			logger.Log.Warnf("manual %s is disabled", args[0])
			return nil
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, h := range m.Hands() {
			arrangements := hand.FindWaits(h.Tiles)
			got := hand.WaitingValues(arrangements)
			if h.HasWaits && !slices.Equal(got, h.Waits) {
				failed++
				fmt.Fprintf(out, "FAIL %s: waits %s, want %s\n", h.Name, mahjong.ValuesName(got), mahjong.ValuesName(h.Waits))
				continue
			}
			fmt.Fprintf(out, "ok   %s: waits %s (%d arrangements)\n", h.Name, mahjong.ValuesName(got), len(arrangements))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d hands failed", failed, len(m.Hands()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(manualCmd)
}
