package main

import (
	"fmt"
	"io"

	"github.com/kevin-chtw/tw_riichi/hand"
	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/spf13/cobra"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var waitsCmd = &cobra.Command{
	Use:   "waits <hand>...",
	Short: "List the tenpai arrangements of each hand, e.g. 123m456p789s1z",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		distinct, err := cmd.Flags().GetBool("distinct")
		if err != nil {
			return err
		}
		for _, arg := range args {
			tiles, err := mahjong.ParseHand(arg)
			if err != nil {
				return err
			}
			arrangements := hand.FindWaits(tiles)
			logger.Log.Debugf("%s: %d arrangements", arg, len(arrangements))
			if distinct {
				arrangements = hand.Distinct(arrangements)
			}
			printArrangements(cmd.OutOrStdout(), tiles, arrangements)
		}
		return nil
	},
}

func init() {
	waitsCmd.Flags().Bool("distinct", false, "drop repeated arrangements")
	rootCmd.AddCommand(waitsCmd)
}

func printArrangements(w io.Writer, tiles []mahjong.Tile, arrangements []hand.HandArrangement) {
	fmt.Fprintf(w, "%s\n", mahjong.TilesName(tiles))
	if len(arrangements) == 0 {
		fmt.Fprintln(w, "  not tenpai")
		return
	}
	for _, a := range arrangements {
		fmt.Fprintf(w, "  %s\n", a)
	}
	fmt.Fprintf(w, "  waits: %s\n", mahjong.ValuesName(hand.WaitingValues(arrangements)))
}
