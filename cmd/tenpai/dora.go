package main

import (
	"fmt"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/spf13/cobra"
)

var doraCmd = &cobra.Command{
	Use:   "dora <indicator>...",
	Short: "Show the dora for each indicator, e.g. 9s or 4z",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			v, err := mahjong.ParseValue(arg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", v.Name(), v.NextDora().Name())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doraCmd)
}
