package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:               "tenpai",
	Short:             "tenpai enumerates the waiting shapes of riichi mahjong hands",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (yaml)")
	flags.String("log-level", "info", "log level")
	flags.String("log-dir", "", "directory for rotated log files, stderr when empty")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log.dir", flags.Lookup("log-dir"))
	viper.SetDefault("server.type", "tenpai")
	viper.SetEnvPrefix("tenpai")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

func setup(cmd *cobra.Command, args []string) error {
	if file := viper.GetString("config"); file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	l, err := utils.Logger(utils.ParseLevel(viper.GetString("log.level")), viper.GetString("log.dir"))
	if err != nil {
		return err
	}
	logger.SetLogger(l)
	return nil
}
