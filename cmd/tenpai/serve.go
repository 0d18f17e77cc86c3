package main

import (
	"strings"

	"github.com/kevin-chtw/tw_riichi/service"
	"github.com/kevin-chtw/tw_riichi/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/config"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tenpai remote as a pitaya backend server",
	RunE: func(cmd *cobra.Command, args []string) error {
		serverType := viper.GetString("server.type")
		app := pitaya.NewDefaultApp(false, serverType, pitaya.Cluster, map[string]string{}, *config.NewDefaultPitayaConfig())

		var results storage.Results
		if endpoints := viper.GetStringSlice("results.etcd.endpoints"); len(endpoints) > 0 {
			etcdResults := storage.NewETCDResults(resultsConfig(endpoints))
			if err := app.RegisterModule(etcdResults, "tenpaiResults"); err != nil {
				return err
			}
			results = etcdResults
		} else {
			memory, err := storage.NewMemoryResults(viper.GetInt("results.memory.size"))
			if err != nil {
				return err
			}
			results = memory
		}

		app.RegisterRemote(service.NewRemote(results),
			component.WithName("tenpai"),
			component.WithNameFunc(strings.ToLower),
		)
		logger.Log.Infof("starting %s server", serverType)
		app.Start()
		return nil
	},
}

func resultsConfig(endpoints []string) config.ETCDBindingConfig {
	return config.ETCDBindingConfig{
		Endpoints:   endpoints,
		Prefix:      viper.GetString("results.etcd.prefix"),
		DialTimeout: viper.GetDuration("results.etcd.dialtimeout"),
		LeaseTTL:    viper.GetDuration("results.etcd.leasettl"),
	}
}

func init() {
	viper.SetDefault("results.memory.size", 4096)
	viper.SetDefault("results.etcd.prefix", "tenpai/")
	viper.SetDefault("results.etcd.dialtimeout", "5s")
	viper.SetDefault("results.etcd.leasettl", "1h")
	rootCmd.AddCommand(serveCmd)
}
