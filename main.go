package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/ttpr0/landmark-routing/store"
	"golang.org/x/exp/slog"
)

func main() {
	config_file := flag.String("config", "./config.yaml", "path to the config file")
	flag.Parse()

	config, err := ReadConfig(*config_file)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	slog.SetDefault(NewLogger(os.Stdout, config.Logging.Level))

	datasets, err := store.NewDirStore(config.Datasets.UploadFolder)
	if err != nil {
		slog.Error("failed to open upload folder: " + err.Error())
		os.Exit(1)
	}
	metrics := NewMetrics()
	manager := NewRoutingManager(config, datasets, metrics)
	defer manager.Close()

	if config.Datasets.Cache && config.Datasets.Watch {
		if err := manager.Watch(datasets.Dir()); err != nil {
			slog.Warn("failed to watch upload folder: " + err.Error())
		}
	}

	app := NewRouter(config, manager, metrics)

	slog.Info("listening on port " + config.Server.Port)
	if err := http.ListenAndServe(":"+config.Server.Port, app); err != nil {
		slog.Error(err.Error())
	}
}
