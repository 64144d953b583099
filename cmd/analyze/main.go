// analyze runs the configured analysis over one or more recordings: load,
// trigger window, tare, spectra, report.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/analysis"
	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/config"
	"github.com/CMOE-TUDelft/SkyBoxAnalysis/internal/logging"
)

func main() {
	configPath := flag.String("config", "analysis.yaml", "analysis config file")
	data := flag.String("data", "", "dataset path or glob, overrides the config")
	out := flag.String("out", "", "output directory, overrides the config")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.ApplyEnv()
	if *data != "" {
		cfg.Data = *data
	}
	if *out != "" {
		cfg.OutputDir = *out
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := logging.New(*debug)
	defer func() { _ = logger.Sync() }()

	session := analysis.NewSession(cfg, logger)
	outcomes, err := session.Run()
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}
	logger.Info("analysis complete",
		zap.String("run_id", session.ID),
		zap.Int("datasets", len(outcomes)),
	)
}
