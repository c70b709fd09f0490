package main

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"

	"pagecomb/app/catalog"
	"pagecomb/app/cfg"
	"pagecomb/app/config"
	"pagecomb/app/database"
	"pagecomb/app/prune"
	"pagecomb/app/site"
	"pagecomb/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	siteCfg, err := config.NewLoader(appCfg.ConfigFile).Load()
	if err != nil {
		slog.Error("Failed to load site configuration", "error", err)
		os.Exit(1)
	}

	// The command-line flag wins over site.yaml
	baseUrl := cmp.Or(appCfg.BaseUrl, siteCfg.Site.BaseUrl)

	var task tasks.TaskInterface

	switch appCfg.Command {
	case "generate", "reconcile":
		db, err := database.NewConnection(appCfg.DBPath)
		if err != nil {
			slog.Error("Failed to open manifest database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		version, dirty, err := database.RunMigrations(db)
		if err != nil {
			slog.Error("Failed to migrate manifest database", "error", err)
			os.Exit(1)
		}
		slog.Debug("Manifest database ready", "version", version, "dirty", dirty)

		buildRepo := database.NewBuildRepository(db)

		if appCfg.Command == "generate" {
			task = tasks.NewGenerateSiteTask(appCfg.KeywordsPath,
				catalog.NewKeywordLoader(),
				site.NewPageGenerator(baseUrl),
				site.NewIndexGenerator(baseUrl, siteCfg.Site.Title, siteCfg.Site.Description),
				site.NewSitemapGenerator(baseUrl),
				site.NewRobotsGenerator(baseUrl),
				site.NewWriter(appCfg.SiteDir),
				buildRepo)
		} else {
			task = tasks.NewReconcileSiteTask(appCfg.KeywordsPath, appCfg.SiteDir,
				catalog.NewKeywordLoader(), buildRepo)
		}

	case "prune":
		pruner := prune.NewPruner(siteCfg.Prune.GetMinImpressions(), siteCfg.Prune.GetMinClicks())
		task = tasks.NewPruneMetricsTask(appCfg.MetricsPath, appCfg.PruneListPath,
			catalog.NewMetricsLoader(), pruner)

	default:
		slog.Error("Unknown command", "command", appCfg.Command)
		os.Exit(1)
	}

	slog.Info("Starting job", "command", appCfg.Command, "version", appCfg.Version)

	task.Start()
	if err := task.Execute(context.Background()); err != nil {
		slog.Error("Job failed", "command", appCfg.Command, "error", err)
		os.Exit(1)
	}
}
