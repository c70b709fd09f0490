package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"pagecomb/app/catalog"
	"pagecomb/app/prune"
)

// PruneMetricsTask evaluates the metrics source and writes the list of
// low-performing slugs. The site itself is never touched; an external
// consumer acts on the list.
type PruneMetricsTask struct {
	Task
	metricsPath string
	outputPath  string
	loader      *catalog.MetricsLoader
	pruner      *prune.Pruner
}

func NewPruneMetricsTask(metricsPath string, outputPath string,
	loader *catalog.MetricsLoader, pruner *prune.Pruner) *PruneMetricsTask {
	return &PruneMetricsTask{
		Task:        NewTask(TaskTypePruneMetrics),
		metricsPath: metricsPath,
		outputPath:  outputPath,
		loader:      loader,
		pruner:      pruner,
	}
}

func (t *PruneMetricsTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	file, err := os.Open(t.metricsPath)
	if err != nil {
		return fmt.Errorf("failed to open metrics source: %w", err)
	}
	defer file.Close()

	entries, err := t.loader.Run(file)
	if err != nil {
		return fmt.Errorf("failed to load metrics: %w", err)
	}

	slugs := t.pruner.Run(entries)

	if err := prune.WriteList(t.outputPath, slugs); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", "PruneMetrics",
		"evaluated", len(entries),
		"pruned", len(slugs),
		"duration", t.GetDuration())

	return nil
}
