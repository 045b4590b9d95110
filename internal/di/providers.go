package di

import (
	"log/slog"
	"os"

	"algo-readme/internal/adapter/filesystem"
	"algo-readme/internal/adapter/logging"
	"algo-readme/internal/adapter/solvedac"
	"algo-readme/internal/config"
	"algo-readme/internal/domain/model"
	"algo-readme/internal/domain/ports"
	"algo-readme/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) (*slog.Logger, error) {
	handler, err := logging.NewHandler(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

func provideFilePattern(cfg *config.Config) *model.FilePattern {
	return model.NewFilePattern(cfg.SourceExt)
}

func provideProblemProvider(cfg *config.Config, logger ports.Logger) ports.ProblemProvider {
	return solvedac.New(cfg.SolvedACURL, cfg.RequestTimeout, logger)
}

func provideCollector(cfg *config.Config, pattern *model.FilePattern, logger ports.Logger) ports.ProblemCollector {
	return filesystem.NewCollector(cfg.SourceRoot, pattern, logger)
}

func providePublisher(cfg *config.Config, logger ports.Logger) ports.Publisher {
	return filesystem.NewFilePublisher(cfg.OutputPath, logger)
}

func provideEnricher(cfg *config.Config, problems ports.ProblemProvider, pattern *model.FilePattern, logger ports.Logger) *usecase.Enricher {
	return usecase.NewEnricher(problems, pattern, cfg.ProblemURLBase, logger)
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
