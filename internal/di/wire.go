//go:build wireinject

package di

import (
	"github.com/google/wire"

	"algo-readme/internal/adapter/logging"
	"algo-readme/internal/app"
	"algo-readme/internal/config"
	"algo-readme/internal/domain/ports"
	"algo-readme/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(flags config.Flags) (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideFilePattern,
		provideProblemProvider,
		provideCollector,
		providePublisher,
		provideEnricher,
		usecase.NewReadmeUpdate,
		wire.Bind(new(app.Runner), new(*usecase.ReadmeUpdate)),
		app.New,
		provideSchedule,
	)
	return nil, nil
}
