package components

import (
	"log/slog"

	"ootd-commerce/internal/infra/outbox"
	"ootd-commerce/internal/pkg/clock"
	"ootd-commerce/internal/pkg/config"
	"ootd-commerce/internal/pkg/metrics"
	"ootd-commerce/internal/usecase/shared"

	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Provide(NewOutboxWorker),
	fx.Invoke(outbox.Register),
)

type outboxParams struct {
	fx.In

	UoW       shared.UnitOfWork
	Jobs      outbox.JobStore
	Backlog   outbox.BacklogCounter
	Sweeper   outbox.KeySweeper
	Publisher outbox.Publisher `optional:"true"`
	Clock     clock.Clock
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
	Config    config.Config
}

func NewOutboxWorker(p outboxParams) *outbox.Worker {
	return outbox.NewWorker(
		p.UoW,
		p.Jobs,
		p.Backlog,
		p.Sweeper,
		p.Publisher,
		p.Clock,
		p.Metrics,
		p.Logger,
		outbox.OptionsFromConfig(p.Config.Outbox),
	)
}
