package components

import (
	"internship-checkout/internal/infra/repository"
	"internship-checkout/internal/infra/uow"
	"internship-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

// PersistenceModule holds everything backed by Postgres.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Attempts
		fx.Annotate(
			repository.NewAttemptRepository,
			fx.As(new(shared.AttemptRepository)),
		),
	),
)
