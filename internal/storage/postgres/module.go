package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/config"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.ClientRepository { return s.Clients() },
		func(s *Storage) repository.ChecklistRepository { return s.Checklists() },
		func(s *Storage) repository.EstimateRepository { return s.Estimates() },
		func(s *Storage) repository.ComplaintRepository { return s.Complaints() },
		func(s *Storage) repository.DemandRepository { return s.Demands() },
		func(s *Storage) repository.WarehouseRepository { return s.Warehouse() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
