package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/autoservice/internal/domain/repository"
)

const uniqueViolation = "23505"

// pgxPool is the subset of *pgxpool.Pool used by the storage.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Clients() repository.ClientRepository {
	return &clientRepository{storage: s}
}

func (s *Storage) Checklists() repository.ChecklistRepository {
	return &checklistRepository{storage: s}
}

func (s *Storage) Estimates() repository.EstimateRepository {
	return &estimateRepository{storage: s}
}

func (s *Storage) Complaints() repository.ComplaintRepository {
	return &complaintRepository{storage: s}
}

func (s *Storage) Demands() repository.DemandRepository {
	return &demandRepository{storage: s}
}

func (s *Storage) Warehouse() repository.WarehouseRepository {
	return &warehouseRepository{storage: s}
}

var _ repository.Factory = (*Storage)(nil)

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS clients (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS vehicles (
            id BIGSERIAL PRIMARY KEY,
            client_id BIGINT NOT NULL REFERENCES clients(id),
            make TEXT NOT NULL DEFAULT '',
            model TEXT NOT NULL DEFAULT '',
            plate_number TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            vehicle_id BIGINT NOT NULL REFERENCES vehicles(id),
            client_id BIGINT NOT NULL REFERENCES clients(id),
            department_id BIGINT NOT NULL,
            client_diagnose TEXT NOT NULL,
            status SMALLINT NOT NULL DEFAULT 0,
            start_date TIMESTAMPTZ NOT NULL,
            end_date TIMESTAMPTZ,
            send_done_notification BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_images (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            path TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS checklists (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT UNIQUE NOT NULL REFERENCES orders(id),
            entries JSONB NOT NULL DEFAULT '[]',
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS estimates (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT UNIQUE NOT NULL REFERENCES orders(id),
            total_parts_price NUMERIC(14, 2) NOT NULL,
            total_services_price NUMERIC(14, 2) NOT NULL,
            total_price NUMERIC(14, 2) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS estimate_parts (
            id BIGSERIAL PRIMARY KEY,
            estimate_id BIGINT NOT NULL REFERENCES estimates(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            ean TEXT NOT NULL DEFAULT '',
            amount NUMERIC(14, 3) NOT NULL,
            gross_unit_price NUMERIC(14, 2) NOT NULL,
            total_price NUMERIC(14, 2) NOT NULL,
            source TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS estimate_services (
            id BIGSERIAL PRIMARY KEY,
            estimate_id BIGINT NOT NULL REFERENCES estimates(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            amount NUMERIC(14, 3) NOT NULL,
            gross_unit_price NUMERIC(14, 2) NOT NULL,
            total_price NUMERIC(14, 2) NOT NULL,
            source TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS complaints (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT UNIQUE NOT NULL REFERENCES orders(id),
            status TEXT NOT NULL,
            description TEXT NOT NULL,
            submit_description TEXT NOT NULL DEFAULT '',
            submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS demands (
            id BIGSERIAL PRIMARY KEY,
            requester_id BIGINT NOT NULL,
            department_id BIGINT NOT NULL,
            demand_date TIMESTAMPTZ NOT NULL,
            status SMALLINT NOT NULL,
            fulfilled_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS demand_items (
            id BIGSERIAL PRIMARY KEY,
            demand_id BIGINT NOT NULL REFERENCES demands(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            ean TEXT NOT NULL,
            gross_unit_price NUMERIC(14, 2) NOT NULL,
            amount NUMERIC(14, 3) NOT NULL,
            status SMALLINT NOT NULL DEFAULT 0,
            merged_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS warehouse_stock (
            id BIGSERIAL PRIMARY KEY,
            department_id BIGINT NOT NULL,
            ean TEXT NOT NULL,
            name TEXT NOT NULL,
            amount NUMERIC(14, 3) NOT NULL,
            unit_price NUMERIC(14, 2) NOT NULL,
            bin_location TEXT NOT NULL DEFAULT '',
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (department_id, ean)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_start_date ON orders(start_date)`,
		`CREATE INDEX IF NOT EXISTS idx_order_images_order ON order_images(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_estimate_parts_estimate ON estimate_parts(estimate_id)`,
		`CREATE INDEX IF NOT EXISTS idx_estimate_services_estimate ON estimate_services(estimate_id)`,
		`CREATE INDEX IF NOT EXISTS idx_demand_items_demand ON demand_items(demand_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
