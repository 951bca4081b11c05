package usecase

import (
	"context"
	"log/slog"
	"time"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

const orderSubsystem = "orders"

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders  repository.OrderRepository
	notices clientNotices
	policy  Policy
	logger  *slog.Logger
	now     func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	notifier Notifier,
	policy Policy,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:  orders,
		notices: clientNotices{clients: clients, notifier: notifier, logger: logger},
		policy:  policy,
		logger:  logger,
		now:     time.Now,
	}
}

// Create admits a new order unless the monthly capacity is exhausted.
// The capacity check counts then inserts, so concurrent creates may overshoot it.
func (u *OrderUseCase) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if order.VehicleID <= 0 || order.ClientID <= 0 || order.DepartmentID <= 0 || blank(order.ClientDiagnose) {
		return nil, domainErrors.ErrInvalidInput
	}
	if order.StartDate.IsZero() {
		order.StartDate = u.now()
	}

	if u.policy.MonthlyOrderCap > 0 {
		from, to := monthBounds(order.StartDate)
		count, err := u.orders.CountStartedBetween(ctx, from, to)
		if err != nil {
			return nil, storeError(u.logger, orderSubsystem, "count", err)
		}
		if count >= u.policy.MonthlyOrderCap {
			return nil, domainErrors.ErrMaxOrderReached
		}
	}

	order.ID = 0
	order.Status = model.OrderStatusAccepted
	order.EndDate = nil
	order.SendDoneNotification = false

	created, err := u.orders.Create(ctx, &order)
	if err != nil {
		return nil, storeError(u.logger, orderSubsystem, "create", err)
	}
	return created, nil
}

// Get returns order with intake images.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	if id <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(u.logger, orderSubsystem, "get", err)
	}
	return order, nil
}

// ChangeStatus persists a new pipeline status. Reaching ReadyForPickup
// notifies the client on every call; reaching Completed stamps the end date.
func (u *OrderUseCase) ChangeStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if id <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(u.logger, orderSubsystem, "get", err)
	}

	change := model.StatusChange{
		Status:               status,
		EndDate:              order.EndDate,
		SendDoneNotification: order.SendDoneNotification,
	}
	switch status {
	case model.OrderStatusReadyForPickup:
		change.SendDoneNotification = true
	case model.OrderStatusCompleted:
		end := u.now()
		if end.Before(order.StartDate) {
			end = order.StartDate
		}
		change.EndDate = &end
	}

	if err := u.orders.UpdateStatus(ctx, id, change); err != nil {
		return nil, storeError(u.logger, orderSubsystem, "update_status", err)
	}
	order.Status = change.Status
	order.EndDate = change.EndDate
	order.SendDoneNotification = change.SendDoneNotification

	if status == model.OrderStatusReadyForPickup {
		u.notices.notify(ctx, model.EventOrderReady, order, nil)
	}
	return order, nil
}

// monthBounds returns [first day of month, first day of next month) in t's location.
func monthBounds(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}
