package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

// Notifier accepts client notices once the triggering change is committed.
type Notifier interface {
	Notify(ctx context.Context, notice model.Notice)
}

// clientNotices resolves the client and vehicle of an order and queues a notice.
// Any failure in this phase is logged and never reaches the caller.
type clientNotices struct {
	clients  repository.ClientRepository
	notifier Notifier
	logger   *slog.Logger
}

func (n clientNotices) notify(ctx context.Context, event string, order *model.Order, subs map[string]string) {
	log := n.logger.With(slog.String("event", event), slog.Int64("order_id", order.ID))

	client, err := n.clients.GetByID(ctx, order.ClientID)
	if err != nil {
		log.Warn("notification aborted: client lookup failed", slog.String("error", err.Error()))
		return
	}
	vehicle, err := n.clients.GetVehicle(ctx, order.VehicleID)
	if err != nil {
		log.Warn("notification aborted: vehicle lookup failed", slog.String("error", err.Error()))
		return
	}

	if subs == nil {
		subs = make(map[string]string)
	}
	subs["order_id"] = formatID(order.ID)
	subs["client_name"] = client.Name
	subs["vehicle"] = vehicle.DisplayName()

	n.notifier.Notify(ctx, model.Notice{
		Event:         event,
		Email:         client.Email,
		Phone:         client.Phone,
		Substitutions: subs,
	})
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
