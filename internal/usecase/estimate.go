package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

const estimateSubsystem = "estimates"

// EstimateInput is the caller-submitted estimate content.
type EstimateInput struct {
	Totals   model.Totals
	Parts    []model.EstimatePart
	Services []model.EstimateService
}

// EstimateUseCase attaches estimates to orders and keeps their line items in sync.
type EstimateUseCase struct {
	estimates repository.EstimateRepository
	orders    repository.OrderRepository
	notices   clientNotices
	policy    Policy
	logger    *slog.Logger
}

// NewEstimateUseCase constructs EstimateUseCase.
func NewEstimateUseCase(
	estimates repository.EstimateRepository,
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	notifier Notifier,
	policy Policy,
	logger *slog.Logger,
) *EstimateUseCase {
	return &EstimateUseCase{
		estimates: estimates,
		orders:    orders,
		notices:   clientNotices{clients: clients, notifier: notifier, logger: logger},
		policy:    policy,
		logger:    logger,
	}
}

// Create persists the single estimate of an order and notifies the client.
func (u *EstimateUseCase) Create(ctx context.Context, orderID int64, in EstimateInput) (*model.Estimate, error) {
	if err := validateTotals(in.Totals); err != nil {
		return nil, err
	}
	if orderID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if err := u.validateLines(in); err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, storeError(u.logger, estimateSubsystem, "get_order", err)
	}

	estimate := &model.Estimate{
		OrderID:            orderID,
		TotalPartsPrice:    in.Totals.Parts.Decimal,
		TotalServicesPrice: in.Totals.Services.Decimal,
		TotalPrice:         in.Totals.Total.Decimal,
		Parts:              in.Parts,
		Services:           in.Services,
	}
	created, err := u.estimates.Create(ctx, estimate)
	if err != nil {
		return nil, storeError(u.logger, estimateSubsystem, "create", err)
	}

	u.notices.notify(ctx, model.EventEstimateAdded, order, estimateSubstitutions(created))
	return created, nil
}

// Edit overwrites the header totals and reconciles parts and services
// against the persisted ones, then notifies the client.
func (u *EstimateUseCase) Edit(ctx context.Context, estimateID, orderID int64, in EstimateInput) (*model.Estimate, error) {
	if err := validateTotals(in.Totals); err != nil {
		return nil, err
	}
	if estimateID <= 0 || orderID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if err := u.validateLines(in); err != nil {
		return nil, err
	}

	header := &model.Estimate{
		ID:                 estimateID,
		OrderID:            orderID,
		TotalPartsPrice:    in.Totals.Parts.Decimal,
		TotalServicesPrice: in.Totals.Services.Decimal,
		TotalPrice:         in.Totals.Total.Decimal,
	}
	plan := func(current model.Estimate) (model.ItemChanges[model.EstimatePart], model.ItemChanges[model.EstimateService]) {
		return Reconcile(current.Parts, in.Parts), Reconcile(current.Services, in.Services)
	}
	if err := u.estimates.Update(ctx, header, plan); err != nil {
		return nil, storeError(u.logger, estimateSubsystem, "update", err)
	}

	updated, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		u.logger.Warn("reload edited estimate", slog.Int64("estimate_id", estimateID), slog.String("error", err.Error()))
		header.Parts = in.Parts
		header.Services = in.Services
		updated = header
	}

	if order, err := u.orders.GetByID(ctx, orderID); err != nil {
		u.logger.Warn("notification aborted: order lookup failed",
			slog.String("event", model.EventEstimateEdited),
			slog.Int64("order_id", orderID),
			slog.String("error", err.Error()),
		)
	} else {
		u.notices.notify(ctx, model.EventEstimateEdited, order, estimateSubstitutions(updated))
	}
	return updated, nil
}

// Get returns the estimate of an order with its line items.
func (u *EstimateUseCase) Get(ctx context.Context, orderID int64) (*model.Estimate, error) {
	if orderID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	estimate, err := u.estimates.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, storeError(u.logger, estimateSubsystem, "get_by_order", err)
	}
	return estimate, nil
}

func validateTotals(t model.Totals) error {
	switch {
	case !t.Parts.Valid:
		return domainErrors.ErrNoTotalPartsPrice
	case !t.Services.Valid:
		return domainErrors.ErrNoTotalServicesPrice
	case !t.Total.Valid:
		return domainErrors.ErrNoTotalPrice
	}
	return nil
}

func (u *EstimateUseCase) validateLines(in EstimateInput) error {
	partIDs := make([]int64, 0, len(in.Parts))
	for _, p := range in.Parts {
		if blank(p.Name) || negative(p.Amount) || negative(p.GrossUnitPrice) {
			return domainErrors.ErrInvalidInput
		}
		partIDs = append(partIDs, p.ID)
	}
	serviceIDs := make([]int64, 0, len(in.Services))
	for _, s := range in.Services {
		if blank(s.Name) || negative(s.Amount) || negative(s.GrossUnitPrice) {
			return domainErrors.ErrInvalidInput
		}
		serviceIDs = append(serviceIDs, s.ID)
	}
	if duplicateIDs(partIDs) || duplicateIDs(serviceIDs) {
		return domainErrors.ErrInvalidInput
	}

	parts, services := LineTotals(in.Parts, in.Services)
	total := parts.Add(services)
	if parts.Equal(in.Totals.Parts.Decimal) &&
		services.Equal(in.Totals.Services.Decimal) &&
		total.Equal(in.Totals.Total.Decimal) {
		return nil
	}
	if u.policy.VerifyEstimateTotals {
		return domainErrors.ErrTotalsMismatch
	}
	u.logger.Warn("estimate totals differ from line items",
		slog.String("parts_submitted", in.Totals.Parts.Decimal.String()),
		slog.String("parts_computed", parts.String()),
		slog.String("services_submitted", in.Totals.Services.Decimal.String()),
		slog.String("services_computed", services.String()),
		slog.String("total_submitted", in.Totals.Total.Decimal.String()),
		slog.String("total_computed", total.String()),
	)
	return nil
}

// LineTotals sums the line totals of parts and services.
func LineTotals(parts []model.EstimatePart, services []model.EstimateService) (decimal.Decimal, decimal.Decimal) {
	partsTotal := decimal.Zero
	for _, p := range parts {
		partsTotal = partsTotal.Add(p.TotalPrice)
	}
	servicesTotal := decimal.Zero
	for _, s := range services {
		servicesTotal = servicesTotal.Add(s.TotalPrice)
	}
	return partsTotal, servicesTotal
}

func estimateSubstitutions(e *model.Estimate) map[string]string {
	var b strings.Builder
	for _, p := range e.Parts {
		fmt.Fprintf(&b, "%s x %s = %s\n", p.Name, p.Amount.String(), p.TotalPrice.StringFixed(2))
	}
	for _, s := range e.Services {
		fmt.Fprintf(&b, "%s x %s = %s\n", s.Name, s.Amount.String(), s.TotalPrice.StringFixed(2))
	}
	return map[string]string{
		"estimate_id":    formatID(e.ID),
		"parts_total":    e.TotalPartsPrice.StringFixed(2),
		"services_total": e.TotalServicesPrice.StringFixed(2),
		"total":          e.TotalPrice.StringFixed(2),
		"breakdown":      strings.TrimSuffix(b.String(), "\n"),
	}
}
