package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

const complaintSubsystem = "complaints"

// ComplaintUseCase drives the submitted -> processing -> accepted|rejected workflow.
type ComplaintUseCase struct {
	complaints repository.ComplaintRepository
	orders     repository.OrderRepository
	clients    repository.ClientRepository
	notices    clientNotices
	logger     *slog.Logger
	now        func() time.Time
}

// NewComplaintUseCase constructs ComplaintUseCase.
func NewComplaintUseCase(
	complaints repository.ComplaintRepository,
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	notifier Notifier,
	logger *slog.Logger,
) *ComplaintUseCase {
	return &ComplaintUseCase{
		complaints: complaints,
		orders:     orders,
		clients:    clients,
		notices:    clientNotices{clients: clients, notifier: notifier, logger: logger},
		logger:     logger,
		now:        time.Now,
	}
}

// Submit opens the only complaint an order may have.
func (u *ComplaintUseCase) Submit(ctx context.Context, orderID int64, description string) (*model.Complaint, error) {
	if orderID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if blank(description) {
		return nil, domainErrors.ErrNoDescription
	}

	if _, err := u.orders.GetByID(ctx, orderID); err != nil {
		return nil, storeError(u.logger, complaintSubsystem, "get_order", err)
	}
	_, err := u.complaints.GetByOrder(ctx, orderID)
	switch {
	case err == nil:
		return nil, domainErrors.ErrComplaintExists
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, storeError(u.logger, complaintSubsystem, "get_by_order", err)
	}

	created, err := u.complaints.Create(ctx, &model.Complaint{
		OrderID:     orderID,
		Status:      model.ComplaintStatusSubmitted,
		Description: description,
		Date:        u.now(),
	})
	if err != nil {
		return nil, storeError(u.logger, complaintSubsystem, "create", err)
	}
	return created, nil
}

// Get returns the complaint attached to an order.
func (u *ComplaintUseCase) Get(ctx context.Context, orderID int64) (*model.Complaint, error) {
	if orderID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	complaint, err := u.complaints.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, storeError(u.logger, complaintSubsystem, "get_by_order", err)
	}
	return complaint, nil
}

// StartProcessing moves a submitted complaint to processing and notifies the client.
func (u *ComplaintUseCase) StartProcessing(ctx context.Context, complaintID int64) (*model.Complaint, error) {
	if complaintID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	complaint, order, err := u.load(ctx, complaintID, model.ComplaintStatusSubmitted)
	if err != nil {
		return nil, err
	}
	if _, err := u.clients.GetByID(ctx, order.ClientID); err != nil {
		return nil, storeError(u.logger, complaintSubsystem, "get_client", err)
	}

	if err := u.complaints.UpdateStatus(ctx, complaintID, model.ComplaintStatusSubmitted, model.ComplaintStatusProcessing, ""); err != nil {
		return nil, storeError(u.logger, complaintSubsystem, "update_status", err)
	}
	complaint.Status = model.ComplaintStatusProcessing

	u.notices.notify(ctx, model.EventComplaintProcessing, order, map[string]string{
		"complaint_id": formatID(complaint.ID),
	})
	return complaint, nil
}

// Decide closes a complaint under processing with a rationale and notifies the client.
func (u *ComplaintUseCase) Decide(ctx context.Context, complaintID int64, decision model.ComplaintStatus, submitDescription string) (*model.Complaint, error) {
	if complaintID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if blank(submitDescription) {
		return nil, domainErrors.ErrNoSubmitDescription
	}
	if !decision.Terminal() {
		return nil, domainErrors.ErrInvalidDecision
	}

	complaint, order, err := u.load(ctx, complaintID, model.ComplaintStatusProcessing)
	if err != nil {
		return nil, err
	}

	if err := u.complaints.UpdateStatus(ctx, complaintID, model.ComplaintStatusProcessing, decision, submitDescription); err != nil {
		return nil, storeError(u.logger, complaintSubsystem, "update_status", err)
	}
	complaint.Status = decision
	complaint.SubmitDescription = submitDescription

	u.notices.notify(ctx, model.EventComplaintDecided, order, map[string]string{
		"complaint_id":       formatID(complaint.ID),
		"decision":           string(decision),
		"submit_description": submitDescription,
	})
	return complaint, nil
}

func (u *ComplaintUseCase) load(ctx context.Context, complaintID int64, want model.ComplaintStatus) (*model.Complaint, *model.Order, error) {
	complaint, err := u.complaints.GetByID(ctx, complaintID)
	if err != nil {
		return nil, nil, storeError(u.logger, complaintSubsystem, "get", err)
	}
	if complaint.Status != want {
		return nil, nil, domainErrors.ErrInvalidTransition
	}
	order, err := u.orders.GetByID(ctx, complaint.OrderID)
	if err != nil {
		return nil, nil, storeError(u.logger, complaintSubsystem, "get_order", err)
	}
	return complaint, order, nil
}
