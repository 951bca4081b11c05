package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
)

var complaintColumnNames = []string{"id", "order_id", "status", "description", "submit_description", "submitted_at"}

func TestComplaintRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &complaintRepository{storage: storage}

	date := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)
	complaint := &model.Complaint{OrderID: 1, Status: model.ComplaintStatusSubmitted, Description: "still rattles", Date: date}

	mock.ExpectQuery("INSERT INTO complaints").WithArgs(int64(1), model.ComplaintStatusSubmitted, "still rattles", date).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(3)))
	created, err := repo.Create(context.Background(), complaint)
	if err != nil || created.ID != 3 || created.Status != model.ComplaintStatusSubmitted {
		t.Fatalf("unexpected complaint: %+v err=%v", created, err)
	}

	mock.ExpectQuery("INSERT INTO complaints").WithArgs(int64(1), model.ComplaintStatusSubmitted, "still rattles", date).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	if _, err := repo.Create(context.Background(), complaint); !errors.Is(err, domainErrors.ErrComplaintExists) {
		t.Fatalf("expected complaint exists, got %v", err)
	}

	mock.ExpectQuery("INSERT INTO complaints").WithArgs(int64(1), model.ComplaintStatusSubmitted, "still rattles", date).
		WillReturnError(errors.New("insert"))
	if _, err := repo.Create(context.Background(), complaint); err == nil || errors.Is(err, domainErrors.ErrComplaintExists) {
		t.Fatalf("expected raw error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestComplaintRepositoryGet(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &complaintRepository{storage: storage}

	date := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM complaints WHERE id=").WithArgs(int64(3)).WillReturnRows(
		pgxmockv3.NewRows(complaintColumnNames).AddRow(int64(3), int64(1), model.ComplaintStatusProcessing, "still rattles", "", date),
	)
	complaint, err := repo.GetByID(context.Background(), 3)
	if err != nil || complaint.Status != model.ComplaintStatusProcessing || !complaint.Date.Equal(date) {
		t.Fatalf("unexpected complaint: %+v err=%v", complaint, err)
	}

	mock.ExpectQuery("FROM complaints WHERE order_id=").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows(complaintColumnNames).AddRow(int64(3), int64(1), model.ComplaintStatusAccepted, "still rattles", "bushing replaced", date),
	)
	complaint, err = repo.GetByOrder(context.Background(), 1)
	if err != nil || complaint.SubmitDescription != "bushing replaced" {
		t.Fatalf("unexpected complaint: %+v err=%v", complaint, err)
	}

	mock.ExpectQuery("FROM complaints WHERE order_id=").WithArgs(int64(2)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByOrder(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("FROM complaints WHERE id=").WithArgs(int64(4)).WillReturnError(errors.New("boom"))
	if _, err := repo.GetByID(context.Background(), 4); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestComplaintRepositoryUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &complaintRepository{storage: storage}

	submitted, processing, accepted := model.ComplaintStatusSubmitted, model.ComplaintStatusProcessing, model.ComplaintStatusAccepted

	mock.ExpectExec("UPDATE complaints SET status=").WithArgs(processing, "", int64(3), submitted).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.UpdateStatus(context.Background(), 3, submitted, processing, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE complaints SET status=").WithArgs(accepted, "bushing replaced", int64(3), processing).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(3)).WillReturnRows(pgxmockv3.NewRows([]string{"exists"}).AddRow(true))
	if err := repo.UpdateStatus(context.Background(), 3, processing, accepted, "bushing replaced"); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}

	mock.ExpectExec("UPDATE complaints SET status=").WithArgs(processing, "", int64(4), submitted).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(4)).WillReturnRows(pgxmockv3.NewRows([]string{"exists"}).AddRow(false))
	if err := repo.UpdateStatus(context.Background(), 4, submitted, processing, ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE complaints SET status=").WithArgs(processing, "", int64(5), submitted).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(5)).WillReturnError(errors.New("exists"))
	if err := repo.UpdateStatus(context.Background(), 5, submitted, processing, ""); err == nil {
		t.Fatal("expected exists error")
	}

	mock.ExpectExec("UPDATE complaints SET status=").WithArgs(processing, "", int64(6), submitted).
		WillReturnError(errors.New("update"))
	if err := repo.UpdateStatus(context.Background(), 6, submitted, processing, ""); err == nil {
		t.Fatal("expected update error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
