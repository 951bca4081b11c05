package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
)

var demandItemColumns = []string{"id", "demand_id", "name", "ean", "gross_unit_price", "amount", "status", "merged_at"}

func approvedOnly(d model.Demand) []model.StockDelta {
	var deltas []model.StockDelta
	for _, item := range d.Items {
		if item.Status != model.DemandItemApproved || item.MergedAt != nil {
			continue
		}
		deltas = append(deltas, model.StockDelta{
			DemandItemID: item.ID,
			DepartmentID: d.DepartmentID,
			EAN:          item.EAN,
			Name:         item.Name,
			Amount:       item.Amount,
			UnitPrice:    item.GrossUnitPrice,
		})
	}
	return deltas
}

func TestDemandRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &demandRepository{storage: storage}

	date := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	item := model.DemandItem{Name: "Brake pad", EAN: "4006381333931", GrossUnitPrice: dec(t, "10"), Amount: dec(t, "4")}
	demand := &model.Demand{RequesterID: 7, DepartmentID: 3, Date: date, Status: model.DemandStatusDraft, Items: []model.DemandItem{item}}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO demands").WithArgs(int64(7), int64(3), date, model.DemandStatusDraft).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectQuery("INSERT INTO demand_items").
		WithArgs(int64(12), "Brake pad", "4006381333931", item.GrossUnitPrice, item.Amount, model.DemandItemPending).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(40)))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), demand)
	if err != nil || created.ID != 12 || created.Items[0].ID != 40 || created.Items[0].DemandID != 12 {
		t.Fatalf("unexpected demand: %+v err=%v", created, err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO demands").WithArgs(int64(7), int64(3), date, model.DemandStatusDraft).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(13)))
	mock.ExpectQuery("INSERT INTO demand_items").
		WithArgs(int64(13), "Brake pad", "4006381333931", item.GrossUnitPrice, item.Amount, model.DemandItemPending).
		WillReturnError(errors.New("item"))
	mock.ExpectRollback()
	if _, err := repo.Create(context.Background(), demand); err == nil {
		t.Fatal("expected item error")
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO demands").WithArgs(int64(7), int64(3), date, model.DemandStatusDraft).WillReturnError(errors.New("header"))
	mock.ExpectRollback()
	if _, err := repo.Create(context.Background(), demand); err == nil {
		t.Fatal("expected header error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestDemandRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &demandRepository{storage: storage}

	date := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	fulfilled := date.Add(time.Hour)
	headerColumns := []string{"id", "requester_id", "department_id", "demand_date", "status", "fulfilled_at"}

	mock.ExpectQuery("FROM demands WHERE id=").WithArgs(int64(12)).WillReturnRows(
		pgxmockv3.NewRows(headerColumns).AddRow(int64(12), int64(7), int64(3), date, model.DemandStatusFulfilled, &fulfilled),
	)
	mock.ExpectQuery("FROM demand_items WHERE demand_id=").WithArgs(int64(12)).WillReturnRows(
		pgxmockv3.NewRows(demandItemColumns).
			AddRow(int64(40), int64(12), "Brake pad", "4006381333931", dec(t, "10"), dec(t, "4"), model.DemandItemApproved, &fulfilled),
	)
	demand, err := repo.GetByID(context.Background(), 12)
	if err != nil || demand.FulfilledAt == nil || len(demand.Items) != 1 || demand.Items[0].MergedAt == nil {
		t.Fatalf("unexpected demand: %+v err=%v", demand, err)
	}

	mock.ExpectQuery("FROM demands WHERE id=").WithArgs(int64(13)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), 13); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("FROM demands WHERE id=").WithArgs(int64(14)).WillReturnRows(
		pgxmockv3.NewRows(headerColumns).AddRow(int64(14), int64(7), int64(3), date, model.DemandStatusDraft, nil),
	)
	mock.ExpectQuery("FROM demand_items WHERE demand_id=").WithArgs(int64(14)).WillReturnError(errors.New("items"))
	if _, err := repo.GetByID(context.Background(), 14); err == nil {
		t.Fatal("expected items error")
	}

	mock.ExpectQuery("FROM demands WHERE id=").WithArgs(int64(15)).WillReturnError(errors.New("boom"))
	if _, err := repo.GetByID(context.Background(), 15); err == nil || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected raw error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestDemandItemsRowsError(t *testing.T) {
	pool := &rowsErrorPool{rows: &errorRows{err: errors.New("rows err")}}
	if _, err := listDemandItems(context.Background(), pool, 1); err == nil || err.Error() != "rows err" {
		t.Fatalf("expected rows err, got %v", err)
	}
}

func TestDemandRepositoryUpdate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &demandRepository{storage: storage}

	date := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	demand := &model.Demand{ID: 12, RequesterID: 7, DepartmentID: 3, Date: date, Status: model.DemandStatusApproved}
	kept := model.DemandItem{ID: 40, Name: "Brake pad", EAN: "4006381333931", GrossUnitPrice: dec(t, "10"), Amount: dec(t, "4"), Status: model.DemandItemApproved}
	added := model.DemandItem{Name: "Oil filter", EAN: "5901234123457", GrossUnitPrice: dec(t, "8"), Amount: dec(t, "2")}
	changes := model.ItemChanges[model.DemandItem]{Insert: []model.DemandItem{added}, Update: []model.DemandItem{kept}, Delete: []int64{41}}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT fulfilled_at FROM demands WHERE id=.+ FOR UPDATE").WithArgs(int64(12)).
		WillReturnRows(pgxmockv3.NewRows([]string{"fulfilled_at"}).AddRow(nil))
	mock.ExpectExec("UPDATE demands SET requester_id=").WithArgs(int64(7), int64(3), date, model.DemandStatusApproved, int64(12)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("DELETE FROM demand_items WHERE demand_id=").WithArgs(int64(12), []int64{41}).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	mock.ExpectExec("UPDATE demand_items SET name=").
		WithArgs("Brake pad", "4006381333931", kept.GrossUnitPrice, kept.Amount, model.DemandItemApproved, int64(40), int64(12)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO demand_items").
		WithArgs(int64(12), "Oil filter", "5901234123457", added.GrossUnitPrice, added.Amount, model.DemandItemPending).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectCommit()
	if err := repo.Update(context.Background(), demand, changes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fulfilled := date.Add(time.Hour)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT fulfilled_at FROM demands").WithArgs(int64(12)).
		WillReturnRows(pgxmockv3.NewRows([]string{"fulfilled_at"}).AddRow(&fulfilled))
	mock.ExpectRollback()
	if err := repo.Update(context.Background(), demand, changes); !errors.Is(err, domainErrors.ErrDemandFulfilled) {
		t.Fatalf("expected demand fulfilled, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT fulfilled_at FROM demands").WithArgs(int64(12)).WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()
	if err := repo.Update(context.Background(), demand, changes); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT fulfilled_at FROM demands").WithArgs(int64(12)).
		WillReturnRows(pgxmockv3.NewRows([]string{"fulfilled_at"}).AddRow(nil))
	mock.ExpectExec("UPDATE demands SET requester_id=").WithArgs(int64(7), int64(3), date, model.DemandStatusApproved, int64(12)).
		WillReturnError(errors.New("header"))
	mock.ExpectRollback()
	if err := repo.Update(context.Background(), demand, changes); err == nil {
		t.Fatal("expected header error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestDemandRepositoryUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &demandRepository{storage: storage}

	mock.ExpectExec("UPDATE demands SET status=").WithArgs(model.DemandStatusRequested, int64(12)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.UpdateStatus(context.Background(), 12, model.DemandStatusRequested); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE demands SET status=").WithArgs(model.DemandStatusRequested, int64(13)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.UpdateStatus(context.Background(), 13, model.DemandStatusRequested); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE demands SET status=").WithArgs(model.DemandStatusRequested, int64(14)).WillReturnError(errors.New("update"))
	if err := repo.UpdateStatus(context.Background(), 14, model.DemandStatusRequested); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestDemandRepositoryFulfill(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &demandRepository{storage: storage}

	date := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	merged := date.Add(time.Hour)
	headerColumns := []string{"id", "requester_id", "department_id", "demand_date", "status"}

	t.Run("merges approved items", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT fulfilled_at FROM demands WHERE id=.+ FOR UPDATE").WithArgs(int64(12)).
			WillReturnRows(pgxmockv3.NewRows([]string{"fulfilled_at"}).AddRow(nil))
		mock.ExpectQuery("SELECT id, requester_id, department_id, demand_date, status FROM demands").WithArgs(int64(12)).
			WillReturnRows(pgxmockv3.NewRows(headerColumns).AddRow(int64(12), int64(7), int64(3), date, model.DemandStatusApproved))
		mock.ExpectQuery("FROM demand_items WHERE demand_id=").WithArgs(int64(12)).WillReturnRows(
			pgxmockv3.NewRows(demandItemColumns).
				AddRow(int64(40), int64(12), "Brake pad", "4006381333931", dec(t, "10"), dec(t, "4"), model.DemandItemApproved, nil).
				AddRow(int64(41), int64(12), "Oil filter", "5901234123457", dec(t, "8"), dec(t, "2"), model.DemandItemRejected, nil).
				AddRow(int64(42), int64(12), "Wiper", "4012345678901", dec(t, "5"), dec(t, "1"), model.DemandItemApproved, &merged),
		)
		mock.ExpectExec("INSERT INTO warehouse_stock .+ ON CONFLICT").
			WithArgs(int64(3), "4006381333931", "Brake pad", pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
			WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
		mock.ExpectExec("UPDATE demand_items SET merged_at=").WithArgs(pgxmockv3.AnyArg(), int64(40)).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectExec("UPDATE demands SET status=.+ fulfilled_at=").WithArgs(model.DemandStatusFulfilled, pgxmockv3.AnyArg(), int64(12)).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		result, err := repo.Fulfill(context.Background(), 12, approvedOnly)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Applied || result.MergedItems != 1 {
			t.Fatalf("unexpected fulfillment: %+v", result)
		}
	})

	t.Run("already fulfilled merges nothing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT fulfilled_at FROM demands").WithArgs(int64(12)).
			WillReturnRows(pgxmockv3.NewRows([]string{"fulfilled_at"}).AddRow(&merged))
		mock.ExpectExec("UPDATE demands SET status=").WithArgs(model.DemandStatusFulfilled, int64(12)).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		planned := false
		result, err := repo.Fulfill(context.Background(), 12, func(model.Demand) []model.StockDelta {
			planned = true
			return nil
		})
		if err != nil || result.Applied || result.MergedItems != 0 || planned {
			t.Fatalf("unexpected result: %+v planned=%v err=%v", result, planned, err)
		}
	})

	t.Run("missing demand", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT fulfilled_at FROM demands").WithArgs(int64(99)).WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		if _, err := repo.Fulfill(context.Background(), 99, approvedOnly); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("stock merge failure rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT fulfilled_at FROM demands").WithArgs(int64(12)).
			WillReturnRows(pgxmockv3.NewRows([]string{"fulfilled_at"}).AddRow(nil))
		mock.ExpectQuery("SELECT id, requester_id, department_id, demand_date, status FROM demands").WithArgs(int64(12)).
			WillReturnRows(pgxmockv3.NewRows(headerColumns).AddRow(int64(12), int64(7), int64(3), date, model.DemandStatusApproved))
		mock.ExpectQuery("FROM demand_items WHERE demand_id=").WithArgs(int64(12)).WillReturnRows(
			pgxmockv3.NewRows(demandItemColumns).
				AddRow(int64(40), int64(12), "Brake pad", "4006381333931", dec(t, "10"), dec(t, "4"), model.DemandItemApproved, nil),
		)
		mock.ExpectExec("INSERT INTO warehouse_stock").
			WithArgs(int64(3), "4006381333931", "Brake pad", pgxmockv3.AnyArg(), pgxmockv3.AnyArg()).
			WillReturnError(errors.New("stock"))
		mock.ExpectRollback()

		result, err := repo.Fulfill(context.Background(), 12, approvedOnly)
		if err == nil || result.Applied {
			t.Fatalf("expected failure without applied result, got %+v err=%v", result, err)
		}
	})

	t.Run("header load failure", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT fulfilled_at FROM demands").WithArgs(int64(12)).
			WillReturnRows(pgxmockv3.NewRows([]string{"fulfilled_at"}).AddRow(nil))
		mock.ExpectQuery("SELECT id, requester_id, department_id, demand_date, status FROM demands").WithArgs(int64(12)).
			WillReturnError(errors.New("header"))
		mock.ExpectRollback()

		if _, err := repo.Fulfill(context.Background(), 12, approvedOnly); err == nil {
			t.Fatal("expected header error")
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
