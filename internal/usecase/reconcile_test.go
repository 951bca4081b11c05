package usecase_test

import (
	"testing"

	"github.com/polkiloo/autoservice/internal/domain/model"

	"github.com/polkiloo/autoservice/internal/usecase"
)

func TestReconcile(t *testing.T) {
	existing := []model.DemandItem{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}

	cases := []struct {
		name      string
		submitted []model.DemandItem
		inserts   int
		updates   []int64
		deletes   []int64
	}{
		{"same set", existing, 0, []int64{1, 2, 3}, nil},
		{"add update remove", []model.DemandItem{{ID: 1, Name: "A2"}, {ID: 3}, {Name: "D"}}, 1, []int64{1, 3}, []int64{2}},
		{"unknown id inserts", []model.DemandItem{{ID: 42, Name: "X"}}, 1, nil, []int64{1, 2, 3}},
		{"empty submission", nil, 0, nil, []int64{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			changes := usecase.Reconcile(existing, tc.submitted)
			if len(changes.Insert) != tc.inserts {
				t.Fatalf("expected %d inserts, got %+v", tc.inserts, changes.Insert)
			}
			if len(changes.Update) != len(tc.updates) {
				t.Fatalf("expected updates %v, got %+v", tc.updates, changes.Update)
			}
			for i, id := range tc.updates {
				if changes.Update[i].ID != id {
					t.Fatalf("expected update %d, got %d", id, changes.Update[i].ID)
				}
			}
			if len(changes.Delete) != len(tc.deletes) {
				t.Fatalf("expected deletes %v, got %v", tc.deletes, changes.Delete)
			}
			for i, id := range tc.deletes {
				if changes.Delete[i] != id {
					t.Fatalf("expected delete %d, got %d", id, changes.Delete[i])
				}
			}
		})
	}

	if !usecase.Reconcile[model.DemandItem](nil, nil).Empty() {
		t.Fatal("expected empty changes for empty sets")
	}
}
