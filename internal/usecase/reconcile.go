package usecase

import "github.com/polkiloo/autoservice/internal/domain/model"

// Reconcile diffs a submitted line-item set against the persisted one by
// identifier. Submitted items with a known identifier are updated, the rest
// are inserted, and persisted items missing from the submission are deleted.
func Reconcile[T model.LineItem](existing, submitted []T) model.ItemChanges[T] {
	known := make(map[int64]struct{}, len(existing))
	for _, item := range existing {
		known[item.LineID()] = struct{}{}
	}

	var changes model.ItemChanges[T]
	kept := make(map[int64]struct{}, len(submitted))
	for _, item := range submitted {
		id := item.LineID()
		if _, ok := known[id]; ok && id != 0 {
			kept[id] = struct{}{}
			changes.Update = append(changes.Update, item)
			continue
		}
		changes.Insert = append(changes.Insert, item)
	}

	for _, item := range existing {
		if _, ok := kept[item.LineID()]; !ok {
			changes.Delete = append(changes.Delete, item.LineID())
		}
	}
	return changes
}
