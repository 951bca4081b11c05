package model

// LineItem is a child row matched by identifier during reconciliation.
type LineItem interface {
	LineID() int64
}

// ItemChanges is the diff between persisted and submitted child rows.
type ItemChanges[T LineItem] struct {
	Insert []T
	Update []T
	Delete []int64
}

// Empty reports whether applying the changes is a no-op.
func (c ItemChanges[T]) Empty() bool {
	return len(c.Insert) == 0 && len(c.Update) == 0 && len(c.Delete) == 0
}
