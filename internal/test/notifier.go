package test

import (
	"context"
	"sync"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// NotifierRecorder captures notices handed to the dispatcher.
type NotifierRecorder struct {
	mu      sync.Mutex
	notices []model.Notice
}

// Notify stores the notice.
func (r *NotifierRecorder) Notify(_ context.Context, notice model.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice)
}

// Notices returns a copy of captured notices.
func (r *NotifierRecorder) Notices() []model.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Notice(nil), r.notices...)
}

// Events returns the event names of captured notices in order.
func (r *NotifierRecorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]string, len(r.notices))
	for i, n := range r.notices {
		events[i] = n.Event
	}
	return events
}
