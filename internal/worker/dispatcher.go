package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/notification"
)

const (
	defaultWorkers   = 1
	defaultQueueSize = 64
	defaultTimeout   = 10 * time.Second
)

// Dispatcher delivers client notices in the background through a gateway.
// Delivery failures are logged and never reported back to the caller.
type Dispatcher struct {
	gateway   notification.Gateway
	templates *notification.Templates
	workers   int
	timeout   time.Duration
	logger    *slog.Logger

	queue   chan model.Notice
	wg      sync.WaitGroup
	abort   context.CancelFunc
	started bool
	closed  bool
	mu      sync.RWMutex
}

// NewDispatcher constructs notice dispatcher worker pool.
func NewDispatcher(
	gateway notification.Gateway,
	templates *notification.Templates,
	workers, queueSize int,
	timeout time.Duration,
	logger *slog.Logger,
) *Dispatcher {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Dispatcher{
		gateway:   gateway,
		templates: templates,
		workers:   workers,
		timeout:   timeout,
		logger:    logger,
		queue:     make(chan model.Notice, queueSize),
	}
}

// Notify enqueues notice without blocking. A full queue or a stopped
// dispatcher drops the notice.
func (d *Dispatcher) Notify(_ context.Context, notice model.Notice) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("notification dispatcher stopped, notice dropped", slog.String("event", notice.Event))
		return
	}
	select {
	case d.queue <- notice:
	default:
		d.logger.Warn("notification queue full, notice dropped", slog.String("event", notice.Event))
	}
}

// Start launches background delivery. Cancelling ctx does not interrupt
// delivery; only Stop ends it.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.closed {
		return
	}
	d.started = true

	runCtx, abort := context.WithCancel(context.WithoutCancel(ctx))
	d.abort = abort

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop refuses new notices and delivers the queued ones. When ctx expires
// first, in-flight deliveries are cancelled and the context error is returned.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started, abort := d.started, d.abort
	d.mu.Unlock()

	if !started {
		if pending := len(d.queue); pending > 0 {
			d.logger.Warn("notification dispatcher never started, notices dropped", slog.Int("pending", pending))
		}
		return nil
	}

	drained := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		abort()
		return nil
	case <-ctx.Done():
		abort()
		<-drained
		d.logger.Warn("notification drain interrupted", slog.String("error", ctx.Err().Error()))
		return ctx.Err()
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for notice := range d.queue {
		if ctx.Err() != nil {
			d.logger.Warn("notice dropped on shutdown", slog.String("event", notice.Event))
			continue
		}
		d.deliver(ctx, notice)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, notice model.Notice) {
	log := d.logger.With(slog.String("event", notice.Event))

	tpl, ok := d.templates.Lookup(notice.Event)
	if !ok {
		log.Warn("no template for notification event")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		if err := d.gateway.SendEmail(ctx, tpl.Email, notice.Email, notice.Substitutions); err != nil {
			log.Warn("email delivery failed", slog.String("channel", notification.ChannelEmail), slog.String("error", err.Error()))
		}
		return nil
	})
	if notice.Phone != "" {
		g.Go(func() error {
			text, err := d.templates.RenderSMS(notice.Event, notice.Substitutions)
			if err != nil {
				log.Warn("sms render failed", slog.String("error", err.Error()))
				return nil
			}
			if err := d.gateway.SendSMS(ctx, text, notice.Phone); err != nil {
				log.Warn("sms delivery failed", slog.String("channel", notification.ChannelSMS), slog.String("error", err.Error()))
			}
			return nil
		})
	}
	_ = g.Wait()
}
