package audit

import (
	"context"
	"log/slog"
	"sync"
)

type Event struct {
	BusinessID uint
	UserID     *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

const (
	ActionAppointmentCreated   = "appointment_created"
	ActionAppointmentConflict  = "appointment_conflict"
	ActionAppointmentCanceled  = "appointment_canceled"
	ActionAppointmentCompleted = "appointment_completed"
)

// Recorder is what use cases depend on.
type Recorder interface {
	Dispatch(ev Event)
}

// Store persists one event.
type Store interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	store  Store
	logger *slog.Logger
	queue  chan Event
	wg     sync.WaitGroup
	once   sync.Once
}

func NewDispatcher(store Store, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		if err := d.store.Log(context.Background(), ev); err != nil {
			d.logger.Error("audit write failed", "action", ev.Action, "err", err)
		}
	}
}

// Dispatch never blocks: audit must not break a request.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drains queued events. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	d.wg.Wait()
}

var _ Recorder = (*Dispatcher)(nil)
