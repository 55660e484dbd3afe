package audit

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const writeTimeout = 5 * time.Second

type Event struct {
	Actor    string
	Role     string
	Action   string
	Entity   string
	EntityID string
	Metadata map[string]any
}

// Dispatcher hands events to a single background writer. Dispatch never
// blocks; events are dropped when the queue is full.
type Dispatcher struct {
	sink  Sink
	log   logrus.FieldLogger
	queue chan Event
	now   func() time.Time

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink, log logrus.FieldLogger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		now:   time.Now,
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.sink.Write(ctx, toEntry(ev, d.now().UTC())); err != nil {
			d.log.WithError(err).WithField("action", ev.Action).Error("audit write failed")
		}
		cancel()
	}
}

// Dispatch queues ev. Events arriving after Close are dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.WithField("action", ev.Action).Warn("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}
