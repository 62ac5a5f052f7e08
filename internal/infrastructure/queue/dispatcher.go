package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/userhub/account-service/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher applies login audit records (last_login, login_count) off
// the request path. Records are sharded to a fixed set of workers by
// email, keeping per-account write ordering. Delivery is best-effort:
// a failed write is logged and dropped, never retried.
type Dispatcher struct {
	workers  []chan ports.LoginAudit
	recorder ports.LoginRecorder
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder ports.LoginRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.LoginAudit, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LoginAudit, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an audit record for the worker owning its account.
// When the worker's buffer is full the record is dropped rather than
// blocking the login path.
func (d *Dispatcher) Record(audit ports.LoginAudit) {
	select {
	case d.workers[d.shardIndex(audit.Email)] <- audit:
	default:
		d.log.Warn().Str("email", audit.Email).Msg("audit queue full, record dropped")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LoginAudit) {
	for {
		select {
		case <-ctx.Done():
			return
		case audit, ok := <-ch:
			if !ok {
				return
			}
			if err := d.recorder.RecordLogin(ctx, audit.Email, audit.At); err != nil {
				d.log.Error().Err(err).
					Str("email", audit.Email).
					Int("worker_id", id).
					Msg("login audit write failed")
			}
		}
	}
}
