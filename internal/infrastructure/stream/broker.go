package stream

import (
	"sync"

	"go.uber.org/zap"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"
)

type subscriber struct {
	email string // "" subscribes to every record
	ch    chan entities.AccessRequest
}

// Broker fans out access-request changes to live watchers inside this
// process. Delivery is latest-wins: each subscriber has a one-slot buffer
// and a stale undelivered value is replaced rather than blocking the
// publisher.

type Broker struct {
	logger *zap.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]subscriber
}

var _ interfaces.IAccessEventBus = (*Broker)(nil)

func NewBroker(logger *zap.Logger) *Broker {
	return &Broker{
		logger: logger,
		subs:   map[int]subscriber{},
	}
}

func (b *Broker) Publish(r entities.AccessRequest) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		if sub.email != "" && sub.email != r.Email {
			continue
		}
		select {
		case sub.ch <- r:
		default:
			// Drop the stale value so the latest one always wins.
			select {
			case <-sub.ch:
			default:
			}
			sub.ch <- r
		}
	}
	b.logger.Debug("published access request change",
		zap.String("email", r.Email),
		zap.String("status", string(r.Status)),
	)
}

// Subscribe watches a single record. The cancel func releases the
// subscription and must be called on view teardown.
func (b *Broker) Subscribe(email string) (<-chan entities.AccessRequest, func()) {
	return b.add(email)
}

// SubscribeAll watches every record in the ledger.
func (b *Broker) SubscribeAll() (<-chan entities.AccessRequest, func()) {
	return b.add("")
}

func (b *Broker) add(email string) (<-chan entities.AccessRequest, func()) {
	ch := make(chan entities.AccessRequest, 1)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = subscriber{email: email, ch: ch}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
	return ch, cancel
}
