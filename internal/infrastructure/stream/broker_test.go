package stream

import (
	"testing"
	"time"

	"boq_service/internal/domain/entities"

	"go.uber.org/zap"
)

func record(email string, status entities.AccessStatus) entities.AccessRequest {
	return entities.AccessRequest{Email: email, Status: status, RequestedAt: time.Now().UTC()}
}

func TestBroker_SubscribeReceivesMatchingEmail(t *testing.T) {
	b := NewBroker(zap.NewNop())

	ch, cancel := b.Subscribe("bob@outside.org")
	defer cancel()

	b.Publish(record("bob@outside.org", entities.AccessStatusApproved))

	select {
	case r := <-ch:
		if r.Status != entities.AccessStatusApproved {
			t.Fatalf("unexpected record: %+v", r)
		}
	default:
		t.Fatalf("expected a delivered record")
	}
}

func TestBroker_SubscribeIgnoresOtherEmails(t *testing.T) {
	b := NewBroker(zap.NewNop())

	ch, cancel := b.Subscribe("bob@outside.org")
	defer cancel()

	b.Publish(record("carol@outside.org", entities.AccessStatusApproved))

	select {
	case r := <-ch:
		t.Fatalf("unexpected delivery: %+v", r)
	default:
	}
}

func TestBroker_SubscribeAllSeesEverything(t *testing.T) {
	b := NewBroker(zap.NewNop())

	ch, cancel := b.SubscribeAll()
	defer cancel()

	b.Publish(record("bob@outside.org", entities.AccessStatusPending))

	select {
	case r := <-ch:
		if r.Email != "bob@outside.org" {
			t.Fatalf("unexpected record: %+v", r)
		}
	default:
		t.Fatalf("expected a delivered record")
	}
}

func TestBroker_LatestWins(t *testing.T) {
	b := NewBroker(zap.NewNop())

	ch, cancel := b.Subscribe("bob@outside.org")
	defer cancel()

	// A slow consumer: two publishes land before the first read. The stale
	// value is replaced, never queued.
	b.Publish(record("bob@outside.org", entities.AccessStatusPending))
	b.Publish(record("bob@outside.org", entities.AccessStatusApproved))

	r := <-ch
	if r.Status != entities.AccessStatusApproved {
		t.Fatalf("expected the latest status, got %v", r.Status)
	}
	select {
	case r := <-ch:
		t.Fatalf("expected a single buffered value, got %+v", r)
	default:
	}
}

func TestBroker_CancelStopsDelivery(t *testing.T) {
	b := NewBroker(zap.NewNop())

	ch, cancel := b.Subscribe("bob@outside.org")
	cancel()

	b.Publish(record("bob@outside.org", entities.AccessStatusApproved))

	select {
	case r := <-ch:
		t.Fatalf("delivery after cancel: %+v", r)
	default:
	}
}
