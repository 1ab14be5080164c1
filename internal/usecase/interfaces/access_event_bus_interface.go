package interfaces

import "boq_service/internal/domain/entities"

// IAccessEventBus fans out access-request changes to live watchers.
//
// Every ledger write publishes the record it produced; gate views subscribe
// to a single email, the admin console subscribes to everything. The
// returned cancel func must be called on view teardown so no listener
// outlives its subscriber.

type IAccessEventBus interface {
	Publish(r entities.AccessRequest)
	Subscribe(email string) (<-chan entities.AccessRequest, func())
	SubscribeAll() (<-chan entities.AccessRequest, func())
}
