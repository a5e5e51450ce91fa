// Package memory keeps parcels, delivery orders and outbox messages in process memory.
//
// A UnitOfWork holds the store's write lock from Begin until Commit or Rollback, so
// writers are serialised and every read-modify-write of a parcel is atomic. Readers
// outside a unit of work share a read lock. Staged changes become visible only on Commit.
package memory

import (
	"errors"
	"slices"
	"sync"
	"time"

	"parcelhub/internal/core/domain/model/deliveryorder"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

// Store is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	parcels       map[string]parcel.Snapshot
	parcelOrder   []string
	trackingIndex map[string]string

	orders     map[string]deliveryorder.Snapshot
	orderOrder []string

	// outbox holds unsent messages only; a message leaves it once marked sent.
	outbox []ports.OutboxMessage
}

func NewStore() *Store {
	return &Store{
		parcels:       make(map[string]parcel.Snapshot),
		trackingIndex: make(map[string]string),
		orders:        make(map[string]deliveryorder.Snapshot),
	}
}

// changeSet is what a unit of work has written but not yet committed.
type changeSet struct {
	parcels       map[string]parcel.Snapshot
	newParcels    []string
	trackingIndex map[string]string

	orders    map[string]deliveryorder.Snapshot
	newOrders []string

	sent map[string]time.Time
}

func newChangeSet() *changeSet {
	return &changeSet{
		parcels:       make(map[string]parcel.Snapshot),
		trackingIndex: make(map[string]string),
		orders:        make(map[string]deliveryorder.Snapshot),
		sent:          make(map[string]time.Time),
	}
}

// apply must be called with the write lock held.
func (s *Store) apply(c *changeSet, messages []ports.OutboxMessage) {
	s.parcelOrder = append(s.parcelOrder, c.newParcels...)
	for id, snap := range c.parcels {
		s.parcels[id] = snap
	}
	for trackingID, id := range c.trackingIndex {
		s.trackingIndex[trackingID] = id
	}

	s.orderOrder = append(s.orderOrder, c.newOrders...)
	for id, snap := range c.orders {
		s.orders[id] = snap
	}

	if len(c.sent) > 0 {
		s.outbox = slices.DeleteFunc(s.outbox, func(msg ports.OutboxMessage) bool {
			_, sent := c.sent[msg.ID.String()]
			return sent
		})
	}
	s.outbox = append(s.outbox, messages...)
}
