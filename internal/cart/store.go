// internal/cart/store.go
package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/heritage-goods/storefront-backend/internal/catalog"
	"github.com/heritage-goods/storefront-backend/internal/commerce"
)

const syncTimeout = 15 * time.Second

// Store owns the cart state for one storefront session.
//
// Mutations apply to local state immediately (optimistic) and are pushed to
// the commerce platform as a full line-item replacement. At most one gateway
// call is in flight per store; mutations arriving during a sync are coalesced
// into the next dispatch, which carries the latest desired state rather than
// replaying each intermediate step. A monotonic sequence number tags every
// mutation so a response that was overtaken by newer local intent is
// discarded instead of applied.
//
// On gateway failure the optimistic changes revert to the last
// remote-confirmed state and the caller receives a typed error.
type Store struct {
	mu        sync.Mutex
	gateway   Gateway
	sessions  SessionStore
	sessionID string
	idemBase  string
	log       *logrus.Entry

	cartID    string
	items     []LineItem
	confirmed []LineItem
	syncing   bool
	seq       uint64
	waiters   []syncWaiter
}

type syncWaiter struct {
	seq uint64
	ch  chan error
}

func NewStore(gateway Gateway, sessions SessionStore, sessionID string) *Store {
	return &Store{
		gateway:   gateway,
		sessions:  sessions,
		sessionID: sessionID,
		idemBase:  uuid.NewString(),
		log:       logrus.WithField("session_id", sessionID),
	}
}

// Hydrate loads the persisted remote cart, if any, and refreshes local state
// from the platform. An unreachable platform degrades to an empty cart so the
// page still renders; the persisted id is kept for the next attempt.
func (s *Store) Hydrate(ctx context.Context) {
	remoteID, err := s.sessions.Load(s.sessionID)
	if err != nil {
		s.log.WithError(err).Warn("Failed to load persisted cart session")
		return
	}
	if remoteID == "" {
		return
	}

	cartID, lines, err := s.gateway.CreateOrGetCart(ctx, remoteID)
	if err != nil {
		s.log.WithError(err).Warn("Failed to refresh cart from commerce platform")
		return
	}

	s.mu.Lock()
	s.cartID = cartID
	s.items = fromRemote(lines)
	s.confirmed = cloneLines(s.items)
	s.mu.Unlock()

	if cartID != remoteID {
		if err := s.sessions.Save(s.sessionID, cartID); err != nil {
			s.log.WithError(err).Warn("Failed to persist refreshed cart id")
		}
	}
}

// AddItem appends a line item and synchronizes. Adding a variant already in
// the cart bumps that line's quantity instead of duplicating it.
func (s *Store) AddItem(ctx context.Context, input AddItemInput) error {
	if input.VariantID == "" || input.Quantity < 1 {
		return commerce.InvariantError("add item requires a variant reference and a positive quantity")
	}
	return s.mutate(ctx, func() {
		for i := range s.items {
			if s.items[i].VariantID == input.VariantID {
				s.items[i].Quantity += input.Quantity
				return
			}
		}
		s.items = append(s.items, LineItem{
			ID:              uuid.NewString(),
			VariantID:       input.VariantID,
			Title:           input.Title,
			Quantity:        input.Quantity,
			Price:           input.Price,
			SelectedOptions: input.SelectedOptions,
			ImageURL:        input.ImageURL,
		})
	})
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, lineID)
	}

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == lineID {
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return ErrLineNotFound
	}

	return s.mutate(ctx, func() {
		for i := range s.items {
			if s.items[i].ID == lineID {
				s.items[i].Quantity = quantity
				return
			}
		}
	})
}

func (s *Store) RemoveItem(ctx context.Context, lineID string) error {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == lineID {
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return ErrLineNotFound
	}

	return s.mutate(ctx, func() {
		kept := s.items[:0]
		for _, it := range s.items {
			if it.ID != lineID {
				kept = append(kept, it)
			}
		}
		s.items = kept
	})
}

// Reset empties the cart and forgets the remote identifier, both locally and
// in durable storage. Used for an explicit user reset and after a completed
// checkout hand-off, where the platform invalidates the cart anyway.
func (s *Store) Reset() error {
	s.mu.Lock()
	s.items = nil
	s.confirmed = nil
	s.cartID = ""
	s.seq++ // supersede any in-flight sync so its response is discarded
	s.mu.Unlock()

	return s.sessions.Clear(s.sessionID)
}

// Total is computed fresh on every call; it is never cached, so it cannot
// drift from the line items.
func (s *Store) Total() catalog.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := catalog.Money{Currency: "USD"}
	for _, it := range s.items {
		if total.Currency == "USD" && it.Price.Currency != "" {
			total.Currency = it.Price.Currency
		}
		total.Amount += it.Price.Amount * float64(it.Quantity)
	}
	return total
}

// View returns a copy of the cart for consumers to render.
func (s *Store) View() Snapshot {
	total := s.Total()

	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		RemoteCartID: s.cartID,
		Items:        cloneLines(s.items),
		Total:        total,
		Syncing:      s.syncing,
	}
}

// ConfirmedItems returns the last remote-confirmed line items, used by the
// checkout hand-off: only state the platform has acknowledged is handed over.
func (s *Store) ConfirmedItems() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.confirmed)
}

// mutate applies one intent locally, schedules a sync, and blocks until the
// dispatch covering this intent resolves or ctx expires.
func (s *Store) mutate(ctx context.Context, apply func()) error {
	s.mu.Lock()
	apply()
	s.seq++
	w := syncWaiter{seq: s.seq, ch: make(chan error, 1)}
	s.waiters = append(s.waiters, w)
	if !s.syncing {
		s.syncing = true
		go s.flush()
	}
	s.mu.Unlock()

	select {
	case err := <-w.ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// flush serializes gateway traffic: one outstanding call, always carrying the
// newest desired state. It loops until no mutation arrived during the last
// round-trip.
func (s *Store) flush() {
	for {
		s.mu.Lock()
		capturedSeq := s.seq
		desired := desiredLines(s.items)
		cartID := s.cartID
		s.mu.Unlock()

		authoritative, err := s.dispatch(cartID, desired, capturedSeq)

		s.mu.Lock()
		if capturedSeq < s.seq {
			// Superseded while in flight: this response reflects stale
			// intent, so it must not overwrite newer local state. Loop and
			// dispatch the latest desired state instead.
			s.mu.Unlock()
			continue
		}

		if err != nil {
			s.items = cloneLines(s.confirmed)
			s.resolveWaiters(capturedSeq, err)
			s.log.WithError(err).Warn("Cart sync failed, reverted to last confirmed state")
		} else {
			s.items = fromRemote(authoritative)
			s.confirmed = cloneLines(s.items)
			s.resolveWaiters(capturedSeq, nil)
		}

		if s.seq == capturedSeq {
			s.syncing = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
	}
}

func (s *Store) dispatch(cartID string, desired []commerce.LineInput, seq uint64) ([]commerce.LineItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	// A reset that raced an in-flight sync leaves nothing to push.
	if cartID == "" && len(desired) == 0 {
		return nil, nil
	}

	if cartID == "" {
		id, _, err := s.gateway.CreateOrGetCart(ctx, "")
		if err != nil {
			return nil, err
		}
		cartID = id

		s.mu.Lock()
		s.cartID = cartID
		s.mu.Unlock()

		if err := s.sessions.Save(s.sessionID, cartID); err != nil {
			s.log.WithError(err).Warn("Failed to persist remote cart id")
		}
	}

	return s.gateway.SetLineItems(ctx, cartID, desired, fmt.Sprintf("%s-%d", s.idemBase, seq))
}

func (s *Store) resolveWaiters(upTo uint64, err error) {
	kept := s.waiters[:0]
	for _, w := range s.waiters {
		if w.seq <= upTo {
			w.ch <- err
		} else {
			kept = append(kept, w)
		}
	}
	s.waiters = kept
}
