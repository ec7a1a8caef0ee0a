package store

import (
	"context"
	"errors"
	"sync"

	"github.com/avvvet/card-services/internal/cardsvc/models"
)

var (
	// ErrCardNotFound is returned when no record exists for the requested id.
	ErrCardNotFound = errors.New("card not found")

	// ErrCardExists is returned when an insert would overwrite a stored record.
	ErrCardExists = errors.New("card id already exists")
)

// CardStore keeps card records in process memory, keyed by id. Records are
// immutable once inserted; the store hands out copies so callers never mutate
// stored state. A process restart discards everything.
type CardStore struct {
	mu    sync.RWMutex
	cards map[string]models.Card
}

func NewCardStore() *CardStore {
	return &CardStore{cards: make(map[string]models.Card)}
}

// Insert publishes a fully-built record. It never overwrites: inserting an id
// that is already present fails with ErrCardExists.
func (s *CardStore) Insert(_ context.Context, card *models.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[card.ID]; ok {
		return ErrCardExists
	}
	s.cards[card.ID] = *card
	return nil
}

// Get returns a copy of the record for id, or ErrCardNotFound.
func (s *CardStore) Get(_ context.Context, id string) (*models.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.cards[id]
	if !ok {
		return nil, ErrCardNotFound
	}
	return &card, nil
}

// Len reports how many records are currently held.
func (s *CardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}
