package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/avvvet/card-services/internal/cardsvc/store"
)

// FieldError names a single form field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every required field that was empty after
// normalization. The HTTP layer recovers it as a 400 response with the
// submitted values preserved.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "invalid card input: " + strings.Join(msgs, ", ")
}

// CardService owns card creation and lookup.
type CardService struct {
	store *store.CardStore
}

func NewCardService(store *store.CardStore) *CardService {
	return &CardService{store: store}
}

// Normalize trims leading/trailing whitespace and collapses internal
// whitespace runs to single spaces.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CreateCard normalizes the submitted values, allocates a fresh identifier and
// stores the record. The returned id was not present in the store before this
// call; uniqueness comes from UUID v4 randomness, never from a counter.
func (s *CardService) CreateCard(ctx context.Context, firstName, lastName, designation string) (*models.Card, error) {
	card := &models.Card{
		FirstName:   Normalize(firstName),
		LastName:    Normalize(lastName),
		Designation: Normalize(designation),
	}

	verr := &ValidationError{}
	if card.FirstName == "" {
		verr.Fields = append(verr.Fields, FieldError{Field: "firstName", Message: "first name is required"})
	}
	if card.LastName == "" {
		verr.Fields = append(verr.Fields, FieldError{Field: "lastName", Message: "last name is required"})
	}
	if card.Designation == "" {
		verr.Fields = append(verr.Fields, FieldError{Field: "designation", Message: "designation is required"})
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}

	card.ID = uuid.NewString()
	card.CreatedAt = time.Now().UTC()

	if err := s.store.Insert(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to store card: %w", err)
	}

	return card, nil
}

// GetCard is a pure lookup; unknown ids surface store.ErrCardNotFound.
func (s *CardService) GetCard(ctx context.Context, id string) (*models.Card, error) {
	return s.store.Get(ctx, id)
}

// CardCount reports how many cards are currently held in memory.
func (s *CardService) CardCount() int {
	return s.store.Len()
}
