package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avvvet/card-services/internal/cardsvc/store"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain value", in: "Anu", want: "Anu"},
		{name: "surrounding spaces trimmed", in: "  Anu  ", want: "Anu"},
		{name: "inner runs collapsed", in: "Senior   Software   Engineer", want: "Senior Software Engineer"},
		{name: "tabs and newlines", in: "\tAnu \n Raj ", want: "Anu Raj"},
		{name: "whitespace only", in: " \t \n ", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestCreateCardStoresNormalizedRecord(t *testing.T) {
	svc := NewCardService(store.NewCardStore())
	ctx := context.Background()

	card, err := svc.CreateCard(ctx, "  Anu ", " Raj\t", " Senior   Engineer ")
	require.NoError(t, err)

	assert.Equal(t, "Anu", card.FirstName)
	assert.Equal(t, "Raj", card.LastName)
	assert.Equal(t, "Senior Engineer", card.Designation)
	assert.False(t, card.CreatedAt.IsZero())

	// the id is a well-formed UUID and resolves back to the same record
	_, err = uuid.Parse(card.ID)
	require.NoError(t, err)

	got, err := svc.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card.ID, got.ID)
	assert.Equal(t, "Anu Raj", got.FullName())
}

func TestCreateCardValidation(t *testing.T) {
	tests := []struct {
		name        string
		firstName   string
		lastName    string
		designation string
		wantFields  []string
	}{
		{
			name:      "missing first name",
			lastName:  "Raj", designation: "Engineer",
			wantFields: []string{"firstName"},
		},
		{
			name:      "whitespace only last name",
			firstName: "Anu", lastName: "   ", designation: "Engineer",
			wantFields: []string{"lastName"},
		},
		{
			name:      "missing designation",
			firstName: "Anu", lastName: "Raj", designation: "\t\n",
			wantFields: []string{"designation"},
		},
		{
			name:       "everything missing",
			wantFields: []string{"firstName", "lastName", "designation"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewCardService(store.NewCardStore())

			_, err := svc.CreateCard(context.Background(), tc.firstName, tc.lastName, tc.designation)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)

			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tc.wantFields, fields)

			// nothing may be stored on a rejected submission
			assert.Equal(t, 0, svc.CardCount())
		})
	}
}

func TestCreateCardNeverReusesIDs(t *testing.T) {
	svc := NewCardService(store.NewCardStore())
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		card, err := svc.CreateCard(ctx, "Anu", "Raj", "Engineer")
		require.NoError(t, err)
		require.False(t, seen[card.ID], "id %s allocated twice", card.ID)
		seen[card.ID] = true
	}
	assert.Equal(t, 200, svc.CardCount())
}

func TestGetCardUnknownID(t *testing.T) {
	svc := NewCardService(store.NewCardStore())

	_, err := svc.GetCard(context.Background(), "no-such-card")
	require.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "firstName", Message: "first name is required"},
		{Field: "lastName", Message: "last name is required"},
	}}
	assert.Equal(t, "invalid card input: first name is required, last name is required", err.Error())
}
