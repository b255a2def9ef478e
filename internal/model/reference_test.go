package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRefValidate(t *testing.T) {
	assert.NoError(t, Ref{}.Validate(), "unset reference is valid")

	for kind := range refKinds {
		assert.NoError(t, Ref{Kind: kind, ID: uuid.New()}.Validate())
	}

	err := Ref{Kind: "shipment", ID: uuid.New()}.Validate()
	assert.ErrorIs(t, err, ErrUnknownRefKind)

	// Half-set references are rejected.
	err = Ref{Kind: RefEntity}.Validate()
	assert.ErrorIs(t, err, ErrUnknownRefKind)
}

func TestRefIsZero(t *testing.T) {
	assert.True(t, Ref{}.IsZero())
	assert.False(t, Ref{Kind: RefRole, ID: uuid.New()}.IsZero())
	assert.False(t, Ref{Kind: RefRole}.IsZero())
}
