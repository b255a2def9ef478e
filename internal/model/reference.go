package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// RefKind tags which record kind a Ref points at. It replaces the untyped
// content-type/object-id pair: only the kinds listed here can be referenced.
type RefKind string

const (
	RefEntity          RefKind = "entity"
	RefRole            RefKind = "role"
	RefUser            RefKind = "user"
	RefWarehouse       RefKind = "warehouse"
	RefProduct         RefKind = "product"
	RefInventory       RefKind = "inventory"
	RefStocktaking     RefKind = "stocktaking"
	RefStocktakingItem RefKind = "stocktaking_item"
)

var ErrUnknownRefKind = errors.New("unknown reference kind")

var refKinds = map[RefKind]struct{}{
	RefEntity:          {},
	RefRole:            {},
	RefUser:            {},
	RefWarehouse:       {},
	RefProduct:         {},
	RefInventory:       {},
	RefStocktaking:     {},
	RefStocktakingItem: {},
}

// Ref is a tagged reference to a row of one of the known record kinds.
// A zero Ref (empty kind, nil id) means "no reference".
type Ref struct {
	Kind RefKind   `gorm:"type:varchar(50)" json:"ref_kind,omitempty"`
	ID   uuid.UUID `gorm:"type:uuid" json:"ref_id,omitempty"`
}

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool {
	return r.Kind == "" && r.ID == uuid.Nil
}

// Validate rejects references whose kind is not in the known set. An unset
// reference is valid; a half-set one is not.
func (r Ref) Validate() error {
	if r.IsZero() {
		return nil
	}
	if _, ok := refKinds[r.Kind]; !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownRefKind, r.Kind)
	}
	if r.ID == uuid.Nil {
		return fmt.Errorf("%w: missing id for kind '%s'", ErrUnknownRefKind, r.Kind)
	}
	return nil
}
