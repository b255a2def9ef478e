package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Role represents a user role in the system
type Role struct {
	BaseModel
	Code        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
}

// Reserved role codes as constants
const (
	RoleWarehouseManager = "ROLE_WAREHOUSE_MANAGER"
	RoleSeller           = "ROLE_SELLER"
	RoleCustomer         = "ROLE_CUSTOMER"
)

// ReservedRoles maps reserved role codes to their display names. Roles with
// these codes are seeded by the system and cannot be created, renamed to a
// different code, or deleted through the normal mutation paths.
var ReservedRoles = map[string]string{
	RoleWarehouseManager: "Warehouse Manager",
	RoleSeller:           "Seller",
	RoleCustomer:         "Customer",
}

var (
	ErrReservedRoleCode   = errors.New("role code is reserved")
	ErrReservedRoleChange = errors.New("reserved role code cannot be changed")
	ErrReservedRoleDelete = errors.New("reserved role cannot be deleted")
)

// IsReservedCode checks whether the given code belongs to the reserved set.
func IsReservedCode(code string) bool {
	_, ok := ReservedRoles[code]
	return ok
}

// IsReserved checks if the role's code is reserved.
func (r *Role) IsReserved() bool {
	return IsReservedCode(r.Code)
}

// RoleMutation identifies the operation being guarded.
type RoleMutation int

const (
	RoleCreate RoleMutation = iota
	RoleUpdate
	RoleDelete
)

// GuardReserved is the single authority for the reserved-role invariant.
// Every mutating entry point (service create/update/delete and the
// BeforeDelete hook) consults it instead of repeating the membership test.
//
// For updates, persistedCode is the code currently stored in the database;
// for creates and deletes it is ignored and the incoming role's code decides.
func GuardReserved(op RoleMutation, persistedCode string, incoming *Role) error {
	switch op {
	case RoleCreate:
		if IsReservedCode(incoming.Code) {
			return fmt.Errorf("%w: the code '%s' cannot be used", ErrReservedRoleCode, incoming.Code)
		}
	case RoleUpdate:
		if IsReservedCode(persistedCode) && persistedCode != incoming.Code {
			return fmt.Errorf("%w: the code '%s' is reserved", ErrReservedRoleChange, persistedCode)
		}
	case RoleDelete:
		if IsReservedCode(incoming.Code) {
			return fmt.Errorf("%w: the role with code '%s' is reserved", ErrReservedRoleDelete, incoming.Code)
		}
	}
	return nil
}

// BeforeDelete blocks physical deletion of reserved roles at the ORM level,
// so the invariant holds even for callers that bypass the role service.
func (r *Role) BeforeDelete(tx *gorm.DB) error {
	return GuardReserved(RoleDelete, "", r)
}
