package models

import (
	"errors"
	"time"
)

// RootUserName is the distinguished account that can never be deleted.
const RootUserName = "root"

// ErrUnknownPrivilegeLevel is returned when a stored or requested privilege level is not one of the known values.
var ErrUnknownPrivilegeLevel = errors.New("unknown privilege level")

// PrivilegeLevel is the closed set of roles a user can hold.
type PrivilegeLevel string

// Supported privilege levels, persisted verbatim in the users table.
const (
	PrivilegeAdmin  PrivilegeLevel = "Admin"
	PrivilegeUser   PrivilegeLevel = "User"
	PrivilegeViewer PrivilegeLevel = "Viewer"
)

// ParsePrivilegeLevel converts a raw string into a PrivilegeLevel.
func ParsePrivilegeLevel(s string) (PrivilegeLevel, error) {
	switch PrivilegeLevel(s) {
	case PrivilegeAdmin, PrivilegeUser, PrivilegeViewer:
		return PrivilegeLevel(s), nil
	}
	return "", ErrUnknownPrivilegeLevel
}

// Capability names a single thing a user may do.
type Capability int

const (
	CapViewStations Capability = iota
	CapSubmitPrepSheet
	CapViewRecipes
	CapViewCompletedLists
	CapUpdateOwnProfile
	CapManageStations
	CapManageUsers
	CapManageRecipes
	CapViewDiagnostics
	CapViewRemoteCatalog
)

var capabilities = map[PrivilegeLevel]map[Capability]bool{
	PrivilegeAdmin: {
		CapViewStations:       true,
		CapSubmitPrepSheet:    true,
		CapViewRecipes:        true,
		CapViewCompletedLists: true,
		CapUpdateOwnProfile:   true,
		CapManageStations:     true,
		CapManageUsers:        true,
		CapManageRecipes:      true,
		CapViewDiagnostics:    true,
		CapViewRemoteCatalog:  true,
	},
	PrivilegeUser: {
		CapViewStations:       true,
		CapSubmitPrepSheet:    true,
		CapViewRecipes:        true,
		CapViewCompletedLists: true,
		CapUpdateOwnProfile:   true,
	},
	PrivilegeViewer: {
		CapViewRecipes:        true,
		CapViewCompletedLists: true,
		CapUpdateOwnProfile:   true,
	},
}

// Can reports whether the privilege level grants the capability.
// Unknown levels grant nothing.
func (p PrivilegeLevel) Can(c Capability) bool {
	return capabilities[p][c]
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID       string    `json:"id" db:"user_id"`                // ULID primary key
	DisplayName  string    `json:"display_name" db:"display_name"` // Mutable display name
	UserName     string    `json:"user_name" db:"user_name"`       // Unique, case-sensitive login name
	PrivLevel    string    `json:"priv_level" db:"priv_level"`     // Admin, User or Viewer
	PasswordSalt string    `json:"-" db:"password_salt"`           // base64 salt
	PasswordHash string    `json:"-" db:"password_hash"`           // base64 SHA-256(salt || password)
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// IsRoot reports whether the record is the protected root account.
func (u *UserDB) IsRoot() bool {
	return u.UserName == RootUserName
}

// Session describes the authenticated user carried in a session token.
type Session struct {
	UserID      string         `json:"user_id"`
	DisplayName string         `json:"display_name"`
	UserName    string         `json:"user_name"`
	PrivLevel   PrivilegeLevel `json:"priv_level"`
}
