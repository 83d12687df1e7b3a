package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"errors"
	"time"
)

// Role is the authorization category assigned to an authenticated principal.
// Kept in string form for easy persistence and JSON payloads.
// Valid values are defined as constants below; anything else parses to
// RoleUnknown so every downstream check fails closed.
type Role string

const (
	RoleResident   Role = "Resident"
	RoleAccountant Role = "Accountant"
	RoleManager    Role = "Manager"
	RoleAdmin      Role = "Admin"
	RoleUnknown    Role = ""
)

// ParseRole validates a role string from the backend against the known
// enumeration. The backend can hand us any string; parse, don't cast.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleResident, RoleAccountant, RoleManager, RoleAdmin:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Known reports whether the role is one of the supported values.
func (r Role) Known() bool { return r != RoleUnknown }

// Staff reports whether the role belongs to the staff dashboard
// (Accountant, Manager, Admin).
func (r Role) Staff() bool {
	return r == RoleAccountant || r == RoleManager || r == RoleAdmin
}

// Session is the server-side record for an authenticated user.
// ID is the opaque cookie value; Token is the backend-issued bearer token
// attached to every proxied request. RoleName preserves the exact string the
// backend reported, including values outside the known enumeration, so the
// unsupported-role screen can name it.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	RoleName  string    `json:"role_name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ErrInvalidCredentials is returned when the backend rejects a login.
// The wrapping error carries the backend's message for the login form.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrSessionExpired is returned when a session's backend token no longer
// validates. The session has already been destroyed by the time callers see
// it; the expected recovery is a silent re-login prompt.
var ErrSessionExpired = errors.New("session expired")
