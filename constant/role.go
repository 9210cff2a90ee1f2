package constant

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Role is the closed set of actor kinds. The zero value is not a valid role.
type Role int

const (
	RoleUnknown Role = iota
	RoleClient
	RoleMechanic
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleMechanic:
		return "mechanic"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// ParseRole maps the stored/wire name of a role back to a Role.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client":
		return RoleClient, true
	case "mechanic":
		return RoleMechanic, true
	case "admin":
		return RoleAdmin, true
	default:
		return RoleUnknown, false
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, _ := ParseRole(string(b))
	*r = parsed
	return nil
}

// Scan implements sql.Scanner for the varchar role column.
func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		*r, _ = ParseRole(string(v))
	case string:
		*r, _ = ParseRole(v)
	case nil:
		*r = RoleUnknown
	default:
		return fmt.Errorf("unsupported role type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (r Role) Value() (driver.Value, error) {
	if r == RoleUnknown {
		return nil, fmt.Errorf("cannot store unknown role")
	}
	return r.String(), nil
}
