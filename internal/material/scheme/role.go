// Package scheme defines the semantic colour roles of a Material scheme and
// generates a complete role mapping from a source colour.
package scheme

import (
	"fmt"
)

// Role identifies one semantic colour slot of a scheme.
type Role int

// Every role a generated scheme carries. The order is the order roles are
// listed in text output.
const (
	Primary Role = iota
	OnPrimary
	PrimaryContainer
	OnPrimaryContainer
	InversePrimary
	PrimaryFixed
	PrimaryFixedDim
	OnPrimaryFixed
	OnPrimaryFixedVariant

	Secondary
	OnSecondary
	SecondaryContainer
	OnSecondaryContainer
	SecondaryFixed
	SecondaryFixedDim
	OnSecondaryFixed
	OnSecondaryFixedVariant

	Tertiary
	OnTertiary
	TertiaryContainer
	OnTertiaryContainer
	TertiaryFixed
	TertiaryFixedDim
	OnTertiaryFixed
	OnTertiaryFixedVariant

	Error
	OnError
	ErrorContainer
	OnErrorContainer

	SurfaceDim
	Surface
	SurfaceBright
	SurfaceContainerLowest
	SurfaceContainerLow
	SurfaceContainer
	SurfaceContainerHigh
	SurfaceContainerHighest
	OnSurface
	OnSurfaceVariant
	Outline
	OutlineVariant
	InverseSurface
	InverseOnSurface
	SurfaceVariant
	SurfaceTint
	Background
	OnBackground
	Shadow
	Scrim

	// NumRoles is the number of roles; it is not a role itself.
	NumRoles
)

var roleNames = [NumRoles]string{
	Primary:               "primary",
	OnPrimary:             "on_primary",
	PrimaryContainer:      "primary_container",
	OnPrimaryContainer:    "on_primary_container",
	InversePrimary:        "inverse_primary",
	PrimaryFixed:          "primary_fixed",
	PrimaryFixedDim:       "primary_fixed_dim",
	OnPrimaryFixed:        "on_primary_fixed",
	OnPrimaryFixedVariant: "on_primary_fixed_variant",

	Secondary:               "secondary",
	OnSecondary:             "on_secondary",
	SecondaryContainer:      "secondary_container",
	OnSecondaryContainer:    "on_secondary_container",
	SecondaryFixed:          "secondary_fixed",
	SecondaryFixedDim:       "secondary_fixed_dim",
	OnSecondaryFixed:        "on_secondary_fixed",
	OnSecondaryFixedVariant: "on_secondary_fixed_variant",

	Tertiary:               "tertiary",
	OnTertiary:             "on_tertiary",
	TertiaryContainer:      "tertiary_container",
	OnTertiaryContainer:    "on_tertiary_container",
	TertiaryFixed:          "tertiary_fixed",
	TertiaryFixedDim:       "tertiary_fixed_dim",
	OnTertiaryFixed:        "on_tertiary_fixed",
	OnTertiaryFixedVariant: "on_tertiary_fixed_variant",

	Error:            "error",
	OnError:          "on_error",
	ErrorContainer:   "error_container",
	OnErrorContainer: "on_error_container",

	SurfaceDim:              "surface_dim",
	Surface:                 "surface",
	SurfaceBright:           "surface_bright",
	SurfaceContainerLowest:  "surface_container_lowest",
	SurfaceContainerLow:     "surface_container_low",
	SurfaceContainer:        "surface_container",
	SurfaceContainerHigh:    "surface_container_high",
	SurfaceContainerHighest: "surface_container_highest",
	OnSurface:               "on_surface",
	OnSurfaceVariant:        "on_surface_variant",
	Outline:                 "outline",
	OutlineVariant:          "outline_variant",
	InverseSurface:          "inverse_surface",
	InverseOnSurface:        "inverse_on_surface",
	SurfaceVariant:          "surface_variant",
	SurfaceTint:             "surface_tint",
	Background:              "background",
	OnBackground:            "on_background",
	Shadow:                  "shadow",
	Scrim:                   "scrim",
}

var rolesByName = func() map[string]Role {
	m := make(map[string]Role, NumRoles)
	for r, name := range roleNames {
		m[name] = Role(r)
	}
	return m
}()

// String returns the snake_case role name used in output.
func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r >= 0 && r < NumRoles
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
	return []byte(roleNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	role, ok := ParseRole(string(text))
	if !ok {
		return fmt.Errorf("unknown role %q", text)
	}
	*r = role
	return nil
}

// ParseRole looks a role up by its snake_case name.
func ParseRole(name string) (Role, bool) {
	r, ok := rolesByName[name]
	return r, ok
}

// Roles returns every role in output order.
func Roles() []Role {
	roles := make([]Role, NumRoles)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}
