package color

import (
	"fmt"
	"strings"
)

// Role names a slot of a color scheme.
type Role uint8

const (
	Primary Role = iota
	OnPrimary
	PrimaryContainer
	OnPrimaryContainer
	InversePrimary
	Secondary
	OnSecondary
	SecondaryContainer
	OnSecondaryContainer
	Tertiary
	OnTertiary
	TertiaryContainer
	OnTertiaryContainer
	Error
	OnError
	ErrorContainer
	OnErrorContainer
	Background
	OnBackground
	Surface
	OnSurface
	SurfaceVariant
	OnSurfaceVariant
	SurfaceDim
	SurfaceBright
	SurfaceContainerLowest
	SurfaceContainerLow
	SurfaceContainer
	SurfaceContainerHigh
	SurfaceContainerHighest
	SurfaceTint
	InverseSurface
	InverseOnSurface
	Outline
	OutlineVariant
	Shadow
	Scrim

	roleCount
)

var roleNames = [roleCount]string{
	Primary:                 "primary",
	OnPrimary:               "on-primary",
	PrimaryContainer:        "primary-container",
	OnPrimaryContainer:      "on-primary-container",
	InversePrimary:          "inverse-primary",
	Secondary:               "secondary",
	OnSecondary:             "on-secondary",
	SecondaryContainer:      "secondary-container",
	OnSecondaryContainer:    "on-secondary-container",
	Tertiary:                "tertiary",
	OnTertiary:              "on-tertiary",
	TertiaryContainer:       "tertiary-container",
	OnTertiaryContainer:     "on-tertiary-container",
	Error:                   "error",
	OnError:                 "on-error",
	ErrorContainer:          "error-container",
	OnErrorContainer:        "on-error-container",
	Background:              "background",
	OnBackground:            "on-background",
	Surface:                 "surface",
	OnSurface:               "on-surface",
	SurfaceVariant:          "surface-variant",
	OnSurfaceVariant:        "on-surface-variant",
	SurfaceDim:              "surface-dim",
	SurfaceBright:           "surface-bright",
	SurfaceContainerLowest:  "surface-container-lowest",
	SurfaceContainerLow:     "surface-container-low",
	SurfaceContainer:        "surface-container",
	SurfaceContainerHigh:    "surface-container-high",
	SurfaceContainerHighest: "surface-container-highest",
	SurfaceTint:             "surface-tint",
	InverseSurface:          "inverse-surface",
	InverseOnSurface:        "inverse-on-surface",
	Outline:                 "outline",
	OutlineVariant:          "outline-variant",
	Shadow:                  "shadow",
	Scrim:                   "scrim",
}

func (r Role) String() string {
	if r >= roleCount {
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
	return roleNames[r]
}

// ParseRole resolves a role by name. Both "on-primary" and "on_primary" are accepted,
// case insensitively.
func ParseRole(name string) (Role, error) {
	n := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	for r, s := range roleNames {
		if s == n {
			return Role(r), nil
		}
	}
	return 0, fmt.Errorf("unknown color role %q", name)
}

// Roles returns every role in declaration order.
func Roles() []Role {
	roles := make([]Role, roleCount)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}
