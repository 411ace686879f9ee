// SPDX-License-Identifier: MIT

// Package render turns routes and settlement sets into positioned layers for a
// drawing front end. It draws nothing itself.
package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hexroute/core"
)

// ErrNilLocator is returned when no position source is supplied.
var ErrNilLocator = errors.New("render: locator is nil")

// Role tags what a layer shows.
type Role uint8

const (
	// RoleChosen is the route recommended by the route finder.
	RoleChosen Role = iota
	// RoleVerification is one enumerated alternative.
	RoleVerification
	// RoleBest is the alternative the simulator scored highest.
	RoleBest
)

var roleNames = [...]string{"chosen", "verification", "best"}

// String returns the lower-case role name.
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// Layer is one drawable overlay: a polyline and its settlement markers.
type Layer struct {
	Role        Role
	Path        []core.Point
	Settlements []core.Point
}

// Locator resolves vertex positions. *core.Graph implements it.
type Locator interface {
	Position(id string) (core.Point, error)
}

// NewLayer positions route and settlements through loc.
func NewLayer(loc Locator, role Role, route, settlements []string) (Layer, error) {
	if loc == nil {
		return Layer{}, ErrNilLocator
	}
	path, err := points(loc, route)
	if err != nil {
		return Layer{}, err
	}
	sets, err := points(loc, settlements)
	if err != nil {
		return Layer{}, err
	}

	return Layer{Role: role, Path: path, Settlements: sets}, nil
}

func points(loc Locator, ids []string) ([]core.Point, error) {
	out := make([]core.Point, len(ids))
	for i, id := range ids {
		p, err := loc.Position(id)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		out[i] = p
	}
	return out, nil
}
