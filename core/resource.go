// SPDX-License-Identifier: MIT
//
// File: resource.go
// Role: Fixed resource universe, roll tables and the settlement weight.
//
// Determinism:
//   - Resource values are totally ordered (Wood < Brick < Sheep < Wheat < Ore).
//   - RollTable.Totals() returns totals ascending.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// Resource is one of the five producible resource types.
type Resource uint8

// The resource universe, in its total order.
const (
	Wood Resource = iota
	Brick
	Sheep
	Wheat
	Ore
)

// ResourceCount is the size of the resource universe. It is never zero.
const ResourceCount = 5

// Dice totals accepted in roll tables.
const (
	MinRoll    = 2
	MaxRoll    = 12
	RobberRoll = 7
)

var resourceNames = [ResourceCount]string{
	Wood:  "wood",
	Brick: "brick",
	Sheep: "sheep",
	Wheat: "wheat",
	Ore:   "ore",
}

// aliases accepted by ParseResource besides the canonical names.
var resourceAliases = map[string]Resource{
	"lumber": Wood,
	"wool":   Sheep,
	"grain":  Wheat,
}

// String returns the canonical lower-case name.
func (r Resource) String() string {
	if !r.Valid() {
		return fmt.Sprintf("resource(%d)", uint8(r))
	}
	return resourceNames[r]
}

// Valid reports whether r is inside the universe.
func (r Resource) Valid() bool { return r < ResourceCount }

// ParseResource maps a case-insensitive name or alias to a Resource.
func ParseResource(name string) (Resource, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range resourceNames {
		if n == key {
			return Resource(i), nil
		}
	}
	if r, ok := resourceAliases[key]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResource, name)
}

// MarshalText implements encoding.TextMarshaler.
func (r Resource) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownResource, uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Resource) UnmarshalText(text []byte) error {
	v, err := ParseResource(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RollTable maps a dice total to the resources produced on that total.
// A resource may repeat in one entry (a vertex touching two hexes of the
// same type and number produces two units).
type RollTable map[int][]Resource

// Validate checks every key is a producible total and every value is a known resource.
func (t RollTable) Validate() error {
	for roll, res := range t {
		if roll < MinRoll || roll > MaxRoll || roll == RobberRoll {
			return fmt.Errorf("%w: got %d", ErrBadRoll, roll)
		}
		for _, r := range res {
			if !r.Valid() {
				return fmt.Errorf("%w: %d on roll %d", ErrUnknownResource, uint8(r), roll)
			}
		}
	}
	return nil
}

// Clone returns a deep copy; nil stays nil.
func (t RollTable) Clone() RollTable {
	if t == nil {
		return nil
	}
	out := make(RollTable, len(t))
	for roll, res := range t {
		out[roll] = append([]Resource(nil), res...)
	}
	return out
}

// Totals returns the totals present in the table, ascending.
func (t RollTable) Totals() []int {
	out := make([]int, 0, len(t))
	for roll := range t {
		out = append(out, roll)
	}
	sort.Ints(out)
	return out
}

// Produces returns the resources yielded on roll; nil for absent totals and for 7.
func (t RollTable) Produces(roll int) []Resource {
	if roll == RobberRoll {
		return nil
	}
	return t[roll]
}

// Weight returns the number of distinct resource types t can produce across all
// its entries. It is the settlement weight used by the selection DP.
// Complexity: O(entries).
func Weight(t RollTable) int {
	var seen [ResourceCount]bool
	n := 0
	for _, res := range t {
		for _, r := range res {
			if r.Valid() && !seen[r] {
				seen[r] = true
				n++
			}
		}
	}
	return n
}
