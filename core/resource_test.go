// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexroute/core"
)

func TestParseResource(t *testing.T) {
	cases := []struct {
		in   string
		want core.Resource
	}{
		{"wood", core.Wood},
		{"Lumber", core.Wood},
		{" brick ", core.Brick},
		{"wool", core.Sheep},
		{"SHEEP", core.Sheep},
		{"grain", core.Wheat},
		{"ore", core.Ore},
	}
	for _, tc := range cases {
		got, err := core.ParseResource(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := core.ParseResource("gold")
	assert.ErrorIs(t, err, core.ErrUnknownResource)
}

func TestResource_TotalOrder(t *testing.T) {
	assert.True(t, core.Wood < core.Brick)
	assert.True(t, core.Brick < core.Sheep)
	assert.True(t, core.Sheep < core.Wheat)
	assert.True(t, core.Wheat < core.Ore)
	assert.False(t, core.Resource(core.ResourceCount).Valid())
	assert.Equal(t, "resource(5)", core.Resource(5).String())
}

func TestResource_TextRoundTripRejectsUnknown(t *testing.T) {
	var r core.Resource
	require.NoError(t, r.UnmarshalText([]byte("wheat")))
	assert.Equal(t, core.Wheat, r)

	_, err := core.Resource(42).MarshalText()
	assert.ErrorIs(t, err, core.ErrUnknownResource)
}

func TestWeight_CountsDistinctTypes(t *testing.T) {
	assert.Equal(t, 0, core.Weight(nil))
	assert.Equal(t, 1, core.Weight(core.RollTable{6: {core.Wood, core.Wood}, 8: {core.Wood}}))
	assert.Equal(t, 3, core.Weight(core.RollTable{
		4:  {core.Ore},
		6:  {core.Brick},
		10: {core.Ore, core.Sheep},
	}))
}

func TestRollTable_Produces(t *testing.T) {
	tbl := core.RollTable{6: {core.Brick, core.Wheat}}

	assert.Equal(t, []core.Resource{core.Brick, core.Wheat}, tbl.Produces(6))
	assert.Nil(t, tbl.Produces(8))
	assert.Nil(t, tbl.Produces(core.RobberRoll))
	assert.Equal(t, []int{6}, tbl.Totals())
}
