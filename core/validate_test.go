package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/knapsack/core"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		items    []core.Item
		capacity int
		wantErr  bool
	}{
		{name: "empty instance", items: nil, capacity: 0},
		{name: "zero capacity", items: []core.Item{{ID: "a", Weight: 1, Value: 1}}, capacity: 0},
		{name: "zero weight allowed", items: []core.Item{{ID: "a", Weight: 0, Value: 3}}, capacity: 5},
		{name: "empty IDs never collide", items: []core.Item{{Weight: 1, Value: 1}, {Weight: 2, Value: 2}}, capacity: 5},
		{name: "negative capacity", items: nil, capacity: -1, wantErr: true},
		{name: "negative weight", items: []core.Item{{ID: "a", Weight: -2, Value: 1}}, capacity: 5, wantErr: true},
		{name: "negative value", items: []core.Item{{ID: "a", Weight: 2, Value: -1}}, capacity: 5, wantErr: true},
		{name: "NaN value", items: []core.Item{{ID: "a", Weight: 2, Value: math.NaN()}}, capacity: 5, wantErr: true},
		{name: "infinite value", items: []core.Item{{ID: "a", Weight: 2, Value: math.Inf(1)}}, capacity: 5, wantErr: true},
		{name: "duplicate ID", items: []core.Item{{ID: "a", Weight: 1, Value: 1}, {ID: "a", Weight: 2, Value: 2}}, capacity: 5, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := core.Validate(tc.items, tc.capacity)
			if tc.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}
