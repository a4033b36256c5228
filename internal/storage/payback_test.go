package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecocollect/waste-service/internal/storage"
)

func TestCalculatePayback(t *testing.T) {
	tests := []struct {
		name     string
		category string
		weightKG float64
		expected float64
	}{
		{"plastic per kg", "plastic", 1, 40},
		{"paper fractional weight", "paper", 1.2, 24},
		{"glass rounds to 2 decimals", "glass", 0.333, 3.33},
		{"metal heavy load", "metal", 10, 700},
		{"ewaste pays nothing", "ewaste", 5, 0},
		{"rounding half up", "plastic", 0.12345, 4.94},
		{"unknown category pays nothing", "plutonium", 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, storage.CalculatePayback(tc.category, tc.weightKG))
		})
	}
}

func TestTotalPayback(t *testing.T) {
	t.Run("sums per item", func(t *testing.T) {
		items := []storage.RecyclableItem{
			{Category: "plastic", WeightKG: 2.5},
			{Category: "paper", WeightKG: 1.2},
		}
		assert.Equal(t, 124.0, storage.TotalPayback(items))
	})

	t.Run("empty items", func(t *testing.T) {
		assert.Equal(t, 0.0, storage.TotalPayback(nil))
	})

	t.Run("ewaste contributes nothing", func(t *testing.T) {
		items := []storage.RecyclableItem{
			{Category: "metal", WeightKG: 1},
			{Category: "ewaste", WeightKG: 100},
		}
		assert.Equal(t, 70.0, storage.TotalPayback(items))
	})
}
