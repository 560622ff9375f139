package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartRequestIsComplete(t *testing.T) {
	req := PartRequest{Name: "SSD 512GB", Category: "Xotira", Quantity: 5, Price: 700000, Supplier: "TechnoPlus"}
	assert.True(t, req.IsComplete())

	req.Supplier = ""
	assert.False(t, req.IsComplete())

	req = PartRequest{Name: "SSD", Category: "Xotira", Quantity: 0, Price: 700000, Supplier: "TechnoPlus"}
	assert.False(t, req.IsComplete())
}

func TestFilterParts(t *testing.T) {
	parts := []Part{
		{ID: "p1", Name: "SSD 512GB", Category: "Xotira"},
		{ID: "p2", Name: "Klaviatura", Category: "Periferiya"},
	}

	assert.Len(t, FilterParts(parts, ""), 2)

	filtered := FilterParts(parts, "ssd")
	require.Len(t, filtered, 1)
	assert.Equal(t, "p1", filtered[0].ID)

	filtered = FilterParts(parts, "periferiya")
	require.Len(t, filtered, 1)
	assert.Equal(t, "p2", filtered[0].ID)
}

func TestTotalPartsCost(t *testing.T) {
	parts := []Part{
		{ID: "p1", Price: 100000, Quantity: 10},
		{ID: "p2", Price: 50000, Quantity: 3},
	}
	selected := []SparePart{
		{PartID: "p1", Quantity: 2},
		{PartID: "p2", Quantity: 1},
		{PartID: "yo'q", Quantity: 5}, // ro'yxatda bo'lmagan qism hisobga olinmaydi
	}

	assert.Equal(t, 250000.0, TotalPartsCost(parts, selected))
}

func TestClampQuantities(t *testing.T) {
	parts := []Part{
		{ID: "p1", Quantity: 3},
		{ID: "p2", Quantity: 10},
	}
	selected := []SparePart{
		{PartID: "p1", Quantity: 99}, // ombordagidan ko'p, 3 ga tushadi
		{PartID: "p2", Quantity: 0},  // kamida 1
		{PartID: "p3", Quantity: 1},  // omborda yo'q, chiqariladi
	}

	clamped := ClampQuantities(parts, selected)
	require.Len(t, clamped, 2)
	assert.Equal(t, SparePart{PartID: "p1", Quantity: 3}, clamped[0])
	assert.Equal(t, SparePart{PartID: "p2", Quantity: 1}, clamped[1])
}
