package services

import (
	"testing"

	"github.com/charankanumuri/proshop96/models"
	"github.com/stretchr/testify/assert"
)

func TestItemsPrice(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
		want  float64
	}{
		{
			name:  "empty_sequence",
			items: []models.OrderItem{},
			want:  0,
		},
		{
			name:  "nil_sequence",
			items: nil,
			want:  0,
		},
		{
			name: "single_item",
			items: []models.OrderItem{
				{Price: 10.00, Qty: 2},
			},
			want: 20.00,
		},
		{
			name: "multiple_items",
			items: []models.OrderItem{
				{Price: 10.00, Qty: 2},
				{Price: 5.00, Qty: 1},
			},
			want: 25.00,
		},
		{
			name: "zero_quantity",
			items: []models.OrderItem{
				{Price: 99.99, Qty: 0},
			},
			want: 0,
		},
		{
			name: "rounds_half_up",
			items: []models.OrderItem{
				{Price: 0.335, Qty: 1},
			},
			want: 0.34,
		},
		{
			name: "rounds_down_below_half",
			items: []models.OrderItem{
				{Price: 0.334, Qty: 1},
			},
			want: 0.33,
		},
		{
			name: "fractional_cents_accumulate",
			items: []models.OrderItem{
				{Price: 0.10, Qty: 3},
				{Price: 0.07, Qty: 5},
			},
			want: 0.65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ItemsPrice(tt.items), 1e-9)
		})
	}
}
