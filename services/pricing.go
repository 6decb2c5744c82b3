package services

import (
	"math"

	"github.com/charankanumuri/proshop96/models"
)

// ItemsPrice computes the items subtotal of an order, the sum of unit
// price times quantity over all line items, rounded half-up to cents.
// An empty item list yields 0.
func ItemsPrice(items []models.OrderItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.Price * float64(item.Qty)
	}
	return roundToCents(sum)
}

func roundToCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
