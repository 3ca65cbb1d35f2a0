package store

// computeTotals derives subtotal and total quantity from the line items.
// Pure; an empty list yields (0, 0).
func computeTotals(items []CartItem) (subtotal float64, totalQuantity int) {
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
		totalQuantity += it.Quantity
	}
	return subtotal, totalQuantity
}
