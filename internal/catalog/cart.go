package catalog

// CartLine is a cart entry joined to its product.
type CartLine struct {
	Product Product
	Qty     int
}

// CartLines joins cart entries to the catalog. Entries whose product no
// longer exists are dropped from the result; the stored cart is not the
// caller's to clean up here.
func CartLines(products []Product, cart []CartItem) []CartLine {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	lines := make([]CartLine, 0, len(cart))
	for _, item := range cart {
		if p, ok := byID[item.ID]; ok {
			lines = append(lines, CartLine{Product: p, Qty: item.Qty})
		}
	}
	return lines
}

// Subtotal sums price-after-discount times quantity over the joined lines.
func Subtotal(lines []CartLine) int {
	total := 0
	for _, l := range lines {
		total += PriceAfter(l.Product) * l.Qty
	}
	return total
}

// CartCount is the total quantity across all cart entries, as shown in
// the header badge. Orphaned entries still count; the badge reflects the
// stored cart, not the joined view.
func CartCount(cart []CartItem) int {
	n := 0
	for _, item := range cart {
		n += item.Qty
	}
	return n
}
