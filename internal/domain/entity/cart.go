package entity

// Cart is the session-scoped ordered multiset of product ids awaiting
// checkout. Duplicates represent quantity; ordering is the order items were
// added in.
type Cart []uint

// Add appends a product id to the cart.
func (c Cart) Add(productID uint) Cart {
	return append(c, productID)
}

// RemoveFirst removes the first occurrence of productID. Removing an id that
// is not present is a no-op.
func (c Cart) RemoveFirst(productID uint) Cart {
	for i, id := range c {
		if id == productID {
			return append(c[:i:i], c[i+1:]...)
		}
	}

	return c
}

// Filter returns the cart restricted, in order, to ids for which keep
// reports true, plus whether anything was dropped.
func (c Cart) Filter(keep func(uint) bool) (Cart, bool) {
	filtered := make(Cart, 0, len(c))
	for _, id := range c {
		if keep(id) {
			filtered = append(filtered, id)
		}
	}

	return filtered, len(filtered) != len(c)
}

// UniqueIDs returns the distinct product ids in first-seen order.
func (c Cart) UniqueIDs() []uint {
	seen := make(map[uint]struct{}, len(c))
	ids := make([]uint, 0, len(c))
	for _, id := range c {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// Quantities returns how many times each product id occurs.
func (c Cart) Quantities() map[uint]int {
	counts := make(map[uint]int, len(c))
	for _, id := range c {
		counts[id]++
	}

	return counts
}

// CartLine is a resolved cart entry: a live product plus its quantity.
type CartLine struct {
	Product  Product
	Quantity int
}

// GuestOrder is a checkout record kept only in the session for users who
// are not logged in. Timestamp doubles as its externally visible pseudo-id.
type GuestOrder struct {
	Items     []uint `json:"items"`
	Timestamp int64  `json:"timestamp"`
}
