package entity

import "strconv"

// OrderRefKind distinguishes the two order representations: rows persisted
// for authenticated users and ephemeral session records for guests.
type OrderRefKind int

const (
	// OrderRefPersisted identifies an order stored in the orders table.
	OrderRefPersisted OrderRefKind = iota
	// OrderRefEphemeral identifies a guest order held only in the session,
	// keyed by its checkout timestamp acting as a pseudo-id.
	OrderRefEphemeral
)

// OrderRef identifies an order across both representations. For persisted
// orders Value is the database id; for ephemeral orders it is the unix
// timestamp of the checkout.
type OrderRef struct {
	Kind  OrderRefKind
	Value int64
}

// PersistedRef builds a reference to a database-backed order.
func PersistedRef(id uint) OrderRef {
	return OrderRef{Kind: OrderRefPersisted, Value: int64(id)}
}

// EphemeralRef builds a reference to a session-only guest order.
func EphemeralRef(timestamp int64) OrderRef {
	return OrderRef{Kind: OrderRefEphemeral, Value: timestamp}
}

// String renders the reference the way it appears in order_success URLs.
func (r OrderRef) String() string {
	return strconv.FormatInt(r.Value, 10)
}

// Order is a persisted order row. Items are resolved separately by joining
// order_items back to live products.
type Order struct {
	ID        uint
	UserID    uint
	CreatedAt int64 // Unix seconds.
}

// OrderItem links an order to a product. Duplicate product ids encode
// quantity, one row per cart entry. There is deliberately no foreign key on
// ProductID: deleting a product must leave past orders retrievable, with
// the deleted product simply absent from the resolved item list.
type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID uint
}

// OrderView is the single read-side shape shared by persisted and guest
// orders. Products contains only items whose product rows still exist.
type OrderView struct {
	Ref      OrderRef
	PlacedAt int64 // Unix seconds.
	Products []Product
}
