package entity

import "time"

// Product is a listing created and owned by a single user. Only the owner
// may edit or delete it. SellerName is populated on reads that join the
// owning user; it is display data, not part of the persisted row.
type Product struct {
	ID          uint
	OwnerID     uint
	Title       string
	Description string
	Category    string
	Price       float64
	ImageURL    string // Stored upload filename, empty when no image was attached.
	SellerName  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
