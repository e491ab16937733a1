package model

// OrderModel mirrors the 'orders' table. CreatedAt is unix seconds, kept as
// a plain integer so it matches the timestamp pseudo-ids used for guest
// orders.
type OrderModel struct {
	ID        uint  `gorm:"primaryKey;autoIncrement"`
	UserID    uint  `gorm:"index;not null"`
	CreatedAt int64 `gorm:"not null"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. ProductID deliberately
// has no foreign key constraint: order history must survive product
// deletion, with deleted products simply dropping out of item lists.
type OrderItemModel struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	OrderID   uint `gorm:"index;not null"`
	ProductID uint `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
