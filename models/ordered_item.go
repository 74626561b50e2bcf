package models

// OrderedItem is one line of an Order. The external table carries no
// surrogate key, so none is modeled. Price is whatever the caller sent;
// it is not resolved against a menu catalog.
type OrderedItem struct {
	OrderID  uint    `gorm:"column:OrderID;not null;index" json:"order_id"`
	ItemID   int     `gorm:"column:ItemID;not null" json:"item_id"`
	Quantity int     `gorm:"column:Quantity;not null" json:"quantity"`
	Price    float64 `gorm:"column:Price;type:decimal(10,2);not null" json:"price"`
}

func (OrderedItem) TableName() string {
	return "OrderedItems"
}
