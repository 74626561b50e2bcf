package models

import (
	"time"
)

// Order statuses. Only Pending is assigned by the intake flow; later states
// are reached through the status-update surface.
const (
	OrderStatusPending = "Pending"
	OrderStatusReady   = "Ready"
	OrderStatusServed  = "Served"
)

// TableUnknown is the sentinel Dialogflow sends when the table_number
// parameter was never filled in the conversation.
const TableUnknown = "unknown"

type Order struct {
	ID          uint          `gorm:"column:OrderID;primaryKey" json:"order_id"`
	TableNumber string        `gorm:"column:TableNumber;type:varchar(50);not null" json:"table_number"`
	Status      string        `gorm:"column:OrderStatus;type:varchar(20);not null;default:'Pending'" json:"order_status"`
	CreatedAt   time.Time     `gorm:"column:OrderTimestamp;not null;autoCreateTime" json:"order_timestamp"`
	Items       []OrderedItem `gorm:"foreignKey:OrderID;references:ID" json:"items,omitempty"`
}

// TableName maps to the external Orders table; the schema is consumed here,
// not owned.
func (Order) TableName() string {
	return "Orders"
}
