package models

import "time"

// Order statuses as they appear in the dataset. The column is free text;
// statuses outside this set are carried through untouched.
const (
	OrderStatusComplete   = "Complete"
	OrderStatusCancelled  = "Cancelled"
	OrderStatusShipped    = "Shipped"
	OrderStatusProcessing = "Processing"
	OrderStatusReturned   = "Returned"
)

// Order is a row in the orders table, owned by exactly one customer
// via UserID.
type Order struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	UserID      int64      `gorm:"index" json:"user_id"`
	Status      string     `gorm:"type:varchar(20);index" json:"status"`
	Gender      string     `gorm:"type:varchar(10)" json:"gender"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	ReturnedAt  *time.Time `json:"returned_at"`
	ShippedAt   *time.Time `json:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
	NumOfItems  int        `gorm:"column:num_of_items" json:"num_of_items"`

	Customer *Customer `gorm:"foreignKey:UserID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}
