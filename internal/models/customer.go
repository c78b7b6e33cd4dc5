package models

import "time"

// Customer is a row in the users table. The table is owned by external
// loaders; this service never writes to it outside of the seeder.
type Customer struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	FirstName     string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName      string    `gorm:"type:varchar(100)" json:"last_name"`
	Email         string    `gorm:"type:varchar(255);index" json:"email"`
	Age           int       `json:"age"`
	Gender        string    `gorm:"type:varchar(10)" json:"gender"`
	State         string    `gorm:"type:varchar(100)" json:"state"`
	StreetAddress string    `gorm:"type:varchar(255)" json:"street_address"`
	PostalCode    string    `gorm:"type:varchar(20)" json:"postal_code"`
	City          string    `gorm:"type:varchar(100)" json:"city"`
	Country       string    `gorm:"type:varchar(100)" json:"country"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	TrafficSource string    `gorm:"type:varchar(50)" json:"traffic_source"`
	CreatedAt     time.Time `json:"created_at"`

	Orders []Order `gorm:"foreignKey:UserID" json:"-"`
}

func (Customer) TableName() string {
	return "users"
}
