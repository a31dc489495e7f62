package models

// Ship represents a vessel record with a maximum speed in knots.
//
// Ships are standalone records: no other entity references them, so they can
// be created, updated and deleted freely.
//
// Example JSON representation:
//
//	{
//	  "id": 1,
//	  "name": "Ocean Voyager",
//	  "maxSpeed": 25
//	}
type Ship struct {
	// ID is the store-assigned surrogate key
	ID uint `json:"id" gorm:"primaryKey"`

	// Name is the vessel name (required, at most 100 characters)
	Name string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`

	// MaxSpeed is the maximum speed in knots (0 to 1000)
	MaxSpeed float64 `json:"maxSpeed" gorm:"not null;default:0" validate:"gte=0,lte=1000"`
}

// TableName pins the table name used by the store.
func (Ship) TableName() string {
	return "ships"
}
