package models

// Port represents a named location in a country.
//
// Voyages reference ports as their departure or arrival point. The reverse
// direction (port to voyages) is never materialised on the struct; it is an
// explicit query in the storage layer, so a Port serializes without cycles.
//
// Example JSON representation:
//
//	{
//	  "id": 101,
//	  "name": "Port of Rotterdam",
//	  "country": "Netherlands"
//	}
type Port struct {
	// ID is the store-assigned surrogate key
	ID uint `json:"id" gorm:"primaryKey"`

	// Name is the port name (required, at most 100 characters)
	Name string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`

	// Country is the country the port lies in (required, at most 100 characters)
	Country string `json:"country" gorm:"size:100;not null;index" validate:"required,max=100"`
}

// TableName pins the table name used by the store.
func (Port) TableName() string {
	return "ports"
}
