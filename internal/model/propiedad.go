package model

import "time"

// Propiedad represents a property managed by the agency. Price is stored
// verbatim; Available distinguishes available from rented.
type Propiedad struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Address   string    `json:"address" gorm:"type:varchar(255)"`
	Price     float64   `json:"price"`
	Available bool      `json:"available"`
	PhotoURL  *string   `json:"photo_url" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Propiedad) TableName() string {
	return "propiedades"
}
