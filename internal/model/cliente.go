package model

import "time"

// Cliente represents a rental client of the agency
type Cliente struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Name       string    `json:"name" gorm:"type:varchar(255)"`
	Email      string    `json:"email" gorm:"type:varchar(255)"`
	Phone      string    `json:"phone" gorm:"type:varchar(50)"`
	Properties []string  `json:"properties" gorm:"serializer:json;type:text"`
	Status     string    `json:"status" gorm:"type:varchar(50)"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Cliente) TableName() string {
	return "clientes"
}
