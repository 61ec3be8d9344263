package model

import "time"

// Payment status values. The column is free text, the set is open.
const (
	PagoPendiente = "pendiente"
	PagoPagado    = "pagado"
	PagoVencido   = "vencido"
)

// Pago represents a payment obligation. ClientRef and PropertyRef are the
// display labels of the referenced client and property, snapshotted at
// creation time: renaming or deleting the entity later does not rewrite
// historical payments.
type Pago struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ClientRef   string    `json:"client_ref" gorm:"type:varchar(255)"`
	PropertyRef string    `json:"property_ref" gorm:"type:varchar(255)"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status" gorm:"type:varchar(50)"`
	DueDate     string    `json:"due_date" gorm:"type:varchar(50)"`
	PaidDate    *string   `json:"paid_date" gorm:"type:varchar(50)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Pago) TableName() string {
	return "pagos"
}
