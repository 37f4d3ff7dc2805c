package models

import (
	"time"
)

// Payment contribution record of a club/church, one column per month.
// Deletes are physical: the model carries no gorm.DeletedAt.
type Payment struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Club      string    `json:"club" gorm:"size:100"`
	Church    string    `json:"church" gorm:"size:100"`
	Region    string    `json:"region" gorm:"size:100"`
	Category  string    `json:"category" gorm:"size:100"`
	Total     string    `json:"total"`
	January   string    `json:"january"`
	February  string    `json:"february"`
	March     string    `json:"march"`
	April     string    `json:"april"`
	May       string    `json:"may"`
	June      string    `json:"june"`
	July      string    `json:"july"`
	August    string    `json:"august"`
	September string    `json:"september"`
	October   string    `json:"october"`
	November  string    `json:"november"`
	December  string    `json:"december"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName table name
func (Payment) TableName() string {
	return "payments"
}

// Apply overwrites every field of the table from values; missing keys become "".
// ID and timestamps are left alone.
func (p *Payment) Apply(values map[string]string) {
	for _, f := range PaymentFields {
		f.Set(p, values[f.Key])
	}
}

// Values returns the textual fields keyed by field key.
func (p *Payment) Values() map[string]string {
	out := make(map[string]string, len(PaymentFields))
	for _, f := range PaymentFields {
		out[f.Key] = f.Get(p)
	}
	return out
}
