package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pagamentos/models"
)

// PaymentRepository persists payments. Every mutation commits before returning.
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts p and fills in its generated ID.
func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	p.ID = 0
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("insert payment: %w", translate(err))
	}
	return nil
}

// Get loads one payment.
func (r *PaymentRepository) Get(ctx context.Context, id uint) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// Replace overwrites every column of an existing payment with the result of
// apply. Lookup and save run in one transaction.
func (r *PaymentRepository) Replace(ctx context.Context, id uint, apply func(*models.Payment) error) (*models.Payment, error) {
	var p models.Payment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if err := apply(&p); err != nil {
			return err
		}
		p.ID = id
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// Delete removes a payment permanently.
func (r *PaymentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Payment{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete payment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every payment ordered by ID.
func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	var list []models.Payment
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return list, nil
}
