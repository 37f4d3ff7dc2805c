package service

import (
	"context"
	"log/slog"

	"pagamentos/metrics"
	"pagamentos/models"
	"pagamentos/validation"
)

// PaymentStore persistence used by PaymentService
type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	Get(ctx context.Context, id uint) (*models.Payment, error)
	Replace(ctx context.Context, id uint, apply func(*models.Payment) error) (*models.Payment, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Payment, error)
}

// PaymentService payment record lifecycle
type PaymentService struct {
	store PaymentStore
}

// NewPaymentService creates a payment service
func NewPaymentService(store PaymentStore) *PaymentService {
	return &PaymentService{store: store}
}

// Create validates fields and stores a new payment.
func (s *PaymentService) Create(ctx context.Context, actor Actor, fields map[string]string) (*models.Payment, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validatePayment(fields); err != nil {
		return nil, err
	}

	p := &models.Payment{}
	p.Apply(fields)
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}

	metrics.PaymentMutations.WithLabelValues("create").Inc()
	slog.InfoContext(ctx, "payment created", "id", p.ID, "user_id", actor.UserID)
	return p, nil
}

// Get loads one payment.
func (s *PaymentService) Get(ctx context.Context, actor Actor, id uint) (*models.Payment, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, id)
}

// Update replaces every field of the payment with fields. Keys that are not
// supplied are stored as "", they do not keep their previous value.
func (s *PaymentService) Update(ctx context.Context, actor Actor, id uint, fields map[string]string) (*models.Payment, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	p, err := s.store.Replace(ctx, id, func(cur *models.Payment) error {
		if err := validatePayment(fields); err != nil {
			return err
		}
		cur.Apply(fields)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PaymentMutations.WithLabelValues("update").Inc()
	slog.InfoContext(ctx, "payment updated", "id", id, "user_id", actor.UserID)
	return p, nil
}

// Delete removes a payment. Deleting an absent payment returns ErrNotFound.
func (s *PaymentService) Delete(ctx context.Context, actor Actor, id uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	metrics.PaymentMutations.WithLabelValues("delete").Inc()
	slog.InfoContext(ctx, "payment deleted", "id", id, "user_id", actor.UserID)
	return nil
}

// List returns all payments in ID order.
func (s *PaymentService) List(ctx context.Context, actor Actor) ([]models.Payment, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.store.List(ctx)
}

// Search lists payments matching term, see Search.
func (s *PaymentService) Search(ctx context.Context, actor Actor, term string) ([]models.Payment, error) {
	list, err := s.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	return Search(list, term), nil
}

func validatePayment(fields map[string]string) error {
	return newValidationError(validation.RequiredFields(fields, models.RequiredPaymentFields)...)
}
