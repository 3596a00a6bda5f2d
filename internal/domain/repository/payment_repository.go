package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByInvoice(invoiceID string) ([]*entity.Payment, error)
	Update(payment *entity.Payment) error
	Delete(id string) error
}

// PaymentMethodRepository catálogo de medios de pago.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	List() ([]*entity.PaymentMethod, error)
}

// TransactionTypeRepository catálogo de tipos de transacción.
type TransactionTypeRepository interface {
	Create(txType *entity.TransactionType) error
	GetByID(id string) (*entity.TransactionType, error)
	List() ([]*entity.TransactionType, error)
}
