package usecase

import (
	"context"

	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// PurchasingTxRunner ejecuta una función dentro de una transacción con los
// repositorios de compras e inventario (creación y recepción de órdenes).
type PurchasingTxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		movRepo repository.MovementRepository,
		partRepo repository.PartRepository,
	) error) error
}

// QuotationTxRunner ejecuta una función dentro de una transacción con el
// repositorio de cotizaciones (cabecera + líneas atómicas).
type QuotationTxRunner interface {
	RunQuotation(ctx context.Context, fn func(
		quotationRepo repository.QuotationRepository,
	) error) error
}
