package inventory

import (
	"context"

	"github.com/jhoicas/Autopartes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el movimiento y la cantidad del
// repuesto se persistan juntos o no se persista ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		partRepo repository.PartRepository,
	) error) error
}
