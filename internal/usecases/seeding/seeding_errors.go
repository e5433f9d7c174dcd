package seeding

import "github.com/pkg/errors"

// Erros específicos para o contexto do seed
var (
	// O feed externo não respondeu ou respondeu algo que não é um array
	// de itens. Nada foi alterado no banco.
	ErrSeedSourceUnreachable = errors.New("seed source unreachable")

	// Já existe um seed em andamento. O seed é uma operação administrativa
	// de baixa frequência e não é seguro executá-lo em paralelo.
	ErrSeedInProgress = errors.New("seed already in progress")
)
