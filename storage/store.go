package storage

import (
	"errors"

	"github.com/ferreirogomes/carteirinha/models"
)

// ErrStorage sinaliza uma falha interna inesperada da camada de persistência.
// É distinto de "não encontrado", que os getters sinalizam com found=false.
var ErrStorage = errors.New("falha interna de armazenamento")

// Store é o contrato da camada de persistência.
// A carteira e as transações são somente leitura neste serviço; a única
// mutação é CreateStock. Não há restrição de unicidade sobre symbol.
type Store interface {
	// GetPortfolio retorna a carteira de um usuário, ou found=false se
	// o usuário não possui carteira.
	GetPortfolio(userID string) (models.Portfolio, bool, error)

	// GetAllStocks retorna todas as ações conhecidas, em ordem de inserção.
	GetAllStocks() ([]models.Stock, error)

	// GetTransactions retorna o histórico de operações de um usuário.
	// Uma lista vazia é um resultado válido, não um "não encontrado".
	GetTransactions(userID string) ([]models.Transaction, error)

	// CreateStock persiste uma ação já validada e retorna o registro
	// persistido. A ação está garantidamente gravada antes do retorno.
	CreateStock(stock models.Stock) (models.Stock, error)
}
