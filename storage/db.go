package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"

	"github.com/ferreirogomes/carteirinha/models"
)

// DB representa a conexão com o banco de dados PostgreSQL.
type DB struct {
	*sqlx.DB
}

// NewDB conecta-se ao PostgreSQL e executa as migrações.
func NewDB(dataSourceName string) (*DB, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao banco de dados: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("falha ao pingar o banco de dados: %w", err)
	}

	if err := runMigrations(db.DB); err != nil {
		return nil, fmt.Errorf("falha ao executar migrações: %w", err)
	}

	return &DB{db}, nil
}

// runMigrations executa as migrações usando sql-migrate.
func runMigrations(db *sql.DB) error {
	migrations := &migrate.FileMigrationSource{
		Dir: "./storage/migrations",
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}
	if n > 0 {
		log.Printf("Aplicadas %d migrações ao banco de dados.", n)
	}
	return nil
}

// GetPortfolio retorna a carteira de um usuário, ou found=false se o
// usuário não possui carteira cadastrada.
func (d *DB) GetPortfolio(userID string) (models.Portfolio, bool, error) {
	var p models.Portfolio
	err := d.Get(&p, `SELECT user_id FROM portfolios WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Portfolio{}, false, nil
	}
	if err != nil {
		return models.Portfolio{}, false, fmt.Errorf("%w: falha ao buscar carteira: %v", ErrStorage, err)
	}

	err = d.Select(&p.Holdings,
		`SELECT symbol, name, shares, avg_price FROM holdings WHERE user_id = $1 ORDER BY symbol`, userID)
	if err != nil {
		return models.Portfolio{}, false, fmt.Errorf("%w: falha ao buscar posições: %v", ErrStorage, err)
	}
	return p, true, nil
}

// GetAllStocks retorna todas as ações em ordem de inserção.
func (d *DB) GetAllStocks() ([]models.Stock, error) {
	stocks := []models.Stock{}
	err := d.Select(&stocks,
		`SELECT id, symbol, name, price, change, change_percent, volume, market_cap, created_at
		 FROM stocks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao listar ações: %v", ErrStorage, err)
	}
	return stocks, nil
}

// GetTransactions retorna o histórico de operações de um usuário, da mais
// recente para a mais antiga. Uma lista vazia é um resultado válido.
func (d *DB) GetTransactions(userID string) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	err := d.Select(&txs,
		`SELECT id, user_id, type, symbol, shares, price, total, executed_at
		 FROM transactions WHERE user_id = $1 ORDER BY executed_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar operações: %v", ErrStorage, err)
	}
	return txs, nil
}

// CreateStock persiste uma ação já validada e retorna o registro gravado.
func (d *DB) CreateStock(stock models.Stock) (models.Stock, error) {
	_, err := d.Exec(
		`INSERT INTO stocks (id, symbol, name, price, change, change_percent, volume, market_cap, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		stock.ID, stock.Symbol, stock.Name, stock.Price, stock.Change,
		stock.ChangePercent, stock.Volume, stock.MarketCap, stock.CreatedAt,
	)
	if err != nil {
		return models.Stock{}, fmt.Errorf("%w: falha ao gravar ação: %v", ErrStorage, err)
	}
	return stock, nil
}
