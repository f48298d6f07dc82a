package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-pilot-api/infrastructure/database/sqlite"
	"github.com/vfg2006/profit-pilot-api/internal/domain"
)

const (
	productsTable   = "products p"
	dailyLogsTable  = "daily_logs dl"
	storeStateTable = "store_state"

	// limite de linhas por INSERT, abaixo do limite de variáveis do sqlite
	insertBatchSize = 200
)

type productSQLiteRepository struct {
	conn sqlite.Conn
}

func NewProductSQLiteRepository(conn sqlite.Conn) ProductRepository {
	return &productSQLiteRepository{
		conn: conn,
	}
}

func (r *productSQLiteRepository) Load() ([]*domain.Product, error) {
	savedQuery, savedArgs, err := squirrel.
		Select("saved_at").
		From(storeStateTable).
		Where(squirrel.Eq{"storage_key": StorageKey}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var savedAt string
	if err := r.conn.QueryRow(savedQuery, savedArgs...).Scan(&savedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "erro ao consultar estado do armazenamento")
	}

	products, err := r.loadProducts()
	if err != nil {
		return nil, err
	}

	if err := r.loadLogs(products); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"products": len(products),
		"saved_at": savedAt,
	}).Debug("Produtos carregados do sqlite")

	return products, nil
}

func (r *productSQLiteRepository) loadProducts() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.category, p.price, p.notes").
		From(productsTable).
		OrderBy("p.position ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p := &domain.Product{Logs: []*domain.DailyLog{}}
		var category string
		if err := rows.Scan(&p.ID, &p.Name, &category, &p.Price, &p.Notes); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear produto")
		}
		p.Category = domain.ProductCategory(category)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return products, nil
}

func (r *productSQLiteRepository) loadLogs(products []*domain.Product) error {
	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	query, args, err := squirrel.
		Select("dl.id, dl.product_id, dl.date, dl.sales_count, dl.ad_spend, dl.misc_expenses").
		From(dailyLogsTable).
		OrderBy("dl.product_id ASC", "dl.position ASC").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	for rows.Next() {
		log, productID, err := r.scanLog(rows)
		if err != nil {
			return err
		}

		p, ok := byID[productID]
		if !ok {
			// log órfão, o produto foi removido
			continue
		}
		p.Logs = append(p.Logs, log)
	}

	return errors.Wrap(rows.Err(), "erro durante a iteração de linhas")
}

func (r *productSQLiteRepository) scanLog(rows *sql.Rows) (*domain.DailyLog, string, error) {
	log := &domain.DailyLog{}
	var productID, dateStr string

	err := rows.Scan(
		&log.ID,
		&productID,
		&dateStr,
		&log.SalesCount,
		&log.AdSpend,
		&log.MiscExpenses,
	)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao escanear log diário")
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao converter data")
	}
	log.Date = date

	return log, productID, nil
}

// Save substitui toda a coleção em uma única transação, sem diff
func (r *productSQLiteRepository) Save(products []*domain.Product) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, table := range []string{"daily_logs", "products"} {
			query, args, err := squirrel.Delete(table).ToSql()
			if err != nil {
				return errors.Wrap(err, "erro ao construir a query")
			}
			if _, err := tx.Exec(query, args...); err != nil {
				return errors.Wrapf(err, "erro ao limpar tabela %s", table)
			}
		}

		if err := r.insertProducts(tx, products); err != nil {
			return err
		}

		if err := r.insertLogs(tx, products); err != nil {
			return err
		}

		query, args, err := squirrel.
			Insert(storeStateTable).
			Columns("storage_key", "saved_at").
			Values(StorageKey, time.Now().UTC().Format(time.RFC3339)).
			Suffix("ON CONFLICT (storage_key) DO UPDATE SET saved_at = excluded.saved_at").
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query")
		}

		_, err = tx.Exec(query, args...)
		return errors.Wrap(err, "erro ao atualizar estado do armazenamento")
	})
}

func (r *productSQLiteRepository) insertProducts(tx *sql.Tx, products []*domain.Product) error {
	for start := 0; start < len(products); start += insertBatchSize {
		end := min(start+insertBatchSize, len(products))

		builder := squirrel.
			Insert("products").
			Columns("id", "position", "name", "category", "price", "notes")
		for i, p := range products[start:end] {
			builder = builder.Values(p.ID, start+i, p.Name, string(p.Category), p.Price, p.Notes)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query")
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return errors.Wrap(err, "erro ao inserir produtos")
		}
	}

	return nil
}

func (r *productSQLiteRepository) insertLogs(tx *sql.Tx, products []*domain.Product) error {
	type row struct {
		productID string
		position  int
		log       *domain.DailyLog
	}

	rows := make([]row, 0)
	for _, p := range products {
		for i, log := range p.Logs {
			rows = append(rows, row{productID: p.ID, position: i, log: log})
		}
	}

	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))

		builder := squirrel.
			Insert("daily_logs").
			Columns("id", "product_id", "position", "date", "sales_count", "ad_spend", "misc_expenses")
		for _, rw := range rows[start:end] {
			builder = builder.Values(
				rw.log.ID,
				rw.productID,
				rw.position,
				rw.log.Date.String(),
				rw.log.SalesCount,
				rw.log.AdSpend,
				rw.log.MiscExpenses,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query")
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return errors.Wrap(err, "erro ao inserir logs diários")
		}
	}

	return nil
}
