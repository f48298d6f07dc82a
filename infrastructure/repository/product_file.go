package repository

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/profit-pilot-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type productFileRepository struct {
	path string
}

// NewProductFileRepository persiste a coleção como um documento JSON local
func NewProductFileRepository(path string) ProductRepository {
	return &productFileRepository{
		path: path,
	}
}

func (r *productFileRepository) Load() ([]*domain.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "erro ao ler arquivo %s", r.path)
	}

	document := make(map[string]jsoniter.RawMessage)
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar documento de produtos")
	}

	raw, ok := document[StorageKey]
	if !ok {
		return nil, ErrNotFound
	}

	var products []*domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar produtos")
	}

	if products == nil {
		products = []*domain.Product{}
	}

	return products, nil
}

func (r *productFileRepository) Save(products []*domain.Product) error {
	if products == nil {
		products = []*domain.Product{}
	}

	data, err := json.MarshalIndent(map[string][]*domain.Product{StorageKey: products}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar produtos")
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório %s", dir)
	}

	// escreve em arquivo temporário e renomeia, para nunca deixar um documento pela metade
	tmp, err := os.CreateTemp(dir, ".products-*.json")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "erro ao escrever produtos")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "erro ao fechar arquivo temporário")
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return errors.Wrapf(err, "erro ao substituir arquivo %s", r.path)
	}

	return nil
}
