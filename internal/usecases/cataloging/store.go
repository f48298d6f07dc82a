package cataloging

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-pilot-api/infrastructure/repository"
	"github.com/vfg2006/profit-pilot-api/internal/domain"
	"github.com/vfg2006/profit-pilot-api/pkg/utils"
)

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

type ProductStore interface {
	List() []*domain.Product
	Get(id string) (*domain.Product, bool)
	Snapshot() []*domain.Product

	CreateProduct(in ProductInput) (*domain.Product, bool)
	UpdateProduct(id string, in ProductInput) (*domain.Product, bool)
	DeleteProduct(id string) bool

	AddLog(productID string, in LogInput) (*domain.DailyLog, bool)
	UpdateLog(productID, logID string, in LogInput) (*domain.DailyLog, bool)
	DeleteLog(productID, logID string) bool

	Subscribe(listener Listener)
}

// Store mantém a coleção de produtos em memória e persiste cada mutação aplicada
type Store struct {
	mu        sync.RWMutex
	products  []*domain.Product
	repo      repository.ProductRepository
	listeners []Listener
	today     func() domain.Date
}

// NewStore carrega os produtos do repositório. Qualquer falha de leitura
// substitui a coleção pelos dados iniciais, que são salvos em seguida.
func NewStore(repo repository.ProductRepository) ProductStore {
	return newStore(repo, domain.Today)
}

func newStore(repo repository.ProductRepository, today func() domain.Date) *Store {
	s := &Store{
		repo:  repo,
		today: today,
	}

	products, err := repo.Load()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logrus.Info("Nenhum dado salvo encontrado, usando produtos iniciais")
		} else {
			logrus.WithError(err).Warn("Falha ao carregar produtos salvos, usando produtos iniciais")
		}
		s.products = domain.SeedProducts()
		s.persist()
		return s
	}

	s.products = normalize(products)
	logrus.WithField("products", len(s.products)).Info("Produtos carregados do armazenamento")

	return s
}

func (s *Store) List() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CloneProducts(s.products)
}

// Snapshot é a coleção completa usada pelos cálculos e pela geração de insights
func (s *Store) Snapshot() []*domain.Product {
	return s.List()
}

func (s *Store) Get(id string) (*domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}

	return s.products[i].Clone(), true
}

func (s *Store) CreateProduct(in ProductInput) (*domain.Product, bool) {
	if in.name() == "" {
		return nil, false
	}

	product := &domain.Product{
		ID:   utils.NewID(),
		Logs: []*domain.DailyLog{},
	}
	in.apply(product)

	s.mu.Lock()
	s.products = append(s.products, product)
	s.persist()
	created := product.Clone()
	s.mu.Unlock()

	s.notify(Event{Operation: OperationCreateProduct, ProductID: product.ID})

	return created, true
}

// UpdateProduct substitui os campos do produto mantendo seus logs.
// Nome vazio mantém o nome atual.
func (s *Store) UpdateProduct(id string, in ProductInput) (*domain.Product, bool) {
	s.mu.Lock()

	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, false
	}

	current := s.products[i]
	updated := &domain.Product{
		ID:   current.ID,
		Logs: current.Logs,
	}
	in.apply(updated)
	if updated.Name == "" {
		updated.Name = current.Name
	}

	s.products[i] = updated
	s.persist()
	result := updated.Clone()
	s.mu.Unlock()

	s.notify(Event{Operation: OperationUpdateProduct, ProductID: id})

	return result, true
}

func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()

	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	products := make([]*domain.Product, 0, len(s.products)-1)
	products = append(products, s.products[:i]...)
	products = append(products, s.products[i+1:]...)
	s.products = products
	s.persist()
	s.mu.Unlock()

	s.notify(Event{Operation: OperationDeleteProduct, ProductID: id})

	return true
}

// AddLog insere o registro no início da lista do produto
func (s *Store) AddLog(productID string, in LogInput) (*domain.DailyLog, bool) {
	s.mu.Lock()

	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return nil, false
	}

	log := &domain.DailyLog{ID: utils.NewID()}
	in.apply(log, s.today())

	updated := s.products[i].Clone()
	updated.Logs = append([]*domain.DailyLog{log}, updated.Logs...)
	s.products[i] = updated
	s.persist()
	result := *log
	s.mu.Unlock()

	s.notify(Event{Operation: OperationAddLog, ProductID: productID, LogID: log.ID})

	return &result, true
}

// UpdateLog substitui o registro na mesma posição. Data vazia ou inválida mantém a atual.
func (s *Store) UpdateLog(productID, logID string, in LogInput) (*domain.DailyLog, bool) {
	s.mu.Lock()

	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return nil, false
	}

	j := s.products[i].FindLog(logID)
	if j < 0 {
		s.mu.Unlock()
		return nil, false
	}

	updated := s.products[i].Clone()
	current := updated.Logs[j]
	log := &domain.DailyLog{ID: current.ID}
	in.apply(log, current.Date)
	updated.Logs[j] = log

	s.products[i] = updated
	s.persist()
	result := *log
	s.mu.Unlock()

	s.notify(Event{Operation: OperationUpdateLog, ProductID: productID, LogID: logID})

	return &result, true
}

func (s *Store) DeleteLog(productID, logID string) bool {
	s.mu.Lock()

	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	j := s.products[i].FindLog(logID)
	if j < 0 {
		s.mu.Unlock()
		return false
	}

	updated := s.products[i].Clone()
	updated.Logs = append(updated.Logs[:j:j], updated.Logs[j+1:]...)
	s.products[i] = updated
	s.persist()
	s.mu.Unlock()

	s.notify(Event{Operation: OperationDeleteLog, ProductID: productID, LogID: logID})

	return true
}

// Subscribe registra um listener chamado de forma síncrona após cada mutação aplicada
func (s *Store) Subscribe(listener Listener) {
	if listener == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

// indexOf exige o lock já adquirido
func (s *Store) indexOf(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// persist exige o lock de escrita. Falhas são registradas e ignoradas.
func (s *Store) persist() {
	if err := s.repo.Save(domain.CloneProducts(s.products)); err != nil {
		logrus.WithError(err).WithField("products", len(s.products)).Error("Falha ao salvar produtos")
	}
}

func (s *Store) notify(event Event) {
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}
