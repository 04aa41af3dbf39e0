// Package memory holds map-backed repositories with the same behaviour as
// the postgres ones. Ids start at 1 and are never reused.
package memory

import (
	"context"
	"sort"
	"sync"

	"marketplace/ecommerce/internal/model"
	"marketplace/ecommerce/internal/repository"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products map[int64]model.Product
	nextID   int64
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[int64]model.Product),
		nextID:   1,
	}
}

func (r *ProductRepository) FindAll(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *ProductRepository) Save(_ context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(p), nil
}

func (r *ProductRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}

func (r *ProductRepository) ReplaceAll(_ context.Context, products []model.Product) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.products)
	saved := make([]model.Product, 0, len(products))
	for _, p := range products {
		saved = append(saved, r.insertLocked(p))
	}
	return saved, nil
}

func (r *ProductRepository) insertLocked(p model.Product) model.Product {
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = p
	return p
}

type UserRepository struct {
	mu     sync.RWMutex
	users  []model.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (r *UserRepository) Save(_ context.Context, u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	r.users = append(r.users, u)
	return u, nil
}

type OrderRepository struct {
	mu     sync.RWMutex
	orders []model.Order
	nextID int64
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{nextID: 1}
}

func (r *OrderRepository) Save(_ context.Context, o model.Order) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *OrderRepository) FindByUserID(_ context.Context, userID int64) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			res = append(res, o)
		}
	}
	return res, nil
}
