package service

import (
	"context"
	"maps"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

// memStore is a map-backed SessionProvider. A session works on the live maps
// and restores the snapshot taken at its start when it fails.
type memStore struct {
	users       map[int64]*domain.User
	products    map[int64]*domain.Product
	nextUser    int64
	nextProduct int64

	sessions  int
	commitErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]*domain.User),
		products: make(map[int64]*domain.Product),
	}
}

func (m *memStore) WithinSession(_ context.Context, fn func(s ports.Session) error) error {
	m.sessions++
	users, products := maps.Clone(m.users), maps.Clone(m.products)
	nextUser, nextProduct := m.nextUser, m.nextProduct

	err := fn(memSession{m})
	if err == nil {
		err = m.commitErr
	}
	if err != nil {
		m.users, m.products = users, products
		m.nextUser, m.nextProduct = nextUser, nextProduct
	}
	return err
}

type memSession struct{ m *memStore }

func (s memSession) Users() ports.UserRepository       { return memUsers{s.m} }
func (s memSession) Products() ports.ProductRepository { return memProducts{s.m} }

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

type memUsers struct{ m *memStore }

func (r memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.m.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateUser
		}
	}
	r.m.nextUser++
	c := cloneUser(user)
	c.ID = r.m.nextUser
	r.m.users[c.ID] = c
	return cloneUser(c), nil
}

func (r memUsers) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.m.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memUsers) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.m.users))
	for id := int64(1); id <= r.m.nextUser; id++ {
		if u, ok := r.m.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r memUsers) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.m.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for _, u := range r.m.users {
		if u.Email == user.Email && u.ID != user.ID {
			return nil, domain.ErrDuplicateUser
		}
	}
	r.m.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r memUsers) Delete(_ context.Context, id int64) error {
	if _, ok := r.m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.m.users, id)
	return nil
}

type memProducts struct{ m *memStore }

func (r memProducts) Count(_ context.Context) (int64, error) {
	return int64(len(r.m.products)), nil
}

func (r memProducts) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.m.nextProduct++
	c := *product
	c.ID = r.m.nextProduct
	r.m.products[c.ID] = &c
	out := c
	return &out, nil
}

func (r memProducts) CreateBatch(ctx context.Context, products []domain.Product) error {
	for i := range products {
		if _, err := r.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r memProducts) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.m.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	out := *p
	return &out, nil
}

func (r memProducts) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.m.products))
	for id := int64(1); id <= r.m.nextProduct; id++ {
		if p, ok := r.m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r memProducts) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := r.m.products[product.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	c := *product
	r.m.products[c.ID] = &c
	out := c
	return &out, nil
}

func (r memProducts) Delete(_ context.Context, id int64) error {
	if _, ok := r.m.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.m.products, id)
	return nil
}
