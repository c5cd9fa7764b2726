// Package store persists the storefront's five collections as independent
// JSON documents in a key-value backend. Reads fall back to empty defaults
// when a key is absent or its blob is undecodable; writes always replace
// the whole collection. Concurrent writers race last-write-wins, which is
// an accepted limitation of the document layout.
package store

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/nepkart/storefront/internal/catalog"
)

// Collection names the five persisted documents.
type Collection string

const (
	Products Collection = "products"
	Users    Collection = "users"
	Sellers  Collection = "sellers"
	Cart     Collection = "cart"
	Auth     Collection = "auth"
)

func (c Collection) storageKey() string { return "storefront:" + string(c) }

// KV is the storage medium underneath the collections. Implementations:
// Memory, Redis, Postgres.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Store struct {
	kv KV
}

func New(kv KV) *Store { return &Store{kv: kv} }

func (s *Store) Products(ctx context.Context) ([]catalog.Product, error) {
	return loadList[catalog.Product](ctx, s.kv, Products)
}

func (s *Store) SaveProducts(ctx context.Context, products []catalog.Product) error {
	return saveJSON(ctx, s.kv, Products, products)
}

func (s *Store) Users(ctx context.Context) ([]catalog.User, error) {
	return loadList[catalog.User](ctx, s.kv, Users)
}

func (s *Store) SaveUsers(ctx context.Context, users []catalog.User) error {
	return saveJSON(ctx, s.kv, Users, users)
}

func (s *Store) Sellers(ctx context.Context) ([]catalog.Seller, error) {
	return loadList[catalog.Seller](ctx, s.kv, Sellers)
}

func (s *Store) SaveSellers(ctx context.Context, sellers []catalog.Seller) error {
	return saveJSON(ctx, s.kv, Sellers, sellers)
}

func (s *Store) Cart(ctx context.Context) ([]catalog.CartItem, error) {
	return loadList[catalog.CartItem](ctx, s.kv, Cart)
}

func (s *Store) SaveCart(ctx context.Context, cart []catalog.CartItem) error {
	return saveJSON(ctx, s.kv, Cart, cart)
}

// Auth returns the current session, or nil when logged out.
func (s *Store) Auth(ctx context.Context) (*catalog.AuthSession, error) {
	b, found, err := s.kv.Get(ctx, Auth.storageKey())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var sess catalog.AuthSession
	if err := json.Unmarshal(b, &sess); err != nil {
		logCorrupt(Auth, err)
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) SaveAuth(ctx context.Context, sess catalog.AuthSession) error {
	return saveJSON(ctx, s.kv, Auth, sess)
}

func (s *Store) ClearAuth(ctx context.Context) error {
	return s.kv.Delete(ctx, Auth.storageKey())
}

// Exists reports key presence without decoding. The seeder uses it to tell
// a never-written collection from one saved as an empty list.
func (s *Store) Exists(ctx context.Context, c Collection) (bool, error) {
	_, found, err := s.kv.Get(ctx, c.storageKey())
	return found, err
}

func loadList[T any](ctx context.Context, kv KV, c Collection) ([]T, error) {
	b, found, err := kv.Get(ctx, c.storageKey())
	if err != nil {
		return nil, err
	}
	if !found {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		logCorrupt(c, err)
		return []T{}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func saveJSON(ctx context.Context, kv KV, c Collection, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(ctx, c.storageKey(), b)
}

func logCorrupt(c Collection, err error) {
	log.Warn().Str("collection", string(c)).Err(err).
		Msg("undecodable stored value, falling back to default")
}
