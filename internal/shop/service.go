// Package shop implements the storefront's mutation handlers. Every
// operation is a single step: validate, read the whole collection, modify
// it in memory, write it back. There are no partial updates and no
// multi-step flows.
package shop

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/nepkart/storefront/internal/catalog"
	"github.com/nepkart/storefront/internal/events"
	"github.com/nepkart/storefront/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrMissingFields      = errors.New("missing required fields")
)

type Service struct {
	Store  *store.Store
	Events events.Publisher

	// Now is swappable so tests control minted ids.
	Now func() time.Time
}

func New(st *store.Store, pub events.Publisher) *Service {
	return &Service{Store: st, Events: pub, Now: time.Now}
}

// mintID derives an id from the current timestamp, the same scheme the
// seeded catalog's admin-created records and users share.
func (s *Service) mintID() string {
	return strconv.FormatInt(s.Now().UnixMilli(), 10)
}

// AddToCart merges by product id: an existing entry has its quantity
// incremented, otherwise a new entry is appended. The product id is not
// checked against the catalog here; readers filter orphans.
func (s *Service) AddToCart(ctx context.Context, productID string, qty int) error {
	cart, err := s.Store.Cart(ctx)
	if err != nil {
		return err
	}
	merged := false
	resulting := qty
	for i := range cart {
		if cart[i].ID == productID {
			cart[i].Qty += qty
			resulting = cart[i].Qty
			merged = true
			break
		}
	}
	if !merged {
		cart = append(cart, catalog.CartItem{ID: productID, Qty: qty})
	}
	if err := s.Store.SaveCart(ctx, cart); err != nil {
		return err
	}
	s.Events.Publish(events.TypeCartUpdated, productID,
		events.CartUpdatedPayload{ProductID: productID, Qty: resulting})
	return nil
}

// RemoveFromCart drops the entry for the given product id, if any.
func (s *Service) RemoveFromCart(ctx context.Context, productID string) error {
	cart, err := s.Store.Cart(ctx)
	if err != nil {
		return err
	}
	kept := cart[:0]
	for _, item := range cart {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	if err := s.Store.SaveCart(ctx, kept); err != nil {
		return err
	}
	s.Events.Publish(events.TypeCartUpdated, productID,
		events.CartUpdatedPayload{ProductID: productID, Qty: 0})
	return nil
}

// Login matches email and password exactly, case-sensitive, against the
// stored users. A hit replaces the auth session with the user's identity
// projection; the password never reaches the session.
func (s *Service) Login(ctx context.Context, email, password string) (*catalog.AuthSession, error) {
	users, err := s.Store.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			sess := catalog.AuthSession{ID: u.ID, Name: u.Name, Email: u.Email}
			if err := s.Store.SaveAuth(ctx, sess); err != nil {
				return nil, err
			}
			return &sess, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *Service) Logout(ctx context.Context) error {
	return s.Store.ClearAuth(ctx)
}

// Register rejects an email already present among users (exact,
// case-sensitive), then appends the new user and logs them in.
func (s *Service) Register(ctx context.Context, name, email, password string) (*catalog.AuthSession, error) {
	users, err := s.Store.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, ErrEmailTaken
		}
	}
	user := catalog.User{ID: s.mintID(), Name: name, Email: email, Password: password}
	users = append(users, user)
	if err := s.Store.SaveUsers(ctx, users); err != nil {
		return nil, err
	}
	sess := catalog.AuthSession{ID: user.ID, Name: user.Name, Email: user.Email}
	if err := s.Store.SaveAuth(ctx, sess); err != nil {
		return nil, err
	}
	s.Events.Publish(events.TypeUserRegistered, user.ID,
		events.UserRegisteredPayload{UserID: user.ID, Email: user.Email})
	return &sess, nil
}

// RegisterSeller appends unconditionally; the seller list carries no
// dedup and no validation beyond the form's required fields.
func (s *Service) RegisterSeller(ctx context.Context, storeName, email, phone, about string) error {
	sellers, err := s.Store.Sellers(ctx)
	if err != nil {
		return err
	}
	seller := catalog.Seller{ID: s.mintID(), Store: storeName, Email: email, Phone: phone, About: about}
	sellers = append(sellers, seller)
	if err := s.Store.SaveSellers(ctx, sellers); err != nil {
		return err
	}
	s.Events.Publish(events.TypeSellerRegistered, seller.ID,
		events.SellerRegisteredPayload{SellerID: seller.ID, Store: seller.Store})
	return nil
}

// Checkout requires a non-empty name and address, then empties the cart.
// No order record is persisted; the published event is the only trace.
func (s *Service) Checkout(ctx context.Context, name, address string) error {
	if name == "" || address == "" {
		return ErrMissingFields
	}
	cart, err := s.Store.Cart(ctx)
	if err != nil {
		return err
	}
	products, err := s.Store.Products(ctx)
	if err != nil {
		return err
	}
	lines := catalog.CartLines(products, cart)
	payload := events.OrderPlacedPayload{Subtotal: catalog.Subtotal(lines)}
	for _, l := range lines {
		payload.Items = append(payload.Items, events.OrderLine{ProductID: l.Product.ID, Qty: l.Qty})
	}
	if err := s.Store.SaveCart(ctx, []catalog.CartItem{}); err != nil {
		return err
	}
	s.Events.Publish(events.TypeOrderPlaced, s.mintID(), payload)
	return nil
}
