package shop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepkart/storefront/internal/catalog"
	"github.com/nepkart/storefront/internal/store"
)

// recorder captures published event types so tests can assert on them
// without a broker.
type recorder struct {
	types []string
}

func (r *recorder) Publish(eventType, _ string, _ any) {
	r.types = append(r.types, eventType)
}

func newTestService(t *testing.T) (*Service, *store.Store, *recorder) {
	t.Helper()
	st := store.New(store.NewMemory())
	rec := &recorder{}
	svc := New(st, rec)

	// Distinct timestamps per call, so minted ids never collide in tests.
	base := time.UnixMilli(1700000000000)
	calls := 0
	svc.Now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}
	return svc, st, rec
}

func TestAddToCartMergesById(t *testing.T) {
	ctx := context.Background()
	svc, st, rec := newTestService(t)

	require.NoError(t, svc.AddToCart(ctx, "1", 2))
	require.NoError(t, svc.AddToCart(ctx, "1", 3))

	cart, err := st.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1, "duplicate ids merge into one entry")
	assert.Equal(t, 5, cart[0].Qty)
	assert.Equal(t, []string{"CartUpdated", "CartUpdated"}, rec.types)
}

func TestAddToCartAppendsNewEntries(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)

	require.NoError(t, svc.AddToCart(ctx, "1", 1))
	require.NoError(t, svc.AddToCart(ctx, "2", 1))

	cart, err := st.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, []catalog.CartItem{{ID: "1", Qty: 1}, {ID: "2", Qty: 1}}, cart)
}

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)
	require.NoError(t, st.SaveCart(ctx, []catalog.CartItem{{ID: "1", Qty: 2}, {ID: "2", Qty: 1}}))

	require.NoError(t, svc.RemoveFromCart(ctx, "1"))

	cart, err := st.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, []catalog.CartItem{{ID: "2", Qty: 1}}, cart)
}

func TestLoginExactMatch(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)
	require.NoError(t, st.SaveUsers(ctx, []catalog.User{
		{ID: "10", Name: "Asha", Email: "asha@example.com", Password: "secret"},
	}))

	_, err := svc.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ASHA@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "email comparison is case-sensitive")

	sess, err := svc.Login(ctx, "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, &catalog.AuthSession{ID: "10", Name: "Asha", Email: "asha@example.com"}, sess)

	stored, err := st.Auth(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess, stored)
}

func TestLoginFailureLeavesSessionAlone(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)

	_, err := svc.Login(ctx, "nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	sess, err := st.Auth(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)
	require.NoError(t, st.SaveAuth(ctx, catalog.AuthSession{ID: "10"}))

	require.NoError(t, svc.Logout(ctx))

	sess, err := st.Auth(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)

	_, err := svc.Register(ctx, "Asha", "asha@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "asha@example.com", "pw2")
	assert.ErrorIs(t, err, ErrEmailTaken)

	users, err := st.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1, "a rejected registration must not append")
}

func TestRegisterEstablishesSession(t *testing.T) {
	ctx := context.Background()
	svc, st, rec := newTestService(t)

	sess, err := svc.Register(ctx, "Asha", "asha@example.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, "Asha", sess.Name)

	stored, err := st.Auth(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess, stored)

	users, err := st.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "pw", users[0].Password, "credential lives on the user record, not the session")
	assert.Contains(t, rec.types, "UserRegistered")
}

func TestRegisterSellerAppendsWithoutDedup(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)

	require.NoError(t, svc.RegisterSeller(ctx, "Asha Traders", "s@example.com", "980", "about"))
	require.NoError(t, svc.RegisterSeller(ctx, "Asha Traders", "s@example.com", "980", "about"))

	sellers, err := st.Sellers(ctx)
	require.NoError(t, err)
	require.Len(t, sellers, 2)
	assert.NotEqual(t, sellers[0].ID, sellers[1].ID)
}

func TestCheckoutRequiresNameAndAddress(t *testing.T) {
	ctx := context.Background()
	svc, st, rec := newTestService(t)
	require.NoError(t, st.SaveCart(ctx, []catalog.CartItem{{ID: "1", Qty: 2}}))

	assert.ErrorIs(t, svc.Checkout(ctx, "Asha", ""), ErrMissingFields)
	assert.ErrorIs(t, svc.Checkout(ctx, "", "Kathmandu"), ErrMissingFields)

	cart, err := st.Cart(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, cart, "a failed checkout leaves the cart untouched")
	assert.Empty(t, rec.types)
}

func TestCheckoutEmptiesCart(t *testing.T) {
	ctx := context.Background()
	svc, st, rec := newTestService(t)
	require.NoError(t, st.SaveProducts(ctx, []catalog.Product{{ID: "1", Price: 1000, Discount: 10}}))
	require.NoError(t, st.SaveCart(ctx, []catalog.CartItem{{ID: "1", Qty: 2}}))

	require.NoError(t, svc.Checkout(ctx, "Asha", "Kathmandu"))

	cart, err := st.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
	assert.Equal(t, []string{"OrderPlaced"}, rec.types)
}
