// Package seed synthesizes the initial product catalog on first run.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/nepkart/storefront/internal/catalog"
	"github.com/nepkart/storefront/internal/store"
)

const DefaultCount = 48

// Discounts is the discrete set a generated product draws from.
var Discounts = []int{0, 5, 10, 15, 20, 25, 30}

const (
	minPrice = 199
	maxPrice = 99999
)

var sentences = []string{
	"Top quality and best value for your needs.",
	"Limited-time flash deal with massive discounts.",
	"Durable, stylish, and made for daily use.",
	"Customer-favorite with excellent reviews.",
	"Fast shipping and local warranty included.",
}

// Ensure seeds the catalog when the products key has never been written,
// and gives users, sellers, and cart their empty lists. Once a key exists
// it is never overwritten, regardless of n.
func Ensure(ctx context.Context, st *store.Store, n int, rng *rand.Rand) error {
	if n <= 0 {
		n = DefaultCount
	}
	ok, err := st.Exists(ctx, store.Products)
	if err != nil {
		return err
	}
	if !ok {
		if err := st.SaveProducts(ctx, Generate(n, rng)); err != nil {
			return err
		}
	}

	if ok, err = st.Exists(ctx, store.Users); err != nil {
		return err
	} else if !ok {
		if err := st.SaveUsers(ctx, []catalog.User{}); err != nil {
			return err
		}
	}
	if ok, err = st.Exists(ctx, store.Sellers); err != nil {
		return err
	} else if !ok {
		if err := st.SaveSellers(ctx, []catalog.Seller{}); err != nil {
			return err
		}
	}
	if ok, err = st.Exists(ctx, store.Cart); err != nil {
		return err
	} else if !ok {
		if err := st.SaveCart(ctx, []catalog.CartItem{}); err != nil {
			return err
		}
	}
	return nil
}

// Generate produces n randomized products with 1-based string ids.
func Generate(n int, rng *rand.Rand) []catalog.Product {
	items := make([]catalog.Product, 0, n)
	for i := 1; i <= n; i++ {
		cat := catalog.Categories[rng.Intn(len(catalog.Categories))]
		brand := catalog.Brands[rng.Intn(len(catalog.Brands))]
		items = append(items, catalog.Product{
			ID:          strconv.Itoa(i),
			Title:       fmt.Sprintf("%s %s Item %d", brand, cat.Name, i),
			Brand:       brand,
			Category:    cat.Slug,
			Price:       between(rng, minPrice, maxPrice),
			Discount:    Discounts[rng.Intn(len(Discounts))],
			Rating:      fmt.Sprintf("%.1f", rng.Float64()*2+3),
			Stock:       between(rng, 5, 200),
			Description: sentences[rng.Intn(len(sentences))] + " " + sentences[rng.Intn(len(sentences))],
			Images:      []string{imageURL(i), imageURL(i + 100), imageURL(i + 200)},
			IsFlashDeal: rng.Float64() < 0.25,
		})
	}
	return items
}

func between(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}

func imageURL(seed int) string {
	return fmt.Sprintf("https://picsum.photos/seed/storefront-%d/600/400", seed)
}
