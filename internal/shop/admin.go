package shop

import (
	"context"
	"strconv"
	"strings"

	"github.com/nepkart/storefront/internal/catalog"
	"github.com/nepkart/storefront/internal/events"
)

// ProductInput is the admin form as submitted: all strings, coerced here.
type ProductInput struct {
	ID          string
	Title       string
	Brand       string
	Category    string
	Price       string
	Discount    string
	Description string
	Images      string // comma-separated URLs
}

// SaveProduct implements add-or-update-by-id. A blank id mints a new one.
// An existing record is merged in place, keeping its rating, stock, and
// flash flag since the form does not collect them; a new record is
// inserted at the front with the defaults.
func (s *Service) SaveProduct(ctx context.Context, in ProductInput) (catalog.Product, error) {
	products, err := s.Store.Products(ctx)
	if err != nil {
		return catalog.Product{}, err
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = s.mintID()
	}
	p := catalog.Product{
		ID:          id,
		Title:       in.Title,
		Brand:       in.Brand,
		Category:    in.Category,
		Price:       atoiOrZero(in.Price),
		Discount:    atoiOrZero(in.Discount),
		Description: in.Description,
		Images:      splitImages(in.Images),
	}

	for i := range products {
		if products[i].ID == id {
			p.Rating = products[i].Rating
			p.Stock = products[i].Stock
			p.IsFlashDeal = products[i].IsFlashDeal
			products[i] = p
			if err := s.Store.SaveProducts(ctx, products); err != nil {
				return catalog.Product{}, err
			}
			s.Events.Publish(events.TypeProductSaved, id,
				events.ProductSavedPayload{ProductID: id})
			return p, nil
		}
	}

	p.Rating = "4.3"
	p.Stock = 50
	p.IsFlashDeal = false
	products = append([]catalog.Product{p}, products...)
	if err := s.Store.SaveProducts(ctx, products); err != nil {
		return catalog.Product{}, err
	}
	s.Events.Publish(events.TypeProductSaved, id,
		events.ProductSavedPayload{ProductID: id, Created: true})
	return p, nil
}

// DeleteProduct removes by id. A missing id is a no-op save, not an error.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	products, err := s.Store.Products(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := s.Store.SaveProducts(ctx, kept); err != nil {
		return err
	}
	s.Events.Publish(events.TypeProductDeleted, id,
		events.ProductDeletedPayload{ProductID: id})
	return nil
}

// atoiOrZero coerces unparsable or absent numeric input to 0.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func splitImages(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
