// Package events publishes storefront mutation events to Kafka. Publishing
// is telemetry only: a failed or disabled publisher never affects the
// mutation that triggered it, and nothing in the storefront reads the
// topic back.
package events

import (
	"encoding/json"
	"time"
)

// Topic carries every storefront event; the event type travels in the
// envelope and in an x-event-type header.
const Topic = "storefront.events"

const (
	TypeCartUpdated      = "CartUpdated"
	TypeOrderPlaced      = "OrderPlaced"
	TypeProductSaved     = "ProductSaved"
	TypeProductDeleted   = "ProductDeleted"
	TypeUserRegistered   = "UserRegistered"
	TypeSellerRegistered = "SellerRegistered"
)

type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	Payload    json.RawMessage `json:"payload"`
}

// CartUpdatedPayload reports the resulting quantity for one product; a
// quantity of zero means the entry was removed.
type CartUpdatedPayload struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type OrderLine struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type OrderPlacedPayload struct {
	Items    []OrderLine `json:"items"`
	Subtotal int         `json:"subtotal"`
}

type ProductSavedPayload struct {
	ProductID string `json:"product_id"`
	Created   bool   `json:"created"`
}

type ProductDeletedPayload struct {
	ProductID string `json:"product_id"`
}

type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type SellerRegisteredPayload struct {
	SellerID string `json:"seller_id"`
	Store    string `json:"store"`
}

// Publisher is what the mutation handlers see. Key picks the partition so
// events for one entity keep their order.
type Publisher interface {
	Publish(eventType, key string, payload any)
}

// Noop is the publisher used when no brokers are configured.
type Noop struct{}

func (Noop) Publish(string, string, any) {}
