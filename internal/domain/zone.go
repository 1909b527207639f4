package domain

import "time"

// Zone is a delivery region with its own stock levels and order-routing
// WhatsApp contact.
type Zone struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug,omitempty"`
	WhatsAppNumber string    `json:"whatsappNumber"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ZoneStock is the per-zone quantity of a product. A missing row for a
// (zone, product) pair means zero stock in that zone.
type ZoneStock struct {
	ZoneID    string `json:"zoneId"`
	ProductID string `json:"productId"`
	Stock     int    `json:"stock"`
}
