package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string           `json:"id"`
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Stock         int              `json:"stock"`
	CategoryID    string           `json:"categoryId,omitempty"`
	Active        bool             `json:"active"`
	Images        []string         `json:"images,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}
