package models

import "time"

// Product event types published after successful catalog mutations.
const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
)

// ProductEvent describes a catalog mutation performed through the API.
type ProductEvent struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"cod_produto,omitempty"`
	Product    *Product  `json:"produto,omitempty"`
	UserID     int64     `json:"id_usuario"`
	Login      string    `json:"login"`
	OccurredAt time.Time `json:"occurred_at"`
}
