// Package dto defines the wire contract of the catalog API. Write DTOs bind
// snake_case JSON (handlers also accept the camelCase aliases the frontend
// sends); read DTOs emit camelCase.
package dto

import "catalogo/internal/listing"

// ListResponse is the paginated envelope every listing endpoint returns.
type ListResponse[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewListResponse assembles the envelope from the filtered total and the
// already-mapped page of items.
func NewListResponse[T any](items []T, total int64, page listing.Page) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Data:       items,
		Total:      total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: page.TotalPages(total),
	}
}

// MensajeResponse carries the confirmation message of delete/restore ops.
type MensajeResponse struct {
	Message string `json:"message"`
}
