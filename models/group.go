package models

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type GroupParams struct {
	DisplayName string `json:"display_name" binding:"required"`
}

// OperationalResult is the bare {"result": true} acknowledgement.
type OperationalResult struct {
	Result bool `json:"result"`
}
