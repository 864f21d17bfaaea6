package request

import (
	"github.com/google/uuid"
)

type StartVouchRequest struct {
	LocationID uuid.UUID `json:"location_id" binding:"required"`
}

type StopVouchRequest struct {
	LocationID uuid.UUID `json:"location_id" binding:"required"`
}
