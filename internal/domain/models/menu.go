package models

import (
	"time"

	"travellounge/internal/db"
	"travellounge/internal/domain"
)

// Menu is one navigation tree (header, footer, ...). Items are saved whole.
type Menu struct {
	ID        int64                      `json:"id" db:"id"`
	Name      string                     `json:"name" db:"name" binding:"required"`
	Location  string                     `json:"location" db:"location" binding:"required"`
	Items     db.JSON[[]domain.MenuItem] `json:"items" db:"items"`
	UpdatedAt time.Time                  `json:"updated_at" db:"updated_at"`
}
