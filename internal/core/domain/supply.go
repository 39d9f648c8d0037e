package domain

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// Status classifies how well stocked an item is. It is always derived from
// the current piece count via Classify; clients never set it directly.
type Status string

const (
	StatusLow      Status = "Low"
	StatusModerate Status = "Moderate"
	StatusHigh     Status = "High"
)

// PiecesPerBox is the fixed bulk grouping used for the display-only box count.
const PiecesPerBox = 12

// Classification thresholds, expressed in pieces.
const (
	lowMaxPieces      = 24
	moderateMaxPieces = 119
)

var ErrItemNotFound = errors.New("item not found")
var ErrConflict = errors.New("item was modified concurrently")

// Classify maps a piece count to its stock status.
//
//	pieces <= 24   → Low
//	25 .. 119      → Moderate
//	pieces >= 120  → High
func Classify(pieces int64) Status {
	switch {
	case pieces <= lowMaxPieces:
		return StatusLow
	case pieces <= moderateMaxPieces:
		return StatusModerate
	default:
		return StatusHigh
	}
}

// BoxCount converts pieces to whole boxes. Display value only; the piece
// count is authoritative.
func BoxCount(pieces int64) int64 {
	return pieces / PiecesPerBox
}

// Item is a tracked office-supply SKU.
type Item struct {
	bun.BaseModel `bun:"table:supplies,alias:s" json:"-"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Pieces    int64     `bun:"pieces,notnull" json:"pieces"`
	Unit      string    `bun:"unit,notnull" json:"unit"`
	Status    Status    `bun:"status,notnull" json:"status"`
	Box       int64     `bun:"box,notnull" json:"box"`
	Version   int64     `bun:"version,notnull" json:"-"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
