package domain

import (
	"time"

	"github.com/uptrace/bun"
)

// The two canonical stock transaction directions. The movement report only
// understands these labels.
const (
	ActionStockIn  = "Stock In"
	ActionStockOut = "Stock Out"
)

// HistoryEntry is one row of the append-only stock ledger. Entries are
// written exactly once per successful stock mutation and never updated or
// deleted afterwards; no mutating operation is exposed anywhere.
type HistoryEntry struct {
	bun.BaseModel `bun:"table:item_history,alias:h" json:"-"`

	ID int64 `bun:"id,pk,autoincrement" json:"id"`
	// Name snapshots the item name at mutation time; it does not follow
	// later renames.
	Name string `bun:"name,notnull" json:"name"`
	// Pieces is the quantity moved by this transaction (absolute delta).
	Pieces int64 `bun:"pieces,notnull" json:"pieces"`
	// Balance is the item total after the transaction, kept alongside the
	// delta so the ledger stays auditable without consulting current item
	// state.
	Balance   int64     `bun:"balance,notnull" json:"balance"`
	Releaser  string    `bun:"releaser,notnull" json:"releaser"`
	Reason    string    `bun:"reason,notnull" json:"reason"`
	Action    string    `bun:"action,notnull" json:"action"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
