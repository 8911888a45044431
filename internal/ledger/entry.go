package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// createdBy is the fixed authorship tag stamped on inserted ledger rows.
const createdBy = "clawdius"

// EntryID is a ledger row identifier. Supabase projects use either bigint
// or uuid primary keys, so the decoder accepts a JSON number or string.
type EntryID string

func (id *EntryID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = EntryID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = EntryID(n.String())
		return nil
	}
	return fmt.Errorf("invalid entry id %s", string(data))
}

// Entry is one row of the net_worth_entries table: at most one per
// (date, category) pair. The table is owned by the dashboard; this tool
// only checks existence and writes.
type Entry struct {
	ID       EntryID `json:"id"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Notes    string  `json:"notes"`
}

// Writer records a category's aggregate value for one calendar day,
// updating the existing row for (date, category) or inserting a new one.
type Writer interface {
	Record(ctx context.Context, date, category string, amount decimal.Decimal, notes string) error
}
