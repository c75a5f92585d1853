package alphatrade

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy, Sell:
		return Side(s), nil
	default:
		return "", fmt.Errorf("unknown trade side: %q", s)
	}
}

func (s Side) String() string { return string(s) }

// dateStrLayout is the human-readable timestamp carried alongside the
// machine timestamp in every trade record.
const dateStrLayout = "2006-01-02 15:04"

// Transaction is one recorded trade. Records are immutable once appended:
// the store never edits or removes them.
type Transaction struct {
	ID        string
	Symbol    string
	Side      Side
	Price     Money    // unit price
	Quantity  Quantity // positive integer number of units
	Total     Money    // Price × Quantity, computed at creation
	Timestamp time.Time
	DateStr   string
}

// NewTransaction records a trade at the current time. The total is derived
// from price and quantity and never stored independently of them.
func NewTransaction(symbol string, side Side, price Money, quantity Quantity) Transaction {
	// Millisecond precision: the persisted timestamp is unix milliseconds,
	// and a record must round-trip unchanged.
	now := time.Now().Truncate(time.Millisecond)
	return Transaction{
		ID:        uuid.NewString(),
		Symbol:    symbol,
		Side:      side,
		Price:     price,
		Quantity:  quantity,
		Total:     price.Mul(quantity),
		Timestamp: now,
		DateStr:   now.Format(dateStrLayout),
	}
}

// Validate checks the trade for correctness before it enters the ledger.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return errors.New("transaction id is missing")
	}
	if t.Symbol == "" {
		return errors.New("transaction symbol is missing")
	}
	if _, err := ParseSide(string(t.Side)); err != nil {
		return err
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("transaction quantity must be positive, got %s", t.Quantity)
	}
	if !t.Quantity.IsInteger() {
		return fmt.Errorf("transaction quantity must be a whole number, got %s", t.Quantity)
	}
	if t.Price.IsNegative() || t.Price.IsZero() {
		return fmt.Errorf("transaction price must be positive, got %s", t.Price)
	}
	if !t.Total.Equal(t.Price.Mul(t.Quantity)) {
		return fmt.Errorf("transaction total %s does not match price %s × quantity %s", t.Total, t.Price, t.Quantity)
	}
	return nil
}

// Equal reports whether two trades carry the same record.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Symbol == o.Symbol && t.Side == o.Side &&
		t.Price.Equal(o.Price) && t.Quantity.Equal(o.Quantity) &&
		t.Total.Equal(o.Total) && t.Timestamp.Equal(o.Timestamp) &&
		t.DateStr == o.DateStr
}

// MarshalJSON writes the trade with a canonical field order. The timestamp
// is persisted in unix milliseconds.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("symbol", t.Symbol)
	w.Append("side", t.Side)
	w.Append("price", t.Price)
	w.Append("quantity", t.Quantity)
	w.Append("total", t.Total)
	w.Append("timestamp", t.Timestamp.UnixMilli())
	w.Append("dateStr", t.DateStr)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the persisted trade shape.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string          `json:"id"`
		Symbol    string          `json:"symbol"`
		Side      string          `json:"side"`
		Price     decimal.Decimal `json:"price"`
		Quantity  Quantity        `json:"quantity"`
		Total     decimal.Decimal `json:"total"`
		Timestamp int64           `json:"timestamp"`
		DateStr   string          `json:"dateStr"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	side, err := ParseSide(temp.Side)
	if err != nil {
		return err
	}
	t.ID = temp.ID
	t.Symbol = temp.Symbol
	t.Side = side
	t.Price = M(temp.Price, "")
	t.Quantity = temp.Quantity
	t.Total = M(temp.Total, "")
	t.Timestamp = time.UnixMilli(temp.Timestamp)
	t.DateStr = temp.DateStr
	return nil
}
