package alphatrade

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetType is the closed set of asset categories the ledger accepts.
// Unknown tags are rejected at the data-entry boundary.
type AssetType string

const (
	Stock      AssetType = "STOCK"
	Cash       AssetType = "CASH"
	Crypto     AssetType = "CRYPTO"
	RealEstate AssetType = "REAL_ESTATE"
	Other      AssetType = "OTHER"
)

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	switch AssetType(s) {
	case Stock, Cash, Crypto, RealEstate, Other:
		return AssetType(s), nil
	default:
		return "", fmt.Errorf("unknown asset type: %q", s)
	}
}

func (t AssetType) String() string { return string(t) }

// Asset is one position in the ledger: a current market value and the
// original cost it is measured against. Value and cost are independently
// settable; cost defaults to value when unspecified at creation.
type Asset struct {
	ID       string    // unique within the store
	Name     string    // display name, e.g. "AAPL shares"
	Type     AssetType
	Value    Money // current total value
	Cost     Money // original cost
	Currency string
	Quantity Quantity // optional; zero means not tracked
}

// NewAsset creates an asset with a fresh identity. A zero cost is taken to
// mean "unspecified" and defaults to the value.
func NewAsset(name string, typ AssetType, value, cost Money, quantity Quantity) (Asset, error) {
	if cost.IsZero() {
		cost = value
	}
	currency := value.Currency()
	a := Asset{
		ID:       uuid.NewString(),
		Name:     name,
		Type:     typ,
		Value:    value.WithCurrency(currency),
		Cost:     cost.WithCurrency(currency),
		Currency: currency,
		Quantity: quantity,
	}
	if err := a.Validate(); err != nil {
		return Asset{}, err
	}
	return a, nil
}

// Validate checks the asset for correctness.
func (a Asset) Validate() error {
	if a.ID == "" {
		return errors.New("asset id is missing")
	}
	if a.Name == "" {
		return errors.New("asset name is missing")
	}
	if _, err := ParseAssetType(string(a.Type)); err != nil {
		return err
	}
	if a.Value.IsNegative() {
		return fmt.Errorf("asset value must not be negative, got %s", a.Value)
	}
	if a.Cost.IsNegative() {
		return fmt.Errorf("asset cost must not be negative, got %s", a.Cost)
	}
	if a.Quantity.IsNegative() {
		return fmt.Errorf("asset quantity must not be negative, got %s", a.Quantity)
	}
	return nil
}

// GainPercent returns the unrealized gain relative to cost. The boolean is
// false when the cost is zero, in which case the gain is not applicable
// rather than infinite.
func (a Asset) GainPercent() (Percent, bool) {
	if a.Cost.IsZero() {
		return 0, false
	}
	p := a.Value.value.Sub(a.Cost.value).Div(a.Cost.value).Mul(decimal.NewFromInt(100))
	return Percent(p.InexactFloat64()), true
}

// MarshalJSON writes the asset with a canonical field order.
func (a Asset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("value", a.Value)
	w.Append("cost", a.Cost)
	w.Append("currency", a.Currency)
	if !a.Quantity.IsZero() {
		w.Append("quantity", a.Quantity)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON reads the persisted asset shape, where value and cost are
// bare numbers denominated in the record's currency field.
func (a *Asset) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Type     string          `json:"type"`
		Value    decimal.Decimal `json:"value"`
		Cost     decimal.Decimal `json:"cost"`
		Currency string          `json:"currency"`
		Quantity Quantity        `json:"quantity"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	typ, err := ParseAssetType(temp.Type)
	if err != nil {
		return err
	}
	a.ID = temp.ID
	a.Name = temp.Name
	a.Type = typ
	a.Value = M(temp.Value, temp.Currency)
	a.Cost = M(temp.Cost, temp.Currency)
	a.Currency = temp.Currency
	a.Quantity = temp.Quantity
	return nil
}

// Equal reports whether two assets carry the same record.
func (a Asset) Equal(b Asset) bool {
	return a.ID == b.ID && a.Name == b.Name && a.Type == b.Type &&
		a.Value.Equal(b.Value) && a.Cost.Equal(b.Cost) &&
		a.Currency == b.Currency && a.Quantity.Equal(b.Quantity)
}
