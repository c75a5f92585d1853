package alphatrade

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and quantities are stored as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// The persisted collections are plain JSON arrays with a canonical field
// order per element (see the jsonObjectWriter-based marshalers), so the
// stored values stay readable and diff-friendly.

// EncodeAssets writes the asset collection as a JSON array.
func EncodeAssets(w io.Writer, assets []Asset) error {
	data, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("failed to encode assets: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// DecodeAssets reads an asset collection encoded by EncodeAssets.
func DecodeAssets(r io.Reader) ([]Asset, error) {
	var assets []Asset
	if err := json.NewDecoder(r).Decode(&assets); err != nil {
		return nil, fmt.Errorf("failed to decode assets: %w", err)
	}
	return assets, nil
}

// EncodeTransactions writes the trade collection as a JSON array,
// newest-first, in the order given.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// DecodeTransactions reads a trade collection encoded by EncodeTransactions.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	if err := json.NewDecoder(r).Decode(&txs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return txs, nil
}
