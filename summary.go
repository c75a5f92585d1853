package alphatrade

import "github.com/shopspring/decimal"

// AssetGain pairs an asset with its unrealized gain. Applicable is false
// when the asset's cost is zero: the gain is then meaningless, not infinite.
type AssetGain struct {
	Asset      Asset
	Gain       Percent
	Applicable bool
}

// Summary is the valuation of the whole asset collection at a point in time.
// It is recomputed on every ledger read and holds no state of its own.
type Summary struct {
	TotalValue   Money
	TotalCost    Money
	UnrealizedPL Money
	// UnrealizedPLPercent is the overall gain relative to total cost;
	// PLApplicable is false when the total cost is zero.
	UnrealizedPLPercent Percent
	PLApplicable        bool
	CashBalance         Money // total value of assets of type Cash
	Count               int
	Assets              []AssetGain
}

// Summarize aggregates the asset collection. It is a pure function: no side
// effects, no network, no stored state.
//
// Amounts are aggregated numerically; assets are expected to share a
// reporting currency and cross-currency normalization is out of scope. The
// totals take the currency of the first asset carrying one.
func Summarize(assets []Asset) Summary {
	var value, cost, cash decimal.Decimal
	currency := ""

	gains := make([]AssetGain, 0, len(assets))
	for _, a := range assets {
		if currency == "" {
			currency = a.Currency
		}
		value = value.Add(a.Value.value)
		cost = cost.Add(a.Cost.value)
		if a.Type == Cash {
			cash = cash.Add(a.Value.value)
		}
		gain, ok := a.GainPercent()
		gains = append(gains, AssetGain{Asset: a, Gain: gain, Applicable: ok})
	}

	s := Summary{
		TotalValue:   M(value, currency),
		TotalCost:    M(cost, currency),
		UnrealizedPL: M(value.Sub(cost), currency),
		CashBalance:  M(cash, currency),
		Count:        len(assets),
		Assets:       gains,
	}
	if !cost.IsZero() {
		p := value.Sub(cost).Div(cost).Mul(decimal.NewFromInt(100))
		s.UnrealizedPLPercent = Percent(p.InexactFloat64())
		s.PLApplicable = true
	}
	return s
}
