package alphatrade

// Quote is the latest known price snapshot for a symbol. It has no identity
// and is never persisted; every value is reconstructed per call.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	PrevClose     float64 `json:"prevClose"`
}
