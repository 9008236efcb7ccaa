// Package entity defines the domain models for the forex feature.
package entity

// RateSnapshot holds the latest USD to KRW exchange rate together with the
// most recent prior-day rate found within the 7 calendar day lookback window.
// PreviousRate is 0 when no day in the window returned a positive rate;
// callers must treat 0 as "unavailable", never as a literal zero rate.
type RateSnapshot struct {
	Rate         float64
	PreviousRate float64
}
