// Package entity defines the domain models for the crypto feature.
package entity

// CryptoQuote is the current USD price of a cryptocurrency plus its
// 24 hour percentage change.
type CryptoQuote struct {
	Price         float64
	ChangePercent float64
}
