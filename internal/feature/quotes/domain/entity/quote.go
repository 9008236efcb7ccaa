// Package entity defines the domain models for the quotes feature.
package entity

// Quote represents a realtime quote for a single symbol as reported by the
// market data provider. Price and ChangePercent are pointers because the
// provider omits them outside trading hours for some instruments; a nil
// Price means the provider supplied no numeric price field at all.
type Quote struct {
	Symbol        string   // Ticker symbol (e.g., "AAPL", "005930.KS")
	ShortName     string   // Short display name, may be empty
	LongName      string   // Full company name, may be empty
	DisplayName   string   // Resolved display name (short -> long -> symbol)
	Price         *float64 // Display price after the market-phase fallback chain
	ChangePercent *float64 // Regular market change percent
	Currency      string   // Quote currency (e.g., "USD", "KRW")
	Exchange      string   // Exchange code (e.g., "NMS", "KSC")
}

// QuoteDetail is a Quote enriched with the optional industry classification,
// which is looked up independently and may be absent.
type QuoteDetail struct {
	Quote
	Industry *string
}

// SearchResult is a single match from the symbol search endpoint.
type SearchResult struct {
	Symbol    string
	ShortName string
	LongName  string
	Exchange  string
	Currency  string
}
