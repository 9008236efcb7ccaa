package dto

// SearchResponse is the envelope returned by /v1/finance/search.
type SearchResponse struct {
	Quotes []SearchQuote `json:"quotes"`
}

// SearchQuote is a single search hit. Name fields use the lowercase JSON
// keys of the search endpoint, which differ from the quote endpoint.
type SearchQuote struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	Name      string `json:"name"`
	Exchange  string `json:"exchange"`
	Currency  string `json:"currency"`
}
