package dto

// QuoteSummaryResponse is the envelope returned by
// /v10/finance/quoteSummary/{symbol}?modules=assetProfile.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
	} `json:"quoteSummary"`
}

// QuoteSummaryResult carries the optional asset profile module.
type QuoteSummaryResult struct {
	AssetProfile *AssetProfile `json:"assetProfile"`
}

// AssetProfile is the slice of the company profile we consume.
type AssetProfile struct {
	Industry string `json:"industry"`
}
