// Package entity defines the domain models for the profile feature.
package entity

// Source values for CompanyProfile.Source.
const (
	SourceAI       = "ai-generated"
	SourceFallback = "fallback"
)

// Market values derived from the ticker suffix, currency and exchange.
const (
	MarketKorea = "Korea"
	MarketUSA   = "USA"
)

// CompanyProfile は企業プロフィールのサマリーです。
// Bulletsは常に3行で、AI生成に失敗した場合はテンプレートによる
// フォールバック文（Source == SourceFallback）になります。
type CompanyProfile struct {
	Symbol      string
	CompanyName string
	Market      string // MarketKorea または MarketUSA
	Industry    *string
	Bullets     []string // 常に3行
	Source      string   // SourceAI または SourceFallback
}

// SummaryInput is the context handed to the text-generation provider.
type SummaryInput struct {
	Symbol      string
	CompanyName string
	Market      string
	Industry    *string
}
