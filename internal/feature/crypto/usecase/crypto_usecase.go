// Package usecase は暗号資産価格取得のビジネスロジックを実装します。
package usecase

import (
	"context"

	"finboard/internal/feature/crypto/domain/entity"
)

const (
	// CoinID はダッシュボードが表示する暗号資産のprovider上のIDです。
	CoinID = "bitcoin"
	// VsCurrency は価格の表示通貨です。
	VsCurrency = "usd"
)

// PriceProvider は暗号資産価格の取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PriceProvider interface {
	SimplePrice(ctx context.Context, coin, vs string) (entity.CryptoQuote, error)
}

// cryptoUsecase は暗号資産価格取得のユースケースです。
type cryptoUsecase struct {
	provider PriceProvider
}

// NewCryptoUsecase はcryptoUsecaseの新しいインスタンスを生成します。
func NewCryptoUsecase(provider PriceProvider) *cryptoUsecase {
	return &cryptoUsecase{provider: provider}
}

// GetBitcoin はBitcoinのUSD価格と24時間変化率を返します。
func (u *cryptoUsecase) GetBitcoin(ctx context.Context) (entity.CryptoQuote, error) {
	return u.provider.SimplePrice(ctx, CoinID, VsCurrency)
}
