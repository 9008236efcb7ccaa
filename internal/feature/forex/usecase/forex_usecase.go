// Package usecase は為替レート取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"time"

	"finboard/internal/feature/forex/domain/entity"
)

const (
	// BaseCurrency と QuoteCurrency は取得対象の通貨ペアです。
	BaseCurrency  = "USD"
	QuoteCurrency = "KRW"

	// LookbackDays は前日レート探索の最大日数です。
	LookbackDays = 7

	// StateKeyRate と StateKeyPrevRate はスナップショット永続化のキーです。
	StateKeyRate     = "krw_rate_today"
	StateKeyPrevRate = "krw_rate_prev"

	// persistTimeout はベストエフォート書き込みの打ち切り時間です。
	persistTimeout = 5 * time.Second
)

// RateSource は為替レートproviderを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type RateSource interface {
	// Latest は最新レートとその公表日を返します。
	Latest(ctx context.Context, from, to string) (float64, time.Time, error)
	// On は指定日のレートを返します。公表のない日は0です。
	On(ctx context.Context, day time.Time, from, to string) (float64, error)
}

// StateWriter はスナップショットの永続化先を抽象化します。
type StateWriter interface {
	Put(ctx context.Context, key string, value float64) error
}

// forexUsecase は為替レート取得のユースケースです。
type forexUsecase struct {
	source RateSource
	state  StateWriter // nil可。設定時はスナップショットをベストエフォートで書き込む
}

// NewForexUsecase はforexUsecaseの新しいインスタンスを生成します。
// stateはnil可で、その場合スナップショットの永続化は行いません。
func NewForexUsecase(source RateSource, state StateWriter) *forexUsecase {
	return &forexUsecase{source: source, state: state}
}

// GetSnapshot は最新レートと、直近7暦日を遡って最初に見つかった正の
// レートを返します。窓内に正のレートがなければPreviousRateは0です
// （0は「取得不能」であり、レート0ではありません）。
//
// 取得成功後、スナップショットを切り離したgoroutineでストアに書き込み
// ます。この書き込みはレスポンスをブロックせず、失敗しても無視されます。
func (u *forexUsecase) GetSnapshot(ctx context.Context) (entity.RateSnapshot, error) {
	rate, anchor, err := u.source.Latest(ctx, BaseCurrency, QuoteCurrency)
	if err != nil {
		return entity.RateSnapshot{}, err
	}

	// 有界の逐次スキャン: 最初の正のレートで打ち切る
	var prev float64
	for i := 1; i <= LookbackDays; i++ {
		day := anchor.AddDate(0, 0, -i)
		r, err := u.source.On(ctx, day, BaseCurrency, QuoteCurrency)
		if err != nil {
			continue
		}
		if r > 0 {
			prev = r
			break
		}
	}

	snapshot := entity.RateSnapshot{Rate: rate, PreviousRate: prev}

	if u.state != nil {
		go u.persistSnapshot(snapshot)
	}

	return snapshot, nil
}

// persistSnapshot はスナップショットをストアに書き込みます。
// 呼び出し元のリクエストコンテキストから切り離して実行します。
func (u *forexUsecase) persistSnapshot(s entity.RateSnapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if s.Rate > 0 {
		if err := u.state.Put(ctx, StateKeyRate, s.Rate); err != nil {
			slog.Debug("failed to persist fx rate", "key", StateKeyRate, "error", err)
		}
	}
	if s.PreviousRate > 0 {
		if err := u.state.Put(ctx, StateKeyPrevRate, s.PreviousRate); err != nil {
			slog.Debug("failed to persist fx rate", "key", StateKeyPrevRate, "error", err)
		}
	}
}
