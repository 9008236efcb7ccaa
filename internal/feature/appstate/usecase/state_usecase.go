// Package usecase はappstateフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
)

// ErrStoreUnavailable はキー/バリューストアが構成されていないときに
// 返されます。ハンドラーはこれを503に変換します。
var ErrStoreUnavailable = errors.New("state store unavailable")

// StateRepository はキーごとに数値を1つ保持する永続化レイヤーを
// 抽象化します。Goの慣例に従い、インターフェースは利用者（usecase）側で
// 定義します。
type StateRepository interface {
	// Get はキーの値を返します。未登録のキーは(nil, nil)です。
	Get(ctx context.Context, key string) (*float64, error)
	// Put はキーに値を書き込みます。冪等なupsertです。
	Put(ctx context.Context, key string, value float64) error
}

// stateUsecase はキー/バリューストア操作のユースケースです。
// repoがnilの場合はストアなしで動作します（読み取りは常に欠損、
// 書き込みはErrStoreUnavailable）。
type stateUsecase struct {
	repo StateRepository
}

// NewStateUsecase はstateUsecaseの新しいインスタンスを生成します。
func NewStateUsecase(repo StateRepository) *stateUsecase {
	return &stateUsecase{repo: repo}
}

// GetValue はキーの現在値を返します。ストア未構成時はnilを返します。
func (u *stateUsecase) GetValue(ctx context.Context, key string) (*float64, error) {
	if u.repo == nil {
		return nil, nil
	}
	return u.repo.Get(ctx, key)
}

// SetValue はキーに値を書き込みます。
func (u *stateUsecase) SetValue(ctx context.Context, key string, value float64) error {
	if u.repo == nil {
		return ErrStoreUnavailable
	}
	return u.repo.Put(ctx, key, value)
}
