// Package adapters provides the GORM-backed persistence adapter for the
// appstate feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finboard/internal/feature/appstate/usecase"
)

// AppStateModel はapp_stateテーブルのGORMモデルです。
// キーごとに数値を1つ保持する最小限のキー/バリューストアで、
// 為替レートのスナップショット2件の永続化に使われます。
type AppStateModel struct {
	Key       string    `gorm:"column:key;primaryKey;size:255"`
	Value     float64   `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName はテーブル名を指定します。
func (AppStateModel) TableName() string { return "app_state" }

// StateGorm implements usecase.StateRepository on top of GORM.
type StateGorm struct {
	db *gorm.DB
}

// StateGormがStateRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.StateRepository = (*StateGorm)(nil)

// NewStateGorm は指定されたDB接続でStateGormを生成します。
func NewStateGorm(db *gorm.DB) *StateGorm {
	return &StateGorm{db: db}
}

// Get はキーに対応する値を返します。未登録のキーは(nil, nil)です。
func (s *StateGorm) Get(ctx context.Context, key string) (*float64, error) {
	var m AppStateModel
	err := s.db.WithContext(ctx).First(&m, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m.Value, nil
}

// Put はキーに値を書き込みます。既存キーは上書きします（last write wins）。
func (s *StateGorm) Put(ctx context.Context, key string, value float64) error {
	m := AppStateModel{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
}
