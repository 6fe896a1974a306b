package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/itsgeorgema/tcgdashboard/internal/model"
)

// GBMRepository 全员大会数据访问接口
type GBMRepository interface {
	ListAll(ctx context.Context) ([]model.GBM, error)
}

type gbmRepo struct {
	db *gorm.DB
}

// NewGBMRepo 创建 GBMRepository 实例
func NewGBMRepo(db *gorm.DB) GBMRepository {
	return &gbmRepo{db: db}
}

func (r *gbmRepo) ListAll(ctx context.Context) ([]model.GBM, error) {
	var gbms []model.GBM
	err := r.db.WithContext(ctx).
		Order("gbm_id").
		Find(&gbms).Error
	return gbms, err
}
