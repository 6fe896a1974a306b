package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/itsgeorgema/tcgdashboard/internal/model"
)

// CompanyRepository 客户公司数据访问接口
type CompanyRepository interface {
	ListAll(ctx context.Context) ([]model.Company, error)
}

type companyRepo struct {
	db *gorm.DB
}

// NewCompanyRepo 创建 CompanyRepository 实例
func NewCompanyRepo(db *gorm.DB) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) ListAll(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	err := r.db.WithContext(ctx).
		Order("company_id").
		Find(&companies).Error
	return companies, err
}
