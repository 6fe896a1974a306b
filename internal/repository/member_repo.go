package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/itsgeorgema/tcgdashboard/internal/model"
)

// MemberRepository 成员数据访问接口
type MemberRepository interface {
	ListAll(ctx context.Context) ([]model.Member, error)
}

type memberRepo struct {
	db *gorm.DB
}

// NewMemberRepo 创建 MemberRepository 实例
func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) ListAll(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	err := r.db.WithContext(ctx).
		Order("member_id").
		Find(&members).Error
	return members, err
}
