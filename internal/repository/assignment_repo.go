package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/itsgeorgema/tcgdashboard/internal/model"
)

// AssignmentRepository 项目分配数据访问接口
type AssignmentRepository interface {
	ListAll(ctx context.Context) ([]model.Assignment, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) ListAll(ctx context.Context) ([]model.Assignment, error) {
	var rows []model.Assignment
	err := r.db.WithContext(ctx).
		Order("assignment_id").
		Find(&rows).Error
	return rows, err
}
