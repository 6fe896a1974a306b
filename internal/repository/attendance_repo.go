package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/itsgeorgema/tcgdashboard/internal/model"
)

// AttendanceRepository 签到数据访问接口
type AttendanceRepository interface {
	ListAll(ctx context.Context) ([]model.Attendance, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) ListAll(ctx context.Context) ([]model.Attendance, error) {
	var rows []model.Attendance
	err := r.db.WithContext(ctx).
		Order("attendance_id").
		Find(&rows).Error
	return rows, err
}
