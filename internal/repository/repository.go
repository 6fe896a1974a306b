package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
// 看板为只读系统，六张表各提供一个全量读取接口
type Repository struct {
	Project    ProjectRepository
	Member     MemberRepository
	Company    CompanyRepository
	GBM        GBMRepository
	Attendance AttendanceRepository
	Assignment AssignmentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Project:    NewProjectRepo(db),
		Member:     NewMemberRepo(db),
		Company:    NewCompanyRepo(db),
		GBM:        NewGBMRepo(db),
		Attendance: NewAttendanceRepo(db),
		Assignment: NewAssignmentRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
