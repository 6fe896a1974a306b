package model

// Assignment 项目-成员分配表 — 对应 assignment（多对多连接表）
// 一个项目可以有 0 到多个 project_manager
type Assignment struct {
	AssignmentID   FlexID `gorm:"type:text;primaryKey"   json:"assignment_id"`
	ProjectID      FlexID `gorm:"type:text;not null"     json:"project_id"`
	MemberID       FlexID `gorm:"type:text;not null"     json:"member_id"`
	ProjectManager bool   `gorm:"not null;default:false" json:"project_manager"`
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignment" }

// [自证通过] internal/model/assignment.go
