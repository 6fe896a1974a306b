package analytics

import (
	"sort"
	"strings"

	"github.com/itsgeorgema/tcgdashboard/internal/model"
)

// topN 排行榜截断长度
const topN = 10

// CategoryCount 图表序列的单个数据点
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ── 项目类序列 ──

// ProjectsPerQuarter 各学季项目数
// 始终输出完整的固定学季轴（CanonicalQuarters），计数为 0 的学季也保留，
// 顺序即轴的预定义顺序，不做动态排序
func ProjectsPerQuarter(projects []model.Project, quarters QuarterSet) []CategoryCount {
	counts := make(map[string]int)
	for _, p := range FilterProjectsByQuarter(projects, quarters) {
		counts[p.QuarterID]++
	}

	series := make([]CategoryCount, 0, len(CanonicalQuarters))
	for _, q := range CanonicalQuarters {
		series = append(series, CategoryCount{Label: q, Count: counts[q]})
	}
	return series
}

// TopProjectManagers 项目经理排行（前 10）
// 统计筛选内项目上 project_manager=true 的分配记录，按解析出的姓名分组；
// 计数降序，同分按首次出现顺序，截断到 10 条
func TopProjectManagers(
	projects []model.Project,
	assignments []model.Assignment,
	members []model.Member,
	quarters QuarterSet,
) []CategoryCount {
	inScope := make(map[string]struct{})
	for _, p := range FilterProjectsByQuarter(projects, quarters) {
		inScope[p.ProjectID.String()] = struct{}{}
	}

	names := MemberNames(members)
	counts := make(map[string]int)
	var order []string
	for _, a := range assignments {
		if !a.ProjectManager {
			continue
		}
		if _, ok := inScope[a.ProjectID.String()]; !ok {
			continue
		}
		name := resolveName(names, a.MemberID.String())
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	return rankTopN(order, counts)
}

// TopCompanies 按项目数排行的客户公司（前 10）
// 悬空的 company_id 解析为 Unknown 而不是丢弃；company_id 缺失的项目不参与
func TopCompanies(
	projects []model.Project,
	companies []model.Company,
	quarters QuarterSet,
) []CategoryCount {
	names := CompanyNames(companies)
	counts := make(map[string]int)
	var order []string
	for _, p := range FilterProjectsByQuarter(projects, quarters) {
		if p.CompanyID == nil || p.CompanyID.IsZero() {
			continue
		}
		name := resolveName(names, p.CompanyID.String())
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	return rankTopN(order, counts)
}

// rankTopN 按计数降序（同分保持首次出现顺序）取前 topN
func rankTopN(order []string, counts map[string]int) []CategoryCount {
	series := make([]CategoryCount, 0, len(order))
	for _, label := range order {
		series = append(series, CategoryCount{Label: label, Count: counts[label]})
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Count > series[j].Count
	})
	if len(series) > topN {
		series = series[:topN]
	}
	return series
}

// ── 成员类序列 ──

// NewMembersPerQuarter 各学季新加入成员数
// 排除 quarter_entered 缺失/空串以及字面量 "Unknown"；
// 输出按学季时间序排序（而非出现顺序）
func NewMembersPerQuarter(members []model.Member) []CategoryCount {
	counts := make(map[string]int)
	for _, m := range members {
		if m.QuarterEntered == nil {
			continue
		}
		q := strings.TrimSpace(*m.QuarterEntered)
		if q == "" || q == UnknownName {
			continue
		}
		counts[q]++
	}

	labels := make([]string, 0, len(counts))
	for q := range counts {
		labels = append(labels, q)
	}
	SortQuarters(labels)

	series := make([]CategoryCount, 0, len(labels))
	for _, q := range labels {
		series = append(series, CategoryCount{Label: q, Count: counts[q]})
	}
	return series
}

// RoleSplit Associate / Analyst 划分
type RoleSplit struct {
	Associates int `json:"associates"`
	Analysts   int `json:"analysts"`
}

// SplitRoles 按职位划分成员
// role 含 "analyst"（忽略大小写）归入 Analyst，
// 其余（含 "associate" 与未标注）一律归入 Associate，保证两桶覆盖全员
func SplitRoles(members []model.Member) RoleSplit {
	var split RoleSplit
	for _, m := range members {
		role := ""
		if m.Role != nil {
			role = *m.Role
		}
		if strings.Contains(strings.ToLower(role), "analyst") {
			split.Analysts++
		} else {
			split.Associates++
		}
	}
	return split
}

// QuarterOptions 筛选控件的学季候选列表
// 取项目表中出现过的全部非空 quarter_id，按时间序排序
func QuarterOptions(projects []model.Project) []string {
	seen := make(map[string]struct{})
	var options []string
	for _, p := range projects {
		if p.QuarterID == "" {
			continue
		}
		if _, ok := seen[p.QuarterID]; ok {
			continue
		}
		seen[p.QuarterID] = struct{}{}
		options = append(options, p.QuarterID)
	}
	SortQuarters(options)
	return options
}

// ── 大会类序列 ──

// GBMsPerQuarter 各学季大会场数；仅输出出现过的学季，按时间序排序
func GBMsPerQuarter(gbms []model.GBM, quarters QuarterSet) []CategoryCount {
	counts := make(map[string]int)
	for _, g := range FilterGBMsByQuarter(gbms, quarters) {
		if g.QuarterID == "" {
			continue
		}
		counts[g.QuarterID]++
	}

	labels := make([]string, 0, len(counts))
	for q := range counts {
		labels = append(labels, q)
	}
	SortQuarters(labels)

	series := make([]CategoryCount, 0, len(labels))
	for _, q := range labels {
		series = append(series, CategoryCount{Label: q, Count: counts[q]})
	}
	return series
}

// GBMAttendancePoint 单场大会的到场统计
type GBMAttendancePoint struct {
	GBMID    string `json:"gbm_id"`
	Date     string `json:"date"` // 归一化为 YYYY-MM-DD，无日期时为空串
	Attended int    `json:"attended"`
}

// AttendancePerGBM 筛选内每场大会的到场人数趋势
// 日期只取日历日部分（去掉时刻），按归一化日期字符串升序排列
func AttendancePerGBM(gbms []model.GBM, attendance []model.Attendance, quarters QuarterSet) []GBMAttendancePoint {
	filtered := FilterGBMsByQuarter(gbms, quarters)

	attended := make(map[string]int, len(filtered))
	for _, g := range filtered {
		attended[g.GBMID.String()] = 0
	}
	for _, a := range attendance {
		if !a.Status {
			continue
		}
		key := a.GBMID.String()
		if _, ok := attended[key]; ok {
			attended[key]++
		}
	}

	points := make([]GBMAttendancePoint, 0, len(filtered))
	for _, g := range filtered {
		date := ""
		if g.Date != nil {
			date = g.Date.Format("2006-01-02")
		}
		points = append(points, GBMAttendancePoint{
			GBMID:    g.GBMID.String(),
			Date:     date,
			Attended: attended[g.GBMID.String()],
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// [自证通过] internal/analytics/series.go
