package service

import (
	"context"
	"time"

	"github.com/itsgeorgema/tcgdashboard/internal/model"
	"github.com/itsgeorgema/tcgdashboard/internal/repository"
)

// ── Mock 仓储 ──
//
// 看板仓储只有 ListAll 一个方法，mock 统一为"固定切片 + 可注入错误"

type mockProjectRepo struct {
	rows []model.Project
	err  error
}

func (m *mockProjectRepo) ListAll(_ context.Context) ([]model.Project, error) {
	return m.rows, m.err
}

type mockMemberRepo struct {
	rows []model.Member
	err  error
}

func (m *mockMemberRepo) ListAll(_ context.Context) ([]model.Member, error) {
	return m.rows, m.err
}

type mockCompanyRepo struct {
	rows []model.Company
	err  error
}

func (m *mockCompanyRepo) ListAll(_ context.Context) ([]model.Company, error) {
	return m.rows, m.err
}

type mockGBMRepo struct {
	rows []model.GBM
	err  error
}

func (m *mockGBMRepo) ListAll(_ context.Context) ([]model.GBM, error) {
	return m.rows, m.err
}

type mockAttendanceRepo struct {
	rows []model.Attendance
	err  error
}

func (m *mockAttendanceRepo) ListAll(_ context.Context) ([]model.Attendance, error) {
	return m.rows, m.err
}

type mockAssignmentRepo struct {
	rows []model.Assignment
	err  error
}

func (m *mockAssignmentRepo) ListAll(_ context.Context) ([]model.Assignment, error) {
	return m.rows, m.err
}

// ── 测试夹具 ──

func strPtr(s string) *string { return &s }

func flexPtr(s string) *model.FlexID {
	f := model.FlexID(s)
	return &f
}

// fixtureRepo 构造一套覆盖两个学季的小型数据集：
//   - FA24: p1 (Acme, tech, donated), p2 (Acme)；WI25: p3 (Globex)
//   - 三名成员，m1 管 p1 和 p3
//   - FA24 一场大会，两条签到（一到一缺）
func fixtureRepo() *repository.Repository {
	gbmDate := time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)
	return &repository.Repository{
		Project: &mockProjectRepo{rows: []model.Project{
			{ProjectID: "p1", QuarterID: "FA24", CompanyID: flexPtr("c1"), Track: strPtr("tech"), Donated: true},
			{ProjectID: "p2", QuarterID: "FA24", CompanyID: flexPtr("c1")},
			{ProjectID: "p3", QuarterID: "WI25", CompanyID: flexPtr("c2")},
		}},
		Member: &mockMemberRepo{rows: []model.Member{
			{MemberID: "m1", Name: "Alice", Role: strPtr("Analyst"), QuarterEntered: strPtr("FA23"), Status: true},
			{MemberID: "m2", Name: "Bob", Role: strPtr("Associate"), QuarterEntered: strPtr("FA24"), Status: true},
			{MemberID: "m3", Name: "Carol", QuarterEntered: strPtr("FA24"), Status: false},
		}},
		Company: &mockCompanyRepo{rows: []model.Company{
			{CompanyID: "c1", Name: strPtr("Acme Corp")},
			{CompanyID: "c2", Name: strPtr("Globex")},
		}},
		GBM: &mockGBMRepo{rows: []model.GBM{
			{GBMID: "g1", QuarterID: "FA24", Date: &gbmDate},
		}},
		Attendance: &mockAttendanceRepo{rows: []model.Attendance{
			{AttendanceID: "at1", GBMID: "g1", MemberID: "m1", Status: true},
			{AttendanceID: "at2", GBMID: "g1", MemberID: "m2", Status: false},
		}},
		Assignment: &mockAssignmentRepo{rows: []model.Assignment{
			{AssignmentID: "a1", ProjectID: "p1", MemberID: "m1", ProjectManager: true},
			{AssignmentID: "a2", ProjectID: "p1", MemberID: "m2"},
			{AssignmentID: "a3", ProjectID: "p2", MemberID: "m3"},
			{AssignmentID: "a4", ProjectID: "p3", MemberID: "m1", ProjectManager: true},
		}},
	}
}

func emptyRepo() *repository.Repository {
	return &repository.Repository{
		Project:    &mockProjectRepo{},
		Member:     &mockMemberRepo{},
		Company:    &mockCompanyRepo{},
		GBM:        &mockGBMRepo{},
		Attendance: &mockAttendanceRepo{},
		Assignment: &mockAssignmentRepo{},
	}
}
