package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/itsgeorgema/tcgdashboard/internal/analytics"
	"github.com/itsgeorgema/tcgdashboard/internal/dto"
	"github.com/itsgeorgema/tcgdashboard/internal/service"
	"github.com/itsgeorgema/tcgdashboard/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock DashboardService ──

type mockDashboardService struct {
	quartersResult  *dto.QuarterOptionsResponse
	quartersErr     error
	projectsResult  *dto.ProjectsOverviewResponse
	projectsErr     error
	membersResult   *dto.MembersOverviewResponse
	membersErr      error
	companiesResult *dto.CompaniesOverviewResponse
	companiesErr    error
	gbmsResult      *dto.GBMsOverviewResponse
	gbmsErr         error
	graphResult     *dto.CollaborationGraphResponse
	graphErr        error

	// 记录最近一次调用参数，便于断言查询参数解析
	lastQuarters []string
	lastIsolated bool
}

func (m *mockDashboardService) QuarterOptions(_ context.Context) (*dto.QuarterOptionsResponse, error) {
	return m.quartersResult, m.quartersErr
}
func (m *mockDashboardService) ProjectsOverview(_ context.Context, quarters []string) (*dto.ProjectsOverviewResponse, error) {
	m.lastQuarters = quarters
	return m.projectsResult, m.projectsErr
}
func (m *mockDashboardService) MembersOverview(_ context.Context, quarters []string) (*dto.MembersOverviewResponse, error) {
	m.lastQuarters = quarters
	return m.membersResult, m.membersErr
}
func (m *mockDashboardService) CompaniesOverview(_ context.Context, quarters []string) (*dto.CompaniesOverviewResponse, error) {
	m.lastQuarters = quarters
	return m.companiesResult, m.companiesErr
}
func (m *mockDashboardService) GBMsOverview(_ context.Context, quarters []string) (*dto.GBMsOverviewResponse, error) {
	m.lastQuarters = quarters
	return m.gbmsResult, m.gbmsErr
}
func (m *mockDashboardService) CollaborationGraph(_ context.Context, quarters []string, includeIsolated bool) (*dto.CollaborationGraphResponse, error) {
	m.lastQuarters = quarters
	m.lastIsolated = includeIsolated
	return m.graphResult, m.graphErr
}

// ── Mock ExportService / CalendarService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportDashboard(_ context.Context, _ []string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

type mockCalendarService struct {
	content string
	err     error
}

func (m *mockCalendarService) GBMCalendar(_ context.Context, _ []string) (string, error) {
	return m.content, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func doGet(h gin.HandlerFunc, path, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := gin.New()
	r.GET(path, h)
	req := httptest.NewRequest("GET", target, nil)
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// DashboardHandler Tests
// ═══════════════════════════════════════════════════════════

func TestDashboardHandler_QuarterOptions(t *testing.T) {
	mock := &mockDashboardService{
		quartersResult: &dto.QuarterOptionsResponse{Quarters: []string{"FA23", "WI24"}},
	}
	h := NewDashboardHandler(mock)

	w := doGet(h.QuarterOptions, "/dashboard/quarters", "/dashboard/quarters")

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestDashboardHandler_ProjectsOverview_ParsesQuarters(t *testing.T) {
	mock := &mockDashboardService{projectsResult: &dto.ProjectsOverviewResponse{ActiveProjects: 2}}
	h := NewDashboardHandler(mock)

	w := doGet(h.ProjectsOverview, "/dashboard/projects",
		"/dashboard/projects?quarters=FA24,%20WI25,")

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	// 逗号分隔、去空白、剔除空项
	if len(mock.lastQuarters) != 2 || mock.lastQuarters[0] != "FA24" || mock.lastQuarters[1] != "WI25" {
		t.Errorf("quarters 解析不符：%v", mock.lastQuarters)
	}
}

func TestDashboardHandler_ProjectsOverview_NoFilter(t *testing.T) {
	mock := &mockDashboardService{projectsResult: &dto.ProjectsOverviewResponse{}}
	h := NewDashboardHandler(mock)

	w := doGet(h.ProjectsOverview, "/dashboard/projects", "/dashboard/projects")

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.lastQuarters != nil {
		t.Errorf("缺失 quarters 参数应传 nil，实际 %v", mock.lastQuarters)
	}
}

func TestDashboardHandler_CollaborationGraph_IsolatedFlag(t *testing.T) {
	mock := &mockDashboardService{graphResult: &dto.CollaborationGraphResponse{
		Nodes: []analytics.GraphNode{},
		Edges: []analytics.GraphEdge{},
	}}
	h := NewDashboardHandler(mock)

	// 默认保留孤立节点
	doGet(h.CollaborationGraph, "/dashboard/graph", "/dashboard/graph")
	if !mock.lastIsolated {
		t.Error("isolated 默认应为 true")
	}

	doGet(h.CollaborationGraph, "/dashboard/graph", "/dashboard/graph?isolated=false")
	if mock.lastIsolated {
		t.Error("isolated=false 应剔除孤立节点")
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportDashboard_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("PK-fake-xlsx"),
		filename: "tcg_dashboard_20241015.xlsx",
	}
	h := NewExportHandler(mock, &mockCalendarService{})

	w := doGet(h.ExportDashboard, "/export/dashboard.xlsx", "/export/dashboard.xlsx")

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxMIME {
		t.Errorf("Content-Type 不符：%s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, ".xlsx") {
		t.Errorf("Content-Disposition 应含文件名：%s", cd)
	}
	if w.Body.String() != "PK-fake-xlsx" {
		t.Error("响应体应为 Excel 内容")
	}
}

func TestExportHandler_ExportDashboard_NoData(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportNoData}
	h := NewExportHandler(mock, &mockCalendarService{})

	w := doGet(h.ExportDashboard, "/export/dashboard.xlsx", "/export/dashboard.xlsx")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestExportHandler_GBMCalendar_Success(t *testing.T) {
	mock := &mockCalendarService{content: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"}
	h := NewExportHandler(&mockExportService{}, mock)

	w := doGet(h.GBMCalendar, "/export/gbms.ics", "/export/gbms.ics?quarters=FA24")

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("Content-Type 应为 text/calendar：%s", ct)
	}
	if !strings.Contains(w.Body.String(), "BEGIN:VCALENDAR") {
		t.Error("响应体应为 iCalendar 内容")
	}
}

func TestExportHandler_GBMCalendar_NoEvents(t *testing.T) {
	mock := &mockCalendarService{err: service.ErrCalendarNoEvents}
	h := NewExportHandler(&mockExportService{}, mock)

	w := doGet(h.GBMCalendar, "/export/gbms.ics", "/export/gbms.ics")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
