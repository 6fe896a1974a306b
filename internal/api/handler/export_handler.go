package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/itsgeorgema/tcgdashboard/internal/service"
	"github.com/itsgeorgema/tcgdashboard/pkg/response"
)

const (
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	calendarMIME = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc   service.ExportService
	calendarSvc service.CalendarService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService, calendarSvc service.CalendarService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, calendarSvc: calendarSvc}
}

// ExportDashboard 导出看板数据为 Excel
// GET /api/v1/export/dashboard.xlsx?quarters=FA24,WI25
func (h *ExportHandler) ExportDashboard(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportDashboard(c.Request.Context(), parseQuarters(c))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

// GBMCalendar GBM 日历订阅源
// GET /api/v1/export/gbms.ics?quarters=FA24
func (h *ExportHandler) GBMCalendar(c *gin.Context) {
	content, err := h.calendarSvc.GBMCalendar(c.Request.Context(), parseQuarters(c))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="gbms.ics"`)
	c.Data(http.StatusOK, calendarMIME, []byte(content))
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoData):
		response.NotFound(c, 16101, "六张表均为空，无可导出内容")
	case errors.Is(err, service.ErrCalendarNoEvents):
		response.NotFound(c, 16102, "筛选口径下没有带日期的全员大会")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
