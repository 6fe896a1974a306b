package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// ── GBMCalendar 测试 ──

func TestCalendarService_GBMCalendar_Success(t *testing.T) {
	svc := NewCalendarService(NewSnapshotService(fixtureRepo(), zap.NewNop()), zap.NewNop())

	content, err := svc.GBMCalendar(context.Background(), nil)
	if err != nil {
		t.Fatalf("GBMCalendar 应成功: %v", err)
	}
	if !strings.Contains(content, "BEGIN:VCALENDAR") || !strings.Contains(content, "END:VCALENDAR") {
		t.Error("输出应为 iCalendar 格式")
	}
	if !strings.Contains(content, "BEGIN:VEVENT") {
		t.Error("输出应包含 VEVENT")
	}
	if !strings.Contains(content, "gbm-g1@tcgdashboard") {
		t.Error("事件 UID 应由 gbm_id 派生")
	}
	if !strings.Contains(content, "METHOD:PUBLISH") {
		t.Error("订阅源应声明 METHOD:PUBLISH")
	}
}

func TestCalendarService_GBMCalendar_NoEvents(t *testing.T) {
	svc := NewCalendarService(NewSnapshotService(emptyRepo(), zap.NewNop()), zap.NewNop())

	_, err := svc.GBMCalendar(context.Background(), nil)
	if !errors.Is(err, ErrCalendarNoEvents) {
		t.Errorf("期望 ErrCalendarNoEvents，实际: %v", err)
	}
}

func TestCalendarService_GBMCalendar_FilterExcludesAll(t *testing.T) {
	svc := NewCalendarService(NewSnapshotService(fixtureRepo(), zap.NewNop()), zap.NewNop())

	// 夹具中只有 FA24 的大会
	_, err := svc.GBMCalendar(context.Background(), []string{"SP22"})
	if !errors.Is(err, ErrCalendarNoEvents) {
		t.Errorf("筛选外无大会应返回 ErrCalendarNoEvents，实际: %v", err)
	}
}
