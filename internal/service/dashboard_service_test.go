package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/itsgeorgema/tcgdashboard/config"
)

// ── 测试辅助 ──

func setupTestDashboardService(t *testing.T) DashboardService {
	t.Helper()
	cfg := &config.Config{Cache: config.CacheConfig{ViewTTL: 5 * time.Minute}}
	logger := zap.NewNop()
	snapshot := NewSnapshotService(fixtureRepo(), logger)
	// rdb 为 nil：缓存退化为直接现算
	return NewDashboardService(cfg, snapshot, nil, logger)
}

// ── 视图测试 ──

func TestDashboardService_QuarterOptions(t *testing.T) {
	svc := setupTestDashboardService(t)

	resp, err := svc.QuarterOptions(context.Background())
	if err != nil {
		t.Fatalf("QuarterOptions 应成功: %v", err)
	}
	want := []string{"FA24", "WI25"}
	if len(resp.Quarters) != len(want) {
		t.Fatalf("期望 %v，实际 %v", want, resp.Quarters)
	}
	for i := range want {
		if resp.Quarters[i] != want[i] {
			t.Errorf("期望 %v，实际 %v", want, resp.Quarters)
			break
		}
	}
}

func TestDashboardService_ProjectsOverview_Unfiltered(t *testing.T) {
	svc := setupTestDashboardService(t)

	resp, err := svc.ProjectsOverview(context.Background(), nil)
	if err != nil {
		t.Fatalf("ProjectsOverview 应成功: %v", err)
	}
	if resp.ActiveProjects != 3 {
		t.Errorf("期望 3 个在筛项目，实际 %d", resp.ActiveProjects)
	}
	if resp.LifetimeProjects != 3 {
		t.Errorf("期望 3 个累计项目，实际 %d", resp.LifetimeProjects)
	}
	// 4 条分配 / 3 个项目
	if diff := resp.AvgTeamSize - 4.0/3.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("期望平均团队规模 4/3，实际 %f", resp.AvgTeamSize)
	}
	if resp.ParticipatingMembers != 3 {
		t.Errorf("期望 3 名参与成员，实际 %d", resp.ParticipatingMembers)
	}
	if resp.TrackSplit.Tech != 1 || resp.TrackSplit.Business != 2 {
		t.Errorf("赛道拆分不符：%+v", resp.TrackSplit)
	}
}

func TestDashboardService_ProjectsOverview_QuarterFiltered(t *testing.T) {
	svc := setupTestDashboardService(t)

	resp, err := svc.ProjectsOverview(context.Background(), []string{"FA24"})
	if err != nil {
		t.Fatalf("ProjectsOverview 应成功: %v", err)
	}
	if resp.ActiveProjects != 2 {
		t.Errorf("FA24 期望 2 个项目，实际 %d", resp.ActiveProjects)
	}
	// 累计口径不受筛选影响
	if resp.LifetimeProjects != 3 {
		t.Errorf("累计项目不应随筛选变化，实际 %d", resp.LifetimeProjects)
	}
	// FA24 下只有 m1/m2/m3 参与
	if resp.ParticipatingMembers != 3 {
		t.Errorf("期望 3 名参与成员，实际 %d", resp.ParticipatingMembers)
	}
	// 50% donated (p1 是 2 个中唯一捐赠项目)
	if resp.DonatedPct != 50 {
		t.Errorf("期望捐赠比例 50，实际 %f", resp.DonatedPct)
	}
}

func TestDashboardService_MembersOverview(t *testing.T) {
	svc := setupTestDashboardService(t)

	resp, err := svc.MembersOverview(context.Background(), nil)
	if err != nil {
		t.Fatalf("MembersOverview 应成功: %v", err)
	}
	if resp.Counts.Total != 3 || resp.Counts.Active != 2 || resp.Counts.Inactive != 1 {
		t.Errorf("成员计数不符：%+v", resp.Counts)
	}
	if resp.RoleSplit.Analysts != 1 || resp.RoleSplit.Associates != 2 {
		t.Errorf("角色拆分不符：%+v", resp.RoleSplit)
	}
	// FA23 入会 1 人，FA24 入会 2 人，按时间升序
	if len(resp.NewPerQuarter) != 2 {
		t.Fatalf("期望 2 个入会学季，实际 %d", len(resp.NewPerQuarter))
	}
	if resp.NewPerQuarter[0].Label != "FA23" || resp.NewPerQuarter[0].Count != 1 {
		t.Errorf("首项不符：%+v", resp.NewPerQuarter[0])
	}
	if resp.NewPerQuarter[1].Label != "FA24" || resp.NewPerQuarter[1].Count != 2 {
		t.Errorf("次项不符：%+v", resp.NewPerQuarter[1])
	}
}

func TestDashboardService_CompaniesOverview(t *testing.T) {
	svc := setupTestDashboardService(t)

	resp, err := svc.CompaniesOverview(context.Background(), []string{"FA24"})
	if err != nil {
		t.Fatalf("CompaniesOverview 应成功: %v", err)
	}
	if resp.TotalCompanies != 2 {
		t.Errorf("公司总数为全量口径，期望 2，实际 %d", resp.TotalCompanies)
	}
	if len(resp.TopCompanies) != 1 {
		t.Fatalf("FA24 仅 Acme 有项目，期望 1 条，实际 %d", len(resp.TopCompanies))
	}
	if resp.TopCompanies[0].Label != "Acme Corp" || resp.TopCompanies[0].Count != 2 {
		t.Errorf("榜首应为 Acme Corp(2)，实际 %+v", resp.TopCompanies[0])
	}
}

func TestDashboardService_GBMsOverview(t *testing.T) {
	svc := setupTestDashboardService(t)

	resp, err := svc.GBMsOverview(context.Background(), nil)
	if err != nil {
		t.Fatalf("GBMsOverview 应成功: %v", err)
	}
	if resp.TotalGBMs != 1 {
		t.Errorf("期望 1 场大会，实际 %d", resp.TotalGBMs)
	}
	// 2 条签到，1 条到场
	if resp.AttendancePct != 50 {
		t.Errorf("期望出勤率 50，实际 %f", resp.AttendancePct)
	}
	if resp.AvgAttendance != 1 {
		t.Errorf("期望场均出勤 1，实际 %f", resp.AvgAttendance)
	}
	if len(resp.AttendanceByGBM) != 1 || resp.AttendanceByGBM[0].Date != "2024-10-15" {
		t.Errorf("出勤序列不符：%+v", resp.AttendanceByGBM)
	}
}

func TestDashboardService_CollaborationGraph(t *testing.T) {
	svc := setupTestDashboardService(t)

	// FA24: p1 {m1,m2} 产生一条边；p2 {m3} 为孤立节点
	resp, err := svc.CollaborationGraph(context.Background(), []string{"FA24"}, true)
	if err != nil {
		t.Fatalf("CollaborationGraph 应成功: %v", err)
	}
	if len(resp.Nodes) != 3 {
		t.Errorf("期望 3 个节点，实际 %d", len(resp.Nodes))
	}
	if len(resp.Edges) != 1 {
		t.Fatalf("期望 1 条边，实际 %d", len(resp.Edges))
	}
	if resp.Edges[0].Weight != 1 {
		t.Errorf("期望边权重 1，实际 %d", resp.Edges[0].Weight)
	}

	// 剔除孤立节点后 m3 消失
	connected, err := svc.CollaborationGraph(context.Background(), []string{"FA24"}, false)
	if err != nil {
		t.Fatalf("CollaborationGraph 应成功: %v", err)
	}
	if len(connected.Nodes) != 2 {
		t.Errorf("剔除孤立节点后期望 2 个节点，实际 %d", len(connected.Nodes))
	}
}

func TestDashboardService_EmptySnapshot(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{ViewTTL: time.Minute}}
	logger := zap.NewNop()
	svc := NewDashboardService(cfg, NewSnapshotService(emptyRepo(), logger), nil, logger)

	resp, err := svc.ProjectsOverview(context.Background(), nil)
	if err != nil {
		t.Fatalf("空快照也应返回视图: %v", err)
	}
	if resp.ActiveProjects != 0 || resp.AvgTeamSize != 0 || resp.DonatedPct != 0 {
		t.Errorf("空快照 KPI 应为零值：%+v", resp)
	}

	graph, err := svc.CollaborationGraph(context.Background(), nil, true)
	if err != nil {
		t.Fatalf("空快照也应返回图: %v", err)
	}
	if len(graph.Nodes) != 0 || len(graph.Edges) != 0 {
		t.Error("空快照的图应为空")
	}
}

// ── 缓存键 ──

func TestViewCacheKey_OrderInsensitive(t *testing.T) {
	a := viewCacheKey("projects", []string{"FA24", "WI25"})
	b := viewCacheKey("projects", []string{"WI25", "FA24"})
	if a != b {
		t.Errorf("学季顺序不应影响缓存键：%s vs %s", a, b)
	}

	c := viewCacheKey("projects", []string{"FA24"})
	if a == c {
		t.Error("不同筛选集合不应命中同一键")
	}

	g1 := viewCacheKey("graph", []string{"FA24"}, "all")
	g2 := viewCacheKey("graph", []string{"FA24"}, "connected")
	if g1 == g2 {
		t.Error("孤立节点策略不同不应命中同一键")
	}
}
