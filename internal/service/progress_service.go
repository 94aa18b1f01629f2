package service

import (
	"context"
	"time"

	"github.com/cimoun/SkillForge/internal/progress"
	"github.com/cimoun/SkillForge/internal/schema"
)

// ProgressService 汇总视图：把三个集合的快照算成仪表盘数据
type ProgressService struct {
	skillRepo    SkillRepository
	activityRepo ActivityRepository
	timeLogRepo  TimeLogRepository
}

// NewProgressService 创建进度服务
func NewProgressService(skillRepo SkillRepository, activityRepo ActivityRepository, timeLogRepo TimeLogRepository) *ProgressService {
	return &ProgressService{skillRepo: skillRepo, activityRepo: activityRepo, timeLogRepo: timeLogRepo}
}

// SkillProgressView 单个技能的进度行
type SkillProgressView struct {
	Skill         schema.Skill `json:"skill"`
	WeightedHours float64      `json:"weighted_hours"`
	Level         int          `json:"level"`
	Progress      float64      `json:"progress"`
	HoursToNext   float64      `json:"hours_to_next"`
}

// ActivityHoursView 单个活动的投入行
type ActivityHoursView struct {
	Activity   schema.Activity `json:"activity"`
	TotalHours float64         `json:"total_hours"`
}

// Overview 仪表盘汇总
type Overview struct {
	Skills      []SkillProgressView `json:"skills"`
	Activities  []ActivityHoursView `json:"activities"`
	TotalHours  float64             `json:"total_hours"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// Snapshot 读取三个集合的一致快照
func (s *ProgressService) Snapshot(ctx context.Context) (*schema.AppState, error) {
	skills, err := s.skillRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	acts, err := s.activityRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.timeLogRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return &schema.AppState{Skills: skills, Activities: acts, TimeLogs: logs}, nil
}

// BuildOverview 在快照上跑纯计算，得到仪表盘
func (s *ProgressService) BuildOverview(ctx context.Context) (*Overview, error) {
	state, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := &Overview{GeneratedAt: time.Now()}

	for _, sk := range state.Skills {
		wh := progress.SkillWeightedHours(sk.ID, state.Activities, state.TimeLogs)
		lvl := progress.LevelFromHours(wh)
		out.Skills = append(out.Skills, SkillProgressView{
			Skill:         sk,
			WeightedHours: wh,
			Level:         lvl,
			Progress:      progress.TargetProgress(lvl, sk.TargetLevel),
			HoursToNext:   progress.HoursToNext(wh),
		})
	}

	for _, act := range state.Activities {
		hours := progress.ActivityHours(act.ID, state.TimeLogs)
		out.Activities = append(out.Activities, ActivityHoursView{Activity: act, TotalHours: hours})
	}

	for _, lg := range state.TimeLogs {
		out.TotalHours += lg.Hours
	}

	return out, nil
}
