package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cimoun/SkillForge/internal/eventbus"
	"github.com/cimoun/SkillForge/internal/plan"
	"github.com/cimoun/SkillForge/internal/schema"
)

// 材料化时的默认边权重：生成计划不区分归属比例，全额记给各技能
const defaultPlanWeight = 1.0

// PlanService 引导流程：目标 → 模型草稿 → 清洗 → 用户确认 → 入库
type PlanService struct {
	generator    PlanDraftGenerator
	skillRepo    SkillRepository
	activityRepo ActivityRepository
	hub          *eventbus.Hub
}

// NewPlanService 创建计划服务
func NewPlanService(generator PlanDraftGenerator, skillRepo SkillRepository, activityRepo ActivityRepository, hub *eventbus.Hub) *PlanService {
	return &PlanService{generator: generator, skillRepo: skillRepo, activityRepo: activityRepo, hub: hub}
}

// Generate 请求模型并清洗，返回草稿计划供用户编辑。
// 清洗后为空是降级结果而非错误，由前端提示用户改写目标重试。
func (s *PlanService) Generate(ctx context.Context, goal string) (*plan.Plan, error) {
	if s.generator == nil || !s.generator.IsConfigured() {
		return nil, fmt.Errorf("生成模型未配置")
	}

	raw, err := s.generator.GenerateDraft(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("生成计划失败: %w", err)
	}

	draft, err := plan.Sanitize(raw)
	if err != nil {
		slog.Warn("模型输出清洗失败", "error", err)
		return nil, err
	}

	if draft.Empty() {
		slog.Warn("清洗后计划为空", "goal_len", len(goal))
	}
	return draft, nil
}

// ConfirmResult 确认入库结果
type ConfirmResult struct {
	Skills     []schema.Skill    `json:"skills"`
	Activities []schema.Activity `json:"activities"`
}

// Confirm 把用户确认的草稿材料化成域对象并入库：
// 重跑归一规则 → 技能先入库拿 id → 名称→id 映射 → 活动带默认权重 1 入库。
// 零技能的确认在这里挡掉。
func (s *PlanService) Confirm(ctx context.Context, draft plan.Plan) (*ConfirmResult, error) {
	normalized := plan.Normalize(draft)
	if len(normalized.Skills) == 0 {
		return nil, plan.ErrEmptyPlan
	}

	result := &ConfirmResult{}

	idByName := make(map[string]int64, len(normalized.Skills))
	for _, ps := range normalized.Skills {
		skill := schema.NewSkill(ps.Name, ps.TargetLevel, ps.Priority)
		if err := s.skillRepo.Create(ctx, skill); err != nil {
			return nil, err
		}
		idByName[skill.Name] = skill.ID
		result.Skills = append(result.Skills, *skill)
	}

	for _, pa := range normalized.Activities {
		links := make(schema.SkillLinks, 0, len(pa.SkillNames))
		for _, name := range pa.SkillNames {
			id, ok := idByName[name]
			if !ok {
				// 归一保证引用都在集合内，走到这里属编程错误
				continue
			}
			links = append(links, schema.SkillLink{SkillID: id, Weight: defaultPlanWeight})
		}
		act := schema.NewActivity(pa.Name, pa.Type, links)
		if err := s.activityRepo.Create(ctx, act); err != nil {
			return nil, err
		}
		result.Activities = append(result.Activities, *act)
	}

	slog.Info("启动计划已确认入库", "skills", len(result.Skills), "activities", len(result.Activities))
	s.hub.Publish(eventbus.Event{Type: eventbus.TypePlanConfirmed, Data: map[string]any{
		"skills":     len(result.Skills),
		"activities": len(result.Activities),
	}})
	return result, nil
}
