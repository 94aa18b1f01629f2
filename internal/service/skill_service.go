package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cimoun/SkillForge/internal/eventbus"
	"github.com/cimoun/SkillForge/internal/schema"
)

// SkillService 技能增删改与删除清扫
type SkillService struct {
	skillRepo    SkillRepository
	activityRepo ActivityRepository
	hub          *eventbus.Hub
}

// NewSkillService 创建技能服务
func NewSkillService(skillRepo SkillRepository, activityRepo ActivityRepository, hub *eventbus.Hub) *SkillService {
	return &SkillService{skillRepo: skillRepo, activityRepo: activityRepo, hub: hub}
}

// List 获取所有技能
func (s *SkillService) List(ctx context.Context) ([]schema.Skill, error) {
	return s.skillRepo.GetAll(ctx)
}

// Create 创建技能；名字必填，越界字段收敛
func (s *SkillService) Create(ctx context.Context, name string, targetLevel, priority int) (*schema.Skill, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("技能名不能为空")
	}
	skill := schema.NewSkill(name, targetLevel, priority)
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	s.hub.Publish(eventbus.Event{Type: eventbus.TypeSkillChanged, Data: map[string]any{"id": skill.ID}})
	return skill, nil
}

// SkillPatch 部分更新；nil 字段不动
type SkillPatch struct {
	Name        *string `json:"name"`
	TargetLevel *int    `json:"target_level"`
	Priority    *int    `json:"priority"`
}

// Update 部分更新技能
func (s *SkillService) Update(ctx context.Context, id int64, patch SkillPatch) (*schema.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, fmt.Errorf("技能不存在: %d", id)
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("技能名不能为空")
		}
		skill.Name = name
	}
	if patch.TargetLevel != nil {
		skill.TargetLevel = schema.ClampTargetLevel(*patch.TargetLevel)
	}
	if patch.Priority != nil {
		skill.Priority = schema.NormalizePriority(*patch.Priority)
	}

	if err := s.skillRepo.Save(ctx, skill); err != nil {
		return nil, err
	}
	s.hub.Publish(eventbus.Event{Type: eventbus.TypeSkillChanged, Data: map[string]any{"id": skill.ID}})
	return skill, nil
}

// Delete 删除技能并清扫所有活动里指向它的技能边。
// 清扫是纯变换，这里只把有变化的活动回写；活动本身不删。
func (s *SkillService) Delete(ctx context.Context, id int64) error {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if skill == nil {
		return fmt.Errorf("技能不存在: %d", id)
	}

	acts, err := s.activityRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	swept := schema.SweepSkillLinks(acts, id)

	changed := make([]schema.Activity, 0)
	for i := range swept {
		if len(swept[i].Skills) != len(acts[i].Skills) {
			changed = append(changed, swept[i])
		}
	}

	if err := s.activityRepo.SaveBatch(ctx, changed); err != nil {
		return err
	}
	if err := s.skillRepo.Delete(ctx, id); err != nil {
		return err
	}

	if len(changed) > 0 {
		slog.Info("技能删除，已摘除悬空技能边", "skill", skill.Name, "activities", len(changed))
	}
	s.hub.Publish(eventbus.Event{Type: eventbus.TypeSkillChanged, Data: map[string]any{"id": id, "deleted": true}})
	return nil
}
