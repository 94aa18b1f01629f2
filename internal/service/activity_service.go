package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cimoun/SkillForge/internal/eventbus"
	"github.com/cimoun/SkillForge/internal/schema"
)

// ActivityService 活动增删改、状态循环与删除清扫
type ActivityService struct {
	activityRepo ActivityRepository
	timeLogRepo  TimeLogRepository
	hub          *eventbus.Hub
}

// NewActivityService 创建活动服务
func NewActivityService(activityRepo ActivityRepository, timeLogRepo TimeLogRepository, hub *eventbus.Hub) *ActivityService {
	return &ActivityService{activityRepo: activityRepo, timeLogRepo: timeLogRepo, hub: hub}
}

// List 获取所有活动
func (s *ActivityService) List(ctx context.Context) ([]schema.Activity, error) {
	return s.activityRepo.GetAll(ctx)
}

// Create 创建活动；权重缺省补 1（全额归属）
func (s *ActivityService) Create(ctx context.Context, name, typ string, links schema.SkillLinks) (*schema.Activity, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("活动名不能为空")
	}
	act := schema.NewActivity(name, typ, normalizeWeights(links))
	if err := s.activityRepo.Create(ctx, act); err != nil {
		return nil, err
	}
	s.hub.Publish(eventbus.Event{Type: eventbus.TypeActivityChanged, Data: map[string]any{"id": act.ID}})
	return act, nil
}

// ActivityPatch 部分更新；nil 字段不动
type ActivityPatch struct {
	Name   *string            `json:"name"`
	Type   *string            `json:"type"`
	Skills *schema.SkillLinks `json:"skills"`
}

// Update 部分更新活动
func (s *ActivityService) Update(ctx context.Context, id int64, patch ActivityPatch) (*schema.Activity, error) {
	act, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if act == nil {
		return nil, fmt.Errorf("活动不存在: %d", id)
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("活动名不能为空")
		}
		act.Name = name
	}
	if patch.Type != nil {
		act.Type = schema.NormalizeActivityType(*patch.Type)
	}
	if patch.Skills != nil {
		act.Skills = normalizeWeights(*patch.Skills)
	}

	if err := s.activityRepo.Save(ctx, act); err != nil {
		return nil, err
	}
	s.hub.Publish(eventbus.Event{Type: eventbus.TypeActivityChanged, Data: map[string]any{"id": act.ID}})
	return act, nil
}

// ToggleStatus 状态循环 planned→active→completed→planned
func (s *ActivityService) ToggleStatus(ctx context.Context, id int64) (*schema.Activity, error) {
	act, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if act == nil {
		return nil, fmt.Errorf("活动不存在: %d", id)
	}

	act.Status = schema.NextStatus(act.Status)
	if err := s.activityRepo.Save(ctx, act); err != nil {
		return nil, err
	}
	s.hub.Publish(eventbus.Event{Type: eventbus.TypeActivityChanged, Data: map[string]any{"id": act.ID, "status": act.Status}})
	return act, nil
}

// Delete 删除活动并连带清扫它的时间记录。
// 清扫先在快照上算出幸存集合，再按差集删除，保证只删属于该活动的记录。
func (s *ActivityService) Delete(ctx context.Context, id int64) error {
	act, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if act == nil {
		return fmt.Errorf("活动不存在: %d", id)
	}

	logs, err := s.timeLogRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := schema.SweepTimeLogs(logs, id)

	keptIDs := make(map[int64]struct{}, len(kept))
	for _, lg := range kept {
		keptIDs[lg.ID] = struct{}{}
	}
	doomed := make([]int64, 0, len(logs)-len(kept))
	for _, lg := range logs {
		if _, ok := keptIDs[lg.ID]; !ok {
			doomed = append(doomed, lg.ID)
		}
	}

	if err := s.timeLogRepo.DeleteByIDs(ctx, doomed); err != nil {
		return err
	}
	if err := s.activityRepo.Delete(ctx, id); err != nil {
		return err
	}

	if len(doomed) > 0 {
		slog.Info("活动删除，已清理时间记录", "activity", act.Name, "logs", len(doomed))
	}
	s.hub.Publish(eventbus.Event{Type: eventbus.TypeActivityChanged, Data: map[string]any{"id": id, "deleted": true}})
	return nil
}

// normalizeWeights 非法权重补成默认全额归属
func normalizeWeights(links schema.SkillLinks) schema.SkillLinks {
	out := make(schema.SkillLinks, 0, len(links))
	for _, l := range links {
		if l.SkillID == 0 {
			continue
		}
		if l.Weight <= 0 || l.Weight > 1 {
			l.Weight = 1
		}
		out = append(out, l)
	}
	return out
}
