package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cimoun/SkillForge/internal/eventbus"
	"github.com/cimoun/SkillForge/internal/schema"
)

// TimeLogService 时间记录
type TimeLogService struct {
	timeLogRepo  TimeLogRepository
	activityRepo ActivityRepository
	hub          *eventbus.Hub
}

// NewTimeLogService 创建时间记录服务
func NewTimeLogService(timeLogRepo TimeLogRepository, activityRepo ActivityRepository, hub *eventbus.Hub) *TimeLogService {
	return &TimeLogService{timeLogRepo: timeLogRepo, activityRepo: activityRepo, hub: hub}
}

// Log 给活动记一笔时间；date 为空取今天
func (s *TimeLogService) Log(ctx context.Context, activityID int64, date string, hours float64) (*schema.TimeLog, error) {
	if hours <= 0 {
		return nil, fmt.Errorf("小时数必须为正: %v", hours)
	}

	act, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if act == nil {
		return nil, fmt.Errorf("活动不存在: %d", activityID)
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("日期格式应为 YYYY-MM-DD: %q", date)
	}

	lg := &schema.TimeLog{ActivityID: activityID, Date: date, Hours: hours}
	if err := s.timeLogRepo.Create(ctx, lg); err != nil {
		return nil, err
	}
	s.hub.Publish(eventbus.Event{Type: eventbus.TypeTimeLogged, Data: map[string]any{"activity_id": activityID, "hours": hours}})
	return lg, nil
}

// ListByActivity 获取某活动的全部时间记录
func (s *TimeLogService) ListByActivity(ctx context.Context, activityID int64) ([]schema.TimeLog, error) {
	return s.timeLogRepo.GetByActivity(ctx, activityID)
}

// Delete 删除单条时间记录
func (s *TimeLogService) Delete(ctx context.Context, id int64) error {
	if err := s.timeLogRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(eventbus.Event{Type: eventbus.TypeTimeLogged, Data: map[string]any{"id": id, "deleted": true}})
	return nil
}
