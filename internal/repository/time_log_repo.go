package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cimoun/SkillForge/internal/schema"
)

// TimeLogRepository 时间记录仓储
type TimeLogRepository struct {
	db *gorm.DB
}

// NewTimeLogRepository 创建仓储
func NewTimeLogRepository(db *gorm.DB) *TimeLogRepository {
	return &TimeLogRepository{db: db}
}

// GetAll 获取所有时间记录
func (r *TimeLogRepository) GetAll(ctx context.Context) ([]schema.TimeLog, error) {
	var logs []schema.TimeLog
	err := r.db.WithContext(ctx).Order("date ASC, id ASC").Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("查询时间记录失败: %w", err)
	}
	return logs, nil
}

// GetByActivity 获取某活动的时间记录
func (r *TimeLogRepository) GetByActivity(ctx context.Context, activityID int64) ([]schema.TimeLog, error) {
	var logs []schema.TimeLog
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("date ASC, id ASC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("查询时间记录失败: %w", err)
	}
	return logs, nil
}

// Create 写入一条时间记录
func (r *TimeLogRepository) Create(ctx context.Context, lg *schema.TimeLog) error {
	if err := r.db.WithContext(ctx).Create(lg).Error; err != nil {
		return fmt.Errorf("写入时间记录失败: %w", err)
	}
	return nil
}

// Delete 删除单条时间记录
func (r *TimeLogRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&schema.TimeLog{}, id).Error; err != nil {
		return fmt.Errorf("删除时间记录失败: %w", err)
	}
	return nil
}

// DeleteByIDs 批量删除（活动删除清扫出的悬空记录）
func (r *TimeLogRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&schema.TimeLog{}, ids).Error; err != nil {
		return fmt.Errorf("批量删除时间记录失败: %w", err)
	}
	return nil
}

// Count 统计记录数量
func (r *TimeLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&schema.TimeLog{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计时间记录失败: %w", err)
	}
	return count, nil
}
