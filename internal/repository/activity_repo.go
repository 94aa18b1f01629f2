package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cimoun/SkillForge/internal/schema"
)

// ActivityRepository 活动仓储
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository 创建仓储
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// GetAll 获取所有活动
func (r *ActivityRepository) GetAll(ctx context.Context) ([]schema.Activity, error) {
	var acts []schema.Activity
	err := r.db.WithContext(ctx).Order("id ASC").Find(&acts).Error
	if err != nil {
		return nil, fmt.Errorf("查询活动失败: %w", err)
	}
	return acts, nil
}

// GetByID 按 id 获取活动，未找到返回 nil
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*schema.Activity, error) {
	var act schema.Activity
	err := r.db.WithContext(ctx).First(&act, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("查询活动失败: %w", err)
	}
	return &act, nil
}

// Create 创建活动
func (r *ActivityRepository) Create(ctx context.Context, act *schema.Activity) error {
	if err := r.db.WithContext(ctx).Create(act).Error; err != nil {
		return fmt.Errorf("创建活动失败: %w", err)
	}
	return nil
}

// Save 保存全量字段（含技能边 JSON 列）
func (r *ActivityRepository) Save(ctx context.Context, act *schema.Activity) error {
	if err := r.db.WithContext(ctx).Save(act).Error; err != nil {
		return fmt.Errorf("保存活动失败: %w", err)
	}
	return nil
}

// SaveBatch 批量保存（技能删除清扫后的活动回写，在事务中）
func (r *ActivityRepository) SaveBatch(ctx context.Context, acts []schema.Activity) error {
	if len(acts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range acts {
			if err := tx.Save(&acts[i]).Error; err != nil {
				return fmt.Errorf("批量保存活动失败: %w", err)
			}
		}
		return nil
	})
}

// Delete 删除活动（时间记录清扫由 service 层负责）
func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&schema.Activity{}, id).Error; err != nil {
		return fmt.Errorf("删除活动失败: %w", err)
	}
	return nil
}

// Count 统计活动数量
func (r *ActivityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&schema.Activity{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计活动失败: %w", err)
	}
	return count, nil
}
