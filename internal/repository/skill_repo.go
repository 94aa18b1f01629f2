package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cimoun/SkillForge/internal/schema"
)

// SkillRepository 技能仓储
type SkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository 创建仓储
func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// GetAll 获取所有技能（关键优先级在前，新建在后）
func (r *SkillRepository) GetAll(ctx context.Context) ([]schema.Skill, error) {
	var skills []schema.Skill
	err := r.db.WithContext(ctx).Order("priority ASC, id ASC").Find(&skills).Error
	if err != nil {
		return nil, fmt.Errorf("查询技能失败: %w", err)
	}
	return skills, nil
}

// GetByID 按 id 获取技能，未找到返回 nil
func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*schema.Skill, error) {
	var skill schema.Skill
	err := r.db.WithContext(ctx).First(&skill, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("查询技能失败: %w", err)
	}
	return &skill, nil
}

// Create 创建技能
func (r *SkillRepository) Create(ctx context.Context, skill *schema.Skill) error {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		return fmt.Errorf("创建技能失败: %w", err)
	}
	return nil
}

// Save 保存全量字段
func (r *SkillRepository) Save(ctx context.Context, skill *schema.Skill) error {
	if err := r.db.WithContext(ctx).Save(skill).Error; err != nil {
		return fmt.Errorf("保存技能失败: %w", err)
	}
	return nil
}

// Delete 删除技能（技能边清扫由 service 层负责）
func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&schema.Skill{}, id).Error; err != nil {
		return fmt.Errorf("删除技能失败: %w", err)
	}
	return nil
}

// Count 统计技能数量
func (r *SkillRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&schema.Skill{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计技能失败: %w", err)
	}
	return count, nil
}

// Transaction 在事务中执行操作
func (r *SkillRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
