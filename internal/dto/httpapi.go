package dto

// ========== DTOs（与前端契约保持稳定） ==========

// SkillDTO 技能行，带派生进度
type SkillDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	TargetLevel   int     `json:"target_level"`
	Priority      int     `json:"priority"`
	WeightedHours float64 `json:"weighted_hours"`
	Level         int     `json:"level"`
	Progress      float64 `json:"progress"`
	HoursToNext   float64 `json:"hours_to_next"`
}

// SkillLinkDTO 活动里的技能边
type SkillLinkDTO struct {
	SkillID int64   `json:"skill_id"`
	Weight  float64 `json:"weight"`
}

// ActivityDTO 活动行，带累计小时
type ActivityDTO struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Status     string         `json:"status"`
	Skills     []SkillLinkDTO `json:"skills"`
	TotalHours float64        `json:"total_hours"`
}

// TimeLogDTO 时间记录行
type TimeLogDTO struct {
	ID         int64   `json:"id"`
	ActivityID int64   `json:"activity_id"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
}

// OverviewDTO 仪表盘汇总
type OverviewDTO struct {
	Skills     []SkillDTO    `json:"skills"`
	Activities []ActivityDTO `json:"activities"`
	TotalHours float64       `json:"total_hours"`
}

// PlanSkillDTO 草稿计划里的技能（按名称键控，未入库）
type PlanSkillDTO struct {
	Name        string `json:"name"`
	TargetLevel int    `json:"targetLevel"`
	Priority    int    `json:"priority"`
}

// PlanActivityDTO 草稿计划里的活动
type PlanActivityDTO struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	SkillNames []string `json:"skillNames"`
}

// PlanDTO 草稿计划
type PlanDTO struct {
	Skills     []PlanSkillDTO    `json:"skills"`
	Activities []PlanActivityDTO `json:"activities"`
	Empty      bool              `json:"empty"`
}
