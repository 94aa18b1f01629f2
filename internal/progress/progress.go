// Package progress 把原始时间记录换算成技能掌握度。
// 全部为纯函数：输入是集合快照，无 I/O，无共享状态。
package progress

import (
	"github.com/cimoun/SkillForge/internal/schema"
)

// MaxLevel 掌握度上限
const MaxLevel = 5

// 等级阈值（加权小时），下标即等级。
// 产品决策数值，调整会改变所有用户的历史等级，勿随意改动。
var levelThresholds = [MaxLevel + 1]float64{0, 1, 11, 41, 101, 251}

// LevelFromHours 加权小时 → 掌握度等级 [0,5]。
// 从高到低扫描，取第一个阈值不超过输入的等级；单调、幂等。
func LevelFromHours(weightedHours float64) int {
	for lvl := MaxLevel; lvl >= 1; lvl-- {
		if weightedHours >= levelThresholds[lvl] {
			return lvl
		}
	}
	return 0
}

// HoursToNext 距下一等级还差的加权小时，已到顶返回 0
func HoursToNext(weightedHours float64) float64 {
	lvl := LevelFromHours(weightedHours)
	if lvl >= MaxLevel {
		return 0
	}
	remain := levelThresholds[lvl+1] - weightedHours
	if remain < 0 {
		return 0
	}
	return remain
}

// ActivityHours 某活动的累计小时数
func ActivityHours(activityID int64, logs []schema.TimeLog) float64 {
	var total float64
	for _, lg := range logs {
		if lg.ActivityID == activityID {
			total += lg.Hours
		}
	}
	return total
}

// SkillWeightedHours 某技能的加权小时数：
// 对每个链接到该技能的活动，活动小时数 × 边权重，跨活动累加。
// 一次记录会同时按各自权重灌给活动链接的所有技能（扇出，不是均摊）；
// 同一技能的多重边按多重性累加。
func SkillWeightedHours(skillID int64, activities []schema.Activity, logs []schema.TimeLog) float64 {
	if len(activities) == 0 || len(logs) == 0 {
		return 0
	}

	// 先按活动聚合小时数，避免对每条边重复扫描记录
	hoursByActivity := make(map[int64]float64, len(activities))
	for _, lg := range logs {
		hoursByActivity[lg.ActivityID] += lg.Hours
	}

	var total float64
	for _, act := range activities {
		hours, ok := hoursByActivity[act.ID]
		if !ok {
			continue
		}
		for _, link := range act.Skills {
			if link.SkillID == skillID {
				total += hours * link.Weight
			}
		}
	}
	return total
}

// TargetProgress 对目标等级的完成度百分比，封顶 100。
// 合法数据下 target 恒 ≥1，这里仍挡一下除零。
func TargetProgress(currentLevel, targetLevel int) float64 {
	if targetLevel <= 0 {
		return 0
	}
	p := 100 * float64(currentLevel) / float64(targetLevel)
	if p > 100 {
		return 100
	}
	return p
}
