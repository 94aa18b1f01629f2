package schema

// AppState 三个集合的内存快照，聚合根。
// 不变量：活动技能边里的 skill_id 必须指向 Skills 中的技能，
// 时间记录的 activity_id 必须指向 Activities 中的活动。
// 删除是唯一会破坏该不变量的变更，由下面的清扫函数负责修复。
type AppState struct {
	Skills     []Skill
	Activities []Activity
	TimeLogs   []TimeLog
}

// SkillByID 按 id 查找技能，未命中返回 nil
func (s *AppState) SkillByID(id int64) *Skill {
	for i := range s.Skills {
		if s.Skills[i].ID == id {
			return &s.Skills[i]
		}
	}
	return nil
}

// ActivityByID 按 id 查找活动，未命中返回 nil
func (s *AppState) ActivityByID(id int64) *Activity {
	for i := range s.Activities {
		if s.Activities[i].ID == id {
			return &s.Activities[i]
		}
	}
	return nil
}

// SweepSkillLinks 技能删除后的清扫：从每个活动的技能边中摘除指向该技能的边。
// 活动本身保留（技能边清空也不删活动）。纯变换，不修改入参，返回新集合。
func SweepSkillLinks(activities []Activity, skillID int64) []Activity {
	out := make([]Activity, 0, len(activities))
	for _, act := range activities {
		if !act.Skills.Has(skillID) {
			out = append(out, act)
			continue
		}
		kept := make(SkillLinks, 0, len(act.Skills))
		for _, link := range act.Skills {
			if link.SkillID != skillID {
				kept = append(kept, link)
			}
		}
		act.Skills = kept
		out = append(out, act)
	}
	return out
}

// SweepTimeLogs 活动删除后的清扫：丢弃指向该活动的时间记录，其余原样保留。
// 纯变换，不修改入参。
func SweepTimeLogs(logs []TimeLog, activityID int64) []TimeLog {
	out := make([]TimeLog, 0, len(logs))
	for _, lg := range logs {
		if lg.ActivityID != activityID {
			out = append(out, lg)
		}
	}
	return out
}
