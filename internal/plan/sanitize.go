// Package plan 把生成模型返回的不可信文本清洗成域内合法的启动计划。
// 模型输出按对抗性输入处理：字段逐个校验回落，顶层结构坏掉则整体失败。
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cimoun/SkillForge/internal/schema"
)

var (
	// ErrParse 原始文本即使截取大括号片段后也无法解析
	ErrParse = errors.New("无法解析生成结果")
	// ErrInvalidStructure 解析成功但缺少 skills/activities 序列
	ErrInvalidStructure = errors.New("生成结果缺少 skills/activities 结构")
	// ErrEmptyPlan 清洗后没有任何技能，确认入库时拒绝
	ErrEmptyPlan = errors.New("计划中没有可用技能")
)

// Skill 清洗后的候选技能（按名称键控，入库时才分配 id）
type Skill struct {
	Name        string `json:"name"`
	TargetLevel int    `json:"targetLevel"`
	Priority    int    `json:"priority"`
}

// Activity 清洗后的候选活动，skillNames 引用技能名
type Activity struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	SkillNames []string `json:"skillNames"`
}

// Plan 清洗结果。保证：技能名非空、targetLevel∈[1,5]、priority∈{1,2,3}；
// 活动名非空、类型合法、skillNames 是 Skills 名字集合的子集且至少一个。
type Plan struct {
	Skills     []Skill    `json:"skills"`
	Activities []Activity `json:"activities"`
}

// Empty 清洗后技能或活动为空（降级结果，不是错误）
func (p *Plan) Empty() bool {
	return p == nil || len(p.Skills) == 0 || len(p.Activities) == 0
}

// ExtractJSON 从模型原始输出中剥离 markdown 围栏和前后缀噪声，
// 截取首个顶层大括号片段。文本本身就是纯 JSON 时原样返回。
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, "```") {
		start := strings.Index(raw, "```json")
		if start == -1 {
			start = strings.Index(raw, "```")
		}
		if start != -1 {
			if nl := strings.Index(raw[start:], "\n"); nl != -1 {
				raw = raw[start+nl+1:]
			}
		}
		if end := strings.LastIndex(raw, "```"); end != -1 {
			raw = raw[:end]
		}
		raw = strings.TrimSpace(raw)
	}

	if !strings.HasPrefix(raw, "{") {
		if idx := strings.Index(raw, "{"); idx != -1 {
			raw = raw[idx:]
		}
	}
	if !strings.HasSuffix(raw, "}") {
		if idx := strings.LastIndex(raw, "}"); idx != -1 {
			raw = raw[:idx+1]
		}
	}

	return strings.TrimSpace(raw)
}

// Sanitize 完整清洗管线：截取 → 解析 → 结构检查 → 逐条归一。
// 单条记录的坏字段回落默认值；顶层结构损坏立即失败，不产出部分结果。
func Sanitize(raw string) (*Plan, error) {
	payload := ExtractJSON(raw)

	var doc map[string]any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	rawSkills, ok := doc["skills"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: skills", ErrInvalidStructure)
	}
	rawActivities, ok := doc["activities"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: activities", ErrInvalidStructure)
	}

	out := &Plan{}

	accepted := make(map[string]struct{}, len(rawSkills))
	for _, item := range rawSkills {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := strings.TrimSpace(asString(m["name"]))
		if name == "" {
			continue
		}
		// 缺失或非数值的 targetLevel 先回落 3，再整体收敛进 [1,5]
		out.Skills = append(out.Skills, Skill{
			Name:        name,
			TargetLevel: schema.ClampTargetLevel(asInt(m["targetLevel"], schema.DefaultTargetLevel)),
			Priority:    schema.NormalizePriority(asInt(m["priority"], schema.PriorityNormal)),
		})
		accepted[name] = struct{}{}
	}

	for _, item := range rawActivities {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := strings.TrimSpace(asString(m["name"]))
		if name == "" {
			continue
		}

		// 引用名只认清洗后技能集内的精确匹配；模型幻觉出的名字静默丢弃
		var refs []string
		for _, sn := range asStringSlice(m["skillNames"]) {
			if _, ok := accepted[sn]; ok {
				refs = append(refs, sn)
			}
		}
		// 没有任何合法技能引用的活动对本域无信息量，整条丢弃
		if len(refs) == 0 {
			continue
		}

		out.Activities = append(out.Activities, Activity{
			Name:       name,
			Type:       schema.NormalizeActivityType(asString(m["type"])),
			SkillNames: refs,
		})
	}

	return out, nil
}

// Normalize 对用户编辑过的草稿重跑归一规则（确认入库前的最后一道闸）
func Normalize(p Plan) Plan {
	out := Plan{}
	accepted := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		tl := s.TargetLevel
		if tl == 0 {
			tl = schema.DefaultTargetLevel
		}
		out.Skills = append(out.Skills, Skill{
			Name:        name,
			TargetLevel: schema.ClampTargetLevel(tl),
			Priority:    schema.NormalizePriority(s.Priority),
		})
		accepted[name] = struct{}{}
	}
	for _, a := range p.Activities {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			continue
		}
		var refs []string
		for _, sn := range a.SkillNames {
			sn = strings.TrimSpace(sn)
			if _, ok := accepted[sn]; ok {
				refs = append(refs, sn)
			}
		}
		if len(refs) == 0 {
			continue
		}
		out.Activities = append(out.Activities, Activity{
			Name:       name,
			Type:       schema.NormalizeActivityType(a.Type),
			SkillNames: refs,
		})
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asInt 宽容取整：JSON 数字统一是 float64，其余类型回落默认值
func asInt(v any, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return def
	}
}

func asStringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		if s, ok := it.(string); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
