package progress

import (
	"testing"

	"pgregory.net/rapid"
)

// 任意非负小时数下等级都落在 [0,5]，且对输入单调不减。
func TestPropertyLevelMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Float64Range(0, 100000).Draw(rt, "a")
		b := rapid.Float64Range(0, 100000).Draw(rt, "b")
		if a > b {
			a, b = b, a
		}

		la, lb := LevelFromHours(a), LevelFromHours(b)
		if la < 0 || la > MaxLevel || lb < 0 || lb > MaxLevel {
			rt.Fatalf("level out of range: %d / %d", la, lb)
		}
		if la > lb {
			rt.Fatalf("not monotonic: level(%v)=%d > level(%v)=%d", a, la, b, lb)
		}
	})
}

// 等级映射幂等：同一输入反复求值结果不变。
func TestPropertyLevelIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := rapid.Float64Range(0, 100000).Draw(rt, "h")
		if LevelFromHours(h) != LevelFromHours(h) {
			rt.Fatalf("LevelFromHours(%v) not deterministic", h)
		}
	})
}

// 完成度恒在 [0,100]。
func TestPropertyTargetProgressBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cur := rapid.IntRange(0, MaxLevel).Draw(rt, "cur")
		target := rapid.IntRange(0, MaxLevel).Draw(rt, "target")
		p := TargetProgress(cur, target)
		if p < 0 || p > 100 {
			rt.Fatalf("TargetProgress(%d,%d)=%v out of [0,100]", cur, target, p)
		}
	})
}
