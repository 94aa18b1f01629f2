package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cimoun/SkillForge/internal/bootstrap"
	"github.com/cimoun/SkillForge/internal/dto"
	"github.com/cimoun/SkillForge/internal/eventbus"
	"github.com/cimoun/SkillForge/internal/pkg/buildinfo"
	"github.com/cimoun/SkillForge/internal/plan"
	"github.com/cimoun/SkillForge/internal/schema"
	"github.com/cimoun/SkillForge/internal/service"
)

// apiServer 持有装配好的服务，路由方法都挂在它上面
type apiServer struct {
	core      *bootstrap.Core
	hub       *eventbus.Hub
	startedAt time.Time
}

func newAPI(core *bootstrap.Core, hub *eventbus.Hub) *apiServer {
	return &apiServer{core: core, hub: hub, startedAt: time.Now()}
}

func (a *apiServer) registerJSONRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/skills", a.handleSkills)
	mux.HandleFunc("/api/skills/update", a.handleSkillUpdate)
	mux.HandleFunc("/api/skills/delete", a.handleSkillDelete)

	mux.HandleFunc("/api/activities", a.handleActivities)
	mux.HandleFunc("/api/activities/update", a.handleActivityUpdate)
	mux.HandleFunc("/api/activities/toggle", a.handleActivityToggle)
	mux.HandleFunc("/api/activities/delete", a.handleActivityDelete)

	mux.HandleFunc("/api/timelogs", a.handleTimeLogs)
	mux.HandleFunc("/api/timelogs/delete", a.handleTimeLogDelete)

	mux.HandleFunc("/api/overview", a.handleOverview)

	mux.HandleFunc("/api/plan/generate", a.handlePlanGenerate)
	mux.HandleFunc("/api/plan/confirm", a.handlePlanConfirm)
}

func (a *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"version":        buildinfo.Version,
		"commit":         buildinfo.Commit,
		"uptime_seconds": int64(time.Since(a.startedAt).Seconds()),
	})
}

// ========== 技能 ==========

func (a *apiServer) handleSkills(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ov, err := a.core.Progress.BuildOverview(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]dto.SkillDTO, 0, len(ov.Skills))
		for _, row := range ov.Skills {
			out = append(out, toSkillDTO(row))
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var req struct {
			Name        string `json:"name"`
			TargetLevel int    `json:"target_level"`
			Priority    int    `json:"priority"`
		}
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "请求体不合法: "+err.Error())
			return
		}
		skill, err := a.core.Skills.Create(r.Context(), req.Name, req.TargetLevel, req.Priority)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, skill)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (a *apiServer) handleSkillUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPatch {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		ID int64 `json:"id"`
		service.SkillPatch
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体不合法: "+err.Error())
		return
	}
	skill, err := a.core.Skills.Update(r.Context(), req.ID, req.SkillPatch)
	if err != nil {
		writeError(w, statusForNotFound(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

func (a *apiServer) handleSkillDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		ID int64 `json:"id"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体不合法: "+err.Error())
		return
	}
	if err := a.core.Skills.Delete(r.Context(), req.ID); err != nil {
		writeError(w, statusForNotFound(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": req.ID})
}

// ========== 活动 ==========

func (a *apiServer) handleActivities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ov, err := a.core.Progress.BuildOverview(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]dto.ActivityDTO, 0, len(ov.Activities))
		for _, row := range ov.Activities {
			out = append(out, toActivityDTO(row))
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var req struct {
			Name   string             `json:"name"`
			Type   string             `json:"type"`
			Skills []dto.SkillLinkDTO `json:"skills"`
		}
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "请求体不合法: "+err.Error())
			return
		}
		act, err := a.core.Activities.Create(r.Context(), req.Name, req.Type, fromLinkDTOs(req.Skills))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, act)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (a *apiServer) handleActivityUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		ID     int64               `json:"id"`
		Name   *string             `json:"name"`
		Type   *string             `json:"type"`
		Skills *[]dto.SkillLinkDTO `json:"skills"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体不合法: "+err.Error())
		return
	}
	patch := service.ActivityPatch{Name: req.Name, Type: req.Type}
	if req.Skills != nil {
		links := fromLinkDTOs(*req.Skills)
		patch.Skills = &links
	}
	act, err := a.core.Activities.Update(r.Context(), req.ID, patch)
	if err != nil {
		writeError(w, statusForNotFound(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, act)
}

func (a *apiServer) handleActivityToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		ID int64 `json:"id"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体不合法: "+err.Error())
		return
	}
	act, err := a.core.Activities.ToggleStatus(r.Context(), req.ID)
	if err != nil {
		writeError(w, statusForNotFound(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, act)
}

func (a *apiServer) handleActivityDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		ID int64 `json:"id"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体不合法: "+err.Error())
		return
	}
	if err := a.core.Activities.Delete(r.Context(), req.ID); err != nil {
		writeError(w, statusForNotFound(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": req.ID})
}

// ========== 时间记录 ==========

func (a *apiServer) handleTimeLogs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		activityID, err := parseInt64Param(r.URL.Query().Get("activity_id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "activity_id 不合法")
			return
		}
		logs, err := a.core.TimeLogs.ListByActivity(r.Context(), activityID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]dto.TimeLogDTO, 0, len(logs))
		for _, lg := range logs {
			out = append(out, dto.TimeLogDTO{ID: lg.ID, ActivityID: lg.ActivityID, Date: lg.Date, Hours: lg.Hours})
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var req struct {
			ActivityID int64   `json:"activity_id"`
			Date       string  `json:"date"`
			Hours      float64 `json:"hours"`
		}
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "请求体不合法: "+err.Error())
			return
		}
		lg, err := a.core.TimeLogs.Log(r.Context(), req.ActivityID, req.Date, req.Hours)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, lg)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (a *apiServer) handleTimeLogDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		ID int64 `json:"id"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体不合法: "+err.Error())
		return
	}
	if err := a.core.TimeLogs.Delete(r.Context(), req.ID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": req.ID})
}

// ========== 仪表盘 ==========

func (a *apiServer) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ov, err := a.core.Progress.BuildOverview(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := dto.OverviewDTO{TotalHours: ov.TotalHours}
	for _, row := range ov.Skills {
		out.Skills = append(out.Skills, toSkillDTO(row))
	}
	for _, row := range ov.Activities {
		out.Activities = append(out.Activities, toActivityDTO(row))
	}
	writeJSON(w, http.StatusOK, out)
}

// ========== 启动计划 ==========

func (a *apiServer) handlePlanGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Goal string `json:"goal"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体不合法: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Goal) == "" {
		writeError(w, http.StatusBadRequest, "目标描述不能为空")
		return
	}

	draft, err := a.core.Plan.Generate(r.Context(), req.Goal)
	if err != nil {
		// 模型输出不可解析属于上游质量问题，和本地请求错误区分开
		if errors.Is(err, plan.ErrParse) || errors.Is(err, plan.ErrInvalidStructure) {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toPlanDTO(draft))
}

func (a *apiServer) handlePlanConfirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req dto.PlanDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体不合法: "+err.Error())
		return
	}

	result, err := a.core.Plan.Confirm(r.Context(), fromPlanDTO(req))
	if err != nil {
		if errors.Is(err, plan.ErrEmptyPlan) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// ========== DTO 映射 ==========

func toSkillDTO(row service.SkillProgressView) dto.SkillDTO {
	return dto.SkillDTO{
		ID:            row.Skill.ID,
		Name:          row.Skill.Name,
		TargetLevel:   row.Skill.TargetLevel,
		Priority:      row.Skill.Priority,
		WeightedHours: row.WeightedHours,
		Level:         row.Level,
		Progress:      row.Progress,
		HoursToNext:   row.HoursToNext,
	}
}

func toActivityDTO(row service.ActivityHoursView) dto.ActivityDTO {
	links := make([]dto.SkillLinkDTO, 0, len(row.Activity.Skills))
	for _, l := range row.Activity.Skills {
		links = append(links, dto.SkillLinkDTO{SkillID: l.SkillID, Weight: l.Weight})
	}
	return dto.ActivityDTO{
		ID:         row.Activity.ID,
		Name:       row.Activity.Name,
		Type:       row.Activity.Type,
		Status:     row.Activity.Status,
		Skills:     links,
		TotalHours: row.TotalHours,
	}
}

func fromLinkDTOs(in []dto.SkillLinkDTO) schema.SkillLinks {
	out := make(schema.SkillLinks, 0, len(in))
	for _, l := range in {
		out = append(out, schema.SkillLink{SkillID: l.SkillID, Weight: l.Weight})
	}
	return out
}

func toPlanDTO(p *plan.Plan) dto.PlanDTO {
	out := dto.PlanDTO{Empty: p.Empty()}
	for _, s := range p.Skills {
		out.Skills = append(out.Skills, dto.PlanSkillDTO{Name: s.Name, TargetLevel: s.TargetLevel, Priority: s.Priority})
	}
	for _, a := range p.Activities {
		out.Activities = append(out.Activities, dto.PlanActivityDTO{Name: a.Name, Type: a.Type, SkillNames: a.SkillNames})
	}
	return out
}

func fromPlanDTO(d dto.PlanDTO) plan.Plan {
	var p plan.Plan
	for _, s := range d.Skills {
		p.Skills = append(p.Skills, plan.Skill{Name: s.Name, TargetLevel: s.TargetLevel, Priority: s.Priority})
	}
	for _, a := range d.Activities {
		p.Activities = append(p.Activities, plan.Activity{Name: a.Name, Type: a.Type, SkillNames: a.SkillNames})
	}
	return p
}

// statusForNotFound 把“不存在”类错误映射成 404，其余按 400 处理
func statusForNotFound(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if strings.Contains(err.Error(), "不存在") {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
