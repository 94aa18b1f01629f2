package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/cimoun/SkillForge/internal/ai"
	"github.com/cimoun/SkillForge/internal/eventbus"
	"github.com/cimoun/SkillForge/internal/pkg/config"
	"github.com/cimoun/SkillForge/internal/repository"
	"github.com/cimoun/SkillForge/internal/service"
)

// Core 应用核心：配置、存储、事件总线和各业务服务的装配结果
type Core struct {
	Cfg *config.Config
	DB  *repository.Database
	Hub *eventbus.Hub

	SkillRepo    *repository.SkillRepository
	ActivityRepo *repository.ActivityRepository
	TimeLogRepo  *repository.TimeLogRepository

	Skills     *service.SkillService
	Activities *service.ActivityService
	TimeLogs   *service.TimeLogService
	Progress   *service.ProgressService
	Plan       *service.PlanService

	AIClient *ai.Client
}

// NewCore 按配置装配全部组件
func NewCore(cfgPath string) (*Core, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	config.SetupLogger(cfg.App.LogLevel)

	db, err := repository.NewDatabase(cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}
	if db.SafeMode {
		slog.Warn("数据库处于安全模式，写操作可能失败", "error", db.MigrationError)
	}

	hub := eventbus.NewHub()

	skillRepo := repository.NewSkillRepository(db.DB)
	activityRepo := repository.NewActivityRepository(db.DB)
	timeLogRepo := repository.NewTimeLogRepository(db.DB)

	var aiClient *ai.Client
	ds := cfg.AI.DeepSeek
	if ds.APIKey != "" {
		aiClient = ai.NewClient(&ai.Config{
			APIKey:  ds.APIKey,
			BaseURL: ds.BaseURL,
			Model:   ds.Model,
		})
	}
	generator := ai.NewPlanGenerator(aiClient, ds.MaxRetries)

	return &Core{
		Cfg:          cfg,
		DB:           db,
		Hub:          hub,
		SkillRepo:    skillRepo,
		ActivityRepo: activityRepo,
		TimeLogRepo:  timeLogRepo,
		Skills:       service.NewSkillService(skillRepo, activityRepo, hub),
		Activities:   service.NewActivityService(activityRepo, timeLogRepo, hub),
		TimeLogs:     service.NewTimeLogService(timeLogRepo, activityRepo, hub),
		Progress:     service.NewProgressService(skillRepo, activityRepo, timeLogRepo),
		Plan:         service.NewPlanService(generator, skillRepo, activityRepo, hub),
		AIClient:     aiClient,
	}, nil
}

// Close 释放资源
func (c *Core) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
