package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cimoun/SkillForge/internal/ai"
	"github.com/cimoun/SkillForge/internal/eventbus"
	"github.com/cimoun/SkillForge/internal/pkg/buildinfo"
	"github.com/cimoun/SkillForge/internal/pkg/config"
	"github.com/cimoun/SkillForge/internal/repository"
	"github.com/cimoun/SkillForge/internal/service"
)

var (
	cfgFile string
	cfg     *config.Config
	db      *repository.Database
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skillforge",
		Short: "SkillForge - 个人技能投入追踪",
		Long:  `SkillForge 在本地记录学习活动的时间投入，按权重折算到技能，给出等级和目标进度。`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				slog.Error("加载配置失败", "error", err)
				os.Exit(1)
			}
			config.SetupLogger(cfg.App.LogLevel)

			db, err = repository.NewDatabase(cfg.Storage.DBPath)
			if err != nil {
				slog.Error("初始化数据库失败", "error", err)
				os.Exit(1)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if db != nil {
				db.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径")

	rootCmd.AddCommand(skillsCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(logCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newProgressService() *service.ProgressService {
	return service.NewProgressService(
		repository.NewSkillRepository(db.DB),
		repository.NewActivityRepository(db.DB),
		repository.NewTimeLogRepository(db.DB),
	)
}

// skillsCmd 技能清单与等级
func skillsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "列出技能及当前等级",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			ov, err := newProgressService().BuildOverview(ctx)
			if err != nil {
				fmt.Printf("❌ 读取失败: %v\n", err)
				os.Exit(1)
			}
			if len(ov.Skills) == 0 {
				fmt.Println("还没有技能，先用 plan 命令生成一个启动计划吧")
				return
			}

			fmt.Println("🎯 技能")
			fmt.Println("═══════════════════════════════════════")
			for _, row := range ov.Skills {
				bar := strings.Repeat("█", row.Level) + strings.Repeat("░", 5-row.Level)
				fmt.Printf("  %-20s L%d/%d %s %.1fh (进度 %.0f%%)\n",
					row.Skill.Name, row.Level, row.Skill.TargetLevel, bar,
					row.WeightedHours, row.Progress)
			}
		},
	}
}

// reportCmd 投入汇总
func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "输出投入汇总报告",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			ov, err := newProgressService().BuildOverview(ctx)
			if err != nil {
				fmt.Printf("❌ 读取失败: %v\n", err)
				os.Exit(1)
			}

			fmt.Println("📊 投入汇总")
			fmt.Println("═══════════════════════════════════════")
			fmt.Printf("  总投入: %.1f 小时\n", ov.TotalHours)
			fmt.Printf("  技能数: %d  活动数: %d\n\n", len(ov.Skills), len(ov.Activities))

			for _, row := range ov.Activities {
				fmt.Printf("  • %-24s [%s/%s] %.1fh\n",
					row.Activity.Name, row.Activity.Type, row.Activity.Status, row.TotalHours)
			}
			for _, row := range ov.Skills {
				if row.HoursToNext > 0 {
					fmt.Printf("  ↗ %s 距下一级还差 %.1fh\n", row.Skill.Name, row.HoursToNext)
				}
			}
		},
	}
}

// logCmd 记一笔时间
func logCmd() *cobra.Command {
	var date string
	var hours float64

	cmd := &cobra.Command{
		Use:   "log <activity_id>",
		Short: "给活动记录投入时间",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			var activityID int64
			if _, err := fmt.Sscanf(args[0], "%d", &activityID); err != nil {
				fmt.Printf("❌ 活动 id 不合法: %s\n", args[0])
				os.Exit(1)
			}

			hub := eventbus.NewHub()
			activityRepo := repository.NewActivityRepository(db.DB)
			timeLogRepo := repository.NewTimeLogRepository(db.DB)
			svc := service.NewTimeLogService(timeLogRepo, activityRepo, hub)

			lg, err := svc.Log(ctx, activityID, date, hours)
			if err != nil {
				fmt.Printf("❌ 记录失败: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("✅ 已记录 %s %.1fh\n", lg.Date, lg.Hours)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "日期 (YYYY-MM-DD)，默认今天")
	cmd.Flags().Float64Var(&hours, "hours", 1, "小时数")

	return cmd
}

// planCmd 生成启动计划草稿
func planCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "plan <目标描述>",
		Short: "根据目标生成启动计划草稿",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			goal := strings.Join(args, " ")

			if cfg.AI.DeepSeek.APIKey == "" {
				fmt.Println("⚠️  DeepSeek API Key 未配置")
				fmt.Println("   请设置环境变量: DEEPSEEK_API_KEY")
				fmt.Println("   或在 config.yaml 中配置")
				os.Exit(1)
			}

			client := ai.NewClient(&ai.Config{
				APIKey:  cfg.AI.DeepSeek.APIKey,
				BaseURL: cfg.AI.DeepSeek.BaseURL,
				Model:   cfg.AI.DeepSeek.Model,
			})
			generator := ai.NewPlanGenerator(client, cfg.AI.DeepSeek.MaxRetries)

			hub := eventbus.NewHub()
			skillRepo := repository.NewSkillRepository(db.DB)
			activityRepo := repository.NewActivityRepository(db.DB)
			svc := service.NewPlanService(generator, skillRepo, activityRepo, hub)

			fmt.Println("🤖 正在生成计划...")
			draft, err := svc.Generate(ctx, goal)
			if err != nil {
				fmt.Printf("❌ 生成失败: %v\n", err)
				os.Exit(1)
			}
			if draft.Empty() {
				fmt.Println("⚠️  生成结果为空，换个说法再试一次")
				return
			}

			fmt.Println("\n📋 计划草稿")
			fmt.Println("═══════════════════════════════════════")
			fmt.Println("技能:")
			for _, s := range draft.Skills {
				fmt.Printf("  • %s (目标 L%d, 优先级 %d)\n", s.Name, s.TargetLevel, s.Priority)
			}
			fmt.Println("活动:")
			for _, a := range draft.Activities {
				fmt.Printf("  • %s [%s] → %s\n", a.Name, a.Type, strings.Join(a.SkillNames, ", "))
			}

			if !confirm {
				fmt.Println("\n加 --confirm 直接入库，或在 Web 界面里编辑后确认")
				return
			}

			result, err := svc.Confirm(ctx, *draft)
			if err != nil {
				fmt.Printf("❌ 入库失败: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("\n✅ 已入库: %d 个技能, %d 个活动\n", len(result.Skills), len(result.Activities))
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "草稿直接确认入库")

	return cmd
}

// versionCmd 版本信息
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "打印版本信息",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("SkillForge %s (%s)\n", buildinfo.Version, buildinfo.Commit)
		},
	}
}
