package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/client"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/config"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/risk"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/timerange"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/report"
)

var (
	cfg    *config.Config
	store  *client.LocalStore
	facade *client.Facade
)

// rootCmd 命令行入口
// 所有数据操作都经由门面：远端不可达时自动降级本地存储
var rootCmd = &cobra.Command{
	Use:           "directorctl",
	Short:         "BPO 运营看板命令行工具",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dataDir := cfg.Client.DataDir
		if dataDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home dir: %w", err)
			}
			dataDir = filepath.Join(home, ".director-os")
		}

		store, err = client.OpenLocalStore(dataDir)
		if err != nil {
			return err
		}

		session, err := client.NewSessionManager(store)
		if err != nil {
			return err
		}
		facade = client.NewFacade(client.NewGateway(cfg.Client.BaseURL), store, session, cfg.Client.FallbackDelay)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "登录（演示账号: director / pm）",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := facade.Login(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("用户不存在: %s", args[0])
		}
		fmt.Printf("已登录: %s (%s)%s\n", user.Name, user.Role, offlineSuffix())
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "登出并清除本地会话",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := facade.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("已登出")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "显示当前会话",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := facade.Session().Current()
		if sess == nil || sess.User == nil {
			fmt.Println("未登录")
			return nil
		}
		mode := "在线"
		if sess.Offline {
			mode = "离线"
		}
		fmt.Printf("%s (%s) [%s会话]\n", sess.User.Name, sess.User.Role, mode)
		return nil
	},
}

var (
	dashboardRange string
	dashboardFrom  string
	dashboardTo    string
)

// resolveRange 把 --range/--from/--to 解析为时间范围，nil 表示不过滤
func resolveRange() (*timerange.DateRange, error) {
	if dashboardFrom != "" || dashboardTo != "" {
		if dashboardFrom == "" || dashboardTo == "" {
			return nil, fmt.Errorf("--from 与 --to 需同时提供 (YYYY-MM-DD)")
		}
		dr := timerange.NewCustom(dashboardFrom, dashboardTo)
		return &dr, nil
	}
	if dashboardRange == timerange.OptionAll {
		return nil, nil
	}
	dr, err := timerange.Resolve(dashboardRange, time.Now())
	if err != nil {
		return nil, err
	}
	return &dr, nil
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "拉取看板数据并输出风险概览",
	RunE: func(cmd *cobra.Command, args []string) error {
		requireLogin()

		bundle, err := facade.FetchDashboard(cmd.Context())
		if err != nil {
			return err
		}

		dr, err := resolveRange()
		if err != nil {
			return err
		}
		metrics := bundle.Metrics
		if dr != nil {
			filtered := metrics[:0]
			for _, m := range metrics {
				if dr.Contains(m.ReportWeek) {
					filtered = append(filtered, m)
				}
			}
			metrics = filtered
		}

		byCode := make(map[string]entity.Project, len(bundle.Projects))
		for _, p := range bundle.Projects {
			byCode[p.ProjectCode] = p
		}

		fmt.Printf("项目 %d 个, 指标 %d 条, 风险 %d 项%s\n\n",
			len(bundle.Projects), len(metrics),
			risk.CountAtRisk(metrics, bundle.Projects, bundle.Config),
			offlineSuffix(),
		)
		for _, m := range metrics {
			p, ok := byCode[m.ProjectCode]
			if !ok {
				continue
			}
			a := risk.Evaluate(m, p, bundle.Config)
			flag := "  "
			if a.IsRisk {
				flag = "⚠ "
			}
			fmt.Printf("%s%-16s %s  营收 %.0f/%.0f  SLA %.1f%%  流失 %.1f%%\n",
				flag, m.ProjectCode, m.ReportWeek,
				m.RevenueActual, m.RevenueTarget,
				m.SLAAchieved*100, m.TurnoverRate*100,
			)
		}
		return nil
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <metrics.json>",
	Short: "批量上传周度指标（JSON 数组）",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requireLogin()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var metrics []entity.WeeklyMetric
		if err := json.Unmarshal(data, &metrics); err != nil {
			return fmt.Errorf("parse metrics file: %w", err)
		}

		count, err := facade.UploadMetrics(cmd.Context(), metrics)
		if err != nil {
			return err
		}
		fmt.Printf("已提交 %d 条指标%s\n", count, offlineSuffix())
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "生成 AI 周报（项目名称脱敏后才送出）",
	RunE: func(cmd *cobra.Command, args []string) error {
		requireLogin()

		bundle, err := facade.FetchDashboard(cmd.Context())
		if err != nil {
			return err
		}

		gen := report.NewGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.Temperature)
		text, err := gen.Generate(cmd.Context(), bundle.Projects, bundle.Metrics)
		if err != nil {
			return err
		}
		fmt.Println(report.Unmask(text, bundle.Projects))
		return nil
	},
}

func requireLogin() {
	if facade.Session().CurrentUser() == nil {
		fmt.Fprintln(os.Stderr, "提示: 未登录, 请先执行 directorctl login <username>")
		os.Exit(1)
	}
}

func offlineSuffix() string {
	if facade.Offline() {
		return " [离线模式]"
	}
	return ""
}

func main() {
	dashboardCmd.Flags().StringVar(&dashboardRange, "range", timerange.OptionAll,
		"时间范围: WEEK/MONTH/QUARTER/YEAR/ALL")
	dashboardCmd.Flags().StringVar(&dashboardFrom, "from", "", "自定义起始日期 (YYYY-MM-DD, 与 --to 连用)")
	dashboardCmd.Flags().StringVar(&dashboardTo, "to", "", "自定义结束日期 (YYYY-MM-DD, 与 --from 连用)")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, dashboardCmd, uploadCmd, reportCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("directorctl: %v", err)
	}
}
