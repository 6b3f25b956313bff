package client

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
)

// =============================================================================
// Facade — 弹性数据访问门面
// 网络优先：每次调用先走远端网关，失败则标记离线、等待降级延迟后
// 改走本地存储执行等价操作；任一远端调用成功即恢复在线标记
// =============================================================================

// DefaultFallbackDelay 降级等待默认时长
const DefaultFallbackDelay = 300 * time.Millisecond

// OfflineToken 离线会话占位令牌
const OfflineToken = "offline-token"

// Facade 数据访问门面
type Facade struct {
	gateway *Gateway
	local   *LocalStore
	session *SessionManager
	delay   time.Duration
	offline atomic.Bool
}

// NewFacade 创建门面，delay<=0时使用默认降级延迟
func NewFacade(gateway *Gateway, local *LocalStore, session *SessionManager, delay time.Duration) *Facade {
	if delay <= 0 {
		delay = DefaultFallbackDelay
	}
	return &Facade{
		gateway: gateway,
		local:   local,
		session: session,
		delay:   delay,
	}
}

// Offline 最近一次调用是否走了本地降级
func (f *Facade) Offline() bool {
	return f.offline.Load()
}

// Session 会话管理器
func (f *Facade) Session() *SessionManager {
	return f.session
}

func (f *Facade) markOnline() {
	f.offline.Store(false)
}

// markOffline 标记离线并等待降级延迟，避免远端瞬断时本地路径抢跑
func (f *Facade) markOffline(ctx context.Context) {
	f.offline.Store(true)
	select {
	case <-time.After(f.delay):
	case <-ctx.Done():
	}
}

// Login 登录
// 远端失败时降级为本地用户名查找；两条路径都未命中则返回nil且不触碰会话
func (f *Facade) Login(ctx context.Context, username string) (*entity.User, error) {
	resp, err := f.gateway.Login(ctx, username)
	if err == nil {
		f.markOnline()
		if err := f.session.Set(&Session{User: resp.User, Token: resp.Token}); err != nil {
			return nil, err
		}
		return resp.User, nil
	}

	f.markOffline(ctx)
	user, err := f.local.FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := f.session.Set(&Session{User: user, Token: OfflineToken, Offline: true}); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout 登出，远端调用尽力而为，本地会话无条件清除
func (f *Facade) Logout(ctx context.Context) error {
	if err := f.gateway.Logout(ctx, f.session.Hint()); err != nil {
		f.markOffline(ctx)
	} else {
		f.markOnline()
	}
	return f.session.Clear()
}

// FetchDashboard 拉取看板聚合数据
func (f *Facade) FetchDashboard(ctx context.Context) (*entity.DashboardBundle, error) {
	bundle, err := f.gateway.FetchDashboard(ctx, f.session.Hint())
	if err == nil {
		f.markOnline()
		return bundle, nil
	}

	f.markOffline(ctx)
	role, codes := f.scope()
	return f.local.Bundle(role, codes)
}

// scope 当前会话的角色与授权项目编码
func (f *Facade) scope() (string, []string) {
	user := f.session.CurrentUser()
	if user == nil {
		return entity.RoleDirector, nil
	}
	return user.Role, user.AssignedProjectCodes
}

// UploadMetrics 批量上传周度指标
func (f *Facade) UploadMetrics(ctx context.Context, metrics []entity.WeeklyMetric) (int, error) {
	count, err := f.gateway.UploadMetrics(ctx, f.session.Hint(), metrics)
	if err == nil {
		f.markOnline()
		return count, nil
	}

	f.markOffline(ctx)
	if err := f.local.SaveMetrics(metrics); err != nil {
		return 0, err
	}
	return len(metrics), nil
}

// ListUsers 用户列表
func (f *Facade) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := f.gateway.ListUsers(ctx, f.session.Hint())
	if err == nil {
		f.markOnline()
		return users, nil
	}

	f.markOffline(ctx)
	return f.local.Users()
}

// AddUser 新增用户
func (f *Facade) AddUser(ctx context.Context, user entity.User) (*entity.User, error) {
	saved, err := f.gateway.AddUser(ctx, f.session.Hint(), user)
	if err == nil {
		f.markOnline()
		return saved, nil
	}

	f.markOffline(ctx)
	if err := f.local.AddUser(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser 删除用户
func (f *Facade) DeleteUser(ctx context.Context, id string) error {
	if err := f.gateway.DeleteUser(ctx, f.session.Hint(), id); err == nil {
		f.markOnline()
		return nil
	}

	f.markOffline(ctx)
	return f.local.DeleteUser(id)
}

// AddProject 新增项目
func (f *Facade) AddProject(ctx context.Context, project entity.Project) (*entity.Project, error) {
	saved, err := f.gateway.AddProject(ctx, f.session.Hint(), project)
	if err == nil {
		f.markOnline()
		return saved, nil
	}

	f.markOffline(ctx)
	if err := f.local.AddProject(project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject 整条替换项目
func (f *Facade) UpdateProject(ctx context.Context, project entity.Project) (*entity.Project, error) {
	saved, err := f.gateway.UpdateProject(ctx, f.session.Hint(), project)
	if err == nil {
		f.markOnline()
		return saved, nil
	}

	f.markOffline(ctx)
	if err := f.local.UpdateProject(project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject 删除项目
func (f *Facade) DeleteProject(ctx context.Context, id string) error {
	if err := f.gateway.DeleteProject(ctx, f.session.Hint(), id); err == nil {
		f.markOnline()
		return nil
	}

	f.markOffline(ctx)
	return f.local.DeleteProject(id)
}

// AddPM 新增项目经理档案
func (f *Facade) AddPM(ctx context.Context, pm entity.PMProfile) (*entity.PMProfile, error) {
	saved, err := f.gateway.AddPM(ctx, f.session.Hint(), pm)
	if err == nil {
		f.markOnline()
		return saved, nil
	}

	f.markOffline(ctx)
	if err := f.local.AddPM(pm); err != nil {
		return nil, err
	}
	return &pm, nil
}

// UpdatePM 整条替换档案
func (f *Facade) UpdatePM(ctx context.Context, pm entity.PMProfile) (*entity.PMProfile, error) {
	saved, err := f.gateway.UpdatePM(ctx, f.session.Hint(), pm)
	if err == nil {
		f.markOnline()
		return saved, nil
	}

	f.markOffline(ctx)
	if err := f.local.UpdatePM(pm); err != nil {
		return nil, err
	}
	return &pm, nil
}

// DeletePM 删除档案
func (f *Facade) DeletePM(ctx context.Context, id string) error {
	if err := f.gateway.DeletePM(ctx, f.session.Hint(), id); err == nil {
		f.markOnline()
		return nil
	}

	f.markOffline(ctx)
	return f.local.DeletePM(id)
}

// UpdateConfig 整条替换全局配置
func (f *Facade) UpdateConfig(ctx context.Context, cfg entity.SystemConfig) (*entity.SystemConfig, error) {
	saved, err := f.gateway.UpdateConfig(ctx, f.session.Hint(), cfg)
	if err == nil {
		f.markOnline()
		return saved, nil
	}

	f.markOffline(ctx)
	if err := f.local.SaveConfig(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
