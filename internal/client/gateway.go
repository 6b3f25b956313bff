package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
)

// =============================================================================
// Gateway — 远端API客户端
// 每个实体操作一个类型化方法，统一走 doRequest；
// 非2xx一律返回错误，由上层Facade决定是否降级本地
// =============================================================================

// Gateway 远端网关
type Gateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewGateway 创建远端网关
func NewGateway(baseURL string) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SessionHint 请求附带的会话凭证与角色提示
type SessionHint struct {
	Token    string
	Role     string
	Username string
}

// LoginResponse 登录响应
type LoginResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

type successResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// doRequest 执行API请求
// body会被JSON序列化（nil则不发送），result为响应结构体指针
func (g *Gateway) doRequest(ctx context.Context, method, path string, hint SessionHint, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+"/api"+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if hint.Token != "" {
		req.Header.Set("Authorization", "Bearer "+hint.Token)
	}
	if hint.Role != "" {
		req.Header.Set("X-User-Role", hint.Role)
	}
	if hint.Username != "" {
		req.Header.Set("X-User-Name", hint.Username)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("api error [%d]: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api error [%d]: %s", resp.StatusCode, resp.Status)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Login 登录
func (g *Gateway) Login(ctx context.Context, username string) (*LoginResponse, error) {
	var result LoginResponse
	body := map[string]string{"username": username}
	if err := g.doRequest(ctx, http.MethodPost, "/login", SessionHint{}, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout 登出（尽力而为，失败由调用方忽略）
func (g *Gateway) Logout(ctx context.Context, hint SessionHint) error {
	return g.doRequest(ctx, http.MethodPost, "/logout", hint, nil, nil)
}

// FetchDashboard 拉取看板聚合数据
func (g *Gateway) FetchDashboard(ctx context.Context, hint SessionHint) (*entity.DashboardBundle, error) {
	var bundle entity.DashboardBundle
	if err := g.doRequest(ctx, http.MethodGet, "/dashboard", hint, nil, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// UploadMetrics 批量上传周度指标
func (g *Gateway) UploadMetrics(ctx context.Context, hint SessionHint, metrics []entity.WeeklyMetric) (int, error) {
	var result successResponse
	body := map[string]interface{}{"metrics": metrics}
	if err := g.doRequest(ctx, http.MethodPost, "/upload", hint, body, &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

// ListUsers 用户列表
func (g *Gateway) ListUsers(ctx context.Context, hint SessionHint) ([]entity.User, error) {
	var users []entity.User
	if err := g.doRequest(ctx, http.MethodGet, "/users", hint, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AddUser 新增用户
func (g *Gateway) AddUser(ctx context.Context, hint SessionHint, user entity.User) (*entity.User, error) {
	var saved entity.User
	if err := g.doRequest(ctx, http.MethodPost, "/users", hint, user, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteUser 删除用户
func (g *Gateway) DeleteUser(ctx context.Context, hint SessionHint, id string) error {
	return g.doRequest(ctx, http.MethodDelete, "/users/"+id, hint, nil, nil)
}

// AddProject 新增项目
func (g *Gateway) AddProject(ctx context.Context, hint SessionHint, project entity.Project) (*entity.Project, error) {
	var saved entity.Project
	if err := g.doRequest(ctx, http.MethodPost, "/projects", hint, project, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateProject 整条替换项目
func (g *Gateway) UpdateProject(ctx context.Context, hint SessionHint, project entity.Project) (*entity.Project, error) {
	var saved entity.Project
	if err := g.doRequest(ctx, http.MethodPut, "/projects/"+project.ID, hint, project, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteProject 删除项目
func (g *Gateway) DeleteProject(ctx context.Context, hint SessionHint, id string) error {
	return g.doRequest(ctx, http.MethodDelete, "/projects/"+id, hint, nil, nil)
}

// AddPM 新增项目经理档案
func (g *Gateway) AddPM(ctx context.Context, hint SessionHint, pm entity.PMProfile) (*entity.PMProfile, error) {
	var saved entity.PMProfile
	if err := g.doRequest(ctx, http.MethodPost, "/pms", hint, pm, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdatePM 整条替换档案
func (g *Gateway) UpdatePM(ctx context.Context, hint SessionHint, pm entity.PMProfile) (*entity.PMProfile, error) {
	var saved entity.PMProfile
	if err := g.doRequest(ctx, http.MethodPut, "/pms/"+pm.ID, hint, pm, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeletePM 删除档案
func (g *Gateway) DeletePM(ctx context.Context, hint SessionHint, id string) error {
	return g.doRequest(ctx, http.MethodDelete, "/pms/"+id, hint, nil, nil)
}

// UpdateConfig 整条替换全局配置
func (g *Gateway) UpdateConfig(ctx context.Context, hint SessionHint, cfg entity.SystemConfig) (*entity.SystemConfig, error) {
	var saved entity.SystemConfig
	if err := g.doRequest(ctx, http.MethodPut, "/config", hint, cfg, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
