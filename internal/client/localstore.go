package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/seed"
)

// =============================================================================
// LocalStore — 本地持久化存储（离线降级数据源）
// 每个集合一个key，JSON整体序列化；首次打开时写入种子数据
// =============================================================================

const (
	keyProjects = "DIRECTOR_OS_PROJECTS"
	keyMetrics  = "DIRECTOR_OS_METRICS"
	keyPMs      = "DIRECTOR_OS_PMS"
	keyTasks    = "DIRECTOR_OS_TASKS"
	keyUsers    = "DIRECTOR_OS_USERS"
	keyConfig   = "DIRECTOR_OS_CONFIG"
	keySession  = "DIRECTOR_OS_SESSION"
)

// LocalStore 本地存储
type LocalStore struct {
	db *badger.DB
}

// OpenLocalStore 打开指定目录的本地存储并确保种子数据就绪
func OpenLocalStore(dir string) (*LocalStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	return openWithOptions(opts)
}

// OpenInMemory 打开纯内存存储，测试用
func OpenInMemory() (*LocalStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	return openWithOptions(opts)
}

func openWithOptions(opts badger.Options) (*LocalStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	s := &LocalStore{db: db}
	if err := s.ensureSeeded(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close 关闭存储
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// ensureSeeded 首次打开时初始化种子数据，以项目集合是否存在为判据
func (s *LocalStore) ensureSeeded() error {
	seeded, err := s.hasKey(keyProjects)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}
	if err := putValue(s.db, keyProjects, seed.Projects()); err != nil {
		return err
	}
	if err := putValue(s.db, keyMetrics, seed.Metrics()); err != nil {
		return err
	}
	if err := putValue(s.db, keyPMs, seed.PMs()); err != nil {
		return err
	}
	if err := putValue(s.db, keyTasks, seed.Tasks()); err != nil {
		return err
	}
	if err := putValue(s.db, keyUsers, seed.Users()); err != nil {
		return err
	}
	return putValue(s.db, keyConfig, seed.Config())
}

func (s *LocalStore) hasKey(key string) (bool, error) {
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("local store: %w", err)
	}
	return found, nil
}

// getValue 读取并反序列化集合，key缺失时返回默认值
func getValue[T any](db *badger.DB, key string, fallback T) (T, error) {
	result := fallback
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &result)
		})
	})
	if err != nil {
		return fallback, fmt.Errorf("local store read %s: %w", key, err)
	}
	return result, nil
}

func putValue[T any](db *badger.DB, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("local store marshal %s: %w", key, err)
	}
	if err := db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	}); err != nil {
		return fmt.Errorf("local store write %s: %w", key, err)
	}
	return nil
}

func deleteKey(db *badger.DB, key string) error {
	if err := db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	}); err != nil {
		return fmt.Errorf("local store delete %s: %w", key, err)
	}
	return nil
}

// upsertByID 按ID整条替换，不存在则追加
func upsertByID[T any](items []T, item T, idOf func(T) string) []T {
	id := idOf(item)
	for i := range items {
		if idOf(items[i]) == id {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	result := items[:0]
	for _, it := range items {
		if idOf(it) != id {
			result = append(result, it)
		}
	}
	return result
}

// Projects 项目列表
func (s *LocalStore) Projects() ([]entity.Project, error) {
	return getValue(s.db, keyProjects, seed.Projects())
}

// AddProject 新增项目（同ID重复提交视为替换）
func (s *LocalStore) AddProject(project entity.Project) error {
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	projects = upsertByID(projects, project, func(p entity.Project) string { return p.ID })
	return putValue(s.db, keyProjects, projects)
}

// UpdateProject 按ID整条替换，不存在则不做任何事
func (s *LocalStore) UpdateProject(project entity.Project) error {
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = project
			return putValue(s.db, keyProjects, projects)
		}
	}
	return nil
}

// DeleteProject 按ID删除
func (s *LocalStore) DeleteProject(id string) error {
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	projects = removeByID(projects, id, func(p entity.Project) string { return p.ID })
	return putValue(s.db, keyProjects, projects)
}

// Metrics 周度指标列表
func (s *LocalStore) Metrics() ([]entity.WeeklyMetric, error) {
	return getValue(s.db, keyMetrics, seed.Metrics())
}

// SaveMetrics 批量保存周度指标
// 替换粒度为项目编码：批次覆盖到的项目，其全部既有记录被移除后并入批次
func (s *LocalStore) SaveMetrics(batch []entity.WeeklyMetric) error {
	existing, err := s.Metrics()
	if err != nil {
		return err
	}
	touched := make(map[string]bool, len(batch))
	for _, m := range batch {
		touched[m.ProjectCode] = true
	}
	kept := existing[:0]
	for _, m := range existing {
		if !touched[m.ProjectCode] {
			kept = append(kept, m)
		}
	}
	kept = append(kept, batch...)
	return putValue(s.db, keyMetrics, kept)
}

// PMs 项目经理档案列表
func (s *LocalStore) PMs() ([]entity.PMProfile, error) {
	return getValue(s.db, keyPMs, seed.PMs())
}

// AddPM 新增档案（同ID重复提交视为替换）
func (s *LocalStore) AddPM(pm entity.PMProfile) error {
	pms, err := s.PMs()
	if err != nil {
		return err
	}
	pms = upsertByID(pms, pm, func(p entity.PMProfile) string { return p.ID })
	return putValue(s.db, keyPMs, pms)
}

// UpdatePM 按ID整条替换，不存在则不做任何事
func (s *LocalStore) UpdatePM(pm entity.PMProfile) error {
	pms, err := s.PMs()
	if err != nil {
		return err
	}
	for i := range pms {
		if pms[i].ID == pm.ID {
			pms[i] = pm
			return putValue(s.db, keyPMs, pms)
		}
	}
	return nil
}

// DeletePM 按ID删除
func (s *LocalStore) DeletePM(id string) error {
	pms, err := s.PMs()
	if err != nil {
		return err
	}
	pms = removeByID(pms, id, func(p entity.PMProfile) string { return p.ID })
	return putValue(s.db, keyPMs, pms)
}

// Tasks 转型任务列表
func (s *LocalStore) Tasks() ([]entity.TransformationTask, error) {
	return getValue(s.db, keyTasks, seed.Tasks())
}

// Users 用户列表
func (s *LocalStore) Users() ([]entity.User, error) {
	return getValue(s.db, keyUsers, seed.Users())
}

// AddUser 新增用户（同ID重复提交视为替换）
func (s *LocalStore) AddUser(user entity.User) error {
	users, err := s.Users()
	if err != nil {
		return err
	}
	users = upsertByID(users, user, func(u entity.User) string { return u.ID })
	return putValue(s.db, keyUsers, users)
}

// DeleteUser 按ID删除
func (s *LocalStore) DeleteUser(id string) error {
	users, err := s.Users()
	if err != nil {
		return err
	}
	users = removeByID(users, id, func(u entity.User) string { return u.ID })
	return putValue(s.db, keyUsers, users)
}

// Config 全局配置
func (s *LocalStore) Config() (entity.SystemConfig, error) {
	return getValue(s.db, keyConfig, seed.Config())
}

// SaveConfig 整条替换全局配置
func (s *LocalStore) SaveConfig(cfg entity.SystemConfig) error {
	return putValue(s.db, keyConfig, cfg)
}

// FindUserByUsername 按用户名查找用户，未找到返回nil
func (s *LocalStore) FindUserByUsername(username string) (*entity.User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Bundle 组装本地看板聚合数据，PM角色按授权项目编码过滤
func (s *LocalStore) Bundle(role string, assignedCodes []string) (*entity.DashboardBundle, error) {
	projects, err := s.Projects()
	if err != nil {
		return nil, err
	}
	metrics, err := s.Metrics()
	if err != nil {
		return nil, err
	}
	pms, err := s.PMs()
	if err != nil {
		return nil, err
	}
	tasks, err := s.Tasks()
	if err != nil {
		return nil, err
	}
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}

	if role == entity.RolePM {
		allowed := make(map[string]bool, len(assignedCodes))
		for _, c := range assignedCodes {
			allowed[c] = true
		}
		scopedProjects := make([]entity.Project, 0, len(projects))
		for _, p := range projects {
			if allowed[p.ProjectCode] {
				scopedProjects = append(scopedProjects, p)
			}
		}
		scopedMetrics := make([]entity.WeeklyMetric, 0, len(metrics))
		for _, m := range metrics {
			if allowed[m.ProjectCode] {
				scopedMetrics = append(scopedMetrics, m)
			}
		}
		projects = scopedProjects
		metrics = scopedMetrics
	}

	return &entity.DashboardBundle{
		Projects: projects,
		Metrics:  metrics,
		PMs:      pms,
		Tasks:    tasks,
		Config:   cfg,
	}, nil
}

// SavedSession 读取持久化会话，未登录返回nil
func (s *LocalStore) SavedSession() (*Session, error) {
	var zero *Session
	return getValue(s.db, keySession, zero)
}

// SaveSession 持久化会话
func (s *LocalStore) SaveSession(sess *Session) error {
	return putValue(s.db, keySession, sess)
}

// ClearSession 清除持久化会话
func (s *LocalStore) ClearSession() error {
	return deleteKey(s.db, keySession)
}
