package client

import (
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
)

// Session 当前登录状态，随本地存储持久化，重启后可恢复
type Session struct {
	User    *entity.User `json:"user"`
	Token   string       `json:"token"`
	Offline bool         `json:"offline"`
}

// SessionManager 会话管理器
// 内存持有当前会话，变更同步落盘；进程启动时从本地存储水合
type SessionManager struct {
	store   *LocalStore
	current *Session
}

// NewSessionManager 创建会话管理器并从本地存储恢复上次会话
func NewSessionManager(store *LocalStore) (*SessionManager, error) {
	saved, err := store.SavedSession()
	if err != nil {
		return nil, err
	}
	return &SessionManager{store: store, current: saved}, nil
}

// Current 当前会话，未登录返回nil
func (m *SessionManager) Current() *Session {
	return m.current
}

// CurrentUser 当前用户，未登录返回nil
func (m *SessionManager) CurrentUser() *entity.User {
	if m.current == nil {
		return nil
	}
	return m.current.User
}

// Hint 当前会话的请求凭证提示
func (m *SessionManager) Hint() SessionHint {
	if m.current == nil || m.current.User == nil {
		return SessionHint{}
	}
	return SessionHint{
		Token:    m.current.Token,
		Role:     m.current.User.Role,
		Username: m.current.User.Username,
	}
}

// Set 写入新会话并落盘
func (m *SessionManager) Set(sess *Session) error {
	m.current = sess
	return m.store.SaveSession(sess)
}

// Clear 清除会话，内存与落盘一并清除
func (m *SessionManager) Clear() error {
	m.current = nil
	return m.store.ClearSession()
}
