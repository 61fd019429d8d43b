package user

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/store"
)

// Repo users 集合与 session 槽位的仓储。
// 与领域集合一样采用"读全量 -> 改 -> 整体写回"的模型。
type Repo struct {
	st *store.Store
}

func NewRepo(st *store.Store) *Repo {
	return &Repo{st: st}
}

// List 返回全部账号，保持插入顺序；users key 缺失时按空集合处理。
func (r *Repo) List(ctx context.Context) ([]User, error) {
	if r == nil || r.st == nil {
		return nil, fmt.Errorf("repo store is nil")
	}
	raw, err := r.st.Read(ctx, store.KeyUsers)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []User{}, nil
	}
	var users []User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// FindByEmail 按 email 查找账号；缺失时返回 nil（不是错误）。
func (r *Repo) FindByEmail(ctx context.Context, email string) (*User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// Append 追加一个新账号并整体写回。
func (r *Repo) Append(ctx context.Context, u *User) error {
	if u == nil {
		return fmt.Errorf("user is nil")
	}
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, *u)
	return r.saveAll(ctx, users)
}

func (r *Repo) saveAll(ctx context.Context, users []User) error {
	if r == nil || r.st == nil {
		return fmt.Errorf("repo store is nil")
	}
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	return r.st.Write(ctx, store.KeyUsers, raw)
}

// CurrentSession 同步读取会话快照；无会话时返回 nil。
func (r *Repo) CurrentSession(ctx context.Context) (*User, error) {
	if r == nil || r.st == nil {
		return nil, fmt.Errorf("repo store is nil")
	}
	raw, err := r.st.Read(ctx, store.KeySession)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &u, nil
}

// SaveSession 把用户快照写入会话槽位（整体替换）。
func (r *Repo) SaveSession(ctx context.Context, u *User) error {
	if r == nil || r.st == nil {
		return fmt.Errorf("repo store is nil")
	}
	if u == nil {
		return fmt.Errorf("user is nil")
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return r.st.Write(ctx, store.KeySession, raw)
}

// ClearSession 清除会话槽位；无会话时静默成功。
func (r *Repo) ClearSession(ctx context.Context) error {
	if r == nil || r.st == nil {
		return fmt.Errorf("repo store is nil")
	}
	return r.st.Delete(ctx, store.KeySession)
}
