package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/store"
	"github.com/google/uuid"
)

// 首次运行的三个内置账号（每种角色一个），凭据固定。
var seedAccounts = []struct {
	name     string
	email    string
	password string
	role     Role
}{
	{"Alice Admin", "admin@drive.com", "admin123", RoleAdmin},
	{"Ian Instructor", "instructor@drive.com", "teach123", RoleInstructor},
	{"Sam Student", "student@drive.com", "learn123", RoleStudent},
}

// EnsureSeeds 显式初始化 users 集合：key 缺失时写入三个种子账号，
// 已存在则不做任何改动。
func EnsureSeeds(ctx context.Context, st *store.Store) error {
	if st == nil {
		return fmt.Errorf("store is nil")
	}
	cur, err := st.Read(ctx, store.KeyUsers)
	if err != nil {
		return err
	}
	if cur != nil {
		return nil
	}

	users := make([]User, 0, len(seedAccounts))
	for _, a := range seedAccounts {
		salt, err := GenerateSaltHex()
		if err != nil {
			return err
		}
		hash, err := HashPassword(a.password, salt)
		if err != nil {
			return err
		}
		users = append(users, User{
			ID:           uuid.NewString(),
			Name:         a.name,
			Email:        a.email,
			Role:         a.role,
			PasswordHash: hash,
			PasswordSalt: salt,
		})
	}

	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode seed users: %w", err)
	}
	return st.Write(ctx, store.KeyUsers, raw)
}
