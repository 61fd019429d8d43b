package user

// Role 用户角色（单角色模型）。
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

// valid 角色是否为三种合法取值之一。
func (r Role) valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

// User users 集合中的账号记录，同时作为 session key 的会话快照。
// 不落盘明文口令，只存盐 + 迭代哈希。
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"` // 全局唯一
	Role         Role   `json:"role"`
	PasswordHash string `json:"passwordHash"`
	PasswordSalt string `json:"passwordSalt"`
}
