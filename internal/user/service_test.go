package user

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/config"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/store"
)

func newTestService(t *testing.T) (*Service, *Repo) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := EnsureSeeds(context.Background(), st); err != nil {
		t.Fatalf("EnsureSeeds: %v", err)
	}
	repo := NewRepo(st)
	return NewService(repo, config.AuthConfig{}, nil), repo
}

func TestSeedAdminLogin(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin@drive.com", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.User.Role != RoleAdmin {
		t.Fatalf("expected role admin, got %s", res.User.Role)
	}

	// 会话槽位保存的正是该账号的快照
	sess, err := repo.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("CurrentSession: %v", err)
	}
	if sess == nil || sess.ID != res.User.ID || sess.Email != "admin@drive.com" {
		t.Fatalf("session mismatch: %+v", sess)
	}
}

func TestSeedsCreatedOncePerRole(t *testing.T) {
	_, repo := newTestService(t)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 seed users, got %d", len(users))
	}
	roles := map[Role]int{}
	for _, u := range users {
		roles[u.Role]++
	}
	for _, r := range []Role{RoleAdmin, RoleInstructor, RoleStudent} {
		if roles[r] != 1 {
			t.Fatalf("expected one %s seed, got %d", r, roles[r])
		}
	}
}

func TestLoginBadCredentialsKeepsSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "student@drive.com", "learn123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, err := svc.Login(ctx, "student@drive.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	_, err = svc.Login(ctx, "nobody@drive.com", "learn123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	// 失败的登录不得动已有会话
	cur, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cur == nil || cur.Email != "student@drive.com" {
		t.Fatalf("prior session lost: %+v", cur)
	}
}

func TestSignupDuplicateEmailDoesNotMutateUsers(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	before, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	_, err = svc.Signup(ctx, SignupInput{
		Name:     "Impostor",
		Email:    "admin@drive.com",
		Password: "whatever",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	after, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("users collection mutated on failed signup: %d -> %d", len(before), len(after))
	}
}

func TestSignupAppendsSetsSessionAndDefaultsRole(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	res, err := svc.Signup(ctx, SignupInput{
		Name:     "Nora New",
		Email:    "nora@drive.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if res.User.Role != RoleStudent {
		t.Fatalf("expected default role student, got %s", res.User.Role)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("expected exactly one appended user, got %d total", len(users))
	}
	// 新 id 在全体账号中唯一
	count := 0
	for _, u := range users {
		if u.ID == res.User.ID {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("new id not unique: seen %d times", count)
	}

	sess, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if sess == nil || sess.ID != res.User.ID {
		t.Fatalf("session not set to new user: %+v", sess)
	}

	// 新账号可以直接登录
	if _, err := svc.Login(ctx, "nora@drive.com", "secret1"); err != nil {
		t.Fatalf("Login as new user: %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "instructor@drive.com", "teach123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	cur, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cur != nil {
		t.Fatalf("expected anonymous after logout, got %+v", cur)
	}

	// 再次登出：静默成功
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout twice: %v", err)
	}
}

func TestForgotAlwaysAcks(t *testing.T) {
	svc, _ := newTestService(t)

	ack, err := svc.Forgot(context.Background(), "ghost@drive.com")
	if err != nil {
		t.Fatalf("Forgot: %v", err)
	}
	if !ack.Sent {
		t.Fatalf("expected sent ack")
	}
}

func TestLoginIssuesTokenWhenEnabled(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer st.Close()
	ctx := context.Background()
	if err := EnsureSeeds(ctx, st); err != nil {
		t.Fatalf("EnsureSeeds: %v", err)
	}

	svc := NewService(NewRepo(st), config.AuthConfig{
		Enabled:   true,
		JWTSecret: "test-secret",
		Issuer:    "smartdriveschool",
	}, nil)

	res, err := svc.Login(ctx, "admin@drive.com", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken == "" {
		t.Fatalf("expected access token when auth enabled")
	}
}
