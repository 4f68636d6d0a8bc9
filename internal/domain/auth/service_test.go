package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/capturemoments/capture-api/internal/domain/user"
	"github.com/capturemoments/capture-api/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*user.User // by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, exists := f.users[u.Email]; exists {
		return user.ErrEmailExists
	}
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	for _, u := range f.users {
		if u.ID.String() == id {
			u.IsActive = active
			return nil
		}
	}
	return user.ErrNotFound
}

func (f *fakeUserRepo) CountByRole(_ context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, u := range f.users {
		counts[u.Role]++
	}
	return counts, nil
}

func newTestService() (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 7*24*time.Hour)
	return NewService(repo, jwtService), repo
}

func registerReq() RegisterRequest {
	return RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-horse-battery",
		FullName: "Alice Kumar",
		Role:     user.RoleClient,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()

	reg, err := svc.Register(context.Background(), registerReq())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if reg.User.PasswordHash == "correct-horse-battery" {
		t.Fatal("password stored in plaintext")
	}
	if reg.Tokens.AccessToken == "" || reg.Tokens.RefreshToken == "" {
		t.Fatal("expected token pair")
	}

	login, err := svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Error("login returned a different user")
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, repo := newTestService()

	req := registerReq()
	req.Email = "  Alice@Example.COM "
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, ok := repo.users["alice@example.com"]; !ok {
		t.Error("email was not lowercased and trimmed")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), registerReq()); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	_, err := svc.Register(context.Background(), registerReq())
	if !errors.Is(err, user.ErrEmailExists) {
		t.Errorf("error = %v, want ErrEmailExists", err)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc, _ := newTestService()

	req := registerReq()
	req.Role = user.RoleAdmin
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrAdminRegistration) {
		t.Errorf("error = %v, want ErrAdminRegistration", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), registerReq()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmailIsIndistinguishable(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, repo := newTestService()

	reg, err := svc.Register(context.Background(), registerReq())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := repo.SetActive(context.Background(), reg.User.ID.String(), false); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse-battery",
	})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("error = %v, want ErrAccountDisabled", err)
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	svc, _ := newTestService()

	reg, err := svc.Register(context.Background(), registerReq())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tokens, err := svc.Refresh(context.Background(), reg.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("expected a fresh token pair")
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService()

	reg, err := svc.Register(context.Background(), registerReq())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err = svc.Refresh(context.Background(), reg.Tokens.AccessToken)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Refresh(context.Background(), "not.a.token")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}
