package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
)

type stubCustomerRepo struct {
	customers map[int]*domain.Customer
}

func newStubCustomerRepo(customers ...*domain.Customer) *stubCustomerRepo {
	r := &stubCustomerRepo{customers: make(map[int]*domain.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id int) (*domain.Customer, error) {
	if c, ok := r.customers[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) List(_ context.Context, q ports.PageQuery) ([]*domain.Customer, int64, error) {
	out := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		clone := *c
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	clone := *c
	clone.ID = len(r.customers) + 1
	r.customers[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) ExistsByDNI(_ context.Context, dni string, excludeID int) (bool, error) {
	for _, c := range r.customers {
		if c.DNI == dni && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCustomerRepo) ExistsByEmail(_ context.Context, email string, excludeID int) (bool, error) {
	for _, c := range r.customers {
		if c.Email == email && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (t *stubThrottle) TooManyAttempts(_ context.Context, _ string) (bool, error) {
	return t.blocked, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, _ string) error {
	t.failures++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, _ string) error {
	t.resets++
	return nil
}

type stubDispatcher struct {
	events []domain.ActivityEvent
}

func (d *stubDispatcher) Enqueue(ev domain.ActivityEvent) {
	d.events = append(d.events, ev)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	out, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(out)
}

func newTestAuthService(t *testing.T, repo *stubCustomerRepo, throttle LoginThrottle, activity ActivityDispatcher) *AuthService {
	t.Helper()
	tokens := newTestTokenService(t)
	return NewAuthService(repo, tokens, BcryptHasher{Cost: bcrypt.MinCost}, throttle, activity, zerolog.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubCustomerRepo(&domain.Customer{
		ID:           42,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "s3cret"),
	})
	throttle := &stubThrottle{}
	dispatcher := &stubDispatcher{}
	svc := newTestAuthService(t, repo, throttle, dispatcher)

	token, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	principal, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if principal.CustomerID != 42 || principal.Name != "Alice" || principal.Role != domain.RoleCustomer {
		t.Fatalf("unexpected principal: %+v", principal)
	}

	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset after success, got %d", throttle.resets)
	}
	if len(dispatcher.events) != 1 || dispatcher.events[0].Action != domain.ActivityLogin {
		t.Fatalf("expected one login activity event, got %+v", dispatcher.events)
	}
}

func TestAuthService_Login_FailuresCollapse(t *testing.T) {
	repo := newStubCustomerRepo(&domain.Customer{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "s3cret"),
	})
	svc := newTestAuthService(t, repo, nil, nil)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "bob@example.com", "s3cret"},
		{"wrong password", "alice@example.com", "wrong"},
		{"empty email", "", "s3cret"},
		{"empty password", "alice@example.com", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Login(context.Background(), tc.email, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	disabledAt := time.Now().UTC()
	repo := newStubCustomerRepo(&domain.Customer{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		DisabledAt:   &disabledAt,
	})
	throttle := &stubThrottle{}
	svc := newTestAuthService(t, repo, throttle, nil)

	if _, err := svc.Login(context.Background(), "alice@example.com", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for disabled account, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected failure recorded, got %d", throttle.failures)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubCustomerRepo(&domain.Customer{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "s3cret"),
	})
	throttle := &stubThrottle{blocked: true}
	svc := newTestAuthService(t, repo, throttle, nil)

	if _, err := svc.Login(context.Background(), "alice@example.com", "s3cret"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	repo := newStubCustomerRepo(&domain.Customer{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "s3cret"),
	})
	svc := newTestAuthService(t, repo, nil, nil)
	tokens := newTestTokenService(t)

	adminToken, err := tokens.Issue(1, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	unknownRoleToken, err := tokens.Issue(1, domain.Role("auditor"))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	vanishedToken, err := tokens.Issue(99, domain.RoleCustomer)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"empty", ""},
		{"admin role", adminToken},
		{"unknown role", unknownRoleToken},
		{"vanished account", vanishedToken},
	}
	for _, tc := range cases {
		if _, err := svc.Authenticate(context.Background(), tc.token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", tc.name, err)
		}
	}
}
