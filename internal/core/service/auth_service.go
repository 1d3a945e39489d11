package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
)

// Login identifiers are namespaced by account kind so one lookup path can
// serve several directories without collision. Only the customer directory
// exists today; ADMIN# is reserved.
const (
	customerPrefix = "CUSTOMER#"
	adminPrefix    = "ADMIN#"
)

// LoginThrottle limits failed login attempts per identifier. A nil throttle
// disables the limit.
type LoginThrottle interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// ActivityDispatcher enqueues audit events for asynchronous persistence.
type ActivityDispatcher interface {
	Enqueue(ev domain.ActivityEvent)
}

// AuthService implements credential verification, token issuance, and
// per-request principal resolution.
type AuthService struct {
	customers ports.CustomerRepository
	tokens    ports.TokenCodec
	hasher    PasswordHasher
	throttle  LoginThrottle
	activity  ActivityDispatcher
	log       zerolog.Logger
}

// NewAuthService wires the auth use cases. throttle and activity may be nil.
func NewAuthService(
	customers ports.CustomerRepository,
	tokens ports.TokenCodec,
	hasher PasswordHasher,
	throttle LoginThrottle,
	activity ActivityDispatcher,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		customers: customers,
		tokens:    tokens,
		hasher:    hasher,
		throttle:  throttle,
		activity:  activity,
		log:       log,
	}
}

// Login verifies the email/password pair against the customer directory and
// returns a signed access token. Unknown email, wrong password, and disabled
// account all yield the same domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyAttempts(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, continuing")
		} else if blocked {
			return "", domain.ErrTooManyAttempts
		}
	}

	customer, err := s.lookupAccount(ctx, customerPrefix+email)
	if err != nil {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(customer.PasswordHash, password); err != nil {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	if customer.IsDisabled() {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(customer.ID, domain.RoleCustomer)
	if err != nil {
		return "", err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}
	if s.activity != nil {
		s.activity.Enqueue(domain.ActivityEvent{
			CustomerID: customer.ID,
			Action:     domain.ActivityLogin,
			Timestamp:  time.Now().UTC(),
		})
	}

	s.log.Info().Int("customer_id", customer.ID).Msg("customer logged in")
	return token, nil
}

// Authenticate resolves a bearer token into a principal: validate the token,
// require the customer role, and load the account by the decoded id. An
// unrecognized role or a vanished account is just an invalid token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Principal, error) {
	id, role, err := s.tokens.Validate(token)
	if err != nil {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	if role != domain.RoleCustomer {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Role:       role,
	}, nil
}

// lookupAccount resolves a namespaced login identifier. The prefix is
// stripped before the underlying directory lookup. ADMIN# always fails:
// admin authentication is not implemented.
func (s *AuthService) lookupAccount(ctx context.Context, identifier string) (*domain.Customer, error) {
	if email, ok := strings.CutPrefix(identifier, customerPrefix); ok {
		return s.customers.FindByEmail(ctx, email)
	}
	if strings.HasPrefix(identifier, adminPrefix) {
		return nil, domain.ErrInvalidCredentials
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}
