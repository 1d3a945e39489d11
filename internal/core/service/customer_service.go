package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
)

// CustomerService implements customer account management.
type CustomerService struct {
	repo   ports.CustomerRepository
	hasher PasswordHasher
	log    zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, hasher PasswordHasher, log zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, hasher: hasher, log: log}
}

func (s *CustomerService) Paginate(ctx context.Context, q ports.PageQuery) (ports.Page[*domain.Customer], error) {
	q = q.Normalize()
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return ports.Page[*domain.Customer]{}, err
	}
	return ports.NewPage(items, total, q), nil
}

func (s *CustomerService) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// Register creates a new customer account. DNI and email must be unique
// across all accounts, active or disabled. The password is stored hashed.
func (s *CustomerService) Register(ctx context.Context, in ports.CustomerRegistration) (*domain.Customer, error) {
	if err := s.checkUnique(ctx, in.DNI, in.Email, 0); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Customer{
		DNI:          in.DNI,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("customer_id", created.ID).Msg("customer registered")
	return created, nil
}

func (s *CustomerService) Update(ctx context.Context, id int, in ports.CustomerUpdate) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, in.DNI, in.Email, id); err != nil {
		return nil, err
	}

	customer.DNI = in.DNI
	customer.Name = in.Name
	customer.Email = in.Email
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DisableByID sets the disabled marker. Already-disabled accounts keep
// their original timestamp.
func (s *CustomerService) DisableByID(ctx context.Context, id int) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !customer.IsDisabled() {
		now := time.Now().UTC()
		customer.DisabledAt = &now
		if err := s.repo.Update(ctx, customer); err != nil {
			return nil, err
		}
		s.log.Info().Int("customer_id", id).Msg("customer disabled")
	}
	return customer, nil
}

func (s *CustomerService) EnableByID(ctx context.Context, id int) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer.IsDisabled() {
		customer.DisabledAt = nil
		if err := s.repo.Update(ctx, customer); err != nil {
			return nil, err
		}
		s.log.Info().Int("customer_id", id).Msg("customer enabled")
	}
	return customer, nil
}

func (s *CustomerService) checkUnique(ctx context.Context, dni, email string, excludeID int) error {
	taken, err := s.repo.ExistsByDNI(ctx, dni, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.NewInvalidData("already_exists", "dni", "DNI already exists", dni)
	}

	taken, err = s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.NewInvalidData("already_exists", "email", "Email already exists", email)
	}
	return nil
}
