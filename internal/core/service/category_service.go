package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
)

// CategoryService implements product category management.
type CategoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) Paginate(ctx context.Context, q ports.PageQuery) (ports.Page[*domain.Category], error) {
	q = q.Normalize()
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return ports.Page[*domain.Category]{}, err
	}
	return ports.NewPage(items, total, q), nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in ports.CategoryData) (*domain.Category, error) {
	if err := s.checkName(ctx, in.Name, 0); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Category{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, in ports.CategoryData) (*domain.Category, error) {
	if err := s.checkName(ctx, in.Name, id); err != nil {
		return nil, err
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = in.Name
	category.Description = in.Description
	category.IsActive = in.IsActive
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteByID(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *CategoryService) checkName(ctx context.Context, name string, excludeID int) error {
	taken, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.NewInvalidData("already_exists", "name", "Name already exists", name)
	}
	return nil
}
