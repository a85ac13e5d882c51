package services

import (
	"context"
	"errors"

	"blogicum/models"
	"blogicum/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, slug string, req models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, slug string) error
	GetCategories(ctx context.Context, publishedOnly bool) ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	validate     StructValidator
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, validate StructValidator) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, validate: validate}
}

func (s *categoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	if err := s.validate.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := s.slugAvailable(ctx, req.Slug, 0); err != nil {
		return nil, err
	}

	category := &models.Category{
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
		IsPublished: boolOr(req.IsPublished, true),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory replaces every field. Unpublishing hides the category's
// posts from public listings; the posts themselves are untouched.
func (s *categoryService) UpdateCategory(ctx context.Context, slug string, req models.CategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "category")
	}
	if err := s.validate.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := s.slugAvailable(ctx, req.Slug, category.ID); err != nil {
		return nil, err
	}

	category.Title = req.Title
	category.Description = req.Description
	category.Slug = req.Slug
	category.IsPublished = boolOr(req.IsPublished, category.IsPublished)
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, slug string) error {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return notFoundOr(err, "category")
	}
	return s.categoryRepo.Delete(ctx, category.ID)
}

func (s *categoryService) GetCategories(ctx context.Context, publishedOnly bool) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx, publishedOnly)
}

func (s *categoryService) slugAvailable(ctx context.Context, slug string, ownID uint) error {
	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err == nil && existing.ID != ownID {
		return models.NewValidationError("slug", "Category with this slug already exists.")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
