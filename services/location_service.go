package services

import (
	"context"

	"blogicum/models"
	"blogicum/repositories"
)

type LocationService interface {
	CreateLocation(ctx context.Context, req models.LocationRequest) (*models.Location, error)
	UpdateLocation(ctx context.Context, id uint, req models.LocationRequest) (*models.Location, error)
	DeleteLocation(ctx context.Context, id uint) error
	GetLocations(ctx context.Context, publishedOnly bool) ([]models.Location, error)
}

type locationService struct {
	locationRepo repositories.LocationRepository
	validate     StructValidator
}

func NewLocationService(locationRepo repositories.LocationRepository, validate StructValidator) LocationService {
	return &locationService{locationRepo: locationRepo, validate: validate}
}

func (s *locationService) CreateLocation(ctx context.Context, req models.LocationRequest) (*models.Location, error) {
	if err := s.validate.ValidateStruct(req); err != nil {
		return nil, err
	}

	location := &models.Location{Name: req.Name, IsPublished: boolOr(req.IsPublished, true)}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, id uint, req models.LocationRequest) (*models.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "location")
	}
	if err := s.validate.ValidateStruct(req); err != nil {
		return nil, err
	}

	location.Name = req.Name
	location.IsPublished = boolOr(req.IsPublished, location.IsPublished)
	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// DeleteLocation keeps the posts and clears their location.
func (s *locationService) DeleteLocation(ctx context.Context, id uint) error {
	if _, err := s.locationRepo.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "location")
	}
	return s.locationRepo.Delete(ctx, id)
}

func (s *locationService) GetLocations(ctx context.Context, publishedOnly bool) ([]models.Location, error) {
	return s.locationRepo.GetAll(ctx, publishedOnly)
}
