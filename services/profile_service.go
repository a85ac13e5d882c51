package services

import (
	"context"
	"errors"

	"blogicum/models"
	"blogicum/repositories"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(ctx context.Context, rc RequestContext, username string, page int) (*models.ProfilePage, error)
	EditProfileForm(ctx context.Context, rc RequestContext, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, rc RequestContext, username string, form models.ProfileForm) (*models.User, error)
}

type profileService struct {
	userRepo  repositories.UserRepository
	postRepo  repositories.PostRepository
	validate  StructValidator
	paginator Paginator
}

func NewProfileService(userRepo repositories.UserRepository, postRepo repositories.PostRepository, validate StructValidator) ProfileService {
	return &profileService{
		userRepo:  userRepo,
		postRepo:  postRepo,
		validate:  validate,
		paginator: defaultPaginator,
	}
}

// GetProfile lists every post of the profile owner when they are the
// viewer; anybody else sees only publicly visible posts.
func (s *profileService) GetProfile(ctx context.Context, rc RequestContext, username string, page int) (*models.ProfilePage, error) {
	profile, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}

	isOwner := rc.IsAuthenticated() && rc.UserID == profile.ID
	filter := models.PostFilter{AuthorID: &profile.ID}
	if !isOwner {
		filter.VisibleAt = &rc.Now
	}

	result, err := s.paginator.Paginate(ctx, s.postRepo, filter, page)
	if err != nil {
		return nil, err
	}
	redactLocations(result.Items, rc.UserID)
	return &models.ProfilePage{Profile: *profile, IsOwner: isOwner, Page: result}, nil
}

func (s *profileService) ownProfile(ctx context.Context, rc RequestContext, username string) (*models.User, error) {
	if err := rc.requireUser(); err != nil {
		return nil, err
	}
	profile, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	if profile.ID != rc.UserID {
		return nil, models.ErrorForbidden{Message: "only the owner may edit this profile"}
	}
	return profile, nil
}

func (s *profileService) EditProfileForm(ctx context.Context, rc RequestContext, username string) (*models.User, error) {
	return s.ownProfile(ctx, rc, username)
}

func (s *profileService) UpdateProfile(ctx context.Context, rc RequestContext, username string, form models.ProfileForm) (*models.User, error) {
	profile, err := s.ownProfile(ctx, rc, username)
	if err != nil {
		return nil, err
	}
	if err := s.validate.ValidateStruct(form); err != nil {
		return nil, err
	}

	if form.Username != profile.Username {
		taken, err := s.userRepo.GetByUsername(ctx, form.Username)
		if err == nil && taken.ID != profile.ID {
			return nil, models.NewValidationError("username", "A user with that username already exists.")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	profile.Username = form.Username
	profile.FirstName = form.FirstName
	profile.LastName = form.LastName
	if err := s.userRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewValidationError("username", "A user with that username already exists.")
		}
		return nil, err
	}
	return profile, nil
}
