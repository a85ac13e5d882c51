package services

import (
	"context"
	"errors"

	"blogicum/logger"
	"blogicum/models"
	"blogicum/repositories"

	"gorm.io/gorm"
)

type PostService interface {
	ListPublic(ctx context.Context, rc RequestContext, page int) (models.Page, error)
	ListByCategory(ctx context.Context, rc RequestContext, slug string, page int) (*models.CategoryPage, error)
	GetPost(ctx context.Context, rc RequestContext, id uint) (*models.PostDetail, error)
	NewPostForm(ctx context.Context, rc RequestContext) (*models.PostFormView, error)
	CreatePost(ctx context.Context, rc RequestContext, form models.PostForm) (*models.Post, error)
	EditPostForm(ctx context.Context, rc RequestContext, id uint) (*models.PostFormView, error)
	UpdatePost(ctx context.Context, rc RequestContext, id uint, form models.PostForm) (*models.Post, error)
	DeleteConfirmation(ctx context.Context, rc RequestContext, id uint) (*models.Post, error)
	DeletePost(ctx context.Context, rc RequestContext, id uint) (*models.Post, error)
}

type postService struct {
	postRepo     repositories.PostRepository
	commentRepo  repositories.CommentRepository
	categoryRepo repositories.CategoryRepository
	locationRepo repositories.LocationRepository
	media        MediaStore
	validate     StructValidator
	paginator    Paginator
}

func NewPostService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	categoryRepo repositories.CategoryRepository,
	locationRepo repositories.LocationRepository,
	media MediaStore,
	validate StructValidator,
) PostService {
	return &postService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		media:        media,
		validate:     validate,
		paginator:    defaultPaginator,
	}
}

func (s *postService) ListPublic(ctx context.Context, rc RequestContext, page int) (models.Page, error) {
	result, err := s.paginator.Paginate(ctx, s.postRepo, models.PostFilter{VisibleAt: &rc.Now}, page)
	if err != nil {
		return models.Page{}, err
	}
	redactLocations(result.Items, rc.UserID)
	return result, nil
}

func (s *postService) ListByCategory(ctx context.Context, rc RequestContext, slug string, page int) (*models.CategoryPage, error) {
	category, err := s.categoryRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "category")
	}

	filter := models.PostFilter{CategoryID: &category.ID, VisibleAt: &rc.Now}
	result, err := s.paginator.Paginate(ctx, s.postRepo, filter, page)
	if err != nil {
		return nil, err
	}
	redactLocations(result.Items, rc.UserID)
	return &models.CategoryPage{Category: *category, Page: result}, nil
}

// GetPost answers "not found" for hidden posts so their existence does not leak.
func (s *postService) GetPost(ctx context.Context, rc RequestContext, id uint) (*models.PostDetail, error) {
	post, err := s.readablePost(ctx, rc, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	posts := []models.Post{*post}
	redactLocations(posts, rc.UserID)
	return &models.PostDetail{
		Post:     posts[0],
		Comments: comments,
		IsOwner:  rc.IsAuthenticated() && post.AuthorID == rc.UserID,
	}, nil
}

func (s *postService) readablePost(ctx context.Context, rc RequestContext, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "post")
	}
	if !models.CanRead(post, rc.UserID, rc.Now) {
		return nil, models.ErrorNotFound{Resource: "post"}
	}
	return post, nil
}

// ownedPost loads a post for mutation. Existence is checked first so a
// missing post is a 404 for everyone.
func (s *postService) ownedPost(ctx context.Context, rc RequestContext, id uint) (*models.Post, error) {
	if err := rc.requireUser(); err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "post")
	}
	if post.AuthorID != rc.UserID {
		return nil, models.ErrorForbidden{Message: "only the author may change this post"}
	}
	return post, nil
}

func (s *postService) NewPostForm(ctx context.Context, rc RequestContext) (*models.PostFormView, error) {
	if err := rc.requireUser(); err != nil {
		return nil, err
	}
	return s.formView(ctx, nil)
}

func (s *postService) EditPostForm(ctx context.Context, rc RequestContext, id uint) (*models.PostFormView, error) {
	post, err := s.ownedPost(ctx, rc, id)
	if err != nil {
		return nil, err
	}
	return s.formView(ctx, post)
}

func (s *postService) formView(ctx context.Context, post *models.Post) (*models.PostFormView, error) {
	categories, err := s.categoryRepo.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}
	locations, err := s.locationRepo.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}
	return &models.PostFormView{Post: post, Categories: categories, Locations: locations}, nil
}

func (s *postService) CreatePost(ctx context.Context, rc RequestContext, form models.PostForm) (*models.Post, error) {
	if err := rc.requireUser(); err != nil {
		return nil, err
	}
	if err := s.checkForm(ctx, form); err != nil {
		return nil, err
	}

	post := &models.Post{AuthorID: rc.UserID}
	applyForm(post, form)

	if form.Image != nil {
		name, err := s.media.Save(form.Image)
		if err != nil {
			return nil, err
		}
		post.Image = name
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		s.discardImage(post.Image)
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost checks ownership before looking at the payload; the author
// field is never taken from the form.
func (s *postService) UpdatePost(ctx context.Context, rc RequestContext, id uint, form models.PostForm) (*models.Post, error) {
	post, err := s.ownedPost(ctx, rc, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkForm(ctx, form); err != nil {
		return nil, err
	}

	applyForm(post, form)
	post.AuthorID = rc.UserID

	previousImage := ""
	if form.Image != nil {
		name, err := s.media.Save(form.Image)
		if err != nil {
			return nil, err
		}
		previousImage, post.Image = post.Image, name
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		if form.Image != nil {
			s.discardImage(post.Image)
		}
		return nil, err
	}
	s.discardImage(previousImage)

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *postService) DeleteConfirmation(ctx context.Context, rc RequestContext, id uint) (*models.Post, error) {
	return s.ownedPost(ctx, rc, id)
}

// DeletePost removes the post and, in the same transaction, its comments.
func (s *postService) DeletePost(ctx context.Context, rc RequestContext, id uint) (*models.Post, error) {
	post, err := s.ownedPost(ctx, rc, id)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return nil, notFoundOr(err, "post")
	}
	s.discardImage(post.Image)
	return post, nil
}

func (s *postService) checkForm(ctx context.Context, form models.PostForm) error {
	if err := s.validate.ValidateStruct(form); err != nil {
		return err
	}

	var refs models.ErrorValidation
	if form.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *form.CategoryID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			refs = refs.Add("category_id", "Select a valid choice. That category does not exist.")
		}
	}
	if form.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *form.LocationID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			refs = refs.Add("location_id", "Select a valid choice. That location does not exist.")
		}
	}
	if len(refs.Fields) > 0 {
		return refs
	}
	return nil
}

func (s *postService) discardImage(name string) {
	if name == "" {
		return
	}
	if err := s.media.Remove(name); err != nil {
		logger.Warn.Printf("remove image %s: %v", name, err)
	}
}

func applyForm(post *models.Post, form models.PostForm) {
	post.Title = form.Title
	post.Text = form.Text
	post.PubDate = form.PubDate.UTC()
	post.CategoryID = form.CategoryID
	post.LocationID = form.LocationID
	post.IsPublished = boolOr(form.IsPublished, true)
}

// redactLocations drops unpublished locations from posts shown to anyone
// but their author. The post itself stays listed.
func redactLocations(posts []models.Post, viewerID uint) {
	for i := range posts {
		if posts[i].Location == nil || posts[i].Location.IsPublished {
			continue
		}
		if viewerID != 0 && posts[i].AuthorID == viewerID {
			continue
		}
		posts[i].Location = nil
		posts[i].LocationID = nil
	}
}
