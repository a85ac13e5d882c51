package services

import (
	"context"
	"errors"

	"blogicum/logger"
	"blogicum/models"
	"blogicum/repositories"

	"gopkg.in/go-playground/validator.v9"
)

type CommentService interface {
	AddComment(ctx context.Context, rc RequestContext, postID uint, form models.CommentForm) (*models.Comment, error)
	EditCommentForm(ctx context.Context, rc RequestContext, postID, commentID uint) (*models.Comment, error)
	UpdateComment(ctx context.Context, rc RequestContext, postID, commentID uint, form models.CommentForm) (*models.Comment, error)
	DeleteConfirmation(ctx context.Context, rc RequestContext, postID, commentID uint) (*models.Comment, error)
	DeleteComment(ctx context.Context, rc RequestContext, postID, commentID uint) error
}

type commentService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	validate    StructValidator
}

func NewCommentService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, validate StructValidator) CommentService {
	return &commentService{postRepo: postRepo, commentRepo: commentRepo, validate: validate}
}

// AddComment forces author and post from the request. An invalid form
// creates nothing and is not an error: the caller redirects either way.
func (s *commentService) AddComment(ctx context.Context, rc RequestContext, postID uint, form models.CommentForm) (*models.Comment, error) {
	if err := rc.requireUser(); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err, "post")
	}
	if !models.CanRead(post, rc.UserID, rc.Now) {
		return nil, models.ErrorNotFound{Resource: "post"}
	}

	if err := s.validate.ValidateStruct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			logger.Info.Printf("dropped invalid comment on post %d from user %d", postID, rc.UserID)
			return nil, nil
		}
		return nil, err
	}

	comment := &models.Comment{
		Text:     form.Text,
		PostID:   post.ID,
		AuthorID: rc.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ownedComment(ctx context.Context, rc RequestContext, postID, commentID uint) (*models.Comment, error) {
	if err := rc.requireUser(); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetForPost(ctx, postID, commentID)
	if err != nil {
		return nil, notFoundOr(err, "comment")
	}
	if comment.AuthorID != rc.UserID {
		return nil, models.ErrorForbidden{Message: "only the author may change this comment"}
	}
	return comment, nil
}

func (s *commentService) EditCommentForm(ctx context.Context, rc RequestContext, postID, commentID uint) (*models.Comment, error) {
	return s.ownedComment(ctx, rc, postID, commentID)
}

func (s *commentService) UpdateComment(ctx context.Context, rc RequestContext, postID, commentID uint, form models.CommentForm) (*models.Comment, error) {
	comment, err := s.ownedComment(ctx, rc, postID, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.ValidateStruct(form); err != nil {
		return nil, err
	}

	comment.Text = form.Text
	if err := s.commentRepo.UpdateText(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) DeleteConfirmation(ctx context.Context, rc RequestContext, postID, commentID uint) (*models.Comment, error) {
	return s.ownedComment(ctx, rc, postID, commentID)
}

func (s *commentService) DeleteComment(ctx context.Context, rc RequestContext, postID, commentID uint) error {
	comment, err := s.ownedComment(ctx, rc, postID, commentID)
	if err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, comment.ID)
}
