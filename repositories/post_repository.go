package repositories

import (
	"context"
	"time"

	"blogicum/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const postColumns = "posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	FindPosts(ctx context.Context, filter models.PostFilter, limit, offset int) ([]models.Post, error)
	CountPosts(ctx context.Context, filter models.PostFilter) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// PubliclyVisible is the SQL form of models.IsPubliclyVisible.
func PubliclyVisible(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published = ? AND posts.pub_date <= ?", true, now.UTC()).
			Where("(posts.category_id IS NULL OR categories.is_published = ?)", true)
	}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Select(postColumns).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(&post, id).Error
	return &post, err
}

func (r *postRepository) filtered(ctx context.Context, filter models.PostFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Post{})
	if filter.VisibleAt != nil {
		query = query.Scopes(PubliclyVisible(*filter.VisibleAt))
	}
	if filter.AuthorID != nil {
		query = query.Where("posts.author_id = ?", *filter.AuthorID)
	}
	if filter.CategoryID != nil {
		query = query.Where("posts.category_id = ?", *filter.CategoryID)
	}
	return query
}

// FindPosts returns one window of the filtered posts, newest pub_date first,
// each annotated with its comment count.
func (r *postRepository) FindPosts(ctx context.Context, filter models.PostFilter, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.filtered(ctx, filter).
		Select(postColumns).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC").
		Order("posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountPosts(ctx context.Context, filter models.PostFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, filter).Count(&total).Error
	return total, err
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(post).Error
}

// Delete removes the post and its comments in one transaction.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
