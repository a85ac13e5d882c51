package models

import (
	"mime/multipart"
	"time"
)

type RegisterRequest struct {
	Username  string `json:"username" form:"username" validate:"required,max=150,username"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" form:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" form:"last_name" validate:"max=150"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PostForm is the submitted post. The author is never part of it.
type PostForm struct {
	Title       string                `json:"title" form:"title" validate:"required,max=256"`
	Text        string                `json:"text" form:"text" validate:"required"`
	PubDate     time.Time             `json:"pub_date" form:"pub_date" time_format:"2006-01-02T15:04" validate:"required"`
	CategoryID  *uint                 `json:"category_id" form:"category_id"`
	LocationID  *uint                 `json:"location_id" form:"location_id"`
	IsPublished *bool                 `json:"is_published" form:"is_published"`
	Image       *multipart.FileHeader `json:"-" form:"image"`
}

type CommentForm struct {
	Text string `json:"text" form:"text" validate:"required"`
}

type ProfileForm struct {
	Username  string `json:"username" form:"username" validate:"required,max=150,username"`
	FirstName string `json:"first_name" form:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" form:"last_name" validate:"max=150"`
}

type CategoryRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=256"`
	Description string `json:"description" form:"description" validate:"required"`
	Slug        string `json:"slug" form:"slug" validate:"required,max=256,slug"`
	IsPublished *bool  `json:"is_published" form:"is_published"`
}

type LocationRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=256"`
	IsPublished *bool  `json:"is_published" form:"is_published"`
}

// PostFilter narrows a post listing. VisibleAt applies the public
// visibility rule evaluated at that instant; nil lists every post.
type PostFilter struct {
	AuthorID   *uint
	CategoryID *uint
	VisibleAt  *time.Time
}

// PostDetail is a single post with its comments, oldest first.
type PostDetail struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
	IsOwner  bool      `json:"is_owner"`
}

// PostFormView is returned for GET on create/edit routes.
type PostFormView struct {
	Post       *Post      `json:"post,omitempty"`
	Categories []Category `json:"categories"`
	Locations  []Location `json:"locations"`
}

type CategoryPage struct {
	Category Category `json:"category"`
	Page     Page     `json:"page_obj"`
}

type ProfilePage struct {
	Profile User `json:"profile"`
	IsOwner bool `json:"is_owner"`
	Page    Page `json:"page_obj"`
}
