package services

import (
	"context"

	"blogicum/models"
	"blogicum/repositories"
)

const PostsPerPage = 10

type Paginator struct {
	PerPage int
}

// Resolve clamps requested into [1, totalPages]. An empty collection still
// has one (empty) page.
func (p Paginator) Resolve(total int64, requested int) (number, totalPages, offset int) {
	totalPages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if totalPages < 1 {
		totalPages = 1
	}

	number = requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	return number, totalPages, (number - 1) * p.PerPage
}

func (p Paginator) Page(items []models.Post, total int64, number, totalPages int) models.Page {
	if items == nil {
		items = []models.Post{}
	}
	return models.Page{
		Items:        items,
		TotalRecords: total,
		PerPage:      p.PerPage,
		TotalPages:   totalPages,
		CurrentPage:  number,
		HasNext:      number < totalPages,
		HasPrev:      number > 1,
	}
}

// Paginate counts the filtered posts, clamps the requested page and loads
// only that window.
func (p Paginator) Paginate(ctx context.Context, repo repositories.PostRepository, filter models.PostFilter, requested int) (models.Page, error) {
	total, err := repo.CountPosts(ctx, filter)
	if err != nil {
		return models.Page{}, err
	}

	number, totalPages, offset := p.Resolve(total, requested)
	items, err := repo.FindPosts(ctx, filter, p.PerPage, offset)
	if err != nil {
		return models.Page{}, err
	}
	return p.Page(items, total, number, totalPages), nil
}

var defaultPaginator = Paginator{PerPage: PostsPerPage}
