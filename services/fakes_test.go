package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"sync"
	"time"

	"blogicum/models"

	"gorm.io/gorm"
)

// memStore backs the fake repositories with plain maps. writes counts every
// mutation so tests can assert that a rejected request changed nothing.
type memStore struct {
	mu         sync.Mutex
	nextID     uint
	writes     int
	users      map[uint]models.User
	categories map[uint]models.Category
	locations  map[uint]models.Location
	posts      map[uint]models.Post
	comments   map[uint]models.Comment
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[uint]models.User{},
		categories: map[uint]models.Category{},
		locations:  map[uint]models.Location{},
		posts:      map[uint]models.Post{},
		comments:   map[uint]models.Comment{},
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) hydrate(p models.Post) models.Post {
	p.Author = m.users[p.AuthorID]
	p.Category, p.Location = nil, nil
	if p.CategoryID != nil {
		if c, ok := m.categories[*p.CategoryID]; ok {
			p.Category = &c
		}
	}
	if p.LocationID != nil {
		if l, ok := m.locations[*p.LocationID]; ok {
			p.Location = &l
		}
	}
	p.CommentCount = 0
	for _, c := range m.comments {
		if c.PostID == p.ID {
			p.CommentCount++
		}
	}
	return p
}

type fakeUserRepo struct{ *memStore }

func (r fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.id()
	if user.Role == "" {
		user.Role = models.RoleAuthor
	}
	r.users[user.ID] = *user
	r.writes++
	return nil
}

func (r fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return &models.User{}, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r fakeUserRepo) find(match func(models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return &models.User{}, gorm.ErrRecordNotFound
}

func (r fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Username, stored.FirstName, stored.LastName = user.Username, user.FirstName, user.LastName
	r.users[user.ID] = stored
	r.writes++
	return nil
}

type fakeCategoryRepo struct{ *memStore }

func (r fakeCategoryRepo) Create(_ context.Context, c *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.id()
	r.categories[c.ID] = *c
	r.writes++
	return nil
}

func (r fakeCategoryRepo) GetByID(_ context.Context, id uint) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return &models.Category{}, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Slug == slug {
			c := c
			return &c, nil
		}
	}
	return &models.Category{}, gorm.ErrRecordNotFound
}

func (r fakeCategoryRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Category, error) {
	c, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return c, err
	}
	if !c.IsPublished {
		return &models.Category{}, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r fakeCategoryRepo) GetAll(_ context.Context, publishedOnly bool) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Category
	for _, c := range r.categories {
		if publishedOnly && !c.IsPublished {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r fakeCategoryRepo) Update(_ context.Context, c *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = *c
	r.writes++
	return nil
}

func (r fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for pid, p := range r.posts {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
			r.posts[pid] = p
		}
	}
	delete(r.categories, id)
	r.writes++
	return nil
}

type fakeLocationRepo struct{ *memStore }

func (r fakeLocationRepo) Create(_ context.Context, l *models.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = r.id()
	r.locations[l.ID] = *l
	r.writes++
	return nil
}

func (r fakeLocationRepo) GetByID(_ context.Context, id uint) (*models.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locations[id]
	if !ok {
		return &models.Location{}, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (r fakeLocationRepo) GetAll(_ context.Context, publishedOnly bool) ([]models.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Location
	for _, l := range r.locations {
		if publishedOnly && !l.IsPublished {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r fakeLocationRepo) Update(_ context.Context, l *models.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations[l.ID] = *l
	r.writes++
	return nil
}

func (r fakeLocationRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for pid, p := range r.posts {
		if p.LocationID != nil && *p.LocationID == id {
			p.LocationID = nil
			r.posts[pid] = p
		}
	}
	delete(r.locations, id)
	r.writes++
	return nil
}

type fakePostRepo struct{ *memStore }

func (r fakePostRepo) Create(_ context.Context, p *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.id()
	p.CreatedAt = time.Now()
	stored := *p
	stored.Author, stored.Category, stored.Location = models.User{}, nil, nil
	r.posts[p.ID] = stored
	r.writes++
	return nil
}

func (r fakePostRepo) GetByID(_ context.Context, id uint) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return &models.Post{}, gorm.ErrRecordNotFound
	}
	p = r.hydrate(p)
	return &p, nil
}

func (r fakePostRepo) matching(filter models.PostFilter) []models.Post {
	var out []models.Post
	for _, p := range r.posts {
		p = r.hydrate(p)
		if filter.AuthorID != nil && p.AuthorID != *filter.AuthorID {
			continue
		}
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.VisibleAt != nil && !models.IsPubliclyVisible(&p, *filter.VisibleAt) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PubDate.Equal(out[j].PubDate) {
			return out[i].PubDate.After(out[j].PubDate)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r fakePostRepo) FindPosts(_ context.Context, filter models.PostFilter, limit, offset int) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.matching(filter)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r fakePostRepo) CountPosts(_ context.Context, filter models.PostFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.matching(filter))), nil
}

func (r fakePostRepo) Update(_ context.Context, p *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *p
	stored.Author, stored.Category, stored.Location = models.User{}, nil, nil
	stored.CommentCount = 0
	r.posts[p.ID] = stored
	r.writes++
	return nil
}

func (r fakePostRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for cid, c := range r.comments {
		if c.PostID == id {
			delete(r.comments, cid)
		}
	}
	delete(r.posts, id)
	r.writes++
	return nil
}

type fakeCommentRepo struct{ *memStore }

func (r fakeCommentRepo) Create(_ context.Context, c *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.id()
	c.CreatedAt = time.Now()
	r.comments[c.ID] = *c
	r.writes++
	return nil
}

func (r fakeCommentRepo) GetForPost(_ context.Context, postID, commentID uint) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[commentID]
	if !ok || c.PostID != postID {
		return &models.Comment{}, gorm.ErrRecordNotFound
	}
	c.Author = r.users[c.AuthorID]
	return &c, nil
}

func (r fakeCommentRepo) ListByPost(_ context.Context, postID uint) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			c.Author = r.users[c.AuthorID]
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r fakeCommentRepo) CountByPost(ctx context.Context, postID uint) (int64, error) {
	list, err := r.ListByPost(ctx, postID)
	return int64(len(list)), err
}

func (r fakeCommentRepo) UpdateText(_ context.Context, c *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.comments[c.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Text = c.Text
	r.comments[c.ID] = stored
	r.writes++
	return nil
}

func (r fakeCommentRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.comments, id)
	r.writes++
	return nil
}

type fakeMedia struct {
	saved   []string
	removed []string
}

func (m *fakeMedia) Save(file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("posts_images/%d-%s", len(m.saved)+1, file.Filename)
	m.saved = append(m.saved, name)
	return name, nil
}

func (m *fakeMedia) Remove(name string) error {
	m.removed = append(m.removed, name)
	return nil
}
