package service

import (
	"context"
	"fmt"

	"github.com/novalith/novalith-backend/internal/domain"
)

// BlogService handles blog post CRUD with ownership checks.
type BlogService struct {
	posts domain.BlogPostRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(posts domain.BlogPostRepository) *BlogService {
	return &BlogService{posts: posts}
}

// Create stores a new post authored by the given user.
func (s *BlogService) Create(ctx context.Context, author *domain.User, title, content string, tags []string, published bool) (*domain.BlogPost, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}

	post := &domain.BlogPost{
		AuthorID:  author.ID,
		Title:     title,
		Content:   content,
		Tags:      tags,
		Published: published,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// GetByID returns a single post.
func (s *BlogService) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	return s.posts.GetByID(ctx, id)
}

// ListPublished returns published posts for the public site, newest first.
func (s *BlogService) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	return s.posts.ListPublished(ctx)
}

// ListAll returns every post including drafts, newest first.
func (s *BlogService) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	return s.posts.ListAll(ctx)
}

// Update replaces a post's content. Only the author or an admin may update.
func (s *BlogService) Update(ctx context.Context, actor *domain.User, id int64, title, content string, tags []string, published bool) (*domain.BlogPost, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	post.Title = title
	post.Content = content
	post.Tags = tags
	post.Published = published
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// Delete removes a post. Only the author or an admin may delete.
func (s *BlogService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != actor.ID && actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return s.posts.Delete(ctx, id)
}
