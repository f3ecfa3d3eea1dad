package domain

import (
	"context"
	"time"
)

// BlogPost is an article on the company site. Unpublished posts are drafts
// visible only through the admin listing.
type BlogPost struct {
	ID        int64
	AuthorID  int64
	Title     string
	Content   string
	Tags      []string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlogPostRepository defines persistence operations for blog posts.
type BlogPostRepository interface {
	Create(ctx context.Context, post *BlogPost) error
	GetByID(ctx context.Context, id int64) (*BlogPost, error)
	// ListPublished returns published posts, newest first.
	ListPublished(ctx context.Context) ([]BlogPost, error)
	// ListAll returns every post including drafts, newest first.
	ListAll(ctx context.Context) ([]BlogPost, error)
	Update(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id int64) error
}
