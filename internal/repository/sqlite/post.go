package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/novalith/novalith-backend/internal/domain"
)

// BlogPostRepository implements domain.BlogPostRepository using SQLite.
// Tags are stored as a comma-separated column.
type BlogPostRepository struct {
	db *sql.DB
}

func (r *BlogPostRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO blog_posts (author_id, title, content, tags, published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		post.AuthorID, post.Title, post.Content, joinTags(post.Tags), post.Published, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert blog post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get blog post id: %w", err)
	}

	post.ID = id
	post.CreatedAt = now
	post.UpdatedAt = now
	return nil
}

func (r *BlogPostRepository) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	post := &domain.BlogPost{}
	var tags string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, author_id, title, content, tags, published, created_at, updated_at
		 FROM blog_posts WHERE id = ?`, id,
	).Scan(&post.ID, &post.AuthorID, &post.Title, &post.Content, &tags, &post.Published, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query blog post: %w", err)
	}
	post.Tags = splitTags(tags)
	return post, nil
}

func (r *BlogPostRepository) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	return r.list(ctx, "WHERE published = 1")
}

func (r *BlogPostRepository) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	return r.list(ctx, "")
}

func (r *BlogPostRepository) list(ctx context.Context, where string) ([]domain.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, author_id, title, content, tags, published, created_at, updated_at
		 FROM blog_posts `+where+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		var p domain.BlogPost
		var tags string
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &tags, &p.Published, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		p.Tags = splitTags(tags)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *BlogPostRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE blog_posts SET title = ?, content = ?, tags = ?, published = ?, updated_at = ?
		 WHERE id = ?`,
		post.Title, post.Content, joinTags(post.Tags), post.Published, now, post.ID,
	)
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	post.UpdatedAt = now
	return nil
}

func (r *BlogPostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
