package readstore

import (
	"context"

	"riide-backend/internal/infra"
	"riide-backend/internal/infra/db"
	"riide-backend/internal/usecase/queries"
)

// ContentReadStore serves the marketing surface: services, testimonials,
// FAQs, blog posts. Only approved testimonials and published posts are
// exposed.
type ContentReadStore struct {
	db db.DBTX
}

func NewContentReadStore(dbtx db.DBTX) *ContentReadStore {
	return &ContentReadStore{db: dbtx}
}

func (r *ContentReadStore) Services(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, title, description, icon, features, starting_price, sort_order
FROM services ORDER BY sort_order`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	views := make([]*queries.ServiceView, 0)
	for rows.Next() {
		var v queries.ServiceView
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.Icon, &v.Features, &v.StartingPrice, &v.Order); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return views, nil
}

func (r *ContentReadStore) Testimonials(ctx context.Context) ([]*queries.TestimonialView, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, name, role, content, rating, avatar_url
FROM testimonials WHERE approved ORDER BY rating DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list testimonials", err)
	}
	defer rows.Close()

	views := make([]*queries.TestimonialView, 0)
	for rows.Next() {
		var v queries.TestimonialView
		if err := rows.Scan(&v.ID, &v.Name, &v.Role, &v.Content, &v.Rating, &v.AvatarURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan testimonial", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate testimonials", err)
	}
	return views, nil
}

func (r *ContentReadStore) FAQs(ctx context.Context, category *string) ([]*queries.FAQView, error) {
	sql := `SELECT id, question, answer, category, sort_order FROM faqs`
	args := []any{}
	if category != nil {
		sql += ` WHERE category = $1`
		args = append(args, *category)
	}
	sql += ` ORDER BY sort_order`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list FAQs", err)
	}
	defer rows.Close()

	views := make([]*queries.FAQView, 0)
	for rows.Next() {
		var v queries.FAQView
		if err := rows.Scan(&v.ID, &v.Question, &v.Answer, &v.Category, &v.Order); err != nil {
			return nil, infra.WrapRepoErr("failed to scan FAQ", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate FAQs", err)
	}
	return views, nil
}

func (r *ContentReadStore) BlogPosts(ctx context.Context, limit int) ([]*queries.BlogPostView, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, title, excerpt, content, publish_date, category, image_url, author, read_time
FROM blog_posts WHERE published ORDER BY publish_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blog posts", err)
	}
	defer rows.Close()

	views := make([]*queries.BlogPostView, 0)
	for rows.Next() {
		var v queries.BlogPostView
		if err := rows.Scan(&v.ID, &v.Title, &v.Excerpt, &v.Content, &v.PublishDate, &v.Category, &v.ImageURL, &v.Author, &v.ReadTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blog post", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blog posts", err)
	}
	return views, nil
}
