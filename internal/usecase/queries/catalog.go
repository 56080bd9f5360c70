package queries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"riide-backend/internal/infra"
	"riide-backend/internal/pkg/errs"
)

var (
	ErrVehicleNotFound = errs.New("vehicle not found")
	ErrCatalogReads    = errs.New("catalog read failed")
)

type VehicleView struct {
	ID           uuid.UUID
	Name         string
	Type         string
	Category     string
	ImageURL     string
	PricePerHour decimal.Decimal
	PricePerDay  decimal.Decimal
	Features     []string
	Passengers   int
	Description  string
	Available    bool
	Location     string
}

type LocationView struct {
	ID      uuid.UUID
	Name    string
	Address string
	Type    string
	Popular bool
}

type ExtraView struct {
	Name        string
	Price       decimal.Decimal
	Description string
}

type ServiceView struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Icon          string
	Features      []string
	StartingPrice decimal.Decimal
	Order         int
}

type TestimonialView struct {
	ID        uuid.UUID
	Name      string
	Role      string
	Content   string
	Rating    int
	AvatarURL string
}

type FAQView struct {
	ID       uuid.UUID
	Question string
	Answer   string
	Category string
	Order    int
}

type BlogPostView struct {
	ID          uuid.UUID
	Title       string
	Excerpt     string
	Content     string
	PublishDate time.Time
	Category    string
	ImageURL    string
	Author      string
	ReadTime    string
}

type VehicleReadStore interface {
	// List returns available vehicles, optionally filtered by category.
	List(ctx context.Context, category *string) ([]*VehicleView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
}

type LocationReadStore interface {
	List(ctx context.Context) ([]*LocationView, error)
}

type ContentReadStore interface {
	Services(ctx context.Context) ([]*ServiceView, error)
	Testimonials(ctx context.Context) ([]*TestimonialView, error)
	FAQs(ctx context.Context, category *string) ([]*FAQView, error)
	BlogPosts(ctx context.Context, limit int) ([]*BlogPostView, error)
}

type CatalogQueries interface {
	ListVehicles(ctx context.Context, category *string) ([]*VehicleView, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	ListLocations(ctx context.Context) ([]*LocationView, error)
	SearchLocations(ctx context.Context, query string) ([]*LocationView, error)
	ListExtras(ctx context.Context) ([]*ExtraView, error)
	ListServices(ctx context.Context) ([]*ServiceView, error)
	ListTestimonials(ctx context.Context) ([]*TestimonialView, error)
	ListFAQs(ctx context.Context, category *string) ([]*FAQView, error)
	ListBlogPosts(ctx context.Context, limit int) ([]*BlogPostView, error)
}

type catalogQueriesImpl struct {
	vehicles  VehicleReadStore
	locations LocationReadStore
	extras    ExtrasReadStore
	content   ContentReadStore
}

func NewCatalogQueries(vehicles VehicleReadStore, locations LocationReadStore, extras ExtrasReadStore, content ContentReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		vehicles:  vehicles,
		locations: locations,
		extras:    extras,
		content:   content,
	}
}

func (q *catalogQueriesImpl) ListVehicles(ctx context.Context, category *string) ([]*VehicleView, error) {
	views, err := q.vehicles.List(ctx, category)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReads)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetVehicle(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	view, err := q.vehicles.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, errs.Mark(err, ErrCatalogReads)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListLocations(ctx context.Context) ([]*LocationView, error) {
	views, err := q.locations.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReads)
	}
	return views, nil
}

// SearchLocations is a simple case-insensitive substring match over the
// location list; the list is small enough that store-side search is overkill.
func (q *catalogQueriesImpl) SearchLocations(ctx context.Context, query string) ([]*LocationView, error) {
	views, err := q.locations.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReads)
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return views, nil
	}

	matched := make([]*LocationView, 0, len(views))
	for _, v := range views {
		if strings.Contains(strings.ToLower(v.Name), needle) {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (q *catalogQueriesImpl) ListExtras(ctx context.Context) ([]*ExtraView, error) {
	catalog, err := q.extras.Catalog(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReads)
	}

	views := make([]*ExtraView, 0, len(catalog))
	for _, extra := range catalog {
		views = append(views, &ExtraView{
			Name:        extra.Name,
			Price:       extra.Price,
			Description: extra.Description,
		})
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	views, err := q.content.Services(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReads)
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListTestimonials(ctx context.Context) ([]*TestimonialView, error) {
	views, err := q.content.Testimonials(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReads)
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListFAQs(ctx context.Context, category *string) ([]*FAQView, error) {
	views, err := q.content.FAQs(ctx, category)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReads)
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListBlogPosts(ctx context.Context, limit int) ([]*BlogPostView, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	views, err := q.content.BlogPosts(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogReads)
	}
	return views, nil
}
