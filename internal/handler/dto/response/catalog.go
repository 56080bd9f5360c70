package response

import (
	"time"

	"github.com/google/uuid"

	"riide-backend/internal/usecase/queries"
)

type VehicleResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"imageUrl"`
	PricePerHour string    `json:"pricePerHour"`
	PricePerDay  string    `json:"pricePerDay"`
	Features     []string  `json:"features"`
	Passengers   int       `json:"passengers"`
	Description  string    `json:"description"`
	Available    bool      `json:"available"`
	Location     string    `json:"location"`
}

type LocationResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Type    string    `json:"type"`
	Popular bool      `json:"popular"`
}

type ExtraResponse struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

type ServiceResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`
	Features      []string  `json:"features"`
	StartingPrice string    `json:"startingPrice"`
	Order         int       `json:"order"`
}

type TestimonialResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	AvatarURL string    `json:"avatarUrl"`
}

type FAQResponse struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Category string    `json:"category"`
	Order    int       `json:"order"`
}

type BlogPostResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	PublishDate time.Time `json:"publishDate"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	Author      string    `json:"author"`
	ReadTime    string    `json:"readTime"`
}

func FromVehicleView(v *queries.VehicleView) *VehicleResponse {
	return &VehicleResponse{
		ID:           v.ID,
		Name:         v.Name,
		Type:         v.Type,
		Category:     v.Category,
		ImageURL:     v.ImageURL,
		PricePerHour: v.PricePerHour.StringFixed(2),
		PricePerDay:  v.PricePerDay.StringFixed(2),
		Features:     v.Features,
		Passengers:   v.Passengers,
		Description:  v.Description,
		Available:    v.Available,
		Location:     v.Location,
	}
}

func FromVehicleViews(views []*queries.VehicleView) []*VehicleResponse {
	responses := make([]*VehicleResponse, len(views))
	for i, v := range views {
		responses[i] = FromVehicleView(v)
	}
	return responses
}

func FromLocationViews(views []*queries.LocationView) []*LocationResponse {
	responses := make([]*LocationResponse, len(views))
	for i, v := range views {
		responses[i] = &LocationResponse{
			ID:      v.ID,
			Name:    v.Name,
			Address: v.Address,
			Type:    v.Type,
			Popular: v.Popular,
		}
	}
	return responses
}

func FromExtraViews(views []*queries.ExtraView) []*ExtraResponse {
	responses := make([]*ExtraResponse, len(views))
	for i, v := range views {
		responses[i] = &ExtraResponse{
			Name:        v.Name,
			Price:       v.Price.StringFixed(2),
			Description: v.Description,
		}
	}
	return responses
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	responses := make([]*ServiceResponse, len(views))
	for i, v := range views {
		responses[i] = &ServiceResponse{
			ID:            v.ID,
			Title:         v.Title,
			Description:   v.Description,
			Icon:          v.Icon,
			Features:      v.Features,
			StartingPrice: v.StartingPrice.StringFixed(2),
			Order:         v.Order,
		}
	}
	return responses
}

func FromTestimonialViews(views []*queries.TestimonialView) []*TestimonialResponse {
	responses := make([]*TestimonialResponse, len(views))
	for i, v := range views {
		responses[i] = &TestimonialResponse{
			ID:        v.ID,
			Name:      v.Name,
			Role:      v.Role,
			Content:   v.Content,
			Rating:    v.Rating,
			AvatarURL: v.AvatarURL,
		}
	}
	return responses
}

func FromFAQViews(views []*queries.FAQView) []*FAQResponse {
	responses := make([]*FAQResponse, len(views))
	for i, v := range views {
		responses[i] = &FAQResponse{
			ID:       v.ID,
			Question: v.Question,
			Answer:   v.Answer,
			Category: v.Category,
			Order:    v.Order,
		}
	}
	return responses
}

func FromBlogPostViews(views []*queries.BlogPostView) []*BlogPostResponse {
	responses := make([]*BlogPostResponse, len(views))
	for i, v := range views {
		responses[i] = &BlogPostResponse{
			ID:          v.ID,
			Title:       v.Title,
			Excerpt:     v.Excerpt,
			Content:     v.Content,
			PublishDate: v.PublishDate,
			Category:    v.Category,
			ImageURL:    v.ImageURL,
			Author:      v.Author,
			ReadTime:    v.ReadTime,
		}
	}
	return responses
}
