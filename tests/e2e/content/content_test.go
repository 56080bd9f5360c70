//go:build e2e

package content_test

import (
	"net/http"
	"testing"

	resdto "riide-backend/internal/handler/dto/response"
	"riide-backend/tests/common/dbtest"
	"riide-backend/tests/common/httptest"
	"riide-backend/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	testimonialsURL = "/api/content/testimonials"
	blogURL         = "/api/content/blog"
)

type contentSuite struct {
	e2e.SharedSuite
}

func TestContentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(contentSuite))
}

func (s *contentSuite) TestModeration() {
	s.Run("only approved testimonials are listed", func() {
		approvedID := dbtest.CreateTestTestimonial(s.T(), s.DB, "Happy Rider", true)
		dbtest.CreateTestTestimonial(s.T(), s.DB, "Pending Rider", false)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, testimonialsURL, nil, "")
		var testimonials []resdto.TestimonialResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &testimonials)

		s.Require().Len(testimonials, 1)
		s.Equal(approvedID, testimonials[0].ID)
		s.Equal("Happy Rider", testimonials[0].Name)
	})

	s.Run("only published blog posts are listed", func() {
		publishedID := dbtest.CreateTestBlogPost(s.T(), s.DB, "Charging 101", true)
		dbtest.CreateTestBlogPost(s.T(), s.DB, "Draft post", false)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, blogURL, nil, "")
		var posts []resdto.BlogPostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &posts)

		s.Require().Len(posts, 1)
		s.Equal(publishedID, posts[0].ID)
		s.Equal("Charging 101", posts[0].Title)
	})
}
