//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"barber-booking/internal/domain/catalog"
	"barber-booking/internal/handler/api"
	"barber-booking/internal/handler/middleware"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/ident"
	"barber-booking/internal/usecase/commands"
	"barber-booking/tests/common/builder"
	"barber-booking/tests/common/httptest"
	commandsmock "barber-booking/tests/mock/commands"
	queriesmock "barber-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TestimonialHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTestimonialCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.TestimonialHandler
}

func (s *TestimonialHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTestimonialCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewTestimonialHandler(s.mockCommands, s.mockQueries)

	adminMiddleware := middleware.NewAdminMiddleware(config.NewTestConfig())

	s.router.GET("/api/testimonials", s.handler.List)
	s.router.POST("/api/testimonials", s.handler.Create)
	s.router.DELETE("/api/testimonials/:id", adminMiddleware.RequireAdmin(), s.handler.Delete)
}

func (s *TestimonialHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTestimonialHandlerSuite(t *testing.T) {
	suite.Run(t, new(TestimonialHandlerTestSuite))
}

func (s *TestimonialHandlerTestSuite) TestList() {
	s.Run("success: public list without secret", func() {
		t := builder.NewTestimonialBuilder().Build()
		s.mockQueries.EXPECT().ListTestimonials(gomock.Any()).
			Return([]catalog.Testimonial{t}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/testimonials", nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(t.Story, body[0]["story"])
		s.Equal(t.Role, body[0]["role"])
	})
}

func (s *TestimonialHandlerTestSuite) TestCreate() {
	url := "/api/testimonials"

	s.Run("success: returns 201 with the stored entry", func() {
		t := builder.NewTestimonialBuilder().Build()
		s.mockCommands.EXPECT().Create(gomock.Any(), t.Name, t.Role, t.Story).
			Return(t, nil).Times(1)

		reqBody := map[string]string{"name": t.Name, "role": t.Role, "story": t.Story}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(t.ID.String(), body["id"])
		s.Equal(t.Name, body["name"])
	})

	s.Run("error: 400 when name or story is missing", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "", "", "great cut").
			Return(catalog.Testimonial{}, commands.ErrMissingTestimonialFields).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"story": "great cut"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Name and Story are required")
	})
}

func (s *TestimonialHandlerTestSuite) TestDelete() {
	s.Run("success: returns 200", func() {
		id := ident.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/testimonials/"+id.String(), nil, testAdminSecret)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Deleted successfully", body["message"])
	})

	s.Run("error: 401 without the admin secret", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/testimonials/x", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
