//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/handler/api"
	"barber-booking/internal/handler/middleware"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/pkg/ident"
	"barber-booking/internal/usecase/commands"
	"barber-booking/tests/common/builder"
	"barber-booking/tests/common/httptest"
	"barber-booking/tests/common/testutil"
	commandsmock "barber-booking/tests/mock/commands"
	queriesmock "barber-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testAdminSecret = "test-secret"

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	adminMiddleware := middleware.NewAdminMiddleware(config.NewTestConfig())

	s.router.POST("/api/bookings", s.handler.Create)
	s.router.GET("/api/bookings", adminMiddleware.RequireAdmin(), s.handler.List)
	s.router.DELETE("/api/bookings/:id", adminMiddleware.RequireAdmin(), s.handler.Delete)
	s.router.PATCH("/api/bookings/:id/confirm", adminMiddleware.RequireAdmin(), s.handler.Confirm)
	s.router.GET("/api/stats/bookings", adminMiddleware.RequireAdmin(), s.handler.Stats)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the new booking id", func() {
		id := ident.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Booking successful", body["message"])
		s.Equal(id.String(), body["id"])
	})

	s.Run("error: 400 Bad Request when required fields are missing", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(ident.ID(""), commands.ErrMissingDetails).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", ""))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing booking details")
	})

	s.Run("error: 400 Bad Request on malformed JSON body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 Conflict when the slot is taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(ident.ID(""), commands.ErrSlotTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "This time slot is already booked. Please choose another time.")
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(ident.ID(""), errs.Mark(errs.New("disk full"), commands.ErrStorageFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	url := "/api/bookings"

	s.Run("success: returns all bookings", func() {
		records := []booking.Record{builder.NewBookingBuilder().BuildRecord()}
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(records, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testAdminSecret)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(records[0].Name, body[0]["name"])
		s.Equal("pending", body[0]["status"])
	})

	s.Run("error: 401 Unauthorized without the admin secret", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 401 Unauthorized with a wrong secret", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "wrong-secret")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("success: returns 200 with confirmation message", func() {
		id := ident.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/"+id.String(), nil, testAdminSecret)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Deleted successfully", body["message"])
	})

	s.Run("success: unknown id still returns 200", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), ident.ID("nope")).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/nope", nil, testAdminSecret)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Deleted successfully", body["message"])
	})

	s.Run("error: 401 Unauthorized without the admin secret", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/anything", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirm() {
	s.Run("success: returns the confirmed booking", func() {
		confirmed := builder.NewBookingBuilder().BuildRecord()
		confirmed.Confirm()
		s.mockCommands.EXPECT().Confirm(gomock.Any(), confirmed.ID).
			Return(confirmed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/bookings/"+confirmed.ID.String()+"/confirm", nil, testAdminSecret)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body["status"])
		s.Equal(confirmed.Email, body["email"])
	})

	s.Run("error: 404 Not Found for an unknown booking", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), ident.ID("missing")).
			Return(booking.Record{}, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/bookings/missing/confirm", nil, testAdminSecret)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 401 Unauthorized without the admin secret", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/bookings/x/confirm", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestStats
// ================================================================================

func (s *BookingHandlerTestSuite) TestStats() {
	url := "/api/stats/bookings"

	s.Run("success: returns the per-day counts", func() {
		stats := map[string]int{"2026-09-14": 2, "2026-09-15": 0}
		s.mockQueries.EXPECT().StatsByDate(gomock.Any()).
			Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testAdminSecret)

		var body map[string]int
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(stats, body)
	})

	s.Run("error: 401 Unauthorized without the admin secret", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
