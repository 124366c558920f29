//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"pos-terminal/internal/handler/api"
	reqdto "pos-terminal/internal/handler/dto/request"
	resdto "pos-terminal/internal/handler/dto/response"
	"pos-terminal/internal/pkg/errs"
	"pos-terminal/internal/usecase/queries"
	"pos-terminal/tests/common/httptest"
	commandsmock "pos-terminal/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	h := api.NewCheckoutHandler(s.mockCommands)

	s.router.POST("/checkout", h.Open)
	s.router.GET("/checkout", h.Current)
	s.router.DELETE("/checkout", h.Cancel)
	s.router.PUT("/checkout/tip", h.SetTip)
	s.router.PUT("/checkout/amount", h.SetAmount)
	s.router.PUT("/checkout/method", h.SetMethod)
	s.router.POST("/checkout/complete", h.Complete)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func checkoutView() *queries.CheckoutView {
	percent := 20
	return &queries.CheckoutView{
		Total:         dec("32.989"),
		TipAmount:     dec("6.60"),
		TipPercent:    &percent,
		TotalWithTip:  dec("39.589"),
		CurrentAmount: dec("39.59"),
		Remaining:     dec("0"),
		CashReceived:  dec("50"),
		Change:        dec("10.41"),
		Method:        "cash",
		PrintReceipt:  true,
		TipPresets:    []int{15, 18, 20, 25},
		OpenedAt:      time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *CheckoutHandlerTestSuite) TestOpen() {
	s.Run("success: amounts are rendered with two decimals", func() {
		s.mockCommands.EXPECT().Open(gomock.Any()).Return(checkoutView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", nil)
		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("32.99", response.Total)
		s.Equal("6.60", response.TipAmount)
		s.Equal("39.59", response.TotalWithTip)
		s.Equal("10.41", response.Change)
		s.Require().NotNil(response.TipPercent)
		s.Equal(20, *response.TipPercent)
		s.Equal([]int{15, 18, 20, 25}, response.TipPresets)
	})

	s.Run("error: empty cart", func() {
		s.mockCommands.EXPECT().Open(gomock.Any()).Return(nil, errs.ErrEmptyCart).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cart is empty")
	})
}

func (s *CheckoutHandlerTestSuite) TestNoOpenCheckout() {
	s.mockCommands.EXPECT().Current(gomock.Any()).Return(nil, errs.ErrNoOpenCheckout).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkout", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No checkout in progress")

	s.mockCommands.EXPECT().Cancel(gomock.Any()).Return(errs.ErrNoOpenCheckout).Times(1)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/checkout", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No checkout in progress")
}

func (s *CheckoutHandlerTestSuite) TestSetTip() {
	url := "/checkout/tip"

	s.Run("preset percentage", func() {
		s.mockCommands.EXPECT().SelectTip(gomock.Any(), 20).Return(checkoutView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"percent": 20})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("custom amount", func() {
		s.mockCommands.EXPECT().SetCustomTip(gomock.Any(), dec("4.5")).Return(checkoutView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"amount": "4.5"})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("neither percent nor amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "percent or amount is required")
	})

	s.Run("percentage out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"percent": 150})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("negative custom tip", func() {
		s.mockCommands.EXPECT().SetCustomTip(gomock.Any(), dec("-1")).Return(nil, errs.ErrDomainValidation).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"amount": "-1"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})
}

func (s *CheckoutHandlerTestSuite) TestSetMethod() {
	s.Run("valid method", func() {
		s.mockCommands.EXPECT().SetMethod(gomock.Any(), "card").Return(checkoutView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/checkout/method", reqdto.MethodRequest{Method: "card"})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown method is rejected at binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/checkout/method", reqdto.MethodRequest{Method: "cheque"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CheckoutHandlerTestSuite) TestComplete() {
	s.Run("partial payment", func() {
		completedAt := time.Date(2024, 5, 1, 9, 5, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Complete(gomock.Any()).Return(&queries.CompletionView{
			Kind:        "partial",
			Total:       dec("32.989"),
			Tip:         dec("0"),
			Amount:      dec("20"),
			Remaining:   dec("12.989"),
			Change:      dec("0"),
			Method:      "card",
			CompletedAt: completedAt,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/complete", nil)
		var response resdto.CompletionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.CompletionResponse{
			Kind:        "partial",
			Total:       "32.99",
			Tip:         "0.00",
			Amount:      "20.00",
			Remaining:   "12.99",
			Change:      "0.00",
			Method:      "card",
			CompletedAt: completedAt,
		}, response)
	})

	s.Run("nothing to complete", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any()).Return(nil, errs.ErrNoOpenCheckout).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/complete", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No checkout in progress")
	})
}

func (s *CheckoutHandlerTestSuite) TestSetAmount() {
	s.mockCommands.EXPECT().SetAmount(gomock.Any(), dec("12.5")).Return(checkoutView(), nil).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/checkout/amount", map[string]any{"amount": 12.5})
	s.Equal(http.StatusOK, rec.Code)
}
