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
	"pos-terminal/internal/usecase/commands"
	"pos-terminal/internal/usecase/queries"
	"pos-terminal/tests/common/httptest"
	"pos-terminal/tests/common/testutil"
	commandsmock "pos-terminal/tests/mock/commands"
	queriesmock "pos-terminal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	h := api.NewCartHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/cart", h.Get)
	s.router.POST("/cart/items", h.AddItem)
	s.router.PATCH("/cart/items/:index", h.UpdateQuantity)
	s.router.DELETE("/cart/items/:index", h.RemoveItem)
	s.router.POST("/cart/scan", h.Scan)
	s.router.POST("/cart/hold", h.Hold)
	s.router.GET("/cart/held", h.ListHeld)
	s.router.POST("/cart/held/:id/resume", h.ResumeHeld)
	s.router.DELETE("/cart/held/:id", h.DiscardHeld)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// two colas: 3.98 + 8% tax
func colaCartView() *queries.CartView {
	return &queries.CartView{
		Lines: []queries.CartLineView{{
			Index:        0,
			ProductID:    "3",
			ProductName:  "Coca Cola",
			DisplayName:  "Coca Cola",
			UnitPrice:    dec("1.99"),
			Quantity:     2,
			StockCeiling: 100,
			TaxRate:      dec("0.08"),
			LineTotal:    dec("3.98"),
		}},
		Table:     "T4",
		ItemCount: 2,
		Totals: queries.TotalsView{
			Subtotal: dec("3.98"),
			Tax:      dec("0.3184"),
			Discount: decimal.Zero,
			Total:    dec("4.2984"),
		},
	}
}

func (s *CartHandlerTestSuite) TestGet() {
	s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(colaCartView(), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil)

	var response resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Lines, 1)
	s.Equal("1.99", response.Lines[0].UnitPrice)
	s.Equal("3.98", response.Lines[0].LineTotal)
	s.Equal(100, response.Lines[0].StockCeiling)
	s.Equal("T4", response.Table)
	s.Equal(resdto.TotalsResponse{Subtotal: "3.98", Tax: "0.32", Discount: "0.00", Total: "4.30"}, response.Totals)
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"
	reqBody := reqdto.AddItemRequest{
		ProductID: "1",
		VariantID: "1-2",
		Choices:   map[string][]string{"burger-size": {"large"}},
		Quantity:  1,
	}

	s.Run("success: returns the cart", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), commands.AddItemRequest{
			ProductID: "1",
			VariantID: "1-2",
			Choices:   map[string][]string{"burger-size": {"large"}},
			Quantity:  1,
		}).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(colaCartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resdto.CartResponse{})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "missing productId", mutate: testutil.Field("productId", nil), expectCode: http.StatusBadRequest},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown product", commandsError: errs.ErrProductNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Product not found"},
			{name: "bad selection", commandsError: errs.ErrInvalidSelection, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid product selection"},
			{name: "store failure", commandsError: errs.ErrStoreOperationFailed, expectedStatus: http.StatusInternalServerError, expectedMsg: "Add item failed"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestScan() {
	url := "/cart/scan"

	s.Run("success: simple product is added", func() {
		s.mockCommands.EXPECT().ScanBarcode(gomock.Any(), "9781234567897").
			Return(commands.ScanResult{ProductID: "3", Added: true}, nil).Times(1)
		s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(colaCartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ScanRequest{Barcode: "9781234567897"})
		var response resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Added)
		s.False(response.NeedsVariant)
		s.Require().NotNil(response.Cart)
		s.Equal(2, response.Cart.ItemCount)
	})

	s.Run("success: product with variants asks for one", func() {
		s.mockCommands.EXPECT().ScanBarcode(gomock.Any(), "5901234123457").
			Return(commands.ScanResult{ProductID: "1"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ScanRequest{Barcode: "5901234123457"})
		var response resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Added)
		s.True(response.NeedsVariant)
		s.Nil(response.Cart)
	})

	s.Run("error: unknown barcode", func() {
		s.mockCommands.EXPECT().ScanBarcode(gomock.Any(), "000").Return(commands.ScanResult{}, errs.ErrUnknownBarcode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ScanRequest{Barcode: "000"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Unknown barcode")
	})
}

func (s *CartHandlerTestSuite) TestLines() {
	s.Run("update quantity", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), 0, 5).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(colaCartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/0", reqdto.UpdateQuantityRequest{Quantity: 5})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("non-numeric index", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/first", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid line index")
	})

	s.Run("missing line", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), 7).Return(errs.ErrLineNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/7", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart line not found")
	})
}

func (s *CartHandlerTestSuite) TestHeldOrders() {
	id := uuid.New()

	s.Run("hold returns 201 with the id", func() {
		s.mockCommands.EXPECT().HoldOrder(gomock.Any()).Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/hold", nil)
		var response resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id.String(), response.ID)
	})

	s.Run("hold on an empty cart", func() {
		s.mockCommands.EXPECT().HoldOrder(gomock.Any()).Return(uuid.Nil, errs.ErrEmptyCart).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/hold", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cart is empty")
	})

	s.Run("list", func() {
		heldAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().ListHeldOrders(gomock.Any()).Return([]queries.HeldOrderView{
			{ID: id, HeldAt: heldAt, Table: "T4", ItemCount: 2, Total: dec("4.2984")},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart/held", nil)
		var response []resdto.HeldOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]resdto.HeldOrderResponse{
			{ID: id.String(), HeldAt: heldAt, Table: "T4", ItemCount: 2, Total: "4.30"},
		}, response)
	})

	s.Run("resume into a non-empty cart", func() {
		s.mockCommands.EXPECT().ResumeHeldOrder(gomock.Any(), id).Return(errs.ErrCartNotResumable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/held/"+id.String()+"/resume", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cart must be empty")
	})

	s.Run("resume with a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/held/not-a-uuid/resume", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("discard unknown order", func() {
		s.mockCommands.EXPECT().DiscardHeldOrder(gomock.Any(), id).Return(errs.ErrHeldOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/held/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Held order not found")
	})
}
