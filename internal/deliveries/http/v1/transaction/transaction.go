package transaction

import (
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/common/http"
	"github.com/mconway/firefly-iii/internal/common/validation"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/services"

	"github.com/labstack/echo/v4"
)

type transactionHandler struct {
	transactionSvc services.TransactionService
}

// New transaction handler will initialize the transactions/ resources endpoint
func New(app *echo.Group, transactionSvc services.TransactionService) {
	handler := transactionHandler{
		transactionSvc: transactionSvc,
	}
	api := app.Group("/transactions")
	api.POST("", handler.storeTransaction)
	api.GET("/:transactionId", handler.getTransaction)
}

func (h *transactionHandler) storeTransaction(c echo.Context) error {
	req := new(models.StoreTransactionRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(*req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	out, err := h.transactionSvc.Store(c.Request().Context(), *req)
	if err != nil {
		statusCode := nethttp.StatusInternalServerError
		switch {
		case errors.Is(err, common.ErrAccountNotFound):
			statusCode = nethttp.StatusUnprocessableEntity
		case errors.Is(err, common.ErrSameSourceDestination):
			statusCode = nethttp.StatusBadRequest
		}
		return http.RestErrorResponse(c, statusCode, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, out)
}

func (h *transactionHandler) getTransaction(c echo.Context) error {
	transactionID, err := strconv.ParseInt(c.Param("transactionId"), 10, 64)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, errors.New("transactionId must be a number"))
	}

	out, err := h.transactionSvc.GetByID(c.Request().Context(), transactionID)
	if err != nil {
		statusCode := nethttp.StatusInternalServerError
		if errors.Is(models.GetErrMap("TRX-404"), err) {
			statusCode = nethttp.StatusNotFound
		}
		return http.RestErrorResponse(c, statusCode, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, out)
}
