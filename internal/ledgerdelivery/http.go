// Package ledgerdelivery manages delivery layer of ledger operations.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/friendbank/friendbank/internal/domain"
	"github.com/friendbank/friendbank/internal/middleware"
	"github.com/friendbank/friendbank/pkg/errorspkg"
	"github.com/friendbank/friendbank/pkg/tokenpkg"
	"github.com/friendbank/friendbank/pkg/web"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Deposit(ctx context.Context, actorID int32, actorRole domain.Role, targetUsername, amount string) (domain.DepositTxResult, error)
	Withdraw(ctx context.Context, actorID int32, actorRole domain.Role, targetUsername, amount string) (domain.WithdrawTxResult, error)
	Transfer(ctx context.Context, senderUserID int32, recipientUsername, amount string) (domain.TransferTxResult, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(ls Service) *Handler {
	return &Handler{
		service: ls,
	}
}

type accountantRequest struct {
	Username string `json:"username" binding:"required,alphanum"`
	Amount   string `json:"amount" binding:"required,amount"`
}

type depositData struct {
	Deposit domain.DepositTxResult `json:"deposit"`
}

type depositResponse struct {
	Data depositData `json:"data,omitempty"`
}

// Deposit handles http request to inject money into a user's account.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req accountantRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.Deposit(ctx, authPayload.UserID, domain.Role(authPayload.Role), req.Username, req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		abortWithError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, depositResponse{Data: depositData{result}})
}

type withdrawData struct {
	Withdrawal domain.WithdrawTxResult `json:"withdrawal"`
}

type withdrawResponse struct {
	Data withdrawData `json:"data,omitempty"`
}

// Withdraw handles http request to remove money from a user's account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req accountantRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.Withdraw(ctx, authPayload.UserID, domain.Role(authPayload.Role), req.Username, req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		abortWithError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, withdrawResponse{Data: withdrawData{result}})
}

type transferRequest struct {
	RecipientUsername string `json:"recipient_username" binding:"required,alphanum"`
	Amount            string `json:"amount" binding:"required,amount"`
}

type transferData struct {
	Transfer domain.TransferTxResult `json:"transfer"`
}

type transferResponse struct {
	Data transferData `json:"data,omitempty"`
}

// Transfer handles http request to move money between two users.
func (h *Handler) Transfer(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.Transfer(ctx, authPayload.UserID, req.RecipientUsername, req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		abortWithError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, transferResponse{Data: transferData{result}})
}

// abortWithError maps domain errors to stable client facing statuses.
// Anything unclassified is reported as an internal error without details.
func abortWithError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrAccountantRequired:
		gctx.JSON(http.StatusForbidden, web.Error(err))
	case domain.ErrUserNotFound,
		domain.ErrAccountNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.ErrInvalidAmount,
		domain.ErrNegativeAmount,
		domain.ErrInsufficientBalance,
		domain.ErrSelfTransfer:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
