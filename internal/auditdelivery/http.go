// Package auditdelivery manages delivery layer of supply oversight.
package auditdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/friendbank/friendbank/internal/domain"
	"github.com/friendbank/friendbank/pkg/errorspkg"
	"github.com/friendbank/friendbank/pkg/web"
)

// Service provides service layer interface needed by audit delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package auditdelivery
type Service interface {
	Supply(ctx context.Context) (domain.SupplyStats, error)
	ListLog(ctx context.Context, pageSize, pageID int32) ([]domain.AuditLogEntry, error)
}

// Handler facilitates audit delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns audit handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type dataSupply struct {
	Supply domain.SupplyStats `json:"supply"`
}
type responseSupply struct {
	Data dataSupply `json:"data,omitempty"`
}

// Supply handles http request to get the total money supply.
func (h *Handler) Supply(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	stats, err := h.service.Supply(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := responseSupply{
		Data: dataSupply{stats},
	}

	gctx.JSON(http.StatusOK, res)
}

type listLogRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type dataLog struct {
	AuditLog []domain.AuditLogEntry `json:"audit_log"`
}
type responseLog struct {
	Data dataLog `json:"data,omitempty"`
}

// ListLog handles http request to list the privileged operations audit log.
func (h *Handler) ListLog(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listLogRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	entries, err := h.service.ListLog(ctx, req.PageSize, req.PageID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := responseLog{
		Data: dataLog{entries},
	}

	gctx.JSON(http.StatusOK, res)
}
