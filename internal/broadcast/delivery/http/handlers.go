package http

import (
	"civic-notify/internal/broadcast"
	"civic-notify/internal/model"
	pkgErrors "civic-notify/pkg/errors"
	"civic-notify/pkg/response"

	"github.com/gin-gonic/gin"
)

// Send handles POST /broadcasts.
func (h *Handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.broadcast.delivery.http.Send.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewValidationError(400, "body", "invalid request body"))
		return
	}

	ip, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	op, err := h.uc.Send(ctx, ip)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, sendResp{
		Broadcast: newBroadcastResp(op.Broadcast),
		Delivered: op.Delivered,
	})
}

// List handles GET /broadcasts.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.broadcast.delivery.http.List.ShouldBindQuery: %v", err)
		response.Error(c, pkgErrors.NewValidationError(400, "query", "invalid query parameters"))
		return
	}

	var zone model.Zone
	if req.Zone != "" {
		parsed, err := model.ParseZone(req.Zone)
		if err != nil {
			response.Error(c, pkgErrors.NewValidationError(400, "zone", err.Error()))
			return
		}
		zone = parsed
	}

	op, err := h.uc.List(ctx, broadcast.ListInput{
		Filter:        broadcast.Filter{Zone: zone},
		PaginateQuery: req.PaginateQuery,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newListResp(op))
}

// Detail handles GET /broadcasts/:id.
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	op, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newBroadcastResp(op.Broadcast))
}

// Delete handles DELETE /broadcasts/:id. Only the audit record goes away;
// inbox entries already delivered stay where they are.
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}
