package http

import (
	"net/http"

	"civic-notify/internal/broadcast"
	pkgErrors "civic-notify/pkg/errors"
	"civic-notify/pkg/response"
)

var errorMapping = response.ErrorMapping{
	broadcast.ErrNotFound:           pkgErrors.NewHTTPError(http.StatusNotFound, "Broadcast not found"),
	broadcast.ErrAudienceResolution: pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Recipient directory unavailable"),
}
