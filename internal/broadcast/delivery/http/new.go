package http

import (
	"civic-notify/internal/broadcast"
	pkgLog "civic-notify/pkg/log"
)

// Handler exposes the broadcast use case over HTTP.
type Handler struct {
	l  pkgLog.Logger
	uc broadcast.UseCase
}

func New(l pkgLog.Logger, uc broadcast.UseCase) *Handler {
	return &Handler{l: l, uc: uc}
}
