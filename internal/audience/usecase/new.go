package usecase

import (
	"civic-notify/internal/audience"
	pkgLog "civic-notify/pkg/log"
)

type implResolver struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) audience.Resolver {
	return &implResolver{l: l}
}
