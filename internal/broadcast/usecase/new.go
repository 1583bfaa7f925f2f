package usecase

import (
	"civic-notify/internal/audience"
	"civic-notify/internal/broadcast"
	"civic-notify/internal/broadcast/repository"
	"civic-notify/internal/directory"
	"civic-notify/internal/inbox"
	"civic-notify/internal/syncbus"
	pkgLog "civic-notify/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	directory directory.Client
	inbox     inbox.Store
	resolver  audience.Resolver
	sync      syncbus.Channel
}

func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dir directory.Client,
	store inbox.Store,
	resolver audience.Resolver,
	sync syncbus.Channel,
) broadcast.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		directory: dir,
		inbox:     store,
		resolver:  resolver,
		sync:      sync,
	}
}
