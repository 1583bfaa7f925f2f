package usecase

import (
	"context"

	"civic-notify/internal/broadcast"
	"civic-notify/internal/broadcast/repository"
)

func (uc *implUseCase) List(ctx context.Context, ip broadcast.ListInput) (broadcast.ListOutput, error) {
	opts := repository.GetOptions{
		Filter: repository.Filter{
			Zone: ip.Filter.Zone,
		},
		PaginateQuery: ip.PaginateQuery,
	}

	bcs, pag, err := uc.repo.Get(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.broadcast.usecase.List: %v", err)
		return broadcast.ListOutput{}, err
	}

	return broadcast.ListOutput{
		Broadcasts: bcs,
		Paginator:  pag,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (broadcast.DetailOutput, error) {
	b, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return broadcast.DetailOutput{}, broadcast.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.broadcast.usecase.Detail: %v", err)
		return broadcast.DetailOutput{}, err
	}

	return broadcast.DetailOutput{Broadcast: b}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return broadcast.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.broadcast.usecase.Delete: %v", err)
		return err
	}

	return nil
}
