package repository

import (
	"civic-notify/internal/model"
	"civic-notify/pkg/paginator"
)

// Filter contains filtering options for audit log queries.
type Filter struct {
	Zone model.Zone
}

// CreateOptions contains options for recording a sent broadcast.
type CreateOptions struct {
	Broadcast model.Broadcast
}

// GetOptions contains options for paginated audit log listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
