package broadcast

import (
	"civic-notify/internal/model"
	"civic-notify/pkg/paginator"
)

const (
	// MaxTitleLength bounds the broadcast title, in characters.
	MaxTitleLength = 100
	// MaxBodyLength bounds the broadcast body, in characters.
	MaxBodyLength = 500
)

type SendInput struct {
	Title      string
	Body       string
	Zone       model.Zone
	Category   model.Category
	Priority   model.Priority
	SenderName string
}

type SendOutput struct {
	Broadcast model.Broadcast
	// Delivered counts the inbox entries actually persisted. It can fall
	// short of Broadcast.RecipientCount when individual deliveries fail;
	// the audit record keeps reporting the resolved audience.
	Delivered int
}

type Filter struct {
	Zone model.Zone
}

type ListInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Broadcasts []model.Broadcast
	Paginator  paginator.Paginator
}

type DetailOutput struct {
	Broadcast model.Broadcast
}
