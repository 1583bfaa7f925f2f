package http

import (
	"civic-notify/internal/broadcast"
	"civic-notify/internal/model"
	pkgErrors "civic-notify/pkg/errors"
	"civic-notify/pkg/paginator"
	"civic-notify/pkg/response"
)

type sendReq struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Zone       string `json:"zone"`
	Category   string `json:"category"`
	Priority   string `json:"priority"`
	SenderName string `json:"sender_name"`
}

func (req sendReq) toInput() (broadcast.SendInput, error) {
	collector := pkgErrors.NewValidationErrorCollector()

	zone, err := model.ParseZone(req.Zone)
	if err != nil {
		collector.Add(pkgErrors.NewValidationError(400, "zone", err.Error()))
	}
	category, err := model.ParseCategory(req.Category)
	if err != nil {
		collector.Add(pkgErrors.NewValidationError(400, "category", err.Error()))
	}
	priority, err := model.ParsePriority(req.Priority)
	if err != nil {
		collector.Add(pkgErrors.NewValidationError(400, "priority", err.Error()))
	}

	if collector.HasError() {
		return broadcast.SendInput{}, collector
	}

	return broadcast.SendInput{
		Title:      req.Title,
		Body:       req.Body,
		Zone:       zone,
		Category:   category,
		Priority:   priority,
		SenderName: req.SenderName,
	}, nil
}

type listReq struct {
	Zone string `form:"zone"`
	paginator.PaginateQuery
}

type broadcastResp struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	Zone           string            `json:"zone"`
	Category       string            `json:"category"`
	CategoryLabel  string            `json:"category_label"`
	Priority       string            `json:"priority"`
	CreatedAt      response.DateTime `json:"created_at"`
	RecipientCount int               `json:"recipient_count"`
	RecipientIDs   []string          `json:"recipient_ids"`
}

func newBroadcastResp(b model.Broadcast) broadcastResp {
	return broadcastResp{
		ID:             b.ID,
		Title:          b.Title,
		Body:           b.Body,
		Zone:           string(b.Zone),
		Category:       string(b.Category),
		CategoryLabel:  b.Category.Label(),
		Priority:       string(b.Priority),
		CreatedAt:      response.DateTime(b.CreatedAt),
		RecipientCount: b.RecipientCount,
		RecipientIDs:   b.RecipientIDs,
	}
}

type sendResp struct {
	Broadcast broadcastResp `json:"broadcast"`
	Delivered int           `json:"delivered"`
}

type listResp struct {
	Broadcasts []broadcastResp     `json:"broadcasts"`
	Paginator  paginator.Paginator `json:"paginator"`
}

func newListResp(op broadcast.ListOutput) listResp {
	items := make([]broadcastResp, len(op.Broadcasts))
	for i, b := range op.Broadcasts {
		items[i] = newBroadcastResp(b)
	}
	return listResp{Broadcasts: items, Paginator: op.Paginator}
}
