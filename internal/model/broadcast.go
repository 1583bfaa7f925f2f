package model

import (
	"fmt"
	"time"
)

// Zone is a named geographic filter for broadcast targeting.
type Zone string

const (
	ZoneCentro     Zone = "Centro"
	ZoneTarqui     Zone = "Tarqui"
	ZoneLitoral    Zone = "Litoral"
	ZoneLosEsteros Zone = "Los Esteros"
	ZoneJocay      Zone = "Jocay"

	// ZoneAll is the wildcard selector matching every zone.
	ZoneAll Zone = "Todas"
)

// Zones lists every valid zone selector, wildcard last.
func Zones() []Zone {
	return []Zone{ZoneCentro, ZoneTarqui, ZoneLitoral, ZoneLosEsteros, ZoneJocay, ZoneAll}
}

// ParseZone validates a zone selector string.
func ParseZone(s string) (Zone, error) {
	for _, z := range Zones() {
		if string(z) == s {
			return z, nil
		}
	}
	return "", fmt.Errorf("unknown zone %q", s)
}

// IsWildcard reports whether the zone matches all zones.
func (z Zone) IsWildcard() bool {
	return z == ZoneAll
}

// Category classifies a broadcast message.
type Category string

const (
	CategoryUrgentAlert         Category = "alerta"
	CategoryEvent               Category = "evento"
	CategoryServiceInterruption Category = "corte"
	CategoryGeneralInfo         Category = "informacion"
)

// ParseCategory validates a category string.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryUrgentAlert, CategoryEvent, CategoryServiceInterruption, CategoryGeneralInfo:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Label returns the operator-facing label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryUrgentAlert:
		return "Alerta Urgente"
	case CategoryEvent:
		return "Evento"
	case CategoryServiceInterruption:
		return "Corte de Servicio"
	case CategoryGeneralInfo:
		return "Información General"
	}
	return string(c)
}

// Priority ranks the urgency of a broadcast.
type Priority string

const (
	PriorityLow    Priority = "baja"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "alta"
)

// ParsePriority validates a priority string.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Broadcast is an operator-issued message targeted at a zone. It is the
// audit record of one send: created atomically at send time, never
// mutated afterwards. RecipientIDs is the frozen snapshot of the audience
// resolved at send time, even if zone membership later changes.
type Broadcast struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Zone           Zone      `json:"zone"`
	Category       Category  `json:"category"`
	Priority       Priority  `json:"priority"`
	CreatedAt      time.Time `json:"created_at"`
	RecipientCount int       `json:"recipient_count"`
	RecipientIDs   []string  `json:"recipient_ids"`
}
