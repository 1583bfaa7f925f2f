package usecase

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"civic-notify/internal/broadcast"
	pkgErrors "civic-notify/pkg/errors"
)

func validateSendInput(ip broadcast.SendInput) error {
	collector := pkgErrors.NewValidationErrorCollector()

	title := strings.TrimSpace(ip.Title)
	if title == "" {
		collector.Add(pkgErrors.NewValidationError(400, "title", "title is required"))
	} else if utf8.RuneCountInString(title) > broadcast.MaxTitleLength {
		collector.Add(pkgErrors.NewValidationError(400, "title",
			fmt.Sprintf("title must be at most %d characters", broadcast.MaxTitleLength)))
	}

	body := strings.TrimSpace(ip.Body)
	if body == "" {
		collector.Add(pkgErrors.NewValidationError(400, "body", "body is required"))
	} else if utf8.RuneCountInString(body) > broadcast.MaxBodyLength {
		collector.Add(pkgErrors.NewValidationError(400, "body",
			fmt.Sprintf("body must be at most %d characters", broadcast.MaxBodyLength)))
	}

	if collector.HasError() {
		return collector
	}
	return nil
}

// newBroadcastID derives a unique id from send time. Sends are human
// paced, but the uuid fragment keeps sub-millisecond sends collision-free
// rather than trusting the wall clock alone.
func newBroadcastID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
