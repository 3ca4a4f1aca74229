package publishers

import (
	"time"

	"github.com/enerlens-hq/enerlens-pipeline/internal/domain"
)

// Event is the payload published after each completed cache refresh.
type Event struct {
	RefreshID    string           `json:"refresh_id"`
	ProducedAt   time.Time        `json:"produced_at"`
	ArticleCount int              `json:"article_count"`
	Articles     []domain.Article `json:"articles"`
}

// NewEvent constructs an Event for a finished refresh. RefreshID is the
// production timestamp in RFC3339, which is unique per refresh since
// refreshes are serialized.
func NewEvent(articles []domain.Article) Event {
	now := time.Now().UTC()
	return Event{
		RefreshID:    now.Format(time.RFC3339Nano),
		ProducedAt:   now,
		ArticleCount: len(articles),
		Articles:     articles,
	}
}
