package events

import (
	"encoding/json"
	"fmt"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/reminder"
	"net/url"

	"github.com/r3labs/sse/v2"
)

const (
	EventBanner          = "banner"
	EventBannerDismissed = "banner_dismissed"
	EventSound           = "sound"
)

type Publisher interface {
	Publish(id string, event *sse.Event)
}

// StreamID names the SSE stream carrying one owner's events.
func StreamID(owner reminder.Owner) string {
	return fmt.Sprintf("%s:%s", url.PathEscape(string(owner.UserID)), url.PathEscape(string(owner.ProfileID)))
}

// Streams publishes JSON events to per-owner SSE streams.
type Streams struct {
	publisher Publisher
}

func NewStreams(publisher Publisher) *Streams {
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	return &Streams{publisher: publisher}
}

func (s *Streams) Publish(owner reminder.Owner, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	s.publisher.Publish(StreamID(owner), &sse.Event{Event: []byte(event), Data: data})
	return nil
}
