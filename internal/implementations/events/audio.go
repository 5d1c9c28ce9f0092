package events

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/reminder"
)

type soundPayload struct {
	Src string `json:"src"`
}

// Audio asks the owner's open views to play a sound.
type Audio struct {
	streams *Streams
}

func NewAudio(streams *Streams) *Audio {
	if streams == nil {
		panic(e.NewNilArgumentError("streams"))
	}
	return &Audio{streams: streams}
}

func (a *Audio) Play(ctx context.Context, owner reminder.Owner, sound string) error {
	return a.streams.Publish(owner, EventSound, soundPayload{Src: sound})
}
