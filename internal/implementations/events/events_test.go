package events

import (
	"context"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/reminder"
	"sync"
	"testing"
	"time"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/suite"
)

type published struct {
	stream string
	event  string
	data   string
}

type fakePublisher struct {
	events []published
	lock   sync.Mutex
}

func (p *fakePublisher) Publish(id string, event *sse.Event) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.events = append(p.events, published{stream: id, event: string(event.Event), data: string(event.Data)})
}

func (p *fakePublisher) names() []string {
	p.lock.Lock()
	defer p.lock.Unlock()
	names := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		names = append(names, ev.event)
	}
	return names
}

var (
	Owner   = reminder.NewOwner("user-1", "profile-1")
	Aspirin = reminder.Reminder{
		ID:           "1",
		MedicineName: "Aspirin",
		Dosage:       "1 tablet",
		Time:         "8:00 AM",
		Days:         reminder.NewDays(time.Monday),
		IsActive:     true,
	}
)

type testSuite struct {
	suite.Suite
	publisher *fakePublisher
	streams   *Streams
}

func (s *testSuite) SetupTest() {
	s.publisher = &fakePublisher{}
	s.streams = NewStreams(s.publisher)
}

func TestEvents(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestStreamID() {
	s.Equal("user-1:profile-1", StreamID(Owner))
	s.Equal("a%2Fb:c", StreamID(reminder.NewOwner("a/b", "c")))
}

func (s *testSuite) TestAudio() {
	err := NewAudio(s.streams).Play(context.Background(), Owner, "/notification-sound.mp3")

	s.Require().Nil(err)
	s.Equal([]published{
		{stream: "user-1:profile-1", event: EventSound, data: `{"src":"/notification-sound.mp3"}`},
	}, s.publisher.events)
}

func (s *testSuite) TestBannerShow() {
	banner := NewBanner(logging.NewFakeLogger(), s.streams, time.Hour)
	defer banner.Close()

	err := banner.Show(context.Background(), Owner, Aspirin)

	s.Require().Nil(err)
	s.Require().Len(s.publisher.events, 1)
	s.Equal(EventBanner, s.publisher.events[0].event)
	s.JSONEq(
		`{"reminder":{"id":"1","medicineName":"Aspirin","dosage":"1 tablet","time":"8:00 AM",`+
			`"days":{"monday":true,"tuesday":false,"wednesday":false,"thursday":false,"friday":false,"saturday":false,"sunday":false},`+
			`"isActive":true},"durationMs":3600000}`,
		s.publisher.events[0].data,
	)
}

func (s *testSuite) TestBannerAutoDismiss() {
	banner := NewBanner(logging.NewFakeLogger(), s.streams, 20*time.Millisecond)

	s.Require().Nil(banner.Show(context.Background(), Owner, Aspirin))

	s.Eventually(func() bool {
		return len(s.publisher.names()) == 2
	}, time.Second, 5*time.Millisecond)
	s.Equal([]string{EventBanner, EventBannerDismissed}, s.publisher.names())
	s.Equal(`{"reminderId":"1"}`, s.publisher.events[1].data)
}

func (s *testSuite) TestBannerDismissEarly() {
	banner := NewBanner(logging.NewFakeLogger(), s.streams, 50*time.Millisecond)
	ctx := context.Background()

	s.Require().Nil(banner.Show(ctx, Owner, Aspirin))
	s.Require().Nil(banner.Dismiss(ctx, Owner))
	s.Require().Nil(banner.Dismiss(ctx, Owner))
	time.Sleep(100 * time.Millisecond)

	s.Equal([]string{EventBanner, EventBannerDismissed}, s.publisher.names())
}

func (s *testSuite) TestNewerBannerReplacesTimer() {
	banner := NewBanner(logging.NewFakeLogger(), s.streams, 30*time.Millisecond)
	ctx := context.Background()
	second := Aspirin
	second.ID = "2"

	s.Require().Nil(banner.Show(ctx, Owner, Aspirin))
	s.Require().Nil(banner.Show(ctx, Owner, second))
	time.Sleep(100 * time.Millisecond)

	s.Equal([]string{EventBanner, EventBanner, EventBannerDismissed}, s.publisher.names())
	s.Equal(`{"reminderId":"2"}`, s.publisher.events[2].data)
}
