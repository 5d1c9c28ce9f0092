package notification

import (
	"context"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/domain/user"
	"sync"
)

type FakePermissionRepository struct {
	GetError error
	SetError error
	byUser   map[user.ID]Permission
	lock     sync.Mutex
}

func NewFakePermissionRepository() *FakePermissionRepository {
	return &FakePermissionRepository{byUser: make(map[user.ID]Permission)}
}

func (r *FakePermissionRepository) Get(ctx context.Context, userID user.ID) (Permission, error) {
	if r.GetError != nil {
		return PermissionDefault, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	p, ok := r.byUser[userID]
	if !ok {
		return PermissionDefault, nil
	}
	return p, nil
}

func (r *FakePermissionRepository) Set(ctx context.Context, userID user.ID, p Permission) error {
	if r.SetError != nil {
		return r.SetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.byUser[userID] = p
	return nil
}

type SentNotification struct {
	UserID       user.ID
	Notification Notification
}

type FakeSystemNotifier struct {
	Error error
	Sent  []SentNotification
	lock  sync.Mutex
}

func NewFakeSystemNotifier() *FakeSystemNotifier {
	return &FakeSystemNotifier{}
}

func (n *FakeSystemNotifier) Notify(ctx context.Context, userID user.ID, notification Notification) error {
	n.lock.Lock()
	defer n.lock.Unlock()
	if n.Error != nil {
		return n.Error
	}
	n.Sent = append(n.Sent, SentNotification{UserID: userID, Notification: notification})
	return nil
}

type FakeBanner struct {
	ShowError error
	Shown     []reminder.Reminder
	Dismissed []reminder.Owner
	lock      sync.Mutex
}

func NewFakeBanner() *FakeBanner {
	return &FakeBanner{}
}

func (b *FakeBanner) Show(ctx context.Context, owner reminder.Owner, r reminder.Reminder) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.ShowError != nil {
		return b.ShowError
	}
	b.Shown = append(b.Shown, r)
	return nil
}

func (b *FakeBanner) Dismiss(ctx context.Context, owner reminder.Owner) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.Dismissed = append(b.Dismissed, owner)
	return nil
}

type FakeAudioPlayer struct {
	Error  error
	Played []string
	lock   sync.Mutex
}

func NewFakeAudioPlayer() *FakeAudioPlayer {
	return &FakeAudioPlayer{}
}

func (p *FakeAudioPlayer) Play(ctx context.Context, owner reminder.Owner, sound string) error {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.Error != nil {
		return p.Error
	}
	p.Played = append(p.Played, sound)
	return nil
}

type FakeDispatcher struct {
	Dispatched []reminder.Reminder
	lock       sync.Mutex
}

func NewFakeDispatcher() *FakeDispatcher {
	return &FakeDispatcher{}
}

func (d *FakeDispatcher) Dispatch(ctx context.Context, owner reminder.Owner, r reminder.Reminder) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.Dispatched = append(d.Dispatched, r)
}

func (d *FakeDispatcher) Count() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return len(d.Dispatched)
}
