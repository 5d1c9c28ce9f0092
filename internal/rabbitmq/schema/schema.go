package schema

import (
	"encoding/json"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/core/domain/user"
)

// SystemNotification is the message body of the system notification queue.
type SystemNotification struct {
	UserID       user.ID                   `json:"userId"`
	Notification notification.Notification `json:"notification"`
}

func (n *SystemNotification) Marshal() ([]byte, error) {
	return json.Marshal(n)
}

func (n *SystemNotification) Unmarshal(data []byte) error {
	return json.Unmarshal(data, n)
}
