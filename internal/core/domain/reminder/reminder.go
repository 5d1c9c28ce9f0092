package reminder

import (
	"healthmate/internal/core/domain/user"
)

type ID string

type ProfileID string

// Owner is the (user, profile) pair a reminder collection belongs to.
type Owner struct {
	UserID    user.ID
	ProfileID ProfileID
}

func NewOwner(userID user.ID, profileID ProfileID) Owner {
	return Owner{UserID: userID, ProfileID: profileID}
}

func (o Owner) Validate() error {
	if o.UserID == "" || o.ProfileID == "" {
		return ErrInvalidOwner
	}
	return nil
}

func (o Owner) String() string {
	return string(o.UserID) + "/" + string(o.ProfileID)
}

type Reminder struct {
	ID           ID     `json:"id"`
	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage"`
	Time         string `json:"time"`
	Days         Days   `json:"days"`
	IsActive     bool   `json:"isActive"`
}

type IDGenerator interface {
	GenerateID() ID
}

// Locker serializes read-modify-write cycles on one owner's collection.
type Locker interface {
	Lock(owner Owner) (unlock func())
}
