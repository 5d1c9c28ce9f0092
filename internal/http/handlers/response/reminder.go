package response

import (
	"healthmate/internal/core/domain/reminder"
	"time"
)

type Reminder struct {
	ID           string        `json:"id"`
	MedicineName string        `json:"medicineName"`
	Dosage       string        `json:"dosage"`
	Time         string        `json:"time"`
	Days         reminder.Days `json:"days"`
	DaysLabel    string        `json:"daysLabel"`
	IsActive     bool          `json:"isActive"`
	NextAt       *time.Time    `json:"nextAt,omitempty"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = string(dr.ID)
	r.MedicineName = dr.MedicineName
	r.Dosage = dr.Dosage
	r.Time = dr.Time
	r.Days = dr.Days
	r.DaysLabel = dr.Days.String()
	r.IsActive = dr.IsActive
}
