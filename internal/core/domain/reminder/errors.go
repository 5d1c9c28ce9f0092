package reminder

import "errors"

var (
	ErrMedicineNameRequired = errors.New("medicine name is required")
	ErrDosageRequired       = errors.New("dosage is required")
	ErrCustomDosageRequired = errors.New("custom dosage is required")
	ErrTimeRequired         = errors.New("time is required")
	ErrInvalidTime          = errors.New("time must look like 8:00 AM")
	ErrNoDaySelected        = errors.New("at least one day must be selected")
	ErrReminderNotFound     = errors.New("reminder does not exist")
	ErrInvalidOwner         = errors.New("user and profile must be set")
	ErrStoreUnavailable     = errors.New("reminders are temporarily unavailable")
)
