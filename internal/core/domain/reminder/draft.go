package reminder

import "strings"

const DosageOther = "Other"

var DosageOptions = []string{
	"1 tablet",
	"2 tablets",
	"5ml",
	"10ml",
	"1 capsule",
	"2 capsules",
	"1 tsp",
	DosageOther,
}

// Draft is a reminder as submitted by the user, before an ID is assigned.
type Draft struct {
	MedicineName string
	Dosage       string
	CustomDosage string
	Time         string
	Days         Days
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.MedicineName) == "" {
		return ErrMedicineNameRequired
	}
	dosage := strings.TrimSpace(d.Dosage)
	if dosage == "" {
		return ErrDosageRequired
	}
	if dosage == DosageOther && strings.TrimSpace(d.CustomDosage) == "" {
		return ErrCustomDosageRequired
	}
	if strings.TrimSpace(d.Time) == "" {
		return ErrTimeRequired
	}
	if _, err := ParseTime(d.Time); err != nil {
		return err
	}
	if !d.Days.Any() {
		return ErrNoDaySelected
	}
	return nil
}

func (d Draft) ResolvedDosage() string {
	dosage := strings.TrimSpace(d.Dosage)
	if dosage == DosageOther {
		return strings.TrimSpace(d.CustomDosage)
	}
	return dosage
}

// ToReminder builds an active reminder. The draft must be valid.
func (d Draft) ToReminder(id ID) Reminder {
	return Reminder{
		ID:           id,
		MedicineName: strings.TrimSpace(d.MedicineName),
		Dosage:       d.ResolvedDosage(),
		Time:         d.Time,
		Days:         d.Days,
		IsActive:     true,
	}
}
