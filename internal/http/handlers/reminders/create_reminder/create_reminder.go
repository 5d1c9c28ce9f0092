package createreminder

import (
	"encoding/json"
	"errors"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
	service "healthmate/internal/core/services/create_reminder"
	"healthmate/internal/http/handlers/params"
	"healthmate/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	MedicineName string        `json:"medicineName"`
	Dosage       string        `json:"dosage"`
	CustomDosage string        `json:"customDosage"`
	Time         string        `json:"time"`
	Days         reminder.Days `json:"days"`
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.MedicineName, validation.Length(0, 128)),
		validation.Field(&i.Dosage, validation.Length(0, 64)),
		validation.Field(&i.CustomDosage, validation.Length(0, 64)),
		validation.Field(&i.Time, validation.Length(0, 16)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderBadRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			ProfileID: params.ProfileID(r),
			Draft: reminder.Draft{
				MedicineName: input.MedicineName,
				Dosage:       input.Dosage,
				CustomDosage: input.CustomDosage,
				Time:         input.Time,
				Days:         input.Days,
			},
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotAuthenticated):
			response.RenderUnauthorized(rw)
		case errors.Is(err, reminder.ErrStoreUnavailable):
			response.RenderUnavailable(rw)
		case isExpectedError(err):
			response.RenderRejected(rw, err)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusCreated)
}

func isExpectedError(err error) bool {
	return (errors.Is(err, reminder.ErrMedicineNameRequired) ||
		errors.Is(err, reminder.ErrDosageRequired) ||
		errors.Is(err, reminder.ErrCustomDosageRequired) ||
		errors.Is(err, reminder.ErrTimeRequired) ||
		errors.Is(err, reminder.ErrInvalidTime) ||
		errors.Is(err, reminder.ErrNoDaySelected) ||
		errors.Is(err, reminder.ErrInvalidOwner))
}
