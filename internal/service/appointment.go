package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/group8-health/health/internal"
	"github.com/group8-health/health/internal/scheduling"
	"github.com/group8-health/health/internal/storage"
)

var validate = validator.New()

type AppointmentRequest struct {
	PatientName    string `json:"patient_name" validate:"required"`
	PatientAge     int    `json:"patient_age" validate:"gte=0"`
	PatientContact string `json:"patient_contact"`
	Doctor         string `json:"doctor" validate:"required"`
	Date           string `json:"date" validate:"required"` // 2006-01-02
	Time           string `json:"time" validate:"required"`
}

func ValidateAppointmentRequest(req *AppointmentRequest) error {
	return validate.Struct(req)
}

// BookAppointment checks the doctor's availability for the requested date and,
// if bookable, appends the appointment to the ledger and persists the grown
// list through the appointment repository. Unavailability is a rejection, not
// an error; nothing is mutated before the availability check passes.
func BookAppointment(ctx context.Context, roster *scheduling.Roster, ledger *scheduling.Ledger,
	apptRepo storage.AppointmentRepository, user *internal.User, req *AppointmentRequest) (*internal.Appointment, *internal.Rejection, error) {

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	doctor, err := roster.Get(req.Doctor)
	if err != nil {
		return nil, nil, err
	}

	available, err := roster.IsAvailable(req.Doctor, date)
	if err != nil {
		return nil, nil, err
	}
	if !available {
		return nil, &internal.Rejection{
			Reason: internal.DoctorUnavailable,
			Message: fmt.Sprintf("%s is not available on %s. Please select a different date.",
				doctor.Name, date.Weekday().String()),
		}, nil
	}

	appt := internal.Appointment{
		ID:             uuid.NewString(),
		PatientName:    req.PatientName,
		PatientAge:     req.PatientAge,
		PatientContact: req.PatientContact,
		Doctor:         doctor.Name,
		Specialty:      doctor.Specialty,
		Date:           req.Date,
		Time:           req.Time,
		CreatedAt:      time.Now(),
	}
	ledger.Append(appt)

	if err := apptRepo.SaveAppointments(ctx, user.ID, ledger.List()); err != nil {
		// The ledger stays authoritative for the session; persistence
		// failure is reported but the booking stands.
		return &appt, nil, fmt.Errorf("appointment booked but not persisted: %w", err)
	}
	return &appt, nil, nil
}
