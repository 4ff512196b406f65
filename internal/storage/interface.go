package storage

import (
	"context"

	"github.com/group8-health/health/internal"
)

type ProfileRepository interface {
	GetUser(ctx context.Context, userID string) (*internal.User, error)
	GetUserByToken(ctx context.Context, token string) (*internal.User, error)
	UpdateUser(ctx context.Context, user *internal.User) error
}

type VitalsRepository interface {
	SaveDailyRecord(ctx context.Context, rec *internal.DailyRecord) error
	ListDailyRecords(ctx context.Context, userID string) ([]internal.DailyRecord, error)
}

type AppointmentRepository interface {
	// SaveAppointments persists the user's full appointment list; the
	// in-memory ledger stays authoritative during the session.
	SaveAppointments(ctx context.Context, userID string, appts []internal.Appointment) error
	ListAppointments(ctx context.Context, userID string) ([]internal.Appointment, error)
}
