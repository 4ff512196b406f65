package api

import (
	"github.com/group8-health/health/internal"
	"github.com/group8-health/health/internal/beds"
	"github.com/group8-health/health/internal/notify"
	"github.com/group8-health/health/internal/predict"
	"github.com/group8-health/health/internal/scheduling"
	"github.com/group8-health/health/internal/search"
	"github.com/group8-health/health/internal/storage"
)

// App is the handler-facing view of the composed application. State objects
// (per-user ledgers, bed inventory) hang off the app context rather than
// package globals so sessions and tests get isolated fixtures.
type App interface {
	Logger() internal.Logger
	Profiles() storage.ProfileRepository
	Vitals() storage.VitalsRepository
	Appointments() storage.AppointmentRepository
	Predictor() predict.Predictor
	Roster() *scheduling.Roster
	Ledgers() *scheduling.Ledgers
	Beds() *beds.Inventory
	Search() *search.Client
	Mailer() notify.Mailer
}
