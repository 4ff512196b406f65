package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/group8-health/health/internal"
	"github.com/group8-health/health/internal/scheduling"
	"github.com/group8-health/health/internal/service"
)

// userLedger resolves the authenticated user's own ledger, warm-starting it
// from their persisted appointments on first access.
func userLedger(c *gin.Context, app App, user *internal.User) *scheduling.Ledger {
	return app.Ledgers().ForUser(user.ID, func() []internal.Appointment {
		persisted, err := app.Appointments().ListAppointments(c.Request.Context(), user.ID)
		if err != nil {
			app.Logger().Warnf("failed to load persisted appointments for user %s: %v", user.ID, err)
			return nil
		}
		return persisted
	})
}

func GetDoctors(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if specialty := c.Query("specialty"); specialty != "" {
			HandleSuccess(c, app.Logger(), app.Roster().BySpecialty(specialty), nil)
			return
		}
		HandleSuccess(c, app.Logger(), app.Roster().Doctors(), nil)
	}
}

func PostAppointment(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var body service.AppointmentRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateAppointmentRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		appt, rejection, err := service.BookAppointment(c.Request.Context(),
			app.Roster(), userLedger(c, app, user), app.Appointments(), user, &body)
		if err != nil {
			if errors.Is(err, internal.ErrUnknownDoctor) {
				HandleError(c, app.Logger(), err, 404, "Unknown doctor")
				return
			}
			if appt != nil {
				// Booked but not persisted: surface the appointment with a warning.
				app.Logger().Warnf("appointment %s persisted with error: %v", appt.ID, err)
				HandleSuccess(c, app.Logger(), appt, map[string]any{"persistence": "deferred"})
				return
			}
			HandleError(c, app.Logger(), err, 400, "Failed to book appointment")
			return
		}
		if rejection != nil {
			HandleRejection(c, app.Logger(), rejection)
			return
		}
		HandleSuccess(c, app.Logger(), appt, nil)
	}
}

func GetAppointments(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)
		HandleSuccess(c, app.Logger(), userLedger(c, app, user).List(), nil)
	}
}
