package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/group8-health/health/internal"
)

type BedBookingRequest struct {
	PatientName string `json:"patient_name" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

func GetBedAvailability(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		count, err := app.Beds().Check(category)
		if err != nil {
			if errors.Is(err, internal.ErrUnknownCategory) {
				HandleError(c, app.Logger(), err, 404, "Unknown bed category")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to check beds")
			return
		}
		HandleSuccess(c, app.Logger(), nil, map[string]any{"category": category, "available": count})
	}
}

func PostBedBooking(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body BedBookingRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid bed booking")
			return
		}

		remaining, rejection, err := app.Beds().Book(body.Category)
		if err != nil {
			if errors.Is(err, internal.ErrUnknownCategory) {
				HandleError(c, app.Logger(), err, 404, "Unknown bed category")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to book bed")
			return
		}
		if rejection != nil {
			HandleRejection(c, app.Logger(), rejection)
			return
		}
		HandleSuccess(c, app.Logger(), nil, map[string]any{
			"category":     body.Category,
			"patient_name": body.PatientName,
			"remaining":    remaining,
		})
	}
}
