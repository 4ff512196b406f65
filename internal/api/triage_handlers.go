package api

import (
	"errors"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/group8-health/health/internal"
	"github.com/group8-health/health/internal/service"
)

type ProfileRequest struct {
	Name      string `json:"name"`
	Age       int    `json:"age" binding:"gte=0,lte=120"`
	Gender    string `json:"gender"`
	BloodType string `json:"blood_type"`
	Email     string `json:"email"`
}

type DailyRecordRequest struct {
	Date          time.Time `json:"date"`
	Weight        float64   `json:"weight"`
	Height        float64   `json:"height"`
	BloodPressure string    `json:"blood_pressure"`
	HeartRate     float64   `json:"heart_rate"`
	Oxygen        float64   `json:"oxygen"`
	Activity      float64   `json:"activity"`
	Sleep         float64   `json:"sleep"`
	Glucose       float64   `json:"glucose"`
	BodyTemp      float64   `json:"body_temp"`
}

type ReportRequest struct {
	Recipient string `json:"recipient" binding:"required,email"`
}

func GetProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)
		HandleSuccess(c, app.Logger(), user, nil)
	}
}

func UpdateProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var body ProfileRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid profile")
			return
		}

		updated := *user
		updated.Name = body.Name
		updated.Age = body.Age
		updated.Gender = body.Gender
		updated.BloodType = body.BloodType
		updated.Email = body.Email

		if err := app.Profiles().UpdateUser(c.Request.Context(), &updated); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to update profile")
			return
		}
		HandleSuccess(c, app.Logger(), updated, nil)
	}
}

func GetVitals(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		records, err := app.Vitals().ListDailyRecords(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch daily records")
			return
		}

		sort.Slice(records, func(i, j int) bool {
			return records[i].Date.After(records[j].Date)
		})

		HandleSuccess(c, app.Logger(), records, nil)
	}
}

func PostVitals(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var body DailyRecordRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid daily record")
			return
		}
		if body.Date.IsZero() {
			body.Date = time.Now()
		}

		rec := &internal.DailyRecord{
			ID:            uuid.NewString(),
			UserID:        user.ID,
			Date:          body.Date,
			Weight:        body.Weight,
			Height:        body.Height,
			BloodPressure: body.BloodPressure,
			HeartRate:     body.HeartRate,
			Oxygen:        body.Oxygen,
			Activity:      body.Activity,
			Sleep:         body.Sleep,
			Glucose:       body.Glucose,
			BodyTemp:      body.BodyTemp,
			CreatedAt:     time.Now(),
		}
		if err := app.Vitals().SaveDailyRecord(c.Request.Context(), rec); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save daily record")
			return
		}
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

func GetRisk(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		records, err := app.Vitals().ListDailyRecords(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch daily records")
			return
		}

		assessment, err := service.AssessRisk(c.Request.Context(), app.Predictor(), user, records)
		if err != nil {
			if errors.Is(err, internal.ErrModelUnavailable) {
				HandleError(c, app.Logger(), err, 502, "Risk model unavailable")
				return
			}
			HandleError(c, app.Logger(), err, 404, "No health data for risk assessment")
			return
		}
		HandleSuccess(c, app.Logger(), assessment, nil)
	}
}

func PostReport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var body ReportRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid report request")
			return
		}

		records, err := app.Vitals().ListDailyRecords(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch daily records")
			return
		}

		assessment, err := service.AssessRisk(c.Request.Context(), app.Predictor(), user, records)
		if err != nil {
			if errors.Is(err, internal.ErrModelUnavailable) {
				HandleError(c, app.Logger(), err, 502, "Risk model unavailable")
				return
			}
			HandleError(c, app.Logger(), err, 404, "No health data for report")
			return
		}

		report := service.BuildHealthReport(user, assessment)
		if err := app.Mailer().Send(c.Request.Context(), body.Recipient, "Daily Health Report", report); err != nil {
			HandleError(c, app.Logger(), err, 502, "Failed to send report")
			return
		}
		HandleSuccess(c, app.Logger(), nil, map[string]any{"recipient": body.Recipient})
	}
}
