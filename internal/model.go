package internal

import (
	"strconv"
	"strings"
	"time"
)

type User struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender,omitempty"`
	BloodType string `json:"blood_type,omitempty"`
	Email     string `json:"email,omitempty"`
}

// DailyRecord is one day of recorded vitals for a user.
type DailyRecord struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Date          time.Time `json:"date"`
	Weight        float64   `json:"weight"`         // kg
	Height        float64   `json:"height"`         // cm
	BloodPressure string    `json:"blood_pressure"` // "systolic/diastolic"
	HeartRate     float64   `json:"heart_rate"`
	Oxygen        float64   `json:"oxygen"`
	Activity      float64   `json:"activity,omitempty"`
	Sleep         float64   `json:"sleep,omitempty"`
	Glucose       float64   `json:"glucose,omitempty"`
	BodyTemp      float64   `json:"body_temp,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// BMI derives body-mass index from the record's weight (kg) and height (cm).
// A zero height yields 0 rather than dividing by zero.
func (r DailyRecord) BMI() float64 {
	if r.Height <= 0 {
		return 0
	}
	m := r.Height / 100
	return r.Weight / (m * m)
}

// Vitals is the transient feature set fed to the risk model.
type Vitals struct {
	BMI           float64 `json:"bmi"`
	HeartRate     float64 `json:"heart_rate"`
	Systolic      int     `json:"systolic"`
	Diastolic     int     `json:"diastolic"`
	Age           int     `json:"age"`
	BloodPressure string  `json:"blood_pressure"`
	Oxygen        float64 `json:"oxygen"`
}

// ParseBloodPressure splits a "systolic/diastolic" string. Malformed or
// missing input parses to 0/0, matching how unreadable readings are stored.
func ParseBloodPressure(bp string) (systolic, diastolic int) {
	parts := strings.Split(strings.TrimSpace(bp), "/")
	if len(parts) != 2 {
		return 0, 0
	}
	s, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0
	}
	return s, d
}

// RiskTier is the discrete hypertension risk classification.
type RiskTier int

const (
	RiskLow  RiskTier = 0
	RiskHigh RiskTier = 1
)

func (t RiskTier) String() string {
	switch t {
	case RiskLow:
		return "Low"
	case RiskHigh:
		return "High"
	}
	return "Unknown"
}

// RecommendationBundle maps an advice category to its ordered advice strings.
type RecommendationBundle map[string][]string

type Doctor struct {
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Availability []string `json:"availability"` // weekday names
}

type Appointment struct {
	ID             string    `json:"id"`
	PatientName    string    `json:"patient_name"`
	PatientAge     int       `json:"patient_age"`
	PatientContact string    `json:"patient_contact"`
	Doctor         string    `json:"doctor"`
	Specialty      string    `json:"specialty"`
	Date           string    `json:"date"` // 2006-01-02
	Time           string    `json:"time"`
	CreatedAt      time.Time `json:"created_at"`
}

type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
