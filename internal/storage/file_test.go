package storage

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/group8-health/health/internal"
)

func setupFileStorage(t *testing.T) (*FileStorage, string) {
	dir := t.TempDir()
	profilesFile := filepath.Join(dir, "profiles.json")
	vitalsFile := filepath.Join(dir, "vitals.json")
	apptsFile := filepath.Join(dir, "appointments.json")
	assert.NoError(t, os.WriteFile(profilesFile,
		[]byte(`[{"id":"u1","token":"MOCK-TOKEN","name":"Test User","age":35}]`), 0644))

	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	s, err := NewFileStorage(profilesFile, vitalsFile, apptsFile, logger)
	assert.NoError(t, err)
	return s, dir
}

func TestFileStorage_Users(t *testing.T) {
	s, _ := setupFileStorage(t)
	ctx := context.Background()

	u, err := s.GetUser(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Test User", u.Name)

	byToken, err := s.GetUserByToken(ctx, "MOCK-TOKEN")
	assert.NoError(t, err)
	assert.Equal(t, "u1", byToken.ID)

	_, err = s.GetUser(ctx, "u2")
	assert.ErrorIs(t, err, internal.ErrUserNotFound)
	_, err = s.GetUserByToken(ctx, "bogus")
	assert.ErrorIs(t, err, internal.ErrUserNotFound)
}

func TestFileStorage_UpdateUserKeepsToken(t *testing.T) {
	s, _ := setupFileStorage(t)
	ctx := context.Background()

	assert.NoError(t, s.UpdateUser(ctx, &internal.User{ID: "u1", Name: "Renamed", Age: 36}))
	u, err := s.GetUser(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", u.Name)
	assert.Equal(t, "MOCK-TOKEN", u.Token)

	err = s.UpdateUser(ctx, &internal.User{ID: "u9", Name: "Ghost"})
	assert.ErrorIs(t, err, internal.ErrUserNotFound)
}

func TestFileStorage_DailyRecordsSortedAscending(t *testing.T) {
	s, _ := setupFileStorage(t)
	ctx := context.Background()
	now := time.Now()

	// Insert out of order; ListDailyRecords must return ascending by date.
	for _, offset := range []int{-1, -3, -2} {
		rec := &internal.DailyRecord{
			ID:            "r" + strconv.Itoa(-offset),
			UserID:        "u1",
			Date:          now.AddDate(0, 0, offset),
			Weight:        78,
			Height:        158,
			BloodPressure: "120/80",
			HeartRate:     72,
		}
		assert.NoError(t, s.SaveDailyRecord(ctx, rec))
	}

	records, err := s.ListDailyRecords(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.True(t, records[0].Date.Before(records[1].Date))
	assert.True(t, records[1].Date.Before(records[2].Date))

	empty, err := s.ListDailyRecords(ctx, "nobody")
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAtomicWriteFileJSON_KeepsExistingFileOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	assert.NoError(t, os.WriteFile(path, []byte(`[{"id":"u1"}]`), 0644))

	// A value the encoder cannot marshal must abort the write without
	// touching the existing file or leaving the temp file behind.
	err := atomicWriteFileJSON(path, make(chan int))
	assert.Error(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"u1"}]`, string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStorage_AppointmentsRoundTrip(t *testing.T) {
	s, dir := setupFileStorage(t)
	ctx := context.Background()

	appts := []internal.Appointment{
		{ID: "a1", PatientName: "Alice", Doctor: "Dr. John Doe", Date: "2025-01-08", Time: "10:00"},
		{ID: "a2", PatientName: "Alice", Doctor: "Dr. Jane Smith", Date: "2025-01-09", Time: "11:00"},
	}
	assert.NoError(t, s.SaveAppointments(ctx, "u1", appts))
	assert.NoError(t, s.Close())

	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	reopened, err := NewFileStorage(
		filepath.Join(dir, "profiles.json"),
		filepath.Join(dir, "vitals.json"),
		filepath.Join(dir, "appointments.json"),
		logger,
	)
	assert.NoError(t, err)

	loaded, err := reopened.ListAppointments(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.Equal(t, "a1", loaded[0].ID)
	assert.Equal(t, "a2", loaded[1].ID)
}
