package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/group8-health/health/internal"
)

type FileStorage struct {
	users           map[string]*internal.User          // id -> User
	records         map[string][]*internal.DailyRecord // userID -> records (sorted ascending by date)
	appointments    map[string][]internal.Appointment  // userID -> appointment list
	mu              sync.RWMutex
	profilesFile    string
	vitalsFile      string
	apptsFile       string
	saveVitalsChan  chan struct{}
	saveApptsChan   chan struct{}
	shutdownChan    chan struct{}
	saveVitalsDelay time.Duration
	saveApptsDelay  time.Duration
	logger          internal.Logger
}

func NewFileStorage(profilesFile, vitalsFile, apptsFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		users:           make(map[string]*internal.User),
		records:         make(map[string][]*internal.DailyRecord),
		appointments:    make(map[string][]internal.Appointment),
		profilesFile:    profilesFile,
		vitalsFile:      vitalsFile,
		apptsFile:       apptsFile,
		saveVitalsChan:  make(chan struct{}, 1),
		saveApptsChan:   make(chan struct{}, 1),
		shutdownChan:    make(chan struct{}),
		saveVitalsDelay: 500 * time.Millisecond,
		saveApptsDelay:  500 * time.Millisecond,
		logger:          logger,
	}

	if err := s.loadUsers(); err != nil {
		logger.Errorf("storage: failed to load profiles: %v", err)
		return nil, err
	}
	if err := s.loadRecords(); err != nil {
		logger.Errorf("storage: failed to load vitals: %v", err)
		return nil, err
	}
	if err := s.loadAppointments(); err != nil {
		logger.Errorf("storage: failed to load appointments: %v", err)
		return nil, err
	}

	go s.saveVitalsWorker()
	go s.saveApptsWorker()

	return s, nil
}

func decodeJSONFile(path string, v interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()
	if err := json.NewDecoder(file).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func (s *FileStorage) loadUsers() error {
	var users []*internal.User
	if err := decodeJSONFile(s.profilesFile, &users); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.ID] = u
	}
	return nil
}

func (s *FileStorage) loadRecords() error {
	var records []*internal.DailyRecord
	if err := decodeJSONFile(s.vitalsFile, &records); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.records[r.UserID] = append(s.records[r.UserID], r)
	}
	for userID := range s.records {
		sort.Slice(s.records[userID], func(i, j int) bool {
			return s.records[userID][i].Date.Before(s.records[userID][j].Date)
		})
	}
	return nil
}

func (s *FileStorage) loadAppointments() error {
	appts := make(map[string][]internal.Appointment)
	if err := decodeJSONFile(s.apptsFile, &appts); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, list := range appts {
		s.appointments[userID] = list
	}
	return nil
}

// atomicWriteFileJSON writes to a temp file, syncs, and renames so a crash
// mid-write never truncates the existing data file.
func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveRecords() error {
	s.mu.RLock()
	var records []*internal.DailyRecord
	for _, list := range s.records {
		records = append(records, list...)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.vitalsFile, records)
}

func (s *FileStorage) saveAppointments() error {
	s.mu.RLock()
	appts := make(map[string][]internal.Appointment, len(s.appointments))
	for userID, list := range s.appointments {
		appts[userID] = list
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.apptsFile, appts)
}

func (s *FileStorage) saveProfiles() error {
	s.mu.RLock()
	var users []*internal.User
	for _, u := range s.users {
		users = append(users, u)
	}
	s.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return atomicWriteFileJSON(s.profilesFile, users)
}

func (s *FileStorage) saveVitalsWorker() {
	timer := time.NewTimer(s.saveVitalsDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveVitalsChan:
			timer.Reset(s.saveVitalsDelay)
		case <-timer.C:
			if err := s.saveRecords(); err != nil {
				s.logger.Errorf("storage: error saving vitals: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) saveApptsWorker() {
	timer := time.NewTimer(s.saveApptsDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveApptsChan:
			timer.Reset(s.saveApptsDelay)
		case <-timer.C:
			if err := s.saveAppointments(); err != nil {
				s.logger.Errorf("storage: error saving appointments: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	// Flush pending data synchronously on shutdown
	if err := s.saveRecords(); err != nil {
		return err
	}
	if err := s.saveAppointments(); err != nil {
		return err
	}
	return s.saveProfiles()
}

// --- ProfileRepository ---
func (s *FileStorage) GetUser(ctx context.Context, userID string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *FileStorage) GetUserByToken(ctx context.Context, token string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Token == token {
			copied := *u
			return &copied, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

func (s *FileStorage) UpdateUser(ctx context.Context, user *internal.User) error {
	s.mu.Lock()
	existing, ok := s.users[user.ID]
	if !ok {
		s.mu.Unlock()
		return internal.ErrUserNotFound
	}
	if user.Token == "" {
		user.Token = existing.Token
	}
	copied := *user
	s.users[user.ID] = &copied
	s.mu.Unlock()
	return s.saveProfiles()
}

// --- VitalsRepository ---
func (s *FileStorage) SaveDailyRecord(ctx context.Context, rec *internal.DailyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.records[rec.UserID]
	inserted := false
	for i, existing := range list {
		if rec.Date.Before(existing.Date) {
			list = append(list[:i], append([]*internal.DailyRecord{rec}, list[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		list = append(list, rec)
	}
	s.records[rec.UserID] = list
	select {
	case s.saveVitalsChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) ListDailyRecords(ctx context.Context, userID string) ([]internal.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.records[userID]
	if !ok {
		return []internal.DailyRecord{}, nil
	}
	out := make([]internal.DailyRecord, len(list))
	for i, r := range list {
		out[i] = *r
	}
	return out, nil
}

// --- AppointmentRepository ---
func (s *FileStorage) SaveAppointments(ctx context.Context, userID string, appts []internal.Appointment) error {
	s.mu.Lock()
	copied := make([]internal.Appointment, len(appts))
	copy(copied, appts)
	s.appointments[userID] = copied
	s.mu.Unlock()
	select {
	case s.saveApptsChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) ListAppointments(ctx context.Context, userID string) ([]internal.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.appointments[userID]
	out := make([]internal.Appointment, len(list))
	copy(out, list)
	return out, nil
}

// --- Compile-time assertions ---
var _ ProfileRepository = (*FileStorage)(nil)
var _ VitalsRepository = (*FileStorage)(nil)
var _ AppointmentRepository = (*FileStorage)(nil)
