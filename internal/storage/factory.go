package storage

import "github.com/group8-health/health/internal"

func NewFileRepositories(profilesFile, vitalsFile, apptsFile string, logger internal.Logger) (ProfileRepository, VitalsRepository, AppointmentRepository, error) {
	storage, err := NewFileStorage(profilesFile, vitalsFile, apptsFile, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return storage, storage, storage, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (ProfileRepository, VitalsRepository, AppointmentRepository, error) {
	storage, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return storage, storage, storage, nil
}
