package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/group8-health/health/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

// --- ProfileRepository ---
func (p *PostgresStorage) GetUser(ctx context.Context, userID string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, token, name, age, gender, blood_type, email FROM users WHERE id = $1`, userID)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Token, &u.Name, &u.Age, &u.Gender, &u.BloodType, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internal.ErrUserNotFound
		}
		p.logger.Errorf("failed to query user: %v", err)
		return nil, err
	}
	return &u, nil
}

func (p *PostgresStorage) GetUserByToken(ctx context.Context, token string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, token, name, age, gender, blood_type, email FROM users WHERE token = $1`, token)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Token, &u.Name, &u.Age, &u.Gender, &u.BloodType, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internal.ErrUserNotFound
		}
		p.logger.Errorf("failed to query user by token: %v", err)
		return nil, err
	}
	return &u, nil
}

func (p *PostgresStorage) UpdateUser(ctx context.Context, user *internal.User) error {
	tag, err := p.pool.Exec(ctx, `UPDATE users SET name = $2, age = $3, gender = $4, blood_type = $5, email = $6 WHERE id = $1`,
		user.ID, user.Name, user.Age, user.Gender, user.BloodType, user.Email)
	if err != nil {
		p.logger.Errorf("failed to update user: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return internal.ErrUserNotFound
	}
	return nil
}

// --- VitalsRepository ---
func (p *PostgresStorage) SaveDailyRecord(ctx context.Context, rec *internal.DailyRecord) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO daily_records (id, user_id, date, weight, height, blood_pressure, heart_rate, oxygen, activity, sleep, glucose, body_temp, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rec.ID, rec.UserID, rec.Date, rec.Weight, rec.Height, rec.BloodPressure, rec.HeartRate, rec.Oxygen, rec.Activity, rec.Sleep, rec.Glucose, rec.BodyTemp, rec.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert daily record: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListDailyRecords(ctx context.Context, userID string) ([]internal.DailyRecord, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, date, weight, height, blood_pressure, heart_rate, oxygen, activity, sleep, glucose, body_temp, created_at
		FROM daily_records WHERE user_id = $1 ORDER BY date ASC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query daily records: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []internal.DailyRecord
	for rows.Next() {
		var r internal.DailyRecord
		err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Weight, &r.Height, &r.BloodPressure, &r.HeartRate, &r.Oxygen, &r.Activity, &r.Sleep, &r.Glucose, &r.BodyTemp, &r.CreatedAt)
		if err != nil {
			p.logger.Errorf("failed to scan daily record: %v", err)
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// --- AppointmentRepository ---
func (p *PostgresStorage) SaveAppointments(ctx context.Context, userID string, appts []internal.Appointment) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM appointments WHERE user_id = $1`, userID); err != nil {
		p.logger.Errorf("failed to clear appointments: %v", err)
		return err
	}
	for i, a := range appts {
		_, err := tx.Exec(ctx, `INSERT INTO appointments (id, user_id, position, patient_name, patient_age, patient_contact, doctor, specialty, date, time, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			a.ID, userID, i, a.PatientName, a.PatientAge, a.PatientContact, a.Doctor, a.Specialty, a.Date, a.Time, a.CreatedAt)
		if err != nil {
			p.logger.Errorf("failed to insert appointment: %v", err)
			return err
		}
	}
	return tx.Commit(ctx)
}

func (p *PostgresStorage) ListAppointments(ctx context.Context, userID string) ([]internal.Appointment, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, patient_name, patient_age, patient_contact, doctor, specialty, date, time, created_at
		FROM appointments WHERE user_id = $1 ORDER BY position ASC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query appointments: %v", err)
		return nil, err
	}
	defer rows.Close()

	var appts []internal.Appointment
	for rows.Next() {
		var a internal.Appointment
		err := rows.Scan(&a.ID, &a.PatientName, &a.PatientAge, &a.PatientContact, &a.Doctor, &a.Specialty, &a.Date, &a.Time, &a.CreatedAt)
		if err != nil {
			p.logger.Errorf("failed to scan appointment: %v", err)
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, nil
}

// --- Compile-time assertions ---
var _ ProfileRepository = (*PostgresStorage)(nil)
var _ VitalsRepository = (*PostgresStorage)(nil)
var _ AppointmentRepository = (*PostgresStorage)(nil)
