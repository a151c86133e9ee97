package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service"
)

// CareTeamRepository читает пациентов, назначения и местоположения
type CareTeamRepository struct {
	db *pgxpool.Pool
}

func NewCareTeamRepository(db *pgxpool.Pool) *CareTeamRepository {
	return &CareTeamRepository{db: db}
}

func (r *CareTeamRepository) GetPatient(ctx context.Context, patientID uuid.UUID) (*models.Patient, error) {
	query := `SELECT id, name, sector FROM patients WHERE id = $1;`

	patient := &models.Patient{}
	err := r.db.QueryRow(ctx, query, patientID).Scan(&patient.ID, &patient.Name, &patient.Sector)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("patient %s: %w", patientID, service.ErrPatientNotFound)
		}
		return nil, fmt.Errorf("failed to get patient by id: %w", err)
	}
	return patient, nil
}

func (r *CareTeamRepository) ActiveDoctorFor(ctx context.Context, patientID uuid.UUID) (*models.Assignment, error) {
	return r.activeAssignment(ctx, patientID, models.RecipientDoctor)
}

func (r *CareTeamRepository) ActiveCaregiverFor(ctx context.Context, patientID uuid.UUID) (*models.Assignment, error) {
	return r.activeAssignment(ctx, patientID, models.RecipientCaregiver)
}

// activeAssignment возвращает самое свежее активное назначение или nil
func (r *CareTeamRepository) activeAssignment(ctx context.Context, patientID uuid.UUID, recipientType models.RecipientType) (*models.Assignment, error) {
	query := `
		SELECT patient_id, recipient_type, recipient_id, assigned_at
		FROM care_assignments
		WHERE patient_id = $1 AND recipient_type = $2 AND active = TRUE
		ORDER BY assigned_at DESC
		LIMIT 1;
	`
	a := &models.Assignment{}
	err := r.db.QueryRow(ctx, query, patientID, recipientType).Scan(&a.PatientID, &a.RecipientType, &a.RecipientID, &a.AssignedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active %s assignment: %w", recipientType, err)
	}
	return a, nil
}

// LastKnownLocation возвращает последнюю записанную точку пациента или nil
func (r *CareTeamRepository) LastKnownLocation(ctx context.Context, patientID uuid.UUID) (*models.Location, error) {
	query := `
		SELECT ST_Y(location::geometry), ST_X(location::geometry), recorded_at
		FROM patient_locations
		WHERE patient_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1;
	`
	loc := &models.Location{}
	err := r.db.QueryRow(ctx, query, patientID).Scan(&loc.Latitude, &loc.Longitude, &loc.RecordedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last known location: %w", err)
	}
	return loc, nil
}
