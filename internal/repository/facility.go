package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service"
)

const proximityCacheTTL = 5 * time.Minute

// FacilityRepository - справочник учреждений; таблица близости кэшируется в Redis
type FacilityRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewFacilityRepository(db *pgxpool.Pool, redisClient *redis.Client) service.FacilityDirectory {
	return &FacilityRepository{
		db:          db,
		redisClient: redisClient,
	}
}

func (r *FacilityRepository) ListFacilities(ctx context.Context) ([]*models.Facility, error) {
	query := `
		SELECT id, name, ST_Y(location::geometry), ST_X(location::geometry)
		FROM facilities
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	defer rows.Close()

	facilities := make([]*models.Facility, 0)
	for rows.Next() {
		f := &models.Facility{}
		if err := rows.Scan(&f.ID, &f.Name, &f.Latitude, &f.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan facility row: %w", err)
		}
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error facilities iteration: %w", err)
	}
	return facilities, nil
}

// ListFacilitiesByDistance считает расстояние по geography в PostGIS
func (r *FacilityRepository) ListFacilitiesByDistance(ctx context.Context, loc models.Location) ([]*models.FacilityDistance, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			ST_Distance(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
			) / 1000.0 as distance_km
		FROM facilities
		ORDER BY distance_km, id;
	`
	rows, err := r.db.Query(ctx, query, loc.Longitude, loc.Latitude)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities by distance: %w", err)
	}
	defer rows.Close()

	result := make([]*models.FacilityDistance, 0)
	for rows.Next() {
		f := &models.Facility{}
		fd := &models.FacilityDistance{Facility: f}
		if err := rows.Scan(&f.ID, &f.Name, &f.Latitude, &f.Longitude, &fd.DistanceKm); err != nil {
			return nil, fmt.Errorf("failed to scan facility distance row: %w", err)
		}
		result = append(result, fd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error facilities iteration: %w", err)
	}
	return result, nil
}

func (r *FacilityRepository) GetFacility(ctx context.Context, facilityID string) (*models.Facility, error) {
	query := `
		SELECT id, name, ST_Y(location::geometry), ST_X(location::geometry)
		FROM facilities
		WHERE id = $1;
	`
	f := &models.Facility{}
	err := r.db.QueryRow(ctx, query, facilityID).Scan(&f.ID, &f.Name, &f.Latitude, &f.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("facility %q: %w", facilityID, service.ErrFacilityNotFound)
		}
		return nil, fmt.Errorf("failed to get facility by id: %w", err)
	}
	return f, nil
}

// ProximityTable возвращает баллы близости учреждений для сектора.
// Учреждения без строки в таблице получают 0.
func (r *FacilityRepository) ProximityTable(ctx context.Context, sector string) (map[string]int, error) {
	cached, err := r.getProximityFromCache(ctx, sector)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}

	query := `SELECT facility_id, points FROM facility_proximity WHERE sector = $1;`
	rows, err := r.db.Query(ctx, query, sector)
	if err != nil {
		return nil, fmt.Errorf("failed to load proximity table: %w", err)
	}
	defer rows.Close()

	table := make(map[string]int)
	for rows.Next() {
		var facilityID string
		var points int
		if err := rows.Scan(&facilityID, &points); err != nil {
			return nil, fmt.Errorf("failed to scan proximity row: %w", err)
		}
		table[facilityID] = points
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error proximity iteration: %w", err)
	}

	if err := r.setProximityToCache(ctx, sector, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (r *FacilityRepository) getProximityFromCache(ctx context.Context, sector string) (map[string]int, error) {
	key := fmt.Sprintf("proximity:%s", sector)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get proximity table from cache: %w", err)
	}

	table := make(map[string]int)
	if err := json.Unmarshal(val, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal proximity table from cache: %w", err)
	}
	return table, nil
}

func (r *FacilityRepository) setProximityToCache(ctx context.Context, sector string, table map[string]int) error {
	key := fmt.Sprintf("proximity:%s", sector)
	val, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal proximity table for cache: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, val, proximityCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set proximity table in cache: %w", err)
	}
	return nil
}
