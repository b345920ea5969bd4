package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/zapgo-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/pagination"
)

type StationRepo struct {
	pool *pgxpool.Pool
}

func NewStationRepo(pool *pgxpool.Pool) *StationRepo {
	return &StationRepo{pool: pool}
}

// Seed upserts the given stations. Running it again with the same list is a
// no-op.
func (r *StationRepo) Seed(ctx context.Context, stations []entity.ChargingStation) error {
	query := `
		INSERT INTO charging_stations (id, name, location)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			location = EXCLUDED.location
	`

	batch := &pgx.Batch{}
	for _, s := range stations {
		batch.Queue(query, s.ID, s.Name, s.Coordinate.Longitude, s.Coordinate.Latitude)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range stations {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("seeding station: %w", err)
		}
	}
	return nil
}

func (r *StationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ChargingStation, error) {
	query := `
		SELECT id, name, ST_Y(location::geometry) AS lat, ST_X(location::geometry) AS lng
		FROM charging_stations
		WHERE id = $1
	`

	var s entity.ChargingStation
	var lat, lng float64
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &lat, &lng)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStationNotFound
		}
		return nil, fmt.Errorf("querying station: %w", err)
	}
	s.Coordinate = valueobject.NewCoordinate(lat, lng)

	return &s, nil
}

func (r *StationRepo) List(ctx context.Context, params repository.StationListParams) ([]entity.ChargingStation, *pagination.Info, error) {
	var conditions []string
	var args []any
	argNum := 1

	if params.BoundingBox != nil {
		bb := params.BoundingBox
		conditions = append(conditions, fmt.Sprintf(`
			ST_Intersects(
				location,
				ST_MakeEnvelope($%d, $%d, $%d, $%d, 4326)::geography
			)
		`, argNum, argNum+1, argNum+2, argNum+3))
		args = append(args, bb.MinLng, bb.MinLat, bb.MaxLng, bb.MaxLat)
		argNum += 4
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM charging_stations WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting stations: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, ST_Y(location::geometry) AS lat, ST_X(location::geometry) AS lng
		FROM charging_stations
		WHERE %s
		ORDER BY name
		LIMIT $%d OFFSET $%d
	`, whereClause, argNum, argNum+1)
	args = append(args, params.Pagination.Limit(), params.Pagination.Offset())

	stations, err := r.queryStations(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	return stations, pagination.NewInfo(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

func (r *StationRepo) All(ctx context.Context) ([]entity.ChargingStation, error) {
	query := `
		SELECT id, name, ST_Y(location::geometry) AS lat, ST_X(location::geometry) AS lng
		FROM charging_stations
		ORDER BY name
	`
	return r.queryStations(ctx, query)
}

func (r *StationRepo) queryStations(ctx context.Context, query string, args ...any) ([]entity.ChargingStation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying stations: %w", err)
	}
	defer rows.Close()

	stations := make([]entity.ChargingStation, 0)
	for rows.Next() {
		var s entity.ChargingStation
		var lat, lng float64
		if err := rows.Scan(&s.ID, &s.Name, &lat, &lng); err != nil {
			return nil, fmt.Errorf("scanning station: %w", err)
		}
		s.Coordinate = valueobject.NewCoordinate(lat, lng)
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stations: %w", err)
	}

	return stations, nil
}
