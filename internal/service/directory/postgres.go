package directory

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore persists residents, vehicles and access credentials in
// PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres opens and pings a connection for the given DSN.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func (s *PostgresStore) FindPersonByCPF(ctx context.Context, cpf string) (Person, error) {
	const query = `
		SELECT sequence, name, classification
		FROM residents
		WHERE cpf = $1
	`
	var person Person
	err := s.db.QueryRowContext(ctx, query, cpf).Scan(&person.Sequence, &person.Name, &person.Classification)
	if err == sql.ErrNoRows {
		return Person{}, ErrPersonNotFound
	}
	if err != nil {
		return Person{}, fmt.Errorf("find person by cpf: %w", err)
	}
	return person, nil
}

func (s *PostgresStore) IsTagOrPlateDuplicate(ctx context.Context, tagNumber, plate string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM vehicle_access
			WHERE tag_number = $1 OR plate = $2
		)
	`
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, tagNumber, plate).Scan(&exists); err != nil {
		return false, fmt.Errorf("check tag/plate duplicate: %w", err)
	}
	return exists, nil
}

// GrantVehicleAccess inserts the vehicle and its credential in a single
// transaction so a partial registration is never visible.
func (s *PostgresStore) GrantVehicleAccess(ctx context.Context, req GrantRequest) error {
	person, err := s.FindPersonByCPF(ctx, req.CPF)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin grant access: %w", err)
	}
	defer tx.Rollback()

	const insertVehicle = `
		INSERT INTO vehicles (resident_sequence, plate, brand, model, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var vehicleID int64
	if err := tx.QueryRowContext(ctx, insertVehicle,
		person.Sequence, req.Plate, req.Brand, req.Model, req.Color,
	).Scan(&vehicleID); err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}

	const insertAccess = `
		INSERT INTO vehicle_access (vehicle_id, tag_number, plate, tag_photo, vehicle_photo)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.ExecContext(ctx, insertAccess,
		vehicleID, req.TagNumber, req.Plate, req.TagPhoto, req.VehiclePhoto,
	); err != nil {
		return fmt.Errorf("insert vehicle access: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit grant access: %w", err)
	}
	return nil
}
