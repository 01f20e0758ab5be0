package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/linktower/linktower/internal/domain/models"
)

// ErrNotFound is returned when a lookup matches no row. Handlers map it to
// the not-found page; it is never mixed into form validation errors.
var ErrNotFound = errors.New("not found")

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetBySlug(ctx context.Context, slug string) (*models.Room, error)
	GetByFloor(ctx context.Context, floorName string) ([]models.Room, error)

	UpdateTitle(ctx context.Context, roomID int64, title string) error
	UpdateFloorName(ctx context.Context, roomID int64, floorName string) error
	UpdatePasswordHash(ctx context.Context, roomID int64, passwordHash string) error

	// Delete removes the room together with all of its links.
	Delete(ctx context.Context, roomID int64) error

	Slugs(ctx context.Context) ([]string, error)
	Random(ctx context.Context, n int, domain string) ([]models.Room, error)
	RandomFloors(ctx context.Context, n int, domain string) ([]string, error)

	// RoomsLinkingTo returns the rooms holding a link to url, excluding the
	// room identified by excludeSlug.
	RoomsLinkingTo(ctx context.Context, url, excludeSlug string) ([]models.Room, error)
}

type roomRepo struct {
	db *sqlx.DB
}

func NewRoomRepo(db *sqlx.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *models.Room) error {
	return r.db.QueryRowxContext(
		ctx,
		"INSERT INTO rooms (title, floor_name, slug, password_hash) VALUES ($1, $2, $3, $4) RETURNING id",
		room.Title,
		room.FloorName,
		room.Slug,
		room.PasswordHash,
	).Scan(&room.ID)
}

func (r *roomRepo) GetBySlug(ctx context.Context, slug string) (*models.Room, error) {
	var room models.Room

	err := r.db.GetContext(ctx, &room, "SELECT * FROM rooms WHERE slug = $1", slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *roomRepo) GetByFloor(ctx context.Context, floorName string) ([]models.Room, error) {
	var rooms []models.Room

	err := r.db.SelectContext(ctx, &rooms, "SELECT * FROM rooms WHERE floor_name = $1 ORDER BY id", floorName)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *roomRepo) UpdateTitle(ctx context.Context, roomID int64, title string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE rooms SET title = $1 WHERE id = $2", title, roomID)
	return err
}

func (r *roomRepo) UpdateFloorName(ctx context.Context, roomID int64, floorName string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE rooms SET floor_name = $1 WHERE id = $2", floorName, roomID)
	return err
}

func (r *roomRepo) UpdatePasswordHash(ctx context.Context, roomID int64, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE rooms SET password_hash = $1 WHERE id = $2", passwordHash, roomID)
	return err
}

// Delete removes the room's links first, then the room row, inside one
// transaction so a failure never leaves orphaned links behind.
func (r *roomRepo) Delete(ctx context.Context, roomID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM links WHERE room_id = $1", roomID); err != nil {
		return fmt.Errorf("delete links: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM rooms WHERE id = $1", roomID); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	return tx.Commit()
}

func (r *roomRepo) Slugs(ctx context.Context) ([]string, error) {
	var slugs []string

	err := r.db.SelectContext(ctx, &slugs, "SELECT slug FROM rooms")
	if err != nil {
		return nil, err
	}

	return slugs, nil
}

func (r *roomRepo) Random(ctx context.Context, n int, domain string) ([]models.Room, error) {
	var rooms []models.Room

	if domain != "" {
		query := `
			SELECT * FROM rooms
			WHERE id IN (SELECT room_id FROM links WHERE domain_name = $1)
			ORDER BY RANDOM()
			LIMIT $2
		`
		if err := r.db.SelectContext(ctx, &rooms, query, domain, n); err != nil {
			return nil, err
		}
		return rooms, nil
	}

	err := r.db.SelectContext(ctx, &rooms, "SELECT * FROM rooms ORDER BY RANDOM() LIMIT $1", n)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *roomRepo) RandomFloors(ctx context.Context, n int, domain string) ([]string, error) {
	var floors []string

	if domain != "" {
		query := `
			SELECT DISTINCT floor_name FROM rooms
			WHERE id IN (SELECT room_id FROM links WHERE domain_name = $1)
			ORDER BY RANDOM()
			LIMIT $2
		`
		if err := r.db.SelectContext(ctx, &floors, query, domain, n); err != nil {
			return nil, err
		}
		return floors, nil
	}

	err := r.db.SelectContext(ctx, &floors, "SELECT DISTINCT floor_name FROM rooms ORDER BY RANDOM() LIMIT $1", n)
	if err != nil {
		return nil, err
	}

	return floors, nil
}

func (r *roomRepo) RoomsLinkingTo(ctx context.Context, url, excludeSlug string) ([]models.Room, error) {
	var rooms []models.Room

	query := `
		SELECT DISTINCT r.*
		FROM rooms r
		INNER JOIN links l ON l.room_id = r.id
		WHERE l.url = $1 AND r.slug != $2
	`

	err := r.db.SelectContext(ctx, &rooms, query, url, excludeSlug)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}
