package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/linktower/linktower/internal/domain/models"
	"github.com/linktower/linktower/internal/linkform"
)

type LinkRepository interface {
	Insert(ctx context.Context, link *models.Link) error
	GetByRoom(ctx context.Context, roomID int64) ([]models.Link, error)
	DeleteByRoomAndURL(ctx context.Context, roomID int64, url string) error
	Random(ctx context.Context, n int, domain string) ([]models.Link, error)
}

type linkRepo struct {
	db *sqlx.DB
}

func NewLinkRepo(db *sqlx.DB) LinkRepository {
	return &linkRepo{db: db}
}

// Insert stores the link, recomputing the derived domain name from the url.
func (r *linkRepo) Insert(ctx context.Context, link *models.Link) error {
	link.DomainName = linkform.DomainName(link.URL)

	return r.db.QueryRowxContext(
		ctx,
		"INSERT INTO links (room_id, url, domain_name, description, label) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		link.RoomID,
		link.URL,
		link.DomainName,
		link.Description,
		link.Label,
	).Scan(&link.ID)
}

func (r *linkRepo) GetByRoom(ctx context.Context, roomID int64) ([]models.Link, error) {
	var links []models.Link

	err := r.db.SelectContext(ctx, &links, "SELECT * FROM links WHERE room_id = $1 ORDER BY id", roomID)
	if err != nil {
		return nil, err
	}

	return links, nil
}

func (r *linkRepo) DeleteByRoomAndURL(ctx context.Context, roomID int64, url string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM links WHERE url = $1 AND room_id = $2", url, roomID)
	return err
}

func (r *linkRepo) Random(ctx context.Context, n int, domain string) ([]models.Link, error) {
	var links []models.Link

	if domain != "" {
		err := r.db.SelectContext(ctx, &links, "SELECT * FROM links WHERE domain_name = $1 ORDER BY RANDOM() LIMIT $2", domain, n)
		if err != nil {
			return nil, err
		}
		return links, nil
	}

	err := r.db.SelectContext(ctx, &links, "SELECT * FROM links ORDER BY RANDOM() LIMIT $1", n)
	if err != nil {
		return nil, err
	}

	return links, nil
}
