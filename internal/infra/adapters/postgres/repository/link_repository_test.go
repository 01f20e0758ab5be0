package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linktower/linktower/internal/domain/models"
)

func linkRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "room_id", "url", "domain_name", "description", "label"})
}

func TestLinkRepo_Insert_DerivesDomainName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLinkRepo(db)

	mock.ExpectQuery(`INSERT INTO links`).
		WithArgs(int64(1), "https://example.com/docs", "example.com", "Docs", "Work:").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	link := &models.Link{RoomID: 1, URL: "https://example.com/docs", Description: "Docs", Label: "Work:"}
	err := repo.Insert(context.Background(), link)

	require.NoError(t, err)
	assert.Equal(t, int64(11), link.ID)
	assert.Equal(t, "example.com", link.DomainName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRepo_GetByRoom(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLinkRepo(db)

	mock.ExpectQuery(`SELECT \* FROM links WHERE room_id`).
		WithArgs(int64(1)).
		WillReturnRows(linkRows().
			AddRow(int64(11), int64(1), "https://example.com/", "example.com", "Example", "").
			AddRow(int64(12), int64(1), "https://example.com/docs", "example.com", "Docs", "Work:"))

	links, err := repo.GetByRoom(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Work:", links[1].Label)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRepo_DeleteByRoomAndURL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLinkRepo(db)

	mock.ExpectExec(`DELETE FROM links WHERE url`).
		WithArgs("https://example.com/docs", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteByRoomAndURL(context.Background(), 1, "https://example.com/docs")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRepo_Random_WithDomainFilter(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLinkRepo(db)

	mock.ExpectQuery(`SELECT \* FROM links WHERE domain_name`).
		WithArgs("example.com", 10).
		WillReturnRows(linkRows().
			AddRow(int64(11), int64(1), "https://example.com/", "example.com", "Example", ""))

	links, err := repo.Random(context.Background(), 10, "example.com")

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "example.com", links[0].DomainName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRepo_Random_NoFilter(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLinkRepo(db)

	mock.ExpectQuery(`SELECT \* FROM links ORDER BY RANDOM`).
		WithArgs(10).
		WillReturnRows(linkRows())

	links, err := repo.Random(context.Background(), 10, "")

	require.NoError(t, err)
	assert.Empty(t, links)
	assert.NoError(t, mock.ExpectationsWereMet())
}
