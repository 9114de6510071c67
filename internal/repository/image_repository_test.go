package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goblog/internal/models"
)

func TestImageRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewImageRepository(sqlxDB)
	ctx := context.Background()

	t.Run("Успешное сохранение дескриптора", func(t *testing.T) {
		image := &models.Image{
			Location:    "/media/abc.png/",
			Filename:    "abc.png",
			Size:        42,
			ContentType: "image/png",
			PostID:      "p1",
		}

		mock.ExpectExec("INSERT INTO images").
			WithArgs(sqlmock.AnyArg(), "/media/abc.png/", "abc.png", int64(42), "image/png", "p1").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, image)

		assert.NoError(t, err)
		assert.NotEmpty(t, image.ID)
	})

	t.Run("Неполный дескриптор отклоняется до запроса", func(t *testing.T) {
		image := &models.Image{Filename: "abc.png", PostID: "p1"}

		err := repo.Create(ctx, image)

		assert.ErrorIs(t, err, models.ErrPersistFailed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestImageRepository_GetByPostID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewImageRepository(sqlxDB)
	ctx := context.Background()

	columns := []string{"id", "location", "filename", "size", "content_type", "post_id"}
	rows := sqlmock.NewRows(columns).
		AddRow("i1", "/media/a.png/", "a.png", 10, "image/png", "p1").
		AddRow("i2", "/media/b.png/", "b.png", 20, "image/png", "p1")

	mock.ExpectQuery(`SELECT \* FROM images WHERE post_id = \$1 ORDER BY filename`).
		WithArgs("p1").
		WillReturnRows(rows)

	images, err := repo.GetByPostID(ctx, "p1")

	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "a.png", images[0].Filename)
}
