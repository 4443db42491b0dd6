package creations_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"codeberg.org/quickai/server/quickai/creations"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	t.Run("Should insert and return the stored row", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		repo := creations.NewRepository(mockPool)
		now := time.Now()

		mockPool.ExpectQuery("INSERT INTO creations").
			WithArgs("user_1", "a cat in space", "https://cdn/cat.png", "image", true).
			WillReturnRows(mockPool.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))

		creation, err := repo.Create(context.Background(), creations.CreateRequest{
			UserID:  "user_1",
			Prompt:  "a cat in space",
			Content: "https://cdn/cat.png",
			Type:    creations.TypeImage,
			Publish: true,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(42), creation.ID)
		assert.Equal(t, now, creation.CreatedAt)
		assert.Equal(t, creations.TypeImage, creation.Type)
		assert.True(t, creation.Publish)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should surface insert failures", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		repo := creations.NewRepository(mockPool)

		mockPool.ExpectQuery("INSERT INTO creations").
			WithArgs("user_1", "p", "c", "article", false).
			WillReturnError(errors.New("connection reset"))

		creation, err := repo.Create(context.Background(), creations.CreateRequest{
			UserID:  "user_1",
			Prompt:  "p",
			Content: "c",
			Type:    creations.TypeArticle,
		})

		require.Error(t, err)
		assert.Nil(t, creation)
		assert.Contains(t, err.Error(), "connection reset")
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should reject unknown types without touching the database", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		repo := creations.NewRepository(mockPool)

		_, err = repo.Create(context.Background(), creations.CreateRequest{
			UserID: "user_1",
			Type:   creations.Type("poem"),
		})

		assert.ErrorIs(t, err, creations.ErrInvalidType)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should require a user id", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		_, err = creations.NewRepository(mockPool).Create(context.Background(), creations.CreateRequest{
			Type: creations.TypeArticle,
		})

		assert.ErrorIs(t, err, creations.ErrMissingUserID)
	})
}

func TestRepository_ListByUser(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := creations.NewRepository(mockPool)
	now := time.Now()

	mockPool.ExpectQuery("SELECT COUNT\\(\\*\\) FROM creations WHERE user_id = \\$1").
		WithArgs("user_1").
		WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(3))

	mockPool.ExpectQuery("SELECT (.+) FROM creations WHERE user_id = \\$1").
		WithArgs("user_1", 2, 0).
		WillReturnRows(mockPool.NewRows([]string{"id", "user_id", "prompt", "content", "type", "publish", "created_at"}).
			AddRow(int64(3), "user_1", "title ideas", "Ten Go Tips", "blog-title", false, now).
			AddRow(int64(2), "user_1", "Review the uploaded resume", "Looks good", "resume-review", false, now))

	list, total, err := repo.ListByUser(context.Background(), "user_1", 2, 0)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, list, 2)
	assert.Equal(t, creations.TypeBlogTitle, list[0].Type)
	assert.Equal(t, creations.TypeResumeReview, list[1].Type)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRepository_ListPublished(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := creations.NewRepository(mockPool)

	mockPool.ExpectQuery("SELECT COUNT\\(\\*\\) FROM creations WHERE publish = true").
		WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(0))

	mockPool.ExpectQuery("SELECT (.+) FROM creations WHERE publish = true").
		WithArgs(20, 0).
		WillReturnRows(mockPool.NewRows([]string{"id", "user_id", "prompt", "content", "type", "publish", "created_at"}))

	list, total, err := repo.ListPublished(context.Background(), 20, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestType_Valid(t *testing.T) {
	assert.True(t, creations.TypeArticle.Valid())
	assert.True(t, creations.TypeBlogTitle.Valid())
	assert.True(t, creations.TypeImage.Valid())
	assert.True(t, creations.TypeResumeReview.Valid())
	assert.False(t, creations.Type("").Valid())
}
