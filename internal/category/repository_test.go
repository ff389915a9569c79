package category

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryGetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Áo").
			AddRow(2, "Quần"))

	categories, err := NewRepository(db).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Áo", categories[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
