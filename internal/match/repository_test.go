package match

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresStore(sqlx.NewDb(db, "sqlmock")), mock
}

var profileCols = []string{"id", "first_name", "gender", "type", "latitude", "longitude", "image_urls"}

// A row written before the gender column gained its default carries NULL
// instead of ''; reading it must yield GenderUnspecified, not a scan error.
func TestFindByIDScansNullColumns(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows(profileCols).
		AddRow(int64(1), "Arjun", nil, nil, nil, nil, nil)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	p, err := store.FindByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, GenderUnspecified, p.Gender)
	assert.Nil(t, p.Type)
	assert.False(t, p.HasLocation())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByFilterUnconstrainedIncludesNullGenderRows(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows(profileCols).
		AddRow(int64(1), "Arjun", "Men", nil, nil, nil, "{}").
		AddRow(int64(2), "Noa", nil, nil, nil, nil, "{}")
	mock.ExpectQuery(`SELECT (.+) FROM users$`).
		WillReturnRows(rows)

	profiles, err := store.FindByFilter(context.Background(), CandidateFilter{})
	require.NoError(t, err)

	require.Len(t, profiles, 2)
	assert.Equal(t, GenderMen, profiles[0].Gender)
	assert.Equal(t, GenderUnspecified, profiles[1].Gender)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByFilterBindsGenderAsString(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows(profileCols).
		AddRow(int64(3), "Bela", "Women", nil, nil, nil, "{}")
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE gender = \$1`).
		WithArgs("Women").
		WillReturnRows(rows)

	women := GenderWomen
	profiles, err := store.FindByFilter(context.Background(), CandidateFilter{Gender: &women})
	require.NoError(t, err)

	require.Len(t, profiles, 1)
	assert.Equal(t, GenderWomen, profiles[0].Gender)
	require.NoError(t, mock.ExpectationsWereMet())
}
