package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (MilestoneRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewMilestoneRepository(db), mock
}

func TestMilestoneRepository_FindByID_ScopesToProject(t *testing.T) {
	repo, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "project_id", "title", "status"}).
		AddRow(5, 1, "Design phase", "INCOMPLETE")
	mock.ExpectQuery("SELECT \\* FROM `milestones` WHERE project_id = \\?.*").
		WillReturnRows(rows)

	milestone, err := repo.FindByID(1, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), milestone.ID)
	assert.Equal(t, "Design phase", milestone.Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMilestoneRepository_Delete_NotFoundWhenNoRows(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `milestones` SET `deleted_at`=.*").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(1, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
