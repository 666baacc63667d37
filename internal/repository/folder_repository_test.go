package repository_test

import (
	"doctree-web-server/config"
	"doctree-web-server/internal/model"
	"doctree-web-server/internal/repository"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*repository.FolderRepository, sqlmock.Sqlmock, *sqlx.DB) {
	db, mockSQL, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := repository.NewFolderRepository(&config.Database{DB: sqlxDB})
	return repo, mockSQL, sqlxDB
}

func folderColumns() []string {
	return []string{"uuid", "owner_uuid", "parent_uuid", "name", "path", "created_at", "updated_at"}
}

func TestFolderRepository_Create(t *testing.T) {
	repo, mockSQL, db := newMockRepo(t)
	now := time.Now()

	folder := &model.Folder{
		UUID:      "f1",
		OwnerUUID: "user1",
		Name:      "Проекты",
		Path:      "/Проекты",
	}

	mockSQL.ExpectQuery("INSERT INTO folders").
		WithArgs("f1", "user1", nil, "Проекты", "/Проекты").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := repo.Create(context.Background(), db, folder)

	require.NoError(t, err)
	assert.Equal(t, now, folder.CreatedAt)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

func TestFolderRepository_GetByUUID_Found(t *testing.T) {
	repo, mockSQL, db := newMockRepo(t)
	now := time.Now()

	mockSQL.ExpectQuery("SELECT (.+) FROM folders").
		WithArgs("f1", "user1").
		WillReturnRows(sqlmock.NewRows(folderColumns()).
			AddRow("f1", "user1", nil, "Проекты", "/Проекты", now, now))

	folder, err := repo.GetByUUID(context.Background(), db, "f1", "user1")

	require.NoError(t, err)
	require.NotNil(t, folder)
	assert.Equal(t, "/Проекты", folder.Path)
	assert.Nil(t, folder.ParentUUID)
}

func TestFolderRepository_GetByUUID_NoRows(t *testing.T) {
	repo, mockSQL, db := newMockRepo(t)

	mockSQL.ExpectQuery("SELECT (.+) FROM folders").
		WithArgs("missing", "user1").
		WillReturnError(sql.ErrNoRows)

	folder, err := repo.GetByUUID(context.Background(), db, "missing", "user1")

	assert.NoError(t, err)
	assert.Nil(t, folder)
}

func TestFolderRepository_GetByParent_Root(t *testing.T) {
	repo, mockSQL, db := newMockRepo(t)
	now := time.Now()

	mockSQL.ExpectQuery("WHERE parent_uuid IS NULL AND owner_uuid").
		WithArgs("user1").
		WillReturnRows(sqlmock.NewRows(folderColumns()).
			AddRow("a", "user1", nil, "Архив", "/Архив", now, now).
			AddRow("b", "user1", nil, "Проекты", "/Проекты", now, now))

	folders, err := repo.GetByParent(context.Background(), db, nil, "user1")

	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "/Архив", folders[0].Path)
}

func TestFolderRepository_GetByParent_Children(t *testing.T) {
	repo, mockSQL, db := newMockRepo(t)
	now := time.Now()
	parent := "p1"

	mockSQL.ExpectQuery("WHERE parent_uuid = (.+) AND owner_uuid").
		WithArgs("p1", "user1").
		WillReturnRows(sqlmock.NewRows(folderColumns()).
			AddRow("c1", "user1", &parent, "2024", "/Проекты/2024", now, now))

	folders, err := repo.GetByParent(context.Background(), db, &parent, "user1")

	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "/Проекты/2024", folders[0].Path)
}

func TestFolderRepository_ListDescendants(t *testing.T) {
	repo, mockSQL, db := newMockRepo(t)
	now := time.Now()
	f1 := "f1"
	d1 := "d1"

	mockSQL.ExpectQuery("WITH RECURSIVE subtree").
		WithArgs("f1", "user1").
		WillReturnRows(sqlmock.NewRows(folderColumns()).
			AddRow("d1", "user1", &f1, "2024", "/Отчёты/2024", now, now).
			AddRow("d2", "user1", &d1, "Q1", "/Отчёты/2024/Q1", now, now))

	folders, err := repo.ListDescendants(context.Background(), db, "f1", "user1")

	require.NoError(t, err)
	require.Len(t, folders, 2)
	// предок раньше потомка
	assert.Equal(t, "/Отчёты/2024", folders[0].Path)
	assert.Equal(t, "/Отчёты/2024/Q1", folders[1].Path)
}

func TestFolderRepository_UpdatePath(t *testing.T) {
	repo, mockSQL, db := newMockRepo(t)

	mockSQL.ExpectExec("UPDATE folders").
		WithArgs("f1", "user1", "/Новый/путь").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePath(context.Background(), db, "f1", "user1", "/Новый/путь")
	assert.NoError(t, err)
}

func TestFolderRepository_UpdatePath_NotOwned(t *testing.T) {
	repo, mockSQL, db := newMockRepo(t)

	mockSQL.ExpectExec("UPDATE folders").
		WithArgs("f1", "user2", "/Новый/путь").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePath(context.Background(), db, "f1", "user2", "/Новый/путь")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFolderRepository_UpdateParentAndPath(t *testing.T) {
	repo, mockSQL, db := newMockRepo(t)
	target := "t1"

	mockSQL.ExpectExec("UPDATE folders").
		WithArgs("f1", "user1", &target, "/Архив/Отчёты").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateParentAndPath(context.Background(), db, "f1", "user1", &target, "/Архив/Отчёты")
	assert.NoError(t, err)
}

func TestFolderRepository_DeleteSubtree(t *testing.T) {
	repo, mockSQL, db := newMockRepo(t)

	mockSQL.ExpectQuery("WITH RECURSIVE subtree").
		WithArgs("f1", "user1").
		WillReturnRows(sqlmock.NewRows([]string{"uuid"}).
			AddRow("f1").
			AddRow("d1").
			AddRow("d2"))

	deleted, err := repo.DeleteSubtree(context.Background(), db, "f1", "user1")

	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "d1", "d2"}, deleted)
}

func TestFolderRepository_LockOwnerTree(t *testing.T) {
	repo, mockSQL, db := newMockRepo(t)

	mockSQL.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("user1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.LockOwnerTree(context.Background(), db, "user1")
	assert.NoError(t, err)
}
