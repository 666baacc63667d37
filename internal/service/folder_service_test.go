package service_test

import (
	"doctree-web-server/config"
	"doctree-web-server/internal/model"
	"doctree-web-server/internal/service"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFolderRepository struct{ mock.Mock }

func (m *MockFolderRepository) Create(ctx context.Context, exec sqlx.ExtContext, folder *model.Folder) error {
	return m.Called(ctx, exec, folder).Error(0)
}

func (m *MockFolderRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) (*model.Folder, error) {
	args := m.Called(ctx, exec, folderUUID, ownerUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) GetByParent(ctx context.Context, exec sqlx.ExtContext, parentUUID *string, ownerUUID string) ([]model.Folder, error) {
	args := m.Called(ctx, exec, parentUUID, ownerUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListDescendants(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) ([]model.Folder, error) {
	args := m.Called(ctx, exec, folderUUID, ownerUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderRepository) UpdateParentAndPath(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string, parentUUID *string, path string) error {
	return m.Called(ctx, exec, folderUUID, ownerUUID, parentUUID, path).Error(0)
}

func (m *MockFolderRepository) UpdateNameAndPath(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID, name, path string) error {
	return m.Called(ctx, exec, folderUUID, ownerUUID, name, path).Error(0)
}

func (m *MockFolderRepository) UpdatePath(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID, path string) error {
	return m.Called(ctx, exec, folderUUID, ownerUUID, path).Error(0)
}

func (m *MockFolderRepository) Delete(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) error {
	return m.Called(ctx, exec, folderUUID, ownerUUID).Error(0)
}

func (m *MockFolderRepository) DeleteSubtree(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) ([]string, error) {
	args := m.Called(ctx, exec, folderUUID, ownerUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFolderRepository) LockOwnerTree(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) error {
	return m.Called(ctx, exec, ownerUUID).Error(0)
}

func (m *MockFolderRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	return args.Get(0).(sqlx.ExtContext), args.Get(1).(func() error), args.Get(2).(func() error), args.Error(3)
}

type MockDocumentRepositoryForFolders struct{ mock.Mock }

func (m *MockDocumentRepositoryForFolders) Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error {
	return m.Called(ctx, exec, document).Error(0)
}

func (m *MockDocumentRepositoryForFolders) GetByUUID(ctx context.Context, exec sqlx.ExtContext, documentUUID, ownerUUID string) (*model.Document, error) {
	args := m.Called(ctx, exec, documentUUID, ownerUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentRepositoryForFolders) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, folderUUID *string, cursor string, limit int) ([]model.Document, string, error) {
	args := m.Called(ctx, exec, ownerUUID, folderUUID, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]model.Document), args.String(1), args.Error(2)
}

func (m *MockDocumentRepositoryForFolders) UpdateFolder(ctx context.Context, exec sqlx.ExtContext, documentUUID, ownerUUID string, folderUUID *string) error {
	return m.Called(ctx, exec, documentUUID, ownerUUID, folderUUID).Error(0)
}

func (m *MockDocumentRepositoryForFolders) UnfileByFolders(ctx context.Context, exec sqlx.ExtContext, folderUUIDs []string, ownerUUID string) error {
	return m.Called(ctx, exec, folderUUIDs, ownerUUID).Error(0)
}

func (m *MockDocumentRepositoryForFolders) Delete(ctx context.Context, exec sqlx.ExtContext, documentUUID, ownerUUID string) (string, error) {
	args := m.Called(ctx, exec, documentUUID, ownerUUID)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentRepositoryForFolders) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	return args.Get(0).(sqlx.ExtContext), args.Get(1).(func() error), args.Get(2).(func() error), args.Error(3)
}

type fakeFolderTx struct{}

func (f *fakeFolderTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (f *fakeFolderTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (f *fakeFolderTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return &sql.Row{}
}
func (f *fakeFolderTx) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	return nil, nil
}
func (f *fakeFolderTx) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return &sqlx.Row{}
}
func (f *fakeFolderTx) BindNamed(query string, arg interface{}) (string, []interface{}, error) {
	return "", nil, nil
}
func (f *fakeFolderTx) DriverName() string         { return "fake" }
func (f *fakeFolderTx) Rebind(query string) string { return query }

func strPtr(s string) *string { return &s }

// ===== Функция для создания сервиса с моками =====
func newTestFolderService() (*service.FolderService, *MockFolderRepository, *MockDocumentRepositoryForFolders) {
	mockFolderRepo := new(MockFolderRepository)
	mockDocRepo := new(MockDocumentRepositoryForFolders)

	svc := service.NewFolderService(mockFolderRepo, mockDocRepo)
	return svc, mockFolderRepo, mockDocRepo
}

func expectTx(mockFolderRepo *MockFolderRepository, ownerUUID string) {
	tx := &fakeFolderTx{}
	mockFolderRepo.On("BeginTX", mock.Anything).Return(
		sqlx.ExtContext(tx),
		func() error { return nil },
		func() error { return nil },
		nil,
	)
	mockFolderRepo.On("LockOwnerTree", mock.Anything, mock.Anything, ownerUUID).Return(nil)
}

// ===== Тесты CreateFolder =====

func TestCreateFolder_Root(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(f *model.Folder) bool {
		return f.Path == "/Проекты" && f.Name == "Проекты" && f.ParentUUID == nil
	})).Return(nil)

	folder, err := svc.CreateFolder(ctx, "Проекты", nil, "user1")

	require.NoError(t, err)
	assert.Equal(t, "/Проекты", folder.Path)
	assert.Equal(t, "user1", folder.OwnerUUID)
	assert.NotEmpty(t, folder.UUID)
	mockFolderRepo.AssertExpectations(t)
}

func TestCreateFolder_NestedPathFromParent(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	parent := &model.Folder{UUID: "p1", OwnerUUID: "user1", Name: "Проекты", Path: "/Проекты"}

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "p1", "user1").Return(parent, nil)
	mockFolderRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(f *model.Folder) bool {
		return f.Path == "/Проекты/2024"
	})).Return(nil)

	folder, err := svc.CreateFolder(ctx, "2024", strPtr("p1"), "user1")

	require.NoError(t, err)
	assert.Equal(t, "/Проекты/2024", folder.Path)
	mockFolderRepo.AssertExpectations(t)
}

func TestCreateFolder_ParentNotFound(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "missing", "user1").Return(nil, nil)

	folder, err := svc.CreateFolder(ctx, "2024", strPtr("missing"), "user1")

	assert.Nil(t, folder)
	assert.ErrorIs(t, err, service.ErrTargetNotFound)
}

func TestCreateFolder_InvalidName(t *testing.T) {
	svc, _, _ := newTestFolderService()
	ctx := context.Background()

	_, err := svc.CreateFolder(ctx, "", nil, "user1")
	assert.ErrorIs(t, err, service.ErrInvalidFolderName)

	_, err = svc.CreateFolder(ctx, "a/b", nil, "user1")
	assert.ErrorIs(t, err, service.ErrInvalidFolderName)
}

// ===== Тесты MoveFolder =====

func TestMoveFolder_CascadesDescendantPaths(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", ParentUUID: strPtr("old"), Name: "Отчёты", Path: "/Старое/Отчёты"}
	descendants := []model.Folder{
		{UUID: "d1", OwnerUUID: "user1", ParentUUID: strPtr("f1"), Name: "2023", Path: "/Старое/Отчёты/2023"},
		{UUID: "d2", OwnerUUID: "user1", ParentUUID: strPtr("d1"), Name: "Q1", Path: "/Старое/Отчёты/2023/Q1"},
	}
	target := &model.Folder{UUID: "t1", OwnerUUID: "user1", Name: "Архив", Path: "/Архив"}

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "f1", "user1").Return(folder, nil)
	mockFolderRepo.On("ListDescendants", mock.Anything, mock.Anything, "f1", "user1").Return(descendants, nil)
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "t1", "user1").Return(target, nil)
	mockFolderRepo.On("UpdateParentAndPath", mock.Anything, mock.Anything, "f1", "user1", strPtr("t1"), "/Архив/Отчёты").Return(nil)
	mockFolderRepo.On("UpdatePath", mock.Anything, mock.Anything, "d1", "user1", "/Архив/Отчёты/2023").Return(nil)
	mockFolderRepo.On("UpdatePath", mock.Anything, mock.Anything, "d2", "user1", "/Архив/Отчёты/2023/Q1").Return(nil)

	moved, err := svc.MoveFolder(ctx, "f1", "user1", strPtr("t1"))

	require.NoError(t, err)
	assert.Equal(t, "/Архив/Отчёты", moved.Path)
	assert.Equal(t, strPtr("t1"), moved.ParentUUID)
	mockFolderRepo.AssertExpectations(t)
}

func TestMoveFolder_ToRoot(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", ParentUUID: strPtr("p1"), Name: "Отчёты", Path: "/Проекты/Отчёты"}
	descendants := []model.Folder{
		{UUID: "d1", OwnerUUID: "user1", ParentUUID: strPtr("f1"), Name: "2024", Path: "/Проекты/Отчёты/2024"},
	}

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "f1", "user1").Return(folder, nil)
	mockFolderRepo.On("ListDescendants", mock.Anything, mock.Anything, "f1", "user1").Return(descendants, nil)
	mockFolderRepo.On("UpdateParentAndPath", mock.Anything, mock.Anything, "f1", "user1", (*string)(nil), "/Отчёты").Return(nil)
	mockFolderRepo.On("UpdatePath", mock.Anything, mock.Anything, "d1", "user1", "/Отчёты/2024").Return(nil)

	moved, err := svc.MoveFolder(ctx, "f1", "user1", nil)

	require.NoError(t, err)
	assert.Equal(t, "/Отчёты", moved.Path)
	assert.Nil(t, moved.ParentUUID)
	mockFolderRepo.AssertExpectations(t)
}

func TestMoveFolder_RepeatedNameInPath(t *testing.T) {
	// имя папки встречается в path дважды: заменяться должен только префикс
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", ParentUUID: strPtr("p1"), Name: "Docs", Path: "/Docs/Docs"}
	descendants := []model.Folder{
		{UUID: "d1", OwnerUUID: "user1", ParentUUID: strPtr("f1"), Name: "Docs", Path: "/Docs/Docs/Docs"},
	}

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "f1", "user1").Return(folder, nil)
	mockFolderRepo.On("ListDescendants", mock.Anything, mock.Anything, "f1", "user1").Return(descendants, nil)
	mockFolderRepo.On("UpdateParentAndPath", mock.Anything, mock.Anything, "f1", "user1", (*string)(nil), "/Docs").Return(nil)
	mockFolderRepo.On("UpdatePath", mock.Anything, mock.Anything, "d1", "user1", "/Docs/Docs").Return(nil)

	moved, err := svc.MoveFolder(ctx, "f1", "user1", nil)

	require.NoError(t, err)
	assert.Equal(t, "/Docs", moved.Path)
	mockFolderRepo.AssertExpectations(t)
}

func TestMoveFolder_SourceNotFound(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "missing", "user1").Return(nil, nil)

	_, err := svc.MoveFolder(ctx, "missing", "user1", strPtr("t1"))
	assert.ErrorIs(t, err, service.ErrFolderNotFound)
}

func TestMoveFolder_SelfParent(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", Name: "A", Path: "/A"}

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "f1", "user1").Return(folder, nil)

	_, err := svc.MoveFolder(ctx, "f1", "user1", strPtr("f1"))
	assert.ErrorIs(t, err, service.ErrInvalidMove)
}

func TestMoveFolder_IntoOwnDescendant(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", Name: "A", Path: "/A"}
	descendants := []model.Folder{
		{UUID: "d1", OwnerUUID: "user1", ParentUUID: strPtr("f1"), Name: "B", Path: "/A/B"},
		{UUID: "d2", OwnerUUID: "user1", ParentUUID: strPtr("d1"), Name: "C", Path: "/A/B/C"},
	}

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "f1", "user1").Return(folder, nil)
	mockFolderRepo.On("ListDescendants", mock.Anything, mock.Anything, "f1", "user1").Return(descendants, nil)

	_, err := svc.MoveFolder(ctx, "f1", "user1", strPtr("d2"))
	assert.ErrorIs(t, err, service.ErrInvalidMove)

	// до обновлений дело не дошло
	mockFolderRepo.AssertNotCalled(t, "UpdateParentAndPath", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveFolder_TargetNotFound(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", Name: "A", Path: "/A"}

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "f1", "user1").Return(folder, nil)
	mockFolderRepo.On("ListDescendants", mock.Anything, mock.Anything, "f1", "user1").Return([]model.Folder{}, nil)
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "missing", "user1").Return(nil, nil)

	_, err := svc.MoveFolder(ctx, "f1", "user1", strPtr("missing"))
	assert.ErrorIs(t, err, service.ErrTargetNotFound)
}

func TestMoveFolder_ToCurrentParentIsIdempotent(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	parent := &model.Folder{UUID: "p1", OwnerUUID: "user1", Name: "Проекты", Path: "/Проекты"}
	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", ParentUUID: strPtr("p1"), Name: "Отчёты", Path: "/Проекты/Отчёты"}

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "f1", "user1").Return(folder, nil)
	mockFolderRepo.On("ListDescendants", mock.Anything, mock.Anything, "f1", "user1").Return([]model.Folder{}, nil)
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "p1", "user1").Return(parent, nil)
	mockFolderRepo.On("UpdateParentAndPath", mock.Anything, mock.Anything, "f1", "user1", strPtr("p1"), "/Проекты/Отчёты").Return(nil)

	moved, err := svc.MoveFolder(ctx, "f1", "user1", strPtr("p1"))

	require.NoError(t, err)
	assert.Equal(t, "/Проекты/Отчёты", moved.Path)
	mockFolderRepo.AssertExpectations(t)
}

// ===== Тесты RenameFolder =====

func TestRenameFolder_CascadesDescendantPaths(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", ParentUUID: strPtr("p1"), Name: "Отчёты", Path: "/Проекты/Отчёты"}
	descendants := []model.Folder{
		{UUID: "d1", OwnerUUID: "user1", ParentUUID: strPtr("f1"), Name: "2024", Path: "/Проекты/Отчёты/2024"},
	}

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "f1", "user1").Return(folder, nil)
	mockFolderRepo.On("UpdateNameAndPath", mock.Anything, mock.Anything, "f1", "user1", "Архив", "/Проекты/Архив").Return(nil)
	mockFolderRepo.On("ListDescendants", mock.Anything, mock.Anything, "f1", "user1").Return(descendants, nil)
	mockFolderRepo.On("UpdatePath", mock.Anything, mock.Anything, "d1", "user1", "/Проекты/Архив/2024").Return(nil)

	renamed, err := svc.RenameFolder(ctx, "f1", "user1", "Архив")

	require.NoError(t, err)
	assert.Equal(t, "Архив", renamed.Name)
	assert.Equal(t, "/Проекты/Архив", renamed.Path)
	mockFolderRepo.AssertExpectations(t)
}

func TestRenameFolder_RootFolder(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", Name: "Отчёты", Path: "/Отчёты"}

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "f1", "user1").Return(folder, nil)
	mockFolderRepo.On("UpdateNameAndPath", mock.Anything, mock.Anything, "f1", "user1", "Архив", "/Архив").Return(nil)
	mockFolderRepo.On("ListDescendants", mock.Anything, mock.Anything, "f1", "user1").Return([]model.Folder{}, nil)

	renamed, err := svc.RenameFolder(ctx, "f1", "user1", "Архив")

	require.NoError(t, err)
	assert.Equal(t, "/Архив", renamed.Path)
}

func TestRenameFolder_InvalidName(t *testing.T) {
	svc, _, _ := newTestFolderService()
	ctx := context.Background()

	_, err := svc.RenameFolder(ctx, "f1", "user1", "a/b")
	assert.ErrorIs(t, err, service.ErrInvalidFolderName)
}

func TestRenameFolder_NotFound(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "missing", "user1").Return(nil, nil)

	_, err := svc.RenameFolder(ctx, "missing", "user1", "Архив")
	assert.ErrorIs(t, err, service.ErrFolderNotFound)
}

// ===== Тесты DeleteFolder =====

func TestDeleteFolder_UnfilesDocuments(t *testing.T) {
	svc, mockFolderRepo, mockDocRepo := newTestFolderService()
	ctx := context.Background()

	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", Name: "A", Path: "/A"}
	deleted := []string{"f1", "d1", "d2"}

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "f1", "user1").Return(folder, nil)
	mockFolderRepo.On("DeleteSubtree", mock.Anything, mock.Anything, "f1", "user1").Return(deleted, nil)
	mockDocRepo.On("UnfileByFolders", mock.Anything, mock.Anything, deleted, "user1").Return(nil)

	err := svc.DeleteFolder(ctx, "f1", "user1")

	require.NoError(t, err)
	mockFolderRepo.AssertExpectations(t)
	mockDocRepo.AssertExpectations(t)
}

func TestDeleteFolder_NotFound(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	expectTx(mockFolderRepo, "user1")
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "missing", "user1").Return(nil, nil)

	err := svc.DeleteFolder(ctx, "missing", "user1")
	assert.ErrorIs(t, err, service.ErrFolderNotFound)
}

// ===== Тесты GetFolderPath =====

func TestGetFolderPath_RootToLeafOrder(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})

	leaf := &model.Folder{UUID: "c", OwnerUUID: "user1", ParentUUID: strPtr("b"), Name: "Q1", Path: "/Проекты/2024/Q1"}
	mid := &model.Folder{UUID: "b", OwnerUUID: "user1", ParentUUID: strPtr("a"), Name: "2024", Path: "/Проекты/2024"}
	root := &model.Folder{UUID: "a", OwnerUUID: "user1", Name: "Проекты", Path: "/Проекты"}

	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "c", "user1").Return(leaf, nil)
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "b", "user1").Return(mid, nil)
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "a", "user1").Return(root, nil)

	chain, err := svc.GetFolderPath(ctx, "c", "user1")

	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, "a", chain[0].UUID)
	assert.Equal(t, "b", chain[1].UUID)
	assert.Equal(t, "c", chain[2].UUID)
}

func TestGetFolderPath_NotFound(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})

	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "missing", "user1").Return(nil, nil)

	_, err := svc.GetFolderPath(ctx, "missing", "user1")
	assert.ErrorIs(t, err, service.ErrFolderNotFound)
}

func TestGetFolderPath_BrokenParentLink(t *testing.T) {
	// ссылка на несуществующего (или чужого) родителя обрывает обход
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})

	leaf := &model.Folder{UUID: "c", OwnerUUID: "user1", ParentUUID: strPtr("stolen"), Name: "Q1", Path: "/X/Q1"}

	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "c", "user1").Return(leaf, nil)
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "stolen", "user1").Return(nil, nil)

	_, err := svc.GetFolderPath(ctx, "c", "user1")
	assert.ErrorIs(t, err, service.ErrFolderNotFound)
}

func TestGetFolderPath_CycleGuard(t *testing.T) {
	// повреждённые данные: parent_uuid замкнут сам на себя
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})

	looped := &model.Folder{UUID: "x", OwnerUUID: "user1", ParentUUID: strPtr("x"), Name: "X", Path: "/X"}
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "x", "user1").Return(looped, nil)

	_, err := svc.GetFolderPath(ctx, "x", "user1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrFolderNotFound)
}

// ===== Тесты чтения списков =====

func TestGetChildFolders_FolderNotFound(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})

	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "missing", "user1").Return(nil, nil)

	_, err := svc.GetChildFolders(ctx, "missing", "user1")
	assert.ErrorIs(t, err, service.ErrFolderNotFound)
}

func TestGetFoldersByParent_Root(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})

	roots := []model.Folder{
		{UUID: "a", OwnerUUID: "user1", Name: "Проекты", Path: "/Проекты"},
		{UUID: "b", OwnerUUID: "user1", Name: "Архив", Path: "/Архив"},
	}
	mockFolderRepo.On("GetByParent", mock.Anything, mock.Anything, (*string)(nil), "user1").Return(roots, nil)

	folders, err := svc.GetFoldersByParent(ctx, nil, "user1")

	require.NoError(t, err)
	assert.Len(t, folders, 2)
}

func TestMoveFolder_BeginTXError(t *testing.T) {
	svc, mockFolderRepo, _ := newTestFolderService()
	ctx := context.Background()

	mockFolderRepo.On("BeginTX", mock.Anything).Return(
		sqlx.ExtContext(&fakeFolderTx{}),
		func() error { return nil },
		func() error { return nil },
		errors.New("db down"),
	)

	_, err := svc.MoveFolder(ctx, "f1", "user1", nil)
	assert.Error(t, err)
}
