package service_test

import (
	"doctree-web-server/config"
	"doctree-web-server/internal/model"
	"doctree-web-server/internal/security"
	"doctree-web-server/internal/service"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockS3Storage struct{ mock.Mock }

func (m *MockS3Storage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) GeneratePresignedPutURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockCacheRepository struct{ mock.Mock }

func (m *MockCacheRepository) SetDocument(ctx context.Context, doc *model.Document) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockCacheRepository) GetDocument(ctx context.Context, uuid string) (*model.Document, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockCacheRepository) DeleteDocument(ctx context.Context, uuid string) error {
	return m.Called(mock.Anything, uuid).Error(0)
}

// ===== Функция для создания сервиса с моками =====
func newTestDocumentService() (*service.DocumentService, *MockDocumentRepositoryForFolders, *MockFolderRepository, *MockS3Storage, *MockCacheRepository) {
	mockDocRepo := new(MockDocumentRepositoryForFolders)
	mockFolderRepo := new(MockFolderRepository)
	mockStorage := new(MockS3Storage)
	mockCache := new(MockCacheRepository)

	svc := service.NewDocumentService(
		mockDocRepo,
		mockFolderRepo,
		mockCache,
		mockStorage,
		time.Hour,
	)

	return svc, mockDocRepo, mockFolderRepo, mockStorage, mockCache
}

func authorizedCtx(userUUID string) context.Context {
	ctx := context.WithValue(context.Background(), security.UserContextKey, &security.Claims{
		UserUUID: userUUID,
	})
	return context.WithValue(ctx, "db", &config.Database{})
}

// ===== Тесты CreateDocument =====

func TestCreateDocument_Success(t *testing.T) {
	svc, mockDocRepo, _, mockStorage, _ := newTestDocumentService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})
	doc := &model.Document{
		UUID:             "doc1",
		OwnerUUID:        "user1",
		FilenameOriginal: "file.txt",
		StoragePath:      "docs/doc1.txt",
	}

	mockStorage.On("GeneratePresignedPutURL", ctx, doc.StoragePath, time.Hour).Return("http://put-url", nil)
	mockDocRepo.On("Create", ctx, mock.Anything, doc).Return(nil)

	putURL, err := svc.CreateDocument(ctx, doc)

	assert.NoError(t, err)
	assert.Equal(t, "http://put-url", putURL)
	mockStorage.AssertExpectations(t)
	mockDocRepo.AssertExpectations(t)
}

func TestCreateDocument_IntoFolder(t *testing.T) {
	svc, mockDocRepo, mockFolderRepo, mockStorage, _ := newTestDocumentService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})
	doc := &model.Document{
		UUID:        "doc1",
		OwnerUUID:   "user1",
		FolderUUID:  strPtr("f1"),
		StoragePath: "docs/doc1.txt",
	}
	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", Name: "A", Path: "/A"}

	mockFolderRepo.On("GetByUUID", ctx, mock.Anything, "f1", "user1").Return(folder, nil)
	mockStorage.On("GeneratePresignedPutURL", ctx, doc.StoragePath, time.Hour).Return("http://put-url", nil)
	mockDocRepo.On("Create", ctx, mock.Anything, doc).Return(nil)

	putURL, err := svc.CreateDocument(ctx, doc)

	require.NoError(t, err)
	assert.Equal(t, "http://put-url", putURL)
	mockFolderRepo.AssertExpectations(t)
}

func TestCreateDocument_FolderNotFound(t *testing.T) {
	svc, _, mockFolderRepo, _, _ := newTestDocumentService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})
	doc := &model.Document{
		UUID:        "doc1",
		OwnerUUID:   "user1",
		FolderUUID:  strPtr("missing"),
		StoragePath: "docs/doc1.txt",
	}

	mockFolderRepo.On("GetByUUID", ctx, mock.Anything, "missing", "user1").Return(nil, nil)

	putURL, err := svc.CreateDocument(ctx, doc)

	assert.Equal(t, "", putURL)
	assert.ErrorIs(t, err, service.ErrFolderNotFound)
}

func TestCreateDocument_StorageError(t *testing.T) {
	svc, _, _, mockStorage, _ := newTestDocumentService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})
	doc := &model.Document{
		UUID:        "doc1",
		OwnerUUID:   "user1",
		StoragePath: "docs/doc1.txt",
	}

	mockStorage.On("GeneratePresignedPutURL", ctx, doc.StoragePath, time.Hour).Return("", errors.New("s3 error"))

	putURL, err := svc.CreateDocument(ctx, doc)

	assert.Error(t, err)
	assert.Equal(t, "", putURL)
}

// ===== Тесты GetDocumentByUUID =====

func TestGetDocumentByUUID_FromCache(t *testing.T) {
	svc, _, _, mockStorage, mockCache := newTestDocumentService()
	ctx := authorizedCtx("user1")

	doc := &model.Document{
		UUID:             "doc1",
		OwnerUUID:        "user1",
		FilenameOriginal: "file.txt",
		StoragePath:      "docs/doc1.txt",
	}

	mockCache.On("GetDocument", ctx, "doc1").Return(doc, nil)
	mockStorage.On("GeneratePresignedGetURL", ctx, doc.StoragePath, time.Hour).Return("http://get-url", nil)

	res, err := svc.GetDocumentByUUID(ctx, "doc1")

	require.NoError(t, err)
	assert.Equal(t, "http://get-url", res.GetURL)
	assert.Equal(t, doc, res.Document)
	mockCache.AssertExpectations(t)
}

func TestGetDocumentByUUID_CacheMissFallsBackToDB(t *testing.T) {
	svc, mockDocRepo, _, mockStorage, mockCache := newTestDocumentService()
	ctx := authorizedCtx("user1")

	doc := &model.Document{
		UUID:             "doc1",
		OwnerUUID:        "user1",
		FilenameOriginal: "file.txt",
		StoragePath:      "docs/doc1.txt",
	}

	mockCache.On("GetDocument", ctx, "doc1").Return(nil, nil)
	mockDocRepo.On("GetByUUID", ctx, mock.Anything, "doc1", "user1").Return(doc, nil)
	mockCache.On("SetDocument", ctx, doc).Return(nil)
	mockStorage.On("GeneratePresignedGetURL", ctx, doc.StoragePath, time.Hour).Return("http://get-url", nil)

	res, err := svc.GetDocumentByUUID(ctx, "doc1")

	require.NoError(t, err)
	assert.Equal(t, doc, res.Document)
	mockDocRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestGetDocumentByUUID_ForeignDocumentInCache(t *testing.T) {
	// чужой документ из кэша не должен открывать доступ
	svc, _, _, _, mockCache := newTestDocumentService()
	ctx := authorizedCtx("user1")

	doc := &model.Document{UUID: "doc1", OwnerUUID: "user2", StoragePath: "docs/doc1.txt"}
	mockCache.On("GetDocument", ctx, "doc1").Return(doc, nil)

	_, err := svc.GetDocumentByUUID(ctx, "doc1")
	assert.ErrorIs(t, err, service.ErrDocumentNotFound)
}

func TestGetDocumentByUUID_NotFound(t *testing.T) {
	svc, mockDocRepo, _, _, mockCache := newTestDocumentService()
	ctx := authorizedCtx("user1")

	mockCache.On("GetDocument", ctx, "missing").Return(nil, nil)
	mockDocRepo.On("GetByUUID", ctx, mock.Anything, "missing", "user1").Return(nil, nil)

	_, err := svc.GetDocumentByUUID(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrDocumentNotFound)
}

// ===== Тесты MoveDocument =====

func expectDocTx(mockDocRepo *MockDocumentRepositoryForFolders) {
	mockDocRepo.On("BeginTX", mock.Anything).Return(
		sqlx.ExtContext(&fakeFolderTx{}),
		func() error { return nil },
		func() error { return nil },
		nil,
	)
}

func TestMoveDocument_Success(t *testing.T) {
	svc, mockDocRepo, mockFolderRepo, _, mockCache := newTestDocumentService()
	ctx := context.Background()

	doc := &model.Document{UUID: "doc1", OwnerUUID: "user1"}
	folder := &model.Folder{UUID: "f1", OwnerUUID: "user1", Name: "A", Path: "/A"}

	expectDocTx(mockDocRepo)
	mockDocRepo.On("GetByUUID", mock.Anything, mock.Anything, "doc1", "user1").Return(doc, nil)
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "f1", "user1").Return(folder, nil)
	mockDocRepo.On("UpdateFolder", mock.Anything, mock.Anything, "doc1", "user1", strPtr("f1")).Return(nil)
	mockCache.On("DeleteDocument", mock.Anything, "doc1").Return(nil)

	err := svc.MoveDocument(ctx, "doc1", "user1", strPtr("f1"))

	require.NoError(t, err)
	mockDocRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestMoveDocument_ToNoFolder(t *testing.T) {
	svc, mockDocRepo, _, _, mockCache := newTestDocumentService()
	ctx := context.Background()

	doc := &model.Document{UUID: "doc1", OwnerUUID: "user1", FolderUUID: strPtr("f1")}

	expectDocTx(mockDocRepo)
	mockDocRepo.On("GetByUUID", mock.Anything, mock.Anything, "doc1", "user1").Return(doc, nil)
	mockDocRepo.On("UpdateFolder", mock.Anything, mock.Anything, "doc1", "user1", (*string)(nil)).Return(nil)
	mockCache.On("DeleteDocument", mock.Anything, "doc1").Return(nil)

	err := svc.MoveDocument(ctx, "doc1", "user1", nil)
	require.NoError(t, err)
}

func TestMoveDocument_FolderNotFound(t *testing.T) {
	svc, mockDocRepo, mockFolderRepo, _, _ := newTestDocumentService()
	ctx := context.Background()

	doc := &model.Document{UUID: "doc1", OwnerUUID: "user1"}

	expectDocTx(mockDocRepo)
	mockDocRepo.On("GetByUUID", mock.Anything, mock.Anything, "doc1", "user1").Return(doc, nil)
	mockFolderRepo.On("GetByUUID", mock.Anything, mock.Anything, "missing", "user1").Return(nil, nil)

	err := svc.MoveDocument(ctx, "doc1", "user1", strPtr("missing"))
	assert.ErrorIs(t, err, service.ErrFolderNotFound)
}

func TestMoveDocument_DocumentNotFound(t *testing.T) {
	svc, mockDocRepo, _, _, _ := newTestDocumentService()
	ctx := context.Background()

	expectDocTx(mockDocRepo)
	mockDocRepo.On("GetByUUID", mock.Anything, mock.Anything, "missing", "user1").Return(nil, nil)

	err := svc.MoveDocument(ctx, "missing", "user1", nil)
	assert.ErrorIs(t, err, service.ErrDocumentNotFound)
}

// ===== Тесты DeleteDocument =====

func TestDeleteDocument_Success(t *testing.T) {
	svc, mockDocRepo, _, mockStorage, mockCache := newTestDocumentService()
	ctx := context.Background()

	doc := &model.Document{UUID: "doc1", OwnerUUID: "user1", FilenameOriginal: "file.txt", StoragePath: "docs/doc1.txt"}

	expectDocTx(mockDocRepo)
	mockDocRepo.On("GetByUUID", mock.Anything, mock.Anything, "doc1", "user1").Return(doc, nil)
	mockDocRepo.On("Delete", mock.Anything, mock.Anything, "doc1", "user1").Return("docs/doc1.txt", nil)
	mockCache.On("DeleteDocument", mock.Anything, "doc1").Return(nil)
	mockStorage.On("DeleteObject", mock.Anything, "docs/doc1.txt").Return(nil)

	res, err := svc.DeleteDocument(ctx, "doc1", "user1")

	require.NoError(t, err)
	assert.True(t, res["doc1"])
	mockStorage.AssertExpectations(t)
}

func TestDeleteDocument_NotFound(t *testing.T) {
	svc, mockDocRepo, _, _, _ := newTestDocumentService()
	ctx := context.Background()

	expectDocTx(mockDocRepo)
	mockDocRepo.On("GetByUUID", mock.Anything, mock.Anything, "missing", "user1").Return(nil, nil)

	_, err := svc.DeleteDocument(ctx, "missing", "user1")
	assert.ErrorIs(t, err, service.ErrDocumentNotFound)
}

// ===== Тесты ListDocuments =====

func TestListDocuments_PresignsEachDocument(t *testing.T) {
	svc, mockDocRepo, _, mockStorage, _ := newTestDocumentService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})

	docs := []model.Document{
		{UUID: "doc1", OwnerUUID: "user1", FilenameOriginal: "a.pdf", StoragePath: "docs/a.pdf"},
		{UUID: "doc2", OwnerUUID: "user1", FilenameOriginal: "b.pdf", StoragePath: "docs/b.pdf", FolderUUID: strPtr("f1")},
	}

	mockDocRepo.On("ListByOwner", ctx, mock.Anything, "user1", (*string)(nil), "", 20).Return(docs, "next-cur", nil)
	mockStorage.On("GeneratePresignedGetURL", ctx, "docs/a.pdf", 15*time.Minute).Return("http://a", nil)
	mockStorage.On("GeneratePresignedGetURL", ctx, "docs/b.pdf", 15*time.Minute).Return("http://b", nil)

	responses, nextCursor, err := svc.ListDocuments(ctx, "user1", nil, "", 20)

	require.NoError(t, err)
	assert.Equal(t, "next-cur", nextCursor)
	require.Len(t, responses, 2)
	assert.Equal(t, "http://a", responses[0].PresignedURL)
	assert.Equal(t, strPtr("f1"), responses[1].FolderUUID)
}

func TestListDocuments_PresignErrorDegradesGracefully(t *testing.T) {
	svc, mockDocRepo, _, mockStorage, _ := newTestDocumentService()
	ctx := context.WithValue(context.Background(), "db", &config.Database{})

	docs := []model.Document{
		{UUID: "doc1", OwnerUUID: "user1", StoragePath: "docs/a.pdf"},
	}

	mockDocRepo.On("ListByOwner", ctx, mock.Anything, "user1", (*string)(nil), "", 20).Return(docs, "", nil)
	mockStorage.On("GeneratePresignedGetURL", ctx, "docs/a.pdf", 15*time.Minute).Return("", errors.New("s3 error"))

	responses, _, err := svc.ListDocuments(ctx, "user1", nil, "", 20)

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "", responses[0].PresignedURL)
}
