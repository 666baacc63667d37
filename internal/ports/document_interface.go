package ports

import (
	"doctree-web-server/internal/model"
	"context"
	"github.com/jmoiron/sqlx"
)

// DocumentRepository : SQL слой для документов
type DocumentRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, documentUUID, ownerUUID string) (*model.Document, error)
	ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, folderUUID *string, cursor string, limit int) ([]model.Document, string, error)
	UpdateFolder(ctx context.Context, exec sqlx.ExtContext, documentUUID, ownerUUID string, folderUUID *string) error
	UnfileByFolders(ctx context.Context, exec sqlx.ExtContext, folderUUIDs []string, ownerUUID string) error
	Delete(ctx context.Context, exec sqlx.ExtContext, documentUUID, ownerUUID string) (string, error)
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

type DocumentService interface {
	CreateDocument(ctx context.Context, document *model.Document) (string, error)
	GetDocumentByUUID(ctx context.Context, documentUUID string) (*model.GetDocumentResult, error)
	MoveDocument(ctx context.Context, documentUUID, ownerUUID string, folderUUID *string) error
	DeleteDocument(ctx context.Context, documentUUID, userUUID string) (map[string]bool, error)
	ListDocuments(ctx context.Context, userUUID string, folderUUID *string, cursor string, limit int) ([]model.DocumentResponse, string, error)
}
