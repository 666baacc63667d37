package ports

import (
	"doctree-web-server/internal/model"
	"context"
	"github.com/jmoiron/sqlx"
)

// FolderRepository : SQL слой для папок.
// Каждый метод ограничен владельцем (owner_uuid) — чужие папки не видны никогда.
type FolderRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, folder *model.Folder) error
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) (*model.Folder, error)
	GetByParent(ctx context.Context, exec sqlx.ExtContext, parentUUID *string, ownerUUID string) ([]model.Folder, error)
	ListDescendants(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) ([]model.Folder, error)
	UpdateParentAndPath(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string, parentUUID *string, path string) error
	UpdateNameAndPath(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID, name, path string) error
	UpdatePath(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID, path string) error
	Delete(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) error
	DeleteSubtree(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) ([]string, error)
	LockOwnerTree(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) error
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

// FolderService : движок поддержки материализованных путей
type FolderService interface {
	CreateFolder(ctx context.Context, name string, parentUUID *string, ownerUUID string) (*model.Folder, error)
	MoveFolder(ctx context.Context, folderUUID, ownerUUID string, newParentUUID *string) (*model.Folder, error)
	RenameFolder(ctx context.Context, folderUUID, ownerUUID, newName string) (*model.Folder, error)
	DeleteFolder(ctx context.Context, folderUUID, ownerUUID string) error
	GetFolder(ctx context.Context, folderUUID, ownerUUID string) (*model.Folder, error)
	GetFolderPath(ctx context.Context, folderUUID, ownerUUID string) ([]model.Folder, error)
	GetChildFolders(ctx context.Context, folderUUID, ownerUUID string) ([]model.Folder, error)
	GetFoldersByParent(ctx context.Context, parentUUID *string, ownerUUID string) ([]model.Folder, error)
}
