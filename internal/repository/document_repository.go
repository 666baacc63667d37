package repository

import (
	"doctree-web-server/config"
	"doctree-web-server/internal/model"
	"doctree-web-server/internal/util"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type DocumentRepository struct {
	*config.Database
}

func NewDocumentRepository(database *config.Database) *DocumentRepository {
	return &DocumentRepository{database}
}

// Create : сохраняем новый документ
func (r *DocumentRepository) Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error {
	query := `
		INSERT INTO documents (uuid, owner_uuid, folder_uuid, name, filename_original, size_bytes, mime_type, sha256, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		document.UUID,
		document.OwnerUUID,
		document.FolderUUID,
		document.Name,
		document.FilenameOriginal,
		document.SizeBytes,
		document.MimeType,
		document.Sha256,
		document.StoragePath)

	return err
}

// GetByUUID : возвращает документ владельца
func (r *DocumentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, documentUUID, ownerUUID string) (*model.Document, error) {
	query := `
		SELECT uuid, owner_uuid, folder_uuid, name, filename_original, size_bytes, mime_type,
		       sha256, storage_path, created_at, updated_at, deleted_at
		FROM documents
		WHERE uuid = $1 AND owner_uuid = $2 AND deleted_at IS NULL
	`

	var document model.Document
	err := sqlx.GetContext(ctx, exec, &document, query, documentUUID, ownerUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[DocumentRepo] не удалось найти документ", err)
	}

	return &document, nil
}

// ListByOwner : список документов владельца (cursor по created_at), с фильтром по папке.
// folderUUID = nil выбирает все документы владельца, указатель на пустую строку — "без папки".
func (r *DocumentRepository) ListByOwner(ctx context.Context, exec sqlx.ExtContext, ownerUUID string, folderUUID *string, cursor string, limit int) ([]model.Document, string, error) {
	queryAll := `
		SELECT uuid, owner_uuid, folder_uuid, name, filename_original, size_bytes, mime_type,
		       sha256, storage_path, created_at, updated_at, deleted_at
		FROM documents
		WHERE owner_uuid = $1 AND deleted_at IS NULL AND created_at > $2
		ORDER BY created_at ASC, uuid ASC
		LIMIT $3
	`
	queryUnfiled := `
		SELECT uuid, owner_uuid, folder_uuid, name, filename_original, size_bytes, mime_type,
		       sha256, storage_path, created_at, updated_at, deleted_at
		FROM documents
		WHERE owner_uuid = $1 AND deleted_at IS NULL AND created_at > $2 AND folder_uuid IS NULL
		ORDER BY created_at ASC, uuid ASC
		LIMIT $3
	`
	queryByFolder := `
		SELECT uuid, owner_uuid, folder_uuid, name, filename_original, size_bytes, mime_type,
		       sha256, storage_path, created_at, updated_at, deleted_at
		FROM documents
		WHERE owner_uuid = $1 AND deleted_at IS NULL AND created_at > $2 AND folder_uuid = $4
		ORDER BY created_at ASC, uuid ASC
		LIMIT $3
	`

	var cursorTime time.Time
	if cursor != "" {
		parsed, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", util.LogError("[DocumentRepo] неверный формат cursor", err)
		}
		cursorTime = parsed
	}

	docs := []model.Document{}
	var err error

	// limit+1 для проверки наличия следующей страницы
	switch {
	case folderUUID == nil:
		err = sqlx.SelectContext(ctx, exec, &docs, queryAll, ownerUUID, cursorTime, limit+1)
	case *folderUUID == "":
		err = sqlx.SelectContext(ctx, exec, &docs, queryUnfiled, ownerUUID, cursorTime, limit+1)
	default:
		err = sqlx.SelectContext(ctx, exec, &docs, queryByFolder, ownerUUID, cursorTime, limit+1, *folderUUID)
	}
	if err != nil {
		return nil, "", util.LogError("[DocumentRepo] не удалось получить список документов", err)
	}

	var nextCursor string
	if len(docs) > limit {
		docs = docs[:limit]
		nextCursor = docs[len(docs)-1].CreatedAt.Format(time.RFC3339Nano)
	}

	return docs, nextCursor, nil
}

// UpdateFolder : перекладывает документ в папку (folderUUID = nil — "без папки")
func (r *DocumentRepository) UpdateFolder(ctx context.Context, exec sqlx.ExtContext, documentUUID, ownerUUID string, folderUUID *string) error {
	query := `
		UPDATE documents
		SET folder_uuid = $3, updated_at = NOW()
		WHERE uuid = $1 AND owner_uuid = $2 AND deleted_at IS NULL
	`
	result, err := exec.ExecContext(ctx, query, documentUUID, ownerUUID, folderUUID)
	if err != nil {
		return util.LogError("[DocumentRepo] не удалось переместить документ", err)
	}
	return checkAffected(result)
}

// UnfileByFolders : отвязывает документы от удаляемых папок — документы остаются "без папки"
func (r *DocumentRepository) UnfileByFolders(ctx context.Context, exec sqlx.ExtContext, folderUUIDs []string, ownerUUID string) error {
	if len(folderUUIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
		UPDATE documents
		SET folder_uuid = NULL, updated_at = NOW()
		WHERE folder_uuid IN (?) AND owner_uuid = ?
	`, folderUUIDs, ownerUUID)
	if err != nil {
		return util.LogError("[DocumentRepo] не удалось собрать запрос", err)
	}

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return util.LogError("[DocumentRepo] не удалось отвязать документы от папок", err)
	}
	return nil
}

// Delete : только владелец может удалить документ, удаление мягкое
func (r *DocumentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, documentUUID string, ownerUUID string) (string, error) {
	query := `
		UPDATE documents
		SET deleted_at = NOW()
		WHERE uuid = $1 AND owner_uuid = $2 AND deleted_at IS NULL
		RETURNING storage_path
	`

	var storagePath string
	err := sqlx.GetContext(ctx, exec, &storagePath, query, documentUUID, ownerUUID)
	if err != nil {
		return "", err
	}

	return storagePath, nil
}

func (r *DocumentRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return tx, func() error { return tx.Rollback() }, func() error { return tx.Commit() }, nil
}
