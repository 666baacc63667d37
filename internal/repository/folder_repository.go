package repository

import (
	"doctree-web-server/config"
	"doctree-web-server/internal/model"
	"doctree-web-server/internal/util"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
)

type FolderRepository struct {
	*config.Database
}

func NewFolderRepository(database *config.Database) *FolderRepository {
	return &FolderRepository{database}
}

// Create : сохраняет новую папку с уже вычисленным path
func (r *FolderRepository) Create(ctx context.Context, exec sqlx.ExtContext, folder *model.Folder) error {
	query := `
		INSERT INTO folders (uuid, owner_uuid, parent_uuid, name, path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := exec.QueryRowxContext(ctx, query,
		folder.UUID,
		folder.OwnerUUID,
		folder.ParentUUID,
		folder.Name,
		folder.Path,
	).Scan(&folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		return util.LogError("[FolderRepo] ошибка вставки папки в БД", err)
	}

	return nil
}

// GetByUUID : ищет папку по UUID в рамках владельца.
// Возвращает (nil, nil), если папка не найдена — отличие "нет строки" от ошибки БД
// нужно движку путей для раздельных кодов отказа.
func (r *FolderRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) (*model.Folder, error) {
	query := `
		SELECT uuid, owner_uuid, parent_uuid, name, path, created_at, updated_at
		FROM folders
		WHERE uuid = $1 AND owner_uuid = $2
	`
	var folder model.Folder
	err := sqlx.GetContext(ctx, exec, &folder, query, folderUUID, ownerUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[FolderRepo] не удалось найти папку в БД", err)
	}
	return &folder, nil
}

// GetByParent : прямые дочерние папки; parentUUID = nil означает корень дерева владельца
func (r *FolderRepository) GetByParent(ctx context.Context, exec sqlx.ExtContext, parentUUID *string, ownerUUID string) ([]model.Folder, error) {
	queryRoot := `
		SELECT uuid, owner_uuid, parent_uuid, name, path, created_at, updated_at
		FROM folders
		WHERE parent_uuid IS NULL AND owner_uuid = $1
		ORDER BY path
	`
	queryChildren := `
		SELECT uuid, owner_uuid, parent_uuid, name, path, created_at, updated_at
		FROM folders
		WHERE parent_uuid = $1 AND owner_uuid = $2
		ORDER BY path
	`

	folders := []model.Folder{}
	var err error
	if parentUUID == nil {
		err = sqlx.SelectContext(ctx, exec, &folders, queryRoot, ownerUUID)
	} else {
		err = sqlx.SelectContext(ctx, exec, &folders, queryChildren, *parentUUID, ownerUUID)
	}
	if err != nil {
		return nil, util.LogError("[FolderRepo] не удалось получить список папок", err)
	}

	return folders, nil
}

// ListDescendants : всё поддерево папки (транзитивное замыкание по parent_uuid).
// Обход идёт по ссылкам parent_uuid, а не по LIKE-префиксу path: имена соседних
// папок не обязаны быть уникальными, поэтому префикс пути не является надёжным
// ключом поддерева. Сортировка по path даёт порядок "предок раньше потомка".
func (r *FolderRepository) ListDescendants(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) ([]model.Folder, error) {
	query := `
		WITH RECURSIVE subtree AS (
			SELECT uuid, owner_uuid, parent_uuid, name, path, created_at, updated_at
			FROM folders
			WHERE parent_uuid = $1 AND owner_uuid = $2
			UNION ALL
			SELECT f.uuid, f.owner_uuid, f.parent_uuid, f.name, f.path, f.created_at, f.updated_at
			FROM folders AS f
			INNER JOIN subtree AS s
				ON f.parent_uuid = s.uuid AND f.owner_uuid = s.owner_uuid
		)
		SELECT uuid, owner_uuid, parent_uuid, name, path, created_at, updated_at
		FROM subtree
		ORDER BY path
	`

	folders := []model.Folder{}
	if err := sqlx.SelectContext(ctx, exec, &folders, query, folderUUID, ownerUUID); err != nil {
		return nil, util.LogError("[FolderRepo] не удалось получить поддерево папок", err)
	}

	return folders, nil
}

// UpdateParentAndPath : перенос папки под нового родителя
func (r *FolderRepository) UpdateParentAndPath(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string, parentUUID *string, path string) error {
	query := `
		UPDATE folders
		SET parent_uuid = $3, path = $4, updated_at = NOW()
		WHERE uuid = $1 AND owner_uuid = $2
	`
	result, err := exec.ExecContext(ctx, query, folderUUID, ownerUUID, parentUUID, path)
	if err != nil {
		return util.LogError("[FolderRepo] не удалось обновить родителя папки", err)
	}
	return checkAffected(result)
}

// UpdateNameAndPath : переименование папки
func (r *FolderRepository) UpdateNameAndPath(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID, name, path string) error {
	query := `
		UPDATE folders
		SET name = $3, path = $4, updated_at = NOW()
		WHERE uuid = $1 AND owner_uuid = $2
	`
	result, err := exec.ExecContext(ctx, query, folderUUID, ownerUUID, name, path)
	if err != nil {
		return util.LogError("[FolderRepo] не удалось переименовать папку", err)
	}
	return checkAffected(result)
}

// UpdatePath : перезапись одного path при каскадном обновлении поддерева
func (r *FolderRepository) UpdatePath(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID, path string) error {
	query := `
		UPDATE folders
		SET path = $3, updated_at = NOW()
		WHERE uuid = $1 AND owner_uuid = $2
	`
	result, err := exec.ExecContext(ctx, query, folderUUID, ownerUUID, path)
	if err != nil {
		return util.LogError("[FolderRepo] не удалось обновить путь папки", err)
	}
	return checkAffected(result)
}

// Delete : удаляет одну папку владельца
func (r *FolderRepository) Delete(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) error {
	query := `DELETE FROM folders WHERE uuid = $1 AND owner_uuid = $2`
	result, err := exec.ExecContext(ctx, query, folderUUID, ownerUUID)
	if err != nil {
		return util.LogError("[FolderRepo] не удалось удалить папку", err)
	}
	return checkAffected(result)
}

// DeleteSubtree : удаляет папку вместе со всеми потомками, возвращает UUID удалённых
func (r *FolderRepository) DeleteSubtree(ctx context.Context, exec sqlx.ExtContext, folderUUID, ownerUUID string) ([]string, error) {
	query := `
		WITH RECURSIVE subtree AS (
			SELECT uuid, owner_uuid
			FROM folders
			WHERE uuid = $1 AND owner_uuid = $2
			UNION ALL
			SELECT f.uuid, f.owner_uuid
			FROM folders AS f
			INNER JOIN subtree AS s
				ON f.parent_uuid = s.uuid AND f.owner_uuid = s.owner_uuid
		)
		DELETE FROM folders
		WHERE uuid IN (SELECT uuid FROM subtree)
		RETURNING uuid
	`

	var deleted []string
	rows, err := exec.QueryxContext(ctx, query, folderUUID, ownerUUID)
	if err != nil {
		return nil, util.LogError("[FolderRepo] не удалось удалить поддерево", err)
	}
	defer rows.Close()

	for rows.Next() {
		var uuid string
		if err := rows.Scan(&uuid); err != nil {
			return nil, util.LogError("[FolderRepo] ошибка чтения удалённых UUID", err)
		}
		deleted = append(deleted, uuid)
	}

	return deleted, rows.Err()
}

// LockOwnerTree : advisory-блокировка дерева владельца на время транзакции.
// Сериализует конкурентные мутации (move/rename/delete) одного пользователя:
// каскад "прочитать потомков — записать каждого" не должен чередоваться
// с другим каскадом по тому же поддереву. Блокировка снимается при COMMIT/ROLLBACK.
func (r *FolderRepository) LockOwnerTree(ctx context.Context, exec sqlx.ExtContext, ownerUUID string) error {
	_, err := exec.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, ownerUUID)
	if err != nil {
		return util.LogError("[FolderRepo] не удалось взять блокировку дерева", err)
	}
	return nil
}

func (r *FolderRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return tx, func() error { return tx.Rollback() }, func() error { return tx.Commit() }, nil
}

// checkAffected : UPDATE/DELETE без затронутых строк означает, что папки нет у владельца
func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[FolderRepo] не удалось проверить число обновлённых строк", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
