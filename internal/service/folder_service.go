package service

import (
	"doctree-web-server/config"
	"doctree-web-server/internal/model"
	"doctree-web-server/internal/ports"
	"doctree-web-server/internal/util"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

// maxFolderDepth ограничивает подъём по цепочке предков: повреждённые данные
// с циклом по parent_uuid не должны приводить к бесконечному обходу
const maxFolderDepth = 128

// FolderService поддерживает инвариант материализованного пути:
// path папки всегда равен parent.path + "/" + name (или "/" + name для корня).
// Все мутации выполняются в одной транзакции под advisory-блокировкой дерева
// владельца, поэтому каскад обновления потомков атомарен и не чередуется
// с конкурентными мутациями того же поддерева.
type FolderService struct {
	folderRepository   ports.FolderRepository
	documentRepository ports.DocumentRepository
}

func NewFolderService(folderRepository ports.FolderRepository, documentRepository ports.DocumentRepository) *FolderService {
	return &FolderService{
		folderRepository:   folderRepository,
		documentRepository: documentRepository,
	}
}

// CreateFolder : создаёт папку и вычисляет её path от родителя.
// У новой папки нет потомков, каскад не нужен, но чтение path родителя и вставка
// идут в одной транзакции под блокировкой — иначе конкурентный move родителя
// оставил бы новую папку со старым префиксом.
func (s *FolderService) CreateFolder(ctx context.Context, name string, parentUUID *string, ownerUUID string) (*model.Folder, error) {
	if err := validateFolderName(name); err != nil {
		return nil, err
	}

	exec, rollback, commit, err := s.folderRepository.BeginTX(ctx)
	if err != nil {
		return nil, util.LogError("[FolderService] не удалось начать транзакцию", err)
	}
	defer rollback()

	if err := s.folderRepository.LockOwnerTree(ctx, exec, ownerUUID); err != nil {
		return nil, err
	}

	path := "/" + name
	if parentUUID != nil {
		parent, err := s.folderRepository.GetByUUID(ctx, exec, *parentUUID, ownerUUID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrTargetNotFound
		}
		path = parent.Path + "/" + name
	}

	folder := &model.Folder{
		UUID:       uuid.New().String(),
		OwnerUUID:  ownerUUID,
		ParentUUID: parentUUID,
		Name:       name,
		Path:       path,
	}

	if err := s.folderRepository.Create(ctx, exec, folder); err != nil {
		return nil, err
	}

	if err := commit(); err != nil {
		return nil, util.LogError("[FolderService] не удалось закоммитить транзакцию", err)
	}

	log.Printf("[FolderService] папка %s создана, path=%s", folder.UUID, folder.Path)
	return folder, nil
}

// MoveFolder : переносит папку под нового родителя (nil — в корень) и каскадно
// переписывает path всех потомков. Порядок проверок фиксирован, каждая ошибка
// различима: ErrFolderNotFound -> ErrInvalidMove (в себя) -> ErrInvalidMove
// (в потомка) -> ErrTargetNotFound. Перемещение к текущему родителю легально
// и идемпотентно: проверки и запись выполняются как обычно.
func (s *FolderService) MoveFolder(ctx context.Context, folderUUID, ownerUUID string, newParentUUID *string) (*model.Folder, error) {
	exec, rollback, commit, err := s.folderRepository.BeginTX(ctx)
	if err != nil {
		return nil, util.LogError("[FolderService] не удалось начать транзакцию", err)
	}
	defer rollback()

	if err := s.folderRepository.LockOwnerTree(ctx, exec, ownerUUID); err != nil {
		return nil, err
	}

	folder, err := s.folderRepository.GetByUUID(ctx, exec, folderUUID, ownerUUID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}

	if newParentUUID != nil && *newParentUUID == folder.UUID {
		return nil, fmt.Errorf("%w: папка не может быть родителем самой себя", ErrInvalidMove)
	}

	// Потомки читаются в той же транзакции, что и последующие записи
	descendants, err := s.folderRepository.ListDescendants(ctx, exec, folder.UUID, ownerUUID)
	if err != nil {
		return nil, err
	}

	newPath := "/" + folder.Name
	if newParentUUID != nil {
		for i := range descendants {
			if descendants[i].UUID == *newParentUUID {
				return nil, fmt.Errorf("%w: целевая папка является потомком перемещаемой", ErrInvalidMove)
			}
		}

		newParent, err := s.folderRepository.GetByUUID(ctx, exec, *newParentUUID, ownerUUID)
		if err != nil {
			return nil, err
		}
		if newParent == nil {
			return nil, ErrTargetNotFound
		}
		newPath = newParent.Path + "/" + folder.Name
	}

	oldPath := folder.Path
	if err := s.folderRepository.UpdateParentAndPath(ctx, exec, folder.UUID, ownerUUID, newParentUUID, newPath); err != nil {
		return nil, err
	}

	// Каскад: у каждого потомка старый префикс заменяется новым, относительный
	// суффикс сохраняется. Обновления независимы друг от друга, порядок не важен.
	for i := range descendants {
		d := &descendants[i]
		rewritten := newPath + strings.TrimPrefix(d.Path, oldPath)
		if err := s.folderRepository.UpdatePath(ctx, exec, d.UUID, ownerUUID, rewritten); err != nil {
			return nil, err
		}
	}

	if err := commit(); err != nil {
		return nil, util.LogError("[FolderService] не удалось закоммитить транзакцию", err)
	}

	log.Printf("[FolderService] папка %s перемещена: %s -> %s (потомков: %d)", folder.UUID, oldPath, newPath, len(descendants))

	folder.ParentUUID = newParentUUID
	folder.Path = newPath
	return folder, nil
}

// RenameFolder : меняет имя папки. Имя входит в path, поэтому переименование —
// тот же каскад замены префикса, что и перемещение.
func (s *FolderService) RenameFolder(ctx context.Context, folderUUID, ownerUUID, newName string) (*model.Folder, error) {
	if err := validateFolderName(newName); err != nil {
		return nil, err
	}

	exec, rollback, commit, err := s.folderRepository.BeginTX(ctx)
	if err != nil {
		return nil, util.LogError("[FolderService] не удалось начать транзакцию", err)
	}
	defer rollback()

	if err := s.folderRepository.LockOwnerTree(ctx, exec, ownerUUID); err != nil {
		return nil, err
	}

	folder, err := s.folderRepository.GetByUUID(ctx, exec, folderUUID, ownerUUID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}

	oldPath := folder.Path
	newPath := strings.TrimSuffix(oldPath, "/"+folder.Name) + "/" + newName

	if err := s.folderRepository.UpdateNameAndPath(ctx, exec, folder.UUID, ownerUUID, newName, newPath); err != nil {
		return nil, err
	}

	descendants, err := s.folderRepository.ListDescendants(ctx, exec, folder.UUID, ownerUUID)
	if err != nil {
		return nil, err
	}
	for i := range descendants {
		d := &descendants[i]
		rewritten := newPath + strings.TrimPrefix(d.Path, oldPath)
		if err := s.folderRepository.UpdatePath(ctx, exec, d.UUID, ownerUUID, rewritten); err != nil {
			return nil, err
		}
	}

	if err := commit(); err != nil {
		return nil, util.LogError("[FolderService] не удалось закоммитить транзакцию", err)
	}

	log.Printf("[FolderService] папка %s переименована: %s -> %s", folder.UUID, oldPath, newPath)

	folder.Name = newName
	folder.Path = newPath
	return folder, nil
}

// DeleteFolder : удаляет папку со всем поддеревом в одной транзакции.
// Документы из удалённых папок не уничтожаются — они становятся "без папки".
func (s *FolderService) DeleteFolder(ctx context.Context, folderUUID, ownerUUID string) error {
	exec, rollback, commit, err := s.folderRepository.BeginTX(ctx)
	if err != nil {
		return util.LogError("[FolderService] не удалось начать транзакцию", err)
	}
	defer rollback()

	if err := s.folderRepository.LockOwnerTree(ctx, exec, ownerUUID); err != nil {
		return err
	}

	folder, err := s.folderRepository.GetByUUID(ctx, exec, folderUUID, ownerUUID)
	if err != nil {
		return err
	}
	if folder == nil {
		return ErrFolderNotFound
	}

	deleted, err := s.folderRepository.DeleteSubtree(ctx, exec, folder.UUID, ownerUUID)
	if err != nil {
		return err
	}

	if err := s.documentRepository.UnfileByFolders(ctx, exec, deleted, ownerUUID); err != nil {
		return err
	}

	if err := commit(); err != nil {
		return util.LogError("[FolderService] не удалось закоммитить транзакцию", err)
	}

	log.Printf("[FolderService] папка %s удалена вместе с поддеревом (всего: %d)", folderUUID, len(deleted))
	return nil
}

// GetFolder : возвращает одну папку владельца
func (s *FolderService) GetFolder(ctx context.Context, folderUUID, ownerUUID string) (*model.Folder, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[FolderService] database connection не найден в context")
	}

	folder, err := s.folderRepository.GetByUUID(ctx, db, folderUUID, ownerUUID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	return folder, nil
}

// GetFolderPath : цепочка папок от корня до запрошенной (для хлебных крошек).
// Подъём идёт по ссылкам parent_uuid, каждая ступень ограничена владельцем:
// побитая или подменённая ссылка на чужую папку обрывает обход, чужие данные
// не возвращаются никогда.
func (s *FolderService) GetFolderPath(ctx context.Context, folderUUID, ownerUUID string) ([]model.Folder, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[FolderService] database connection не найден в context")
	}

	chain := []model.Folder{}
	currentUUID := &folderUUID

	for currentUUID != nil {
		if len(chain) >= maxFolderDepth {
			return nil, util.LogError("[FolderService] превышена глубина дерева", fmt.Errorf("возможен цикл parent_uuid"))
		}

		folder, err := s.folderRepository.GetByUUID(ctx, db, *currentUUID, ownerUUID)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, ErrFolderNotFound
		}

		chain = append(chain, *folder)
		currentUUID = folder.ParentUUID
	}

	// разворачиваем: от корня к листу
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}

// GetChildFolders : все потомки папки на любой глубине, отсортированы по path
func (s *FolderService) GetChildFolders(ctx context.Context, folderUUID, ownerUUID string) ([]model.Folder, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[FolderService] database connection не найден в context")
	}

	folder, err := s.folderRepository.GetByUUID(ctx, db, folderUUID, ownerUUID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}

	return s.folderRepository.ListDescendants(ctx, db, folderUUID, ownerUUID)
}

// GetFoldersByParent : прямые дочерние папки; parentUUID = nil — корень
func (s *FolderService) GetFoldersByParent(ctx context.Context, parentUUID *string, ownerUUID string) ([]model.Folder, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[FolderService] database connection не найден в context")
	}

	return s.folderRepository.GetByParent(ctx, db, parentUUID, ownerUUID)
}

func validateFolderName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: имя не может быть пустым", ErrInvalidFolderName)
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("%w: имя не может содержать символ /", ErrInvalidFolderName)
	}
	return nil
}
