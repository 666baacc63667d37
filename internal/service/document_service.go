package service

import (
	"doctree-web-server/config"
	"doctree-web-server/internal/model"
	"doctree-web-server/internal/ports"
	"doctree-web-server/internal/security"
	"doctree-web-server/internal/util"
	"context"
	"fmt"
	"log"
	"time"
)

type DocumentService struct {
	documentRepository ports.DocumentRepository
	folderRepository   ports.FolderRepository
	cacheRepository    ports.CacheRepository
	storageInterface   ports.S3Storage
	ttl                time.Duration
}

func NewDocumentService(
	documentRepository ports.DocumentRepository,
	folderRepository ports.FolderRepository,
	cacheRepository ports.CacheRepository,
	storageInterface ports.S3Storage,
	ttl time.Duration,
) *DocumentService {
	return &DocumentService{
		documentRepository: documentRepository,
		folderRepository:   folderRepository,
		cacheRepository:    cacheRepository,
		storageInterface:   storageInterface,
		ttl:                ttl,
	}
}

// CreateDocument : создаёт документ, возвращает pre-signed PUT URL для загрузки.
// Если указана папка, она должна существовать у владельца.
func (s *DocumentService) CreateDocument(ctx context.Context, document *model.Document) (string, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return "", fmt.Errorf("[DocumentService] database connection не найден в context")
	}

	if document.FolderUUID != nil {
		folder, err := s.folderRepository.GetByUUID(ctx, db, *document.FolderUUID, document.OwnerUUID)
		if err != nil {
			return "", err
		}
		if folder == nil {
			return "", ErrFolderNotFound
		}
	}

	putURL, err := s.storageInterface.GeneratePresignedPutURL(ctx, document.StoragePath, s.ttl)
	if err != nil {
		return "", util.LogError("[DocumentService] не удалось сгенерировать pre-signed PUT URL", err)
	}

	if err := s.documentRepository.Create(ctx, db, document); err != nil {
		return "", util.LogError("[DocumentService] не удалось сохранить документ в БД", err)
	}

	log.Printf("[DocumentService] документ %s успешно создан", document.FilenameOriginal)

	return putURL, nil
}

// GetDocumentByUUID : возвращает документ владельца вместе с pre-signed GET URL.
// Метаданные берутся из кэша Redis, при промахе — из БД с последующим кэшированием.
func (s *DocumentService) GetDocumentByUUID(ctx context.Context, documentUUID string) (*model.GetDocumentResult, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[DocumentService] database connection не найден в context")
	}

	claims, err := security.GetClaimsFromContext(ctx)
	if err != nil || claims == nil {
		return nil, fmt.Errorf("[DocumentService] пользователь не авторизован")
	}

	document, err := s.cacheRepository.GetDocument(ctx, documentUUID)
	if err != nil {
		log.Printf("[DocumentService] ошибка чтения из кэша: %v", err)
	}

	// документ из кэша принадлежит владельцу? чужой ключ не должен открывать доступ
	if document != nil && document.OwnerUUID != claims.UserUUID {
		return nil, ErrDocumentNotFound
	}

	if document == nil {
		document, err = s.documentRepository.GetByUUID(ctx, db, documentUUID, claims.UserUUID)
		if err != nil {
			return nil, err
		}
		if document == nil {
			return nil, ErrDocumentNotFound
		}

		if err := s.cacheRepository.SetDocument(ctx, document); err != nil {
			log.Printf("[DocumentService] ошибка кэширования документа: %v", err)
		}

		log.Printf("[DocumentService] документ %s взят из БД и кэширован в Redis", document.FilenameOriginal)
	} else {
		log.Printf("[DocumentService] документ %s взят из кэша Redis", document.FilenameOriginal)
	}

	var getURL string
	if document.StoragePath != "" {
		getURL, err = s.storageInterface.GeneratePresignedGetURL(ctx, document.StoragePath, s.ttl)
		if err != nil {
			return nil, util.LogError("[DocumentService] не удалось сгенерировать pre-signed GET URL", err)
		}
	}

	return &model.GetDocumentResult{
		Document: document,
		GetURL:   getURL,
	}, nil
}

// MoveDocument : перекладывает документ в другую папку (nil — "без папки")
// и инвалидирует кэш метаданных
func (s *DocumentService) MoveDocument(ctx context.Context, documentUUID, ownerUUID string, folderUUID *string) error {
	exec, rollback, commit, err := s.documentRepository.BeginTX(ctx)
	if err != nil {
		return util.LogError("[DocumentService] не удалось начать транзакцию", err)
	}
	defer rollback()

	document, err := s.documentRepository.GetByUUID(ctx, exec, documentUUID, ownerUUID)
	if err != nil {
		return err
	}
	if document == nil {
		return ErrDocumentNotFound
	}

	if folderUUID != nil {
		folder, err := s.folderRepository.GetByUUID(ctx, exec, *folderUUID, ownerUUID)
		if err != nil {
			return err
		}
		if folder == nil {
			return ErrFolderNotFound
		}
	}

	if err := s.documentRepository.UpdateFolder(ctx, exec, documentUUID, ownerUUID, folderUUID); err != nil {
		return err
	}

	if err := commit(); err != nil {
		return util.LogError("[DocumentService] не удалось закоммитить транзакцию", err)
	}

	if err := s.cacheRepository.DeleteDocument(ctx, documentUUID); err != nil {
		log.Printf("[DocumentService] ошибка удаления документа из кэша: %v", err)
	}

	return nil
}

// DeleteDocument помечает документ удалённым, инвалидирует кэш и удаляет файл из S3
func (s *DocumentService) DeleteDocument(ctx context.Context, documentUUID string, userUUID string) (map[string]bool, error) {
	exec, rollback, commit, err := s.documentRepository.BeginTX(ctx)
	if err != nil {
		return nil, util.LogError("[DocumentService] ошибка начала транзакции", err)
	}
	defer rollback()

	document, err := s.documentRepository.GetByUUID(ctx, exec, documentUUID, userUUID)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, ErrDocumentNotFound
	}

	storagePath, err := s.documentRepository.Delete(ctx, exec, documentUUID, document.OwnerUUID)
	if err != nil {
		return nil, util.LogError("[DocumentService] ошибка удаления документа из БД", err)
	}

	if err := commit(); err != nil {
		return nil, fmt.Errorf("[DocumentService] ошибка коммита транзакции: %w", err)
	}

	if err := s.cacheRepository.DeleteDocument(ctx, documentUUID); err != nil {
		log.Printf("[DocumentService] ошибка удаления из кэша: %v", err)
	}

	if err := s.storageInterface.DeleteObject(ctx, storagePath); err != nil {
		return nil, util.LogError("[DocumentService] ошибка удаления файла из S3", err)
	}

	log.Printf("[DocumentService] документ %s успешно удален", document.FilenameOriginal)

	response := map[string]bool{
		documentUUID: true,
	}

	return response, nil
}

// ListDocuments : список документов владельца (cursor-based pagination) с pre-signed URL.
// folderUUID = nil — все документы, указатель на пустую строку — документы "без папки".
func (s *DocumentService) ListDocuments(ctx context.Context, userUUID string, folderUUID *string, cursor string, limit int) ([]model.DocumentResponse, string, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, "", fmt.Errorf("[DocumentService] database connection не найден в context")
	}

	docs, nextCursor, err := s.documentRepository.ListByOwner(ctx, db, userUUID, folderUUID, cursor, limit)
	if err != nil {
		return nil, "", util.LogError("[DocumentService] не удалось получить список документов", err)
	}

	responses := make([]model.DocumentResponse, 0, len(docs))

	for _, doc := range docs {
		url, err := s.storageInterface.GeneratePresignedGetURL(ctx, doc.StoragePath, 15*time.Minute)
		if err != nil {
			log.Printf("[DocumentService] ошибка генерации pre-signed URL для документа %s: %v", doc.UUID, err)
			url = ""
		}

		responses = append(responses, model.DocumentResponse{
			UUID:         doc.UUID,
			Title:        doc.FilenameOriginal,
			FolderUUID:   doc.FolderUUID,
			PresignedURL: url,
			MimeType:     doc.MimeType,
			SizeBytes:    doc.SizeBytes,
			CreatedAt:    doc.CreatedAt,
		})
	}

	return responses, nextCursor, nil
}
