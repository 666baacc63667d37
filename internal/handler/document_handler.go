package handler

import (
	"doctree-web-server/config"
	"doctree-web-server/internal/model"
	requestresponse "doctree-web-server/internal/model/requestresponse"
	"doctree-web-server/internal/ports"
	"doctree-web-server/internal/security"
	"doctree-web-server/internal/service"
	"doctree-web-server/internal/util"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	ports.DocumentService
	cfg *config.TTL
}

func NewDocumentHandler(documentService ports.DocumentService, cfg *config.TTL) *DocumentHandler {
	return &DocumentHandler{documentService, cfg}
}

// CreateDocument godoc
// @Summary Загрузка нового документа
// @Description Загружает файл и его мета-данные, поддерживает multipart/form-data.
// Поле folder_uuid позволяет сразу положить документ в папку.
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param folder_uuid formData string false "UUID папки, в которую помещается документ (пусто — без папки)"
// @Param file formData file true "Файл документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 202 {object} requestresponse.CreateDocumentResponse "Успешный ответ, содержит данные документа и pre-signed URL"
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/docs [post]
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		util.HandleError(w, "файл не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		util.HandleError(w, "ошибка чтения файла", http.StatusInternalServerError)
		return
	}

	hash := sha256.Sum256(fileBytes)
	sha256Hash := hex.EncodeToString(hash[:])
	size := int64(len(fileBytes))
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = util.ContentTypeFor(header.Filename)
	}

	fileExt := filepath.Ext(header.Filename)
	fileName := strings.TrimSuffix(header.Filename, fileExt)
	storagePath := fmt.Sprintf("users/%s/documents/%s-%s%s",
		claims.UserUUID,
		url.PathEscape(fileName),
		uuid.New().String()[:8],
		fileExt,
	)

	var folderUUID *string
	if raw := r.FormValue("folder_uuid"); raw != "" {
		folderUUID = &raw
	}

	document := &model.Document{
		UUID:             uuid.New().String(),
		OwnerUUID:        claims.UserUUID,
		FolderUUID:       folderUUID,
		Name:             fileName,
		FilenameOriginal: header.Filename,
		SizeBytes:        size,
		MimeType:         mimeType,
		Sha256:           sha256Hash,
		StoragePath:      storagePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	putURL, err := h.DocumentService.CreateDocument(ctx, document)
	if err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrFolderNotFound) {
			util.HandleError(w, "папка не найдена", http.StatusNotFound)
		} else {
			util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	tmpFile, err := saveTempFile(fileBytes, header.Filename)
	if err != nil {
		util.HandleError(w, "ошибка сохранения файла", http.StatusInternalServerError)
		return
	}

	uploader := util.NewS3Uploader()
	uploader.UploadFileAsync(putURL, tmpFile)

	metaMap := map[string]interface{}{
		"uuid":        document.UUID,
		"name":        document.FilenameOriginal,
		"mime":        document.MimeType,
		"size":        document.SizeBytes,
		"sha256":      document.Sha256,
		"path":        document.StoragePath,
		"putURL":      putURL,
		"folder_uuid": document.FolderUUID,
	}

	response := requestresponse.CreateDocumentResponse{
		Data: requestresponse.CreateDocumentData{
			JSON: metaMap,
			File: header.Filename,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(response)

	// Асинхронный мониторинг
	go h.monitorUpload(document.UUID, uploader)
}

// saveTempFile : сохраняет файл во временную директорию
func saveTempFile(data []byte, filename string) (string, error) {
	tmpDir := os.TempDir()
	uploadDir := filepath.Join(tmpDir, "uploads")

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("ошибка создания директории: %w", err)
	}

	uniqueName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filename)
	tmpFile := filepath.Join(uploadDir, uniqueName)

	err := os.WriteFile(tmpFile, data, 0644)
	if err != nil {
		return "", fmt.Errorf("ошибка записи файла: %w", err)
	}

	return tmpFile, nil
}

func (h *DocumentHandler) monitorUpload(documentUUID string, uploader *util.S3Uploader) {
	for {
		select {
		case err, ok := <-uploader.Errors():
			if ok == false {
				return
			}
			log.Printf("[DocumentHandler/MonitorUpload] ошибка загрузки документа %s: %v", documentUUID, err)

		case progress, ok := <-uploader.Progress():
			if ok == false {
				return
			}
			if progress == -1 {
				log.Printf("[DocumentHandler/MonitorUpload] документ %s успешно загружен", documentUUID)
			}

		case <-time.After(30 * time.Minute):
			log.Printf("[DocumentHandler/MonitorUpload] Таймаут загрузки документа %s", documentUUID)
			return
		}
	}
}

// GetDocument godoc
// @Summary Получение документа по ID
// @Description Возвращает мета-данные документа и pre-signed ссылку на скачивание.
// @Tags Documents
// @Accept json
// @Produce json
// @Param doc_uuid path string true "UUID документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.GetDocumentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_uuid} [get]
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	docUUID := chi.URLParam(r, "doc_uuid")
	if docUUID == "" {
		util.HandleError(w, "UUID документа обязателен", http.StatusBadRequest)
		return
	}

	result, err := h.DocumentService.GetDocumentByUUID(r.Context(), docUUID)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrDocumentNotFound):
			util.HandleError(w, "документ не найден", http.StatusNotFound)
		case strings.Contains(err.Error(), "не авторизован"):
			util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		default:
			util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", result.Document.MimeType)
		w.WriteHeader(http.StatusOK)
		return
	}

	resp := requestresponse.GetDocumentResponse{
		ExpiresIn: fmt.Sprintf("%dm", h.cfg.S3AndRedis),
	}
	resp.Data.Document = requestresponse.DocumentResponseFromModel(result.Document, result.GetURL)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// GetDocumentHead godoc
// @Summary Проверка существования документа
// @Description HEAD-вариант получения документа, возвращает только заголовки.
// @Tags Documents
// @Param doc_uuid path string true "UUID документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_uuid} [head]
func (h *DocumentHandler) GetDocumentHead(w http.ResponseWriter, r *http.Request) {
	h.GetDocument(w, r)
}

// ListDocuments godoc
// @Summary Список документов пользователя
// @Description Возвращает документы владельца постранично (cursor + limit).
// Фильтр folder_uuid ограничивает список одной папкой; folder_uuid=none — документы без папки.
// @Tags Documents
// @Produce json
// @Param folder_uuid query string false "UUID папки, 'none' — без папки, пусто — все документы"
// @Param limit query int false "Количество документов (по умолчанию 20, максимум 100)"
// @Param cursor query string false "Курсор из предыдущего ответа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListDocumentsResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs [get]
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	limit := 20
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			util.HandleError(w, "неверный формат limit", http.StatusBadRequest)
			return
		}
		if parsed > 100 {
			parsed = 100
		}
		limit = parsed
	}

	var folderUUID *string
	if raw := r.URL.Query().Get("folder_uuid"); raw != "" {
		if raw == "none" {
			empty := ""
			folderUUID = &empty
		} else {
			folderUUID = &raw
		}
	}

	cursor := r.URL.Query().Get("cursor")

	docs, nextCursor, err := h.DocumentService.ListDocuments(ctx, claims.UserUUID, folderUUID, cursor, limit)
	if err != nil {
		log.Println(err)
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	resp := requestresponse.ListDocumentsResponse{
		NextCursor: nextCursor,
		Count:      len(docs),
	}
	resp.Data.Docs = make([]requestresponse.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp.Data.Docs = append(resp.Data.Docs, requestresponse.DocumentResponse{
			UUID:             doc.UUID,
			FilenameOriginal: doc.Title,
			FolderUUID:       doc.FolderUUID,
			MimeType:         doc.MimeType,
			SizeBytes:        doc.SizeBytes,
			CreatedAt:        doc.CreatedAt.Format(time.RFC3339),
			GetURL:           doc.PresignedURL,
		})
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// ListDocumentsHead godoc
// @Summary Проверка доступа к списку документов
// @Description HEAD-вариант списка документов, возвращает только статус.
// @Tags Documents
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/docs [head]
func (h *DocumentHandler) ListDocumentsHead(w http.ResponseWriter, r *http.Request) {
	h.ListDocuments(w, r)
}

// MoveDocument godoc
// @Summary Перемещение документа в папку
// @Description Переносит документ в указанную папку (folder_uuid = null — без папки).
// @Tags Documents
// @Accept json
// @Produce json
// @Param doc_uuid path string true "UUID документа"
// @Param body body requestresponse.MoveDocumentRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Документ или папка не найдены"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_uuid}/move [patch]
func (h *DocumentHandler) MoveDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	docUUID := chi.URLParam(r, "doc_uuid")
	if docUUID == "" {
		util.HandleError(w, "UUID документа обязателен", http.StatusBadRequest)
		return
	}

	var req requestresponse.MoveDocumentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.DocumentService.MoveDocument(ctx, docUUID, claims.UserUUID, req.FolderUUID); err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrDocumentNotFound):
			util.HandleError(w, "документ не найден", http.StatusNotFound)
		case errors.Is(err, service.ErrFolderNotFound):
			util.HandleError(w, "папка не найдена", http.StatusNotFound)
		default:
			util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.SuccessResponse{Message: "документ перемещён"})
}

// DeleteDocument godoc
// @Summary Удаление документа
// @Description Помечает документ удалённым, чистит кэш и объект в S3.
// @Tags Documents
// @Produce json
// @Param doc_uuid path string true "UUID документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ResponseMessage
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_uuid} [delete]
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	docUUID := chi.URLParam(r, "doc_uuid")
	if docUUID == "" {
		util.HandleError(w, "UUID документа обязателен", http.StatusBadRequest)
		return
	}

	deleted, err := h.DocumentService.DeleteDocument(ctx, docUUID, claims.UserUUID)
	if err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrDocumentNotFound) {
			util.HandleError(w, "документ не найден", http.StatusNotFound)
		} else {
			util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	response := map[string]interface{}{}
	for docID, isDeleted := range deleted {
		response[docID] = isDeleted
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.ResponseMessage{Response: response})
}
