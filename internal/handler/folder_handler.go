package handler

import (
	"doctree-web-server/internal/model/requestresponse"
	"doctree-web-server/internal/ports"
	"doctree-web-server/internal/security"
	"doctree-web-server/internal/service"
	"doctree-web-server/internal/util"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type FolderHandler struct {
	ports.FolderService
}

func NewFolderHandler(folderService ports.FolderService) *FolderHandler {
	return &FolderHandler{folderService}
}

// CreateFolder godoc
// @Summary Создание новой папки
// @Description Создаёт папку внутри указанной родительской (parent_uuid = null означает корень).
// Полный путь папки вычисляется сервером и возвращается в ответе.
// @Tags Folders
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateFolderRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.FolderResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректное имя папки"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Родительская папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/folders [post]
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.CreateFolderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if err := req.Validate(); err != nil {
		sendErrorResponse(w, 400, err.Error())
		return
	}

	folder, err := h.FolderService.CreateFolder(ctx, req.Name, req.ParentUUID, claims.UserUUID)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrInvalidFolderName):
			util.HandleError(w, "недопустимое имя папки", http.StatusBadRequest)
		case errors.Is(err, service.ErrTargetNotFound):
			util.HandleError(w, "родительская папка не найдена", http.StatusNotFound)
		default:
			util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(requestresponse.FolderResponseFromModel(folder))
}

// GetFolder godoc
// @Summary Получение папки по UUID
// @Description Возвращает папку с её полным путём.
// @Tags Folders
// @Produce json
// @Param folder_uuid path string true "UUID папки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.FolderResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/folders/{folder_uuid} [get]
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	folderUUID := chi.URLParam(r, "folder_uuid")
	if folderUUID == "" {
		util.HandleError(w, "UUID папки обязателен", http.StatusBadRequest)
		return
	}

	folder, err := h.FolderService.GetFolder(ctx, folderUUID, claims.UserUUID)
	if err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrFolderNotFound) {
			util.HandleError(w, "папка не найдена", http.StatusNotFound)
		} else {
			util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.FolderResponseFromModel(folder))
}

// ListFolders godoc
// @Summary Список папок по родителю
// @Description Возвращает непосредственные подпапки указанного родителя.
// Без query-параметра parent_uuid возвращаются корневые папки пользователя.
// @Tags Folders
// @Produce json
// @Param parent_uuid query string false "UUID родительской папки (пусто = корень)"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListFoldersResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/folders [get]
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	var parentUUID *string
	if raw := r.URL.Query().Get("parent_uuid"); raw != "" {
		parentUUID = &raw
	}

	folders, err := h.FolderService.GetFoldersByParent(ctx, parentUUID, claims.UserUUID)
	if err != nil {
		log.Println(err)
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.ListFoldersResponseFromModels(folders))
}

// GetChildFolders godoc
// @Summary Поддерево указанной папки
// @Description Возвращает все вложенные папки (всё поддерево). Папка должна существовать.
// @Tags Folders
// @Produce json
// @Param folder_uuid path string true "UUID папки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListFoldersResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/folders/{folder_uuid}/children [get]
func (h *FolderHandler) GetChildFolders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	folderUUID := chi.URLParam(r, "folder_uuid")
	if folderUUID == "" {
		util.HandleError(w, "UUID папки обязателен", http.StatusBadRequest)
		return
	}

	folders, err := h.FolderService.GetChildFolders(ctx, folderUUID, claims.UserUUID)
	if err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrFolderNotFound) {
			util.HandleError(w, "папка не найдена", http.StatusNotFound)
		} else {
			util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.ListFoldersResponseFromModels(folders))
}

// GetFolderPath godoc
// @Summary Цепочка папок от корня
// @Description Возвращает предков папки от корня до самой папки (для хлебных крошек).
// @Tags Folders
// @Produce json
// @Param folder_uuid path string true "UUID папки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.FolderPathResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/folders/{folder_uuid}/path [get]
func (h *FolderHandler) GetFolderPath(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	folderUUID := chi.URLParam(r, "folder_uuid")
	if folderUUID == "" {
		util.HandleError(w, "UUID папки обязателен", http.StatusBadRequest)
		return
	}

	chain, err := h.FolderService.GetFolderPath(ctx, folderUUID, claims.UserUUID)
	if err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrFolderNotFound) {
			util.HandleError(w, "папка не найдена", http.StatusNotFound)
		} else {
			util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	resp := requestresponse.FolderPathResponse{}
	resp.Data.Chain = make([]requestresponse.FolderResponse, 0, len(chain))
	for i := range chain {
		resp.Data.Chain = append(resp.Data.Chain, requestresponse.FolderResponseFromModel(&chain[i]))
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// RenameFolder godoc
// @Summary Переименование папки
// @Description Меняет имя папки; пути самой папки и всех вложенных обновляются атомарно.
// @Tags Folders
// @Accept json
// @Produce json
// @Param folder_uuid path string true "UUID папки"
// @Param body body requestresponse.RenameFolderRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.FolderResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректное имя"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/folders/{folder_uuid}/rename [patch]
func (h *FolderHandler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	folderUUID := chi.URLParam(r, "folder_uuid")
	if folderUUID == "" {
		util.HandleError(w, "UUID папки обязателен", http.StatusBadRequest)
		return
	}

	var req requestresponse.RenameFolderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if err := req.Validate(); err != nil {
		sendErrorResponse(w, 400, err.Error())
		return
	}

	folder, err := h.FolderService.RenameFolder(ctx, folderUUID, claims.UserUUID, req.Name)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrInvalidFolderName):
			util.HandleError(w, "недопустимое имя папки", http.StatusBadRequest)
		case errors.Is(err, service.ErrFolderNotFound):
			util.HandleError(w, "папка не найдена", http.StatusNotFound)
		default:
			util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.FolderResponseFromModel(folder))
}

// MoveFolder godoc
// @Summary Перемещение папки
// @Description Переносит папку к новому родителю (parent_uuid = null — в корень).
// Пути папки и всех её вложенных папок пересчитываются в одной транзакции.
// Перемещение в собственного потомка или в саму себя отклоняется.
// @Tags Folders
// @Accept json
// @Produce json
// @Param folder_uuid path string true "UUID папки"
// @Param body body requestresponse.MoveFolderRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.FolderResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Папка или целевая папка не найдена"
// @Failure 409 {object} requestresponse.ErrorResponse "Недопустимое перемещение (цикл)"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/folders/{folder_uuid}/move [patch]
func (h *FolderHandler) MoveFolder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	folderUUID := chi.URLParam(r, "folder_uuid")
	if folderUUID == "" {
		util.HandleError(w, "UUID папки обязателен", http.StatusBadRequest)
		return
	}

	var req requestresponse.MoveFolderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	folder, err := h.FolderService.MoveFolder(ctx, folderUUID, claims.UserUUID, req.ParentUUID)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrFolderNotFound):
			util.HandleError(w, "папка не найдена", http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidMove):
			util.HandleError(w, "недопустимое перемещение папки", http.StatusConflict)
		case errors.Is(err, service.ErrTargetNotFound):
			util.HandleError(w, "целевая папка не найдена", http.StatusNotFound)
		default:
			util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.FolderResponseFromModel(folder))
}

// DeleteFolder godoc
// @Summary Удаление папки
// @Description Удаляет папку вместе со всеми вложенными папками.
// Документы не удаляются — они остаются у пользователя вне папок.
// @Tags Folders
// @Produce json
// @Param folder_uuid path string true "UUID папки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/folders/{folder_uuid} [delete]
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, ok := ctx.Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	folderUUID := chi.URLParam(r, "folder_uuid")
	if folderUUID == "" {
		util.HandleError(w, "UUID папки обязателен", http.StatusBadRequest)
		return
	}

	if err := h.FolderService.DeleteFolder(ctx, folderUUID, claims.UserUUID); err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrFolderNotFound) {
			util.HandleError(w, "папка не найдена", http.StatusNotFound)
		} else {
			util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.SuccessResponse{Message: "папка удалена"})
}
