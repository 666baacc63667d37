package handler

import (
	"doctree-web-server/internal/model"
	"doctree-web-server/internal/model/requestresponse"
	"doctree-web-server/internal/ports"
	"doctree-web-server/internal/security"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// RegisterUser godoc
// @Summary Регистрация нового пользователя
// @Description Создает нового пользователя с логином и паролем. Требуется токен администратора из config.yaml.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 200 {object} requestresponse.RegisterResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	// Метод так же возвращает пару токенов, но создавать юзеров может только админ,
	// так что это просто задел на будущее
	_, err := h.UserService.Register(r.Context(), req.Token, req.Login, req.Password, r.RemoteAddr)
	if err != nil {
		log.Println(err)
		switch {
		case strings.Contains(err.Error(), "неверный токен администратора"),
			strings.Contains(err.Error(), "логин должен быть не меньше"),
			strings.Contains(err.Error(), "логин должен содержать"),
			strings.Contains(err.Error(), "пароль"):
			sendErrorResponse(w, 400, "bad request")
		case strings.Contains(err.Error(), "генерации токенов"),
			strings.Contains(err.Error(), "не удалось сохранить refresh"),
			strings.Contains(err.Error(), "не удалось создать хэш"),
			strings.Contains(err.Error(), "database connection не найден"):
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		default:
			sendErrorResponse(w, 500, "неизвестная ошибка")
		}
		return
	}

	resp := requestresponse.RegisterResponse{
		Response: requestresponse.RegisterData{
			Login: req.Login,
		},
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// GetUser godoc
// @Summary Получение информации о пользователе
// @Description Возвращает данные пользователя. Доступен только самому пользователю.
// @Tags Users
// @Produce json
// @Param uuid path string true "UUID пользователя"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UserResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/{uuid} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	targetUUID := chi.URLParam(r, "uuid")
	if restrictToOwner(w, r, targetUUID) == false {
		return
	}

	user, err := h.UserService.GetUser(r.Context(), targetUUID)
	if err != nil {
		log.Println(err)
		switch {
		case strings.Contains(err.Error(), "не найден"):
			sendErrorResponse(w, 404, "пользователь не найден")
		case strings.Contains(err.Error(), "доступ запрещён"):
			sendErrorResponse(w, 403, "доступ запрещён")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	resp := requestresponse.UserResponse{}
	resp.Data.UUID = user.UUID
	resp.Data.Login = user.Login

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// GetUserHead godoc
// @Summary Проверка существования пользователя
// @Description HEAD-вариант получения пользователя, возвращает только статус.
// @Tags Users
// @Param uuid path string true "UUID пользователя"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/users/{uuid} [head]
func (h *UserHandler) GetUserHead(w http.ResponseWriter, r *http.Request) {
	h.GetUser(w, r)
}

// UpdateUser godoc
// @Summary Обновление логина пользователя
// @Description Меняет логин пользователя. Доступен только самому пользователю.
// @Tags Users
// @Accept json
// @Produce json
// @Param uuid path string true "UUID пользователя"
// @Param body body requestresponse.UpdateUserRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UpdateUserResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/{uuid} [patch]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	targetUUID := chi.URLParam(r, "uuid")
	if restrictToOwner(w, r, targetUUID) == false {
		return
	}

	var req requestresponse.UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.Login == "" {
		sendErrorResponse(w, 400, "login обязателен")
		return
	}

	updated := &model.User{
		UUID:  targetUUID,
		Login: req.Login,
	}

	if err := h.UserService.UpdateUser(r.Context(), updated); err != nil {
		log.Println(err)
		switch {
		case strings.Contains(err.Error(), "доступ запрещён"):
			sendErrorResponse(w, 403, "доступ запрещён")
		case strings.Contains(err.Error(), "не найден"):
			sendErrorResponse(w, 404, "пользователь не найден")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	resp := requestresponse.UpdateUserResponse{}
	resp.Response.Login = req.Login

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// UpdatePassword godoc
// @Summary Смена пароля пользователя
// @Description Устанавливает новый пароль. Доступен только самому пользователю.
// @Tags Users
// @Accept json
// @Produce json
// @Param uuid path string true "UUID пользователя"
// @Param body body requestresponse.UpdatePasswordRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UpdatePasswordResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/{uuid}/password [patch]
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	targetUUID := chi.URLParam(r, "uuid")
	if restrictToOwner(w, r, targetUUID) == false {
		return
	}

	var req requestresponse.UpdatePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.UserService.UpdatePassword(r.Context(), targetUUID, req.NewPassword); err != nil {
		log.Println(err)
		switch {
		case strings.Contains(err.Error(), "пароль"):
			sendErrorResponse(w, 400, err.Error())
		case strings.Contains(err.Error(), "доступ запрещён"):
			sendErrorResponse(w, 403, "доступ запрещён")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	resp := requestresponse.UpdatePasswordResponse{}
	resp.Response.Updated = true

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// DeleteUser godoc
// @Summary Удаление пользователя
// @Description Удаляет пользователя. Доступен только самому пользователю.
// @Tags Users
// @Produce json
// @Param uuid path string true "UUID пользователя"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/{uuid} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	targetUUID := chi.URLParam(r, "uuid")
	if restrictToOwner(w, r, targetUUID) == false {
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), targetUUID); err != nil {
		log.Println(err)
		switch {
		case strings.Contains(err.Error(), "не найден"):
			sendErrorResponse(w, 404, "пользователь не найден")
		case strings.Contains(err.Error(), "доступ запрещён"):
			sendErrorResponse(w, 403, "доступ запрещён")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.SuccessResponse{Message: "пользователь удалён"})
}

// ListUsers godoc
// @Summary Список пользователей
// @Description Возвращает пользователей постранично. Доступен администратору или авторизованному пользователю.
// @Tags Users
// @Produce json
// @Param token query string false "Токен администратора"
// @Param limit query int false "Количество записей (по умолчанию 20)"
// @Param cursor query string false "Курсор из предыдущего ответа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListUsersResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit := 20
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			sendErrorResponse(w, 400, "неверный формат limit")
			return
		}
		limit = parsed
	}

	adminToken := r.URL.Query().Get("token")
	cursor := r.URL.Query().Get("cursor")

	users, nextCursor, err := h.UserService.ListUsers(r.Context(), adminToken, cursor, limit)
	if err != nil {
		log.Println(err)
		if strings.Contains(err.Error(), "доступ запрещён") {
			sendErrorResponse(w, 403, "доступ запрещён")
		} else {
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	resp := requestresponse.ListUsersResponse{}
	resp.Data.Users = users
	resp.Data.NextCursor = nextCursor

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// ListUsersHead godoc
// @Summary Проверка доступа к списку пользователей
// @Description HEAD-вариант списка, возвращает только статус.
// @Tags Users
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Router /api/users [head]
func (h *UserHandler) ListUsersHead(w http.ResponseWriter, r *http.Request) {
	h.ListUsers(w, r)
}

// decodeJSON обрабатывает декодирование JSON и возвращает ответ об ошибке, если декодирование не удалось.
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(400)
		json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
			Error: requestresponse.ErrorDetail{
				Code: 400,
				Text: "invalid request body",
			},
		})
		return err
	}
	return nil
}

// restrictToOwner проверяет, имеет ли пользователь право доступа к ресурсу
func restrictToOwner(w http.ResponseWriter, r *http.Request, targetUUID string) bool {
	claims, ok := r.Context().Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
			Error: requestresponse.ErrorDetail{
				Code: http.StatusUnauthorized,
				Text: "unauthorized",
			},
		})
		return false
	}

	if claims.IsAdmin == false && claims.UserUUID != targetUUID {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
			Error: requestresponse.ErrorDetail{
				Code: http.StatusForbidden,
				Text: "forbidden",
			},
		})
		return false
	}

	return true
}

// sendErrorResponse отправляет ответ об ошибке JSON с указанным кодом статуса и сообщением
func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}
