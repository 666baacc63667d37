package requestresponse

import (
	"doctree-web-server/internal/model"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateFolderRequest : тело запроса на создание папки
type CreateFolderRequest struct {
	Name       string  `json:"name" example:"Проекты"`
	ParentUUID *string `json:"parent_uuid,omitempty" example:"qwdj1q4o34u34ih759ou1"`
}

// Validate : имя папки обязательно и не может содержать разделитель пути
func (r CreateFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
			validation.By(nameWithoutSlash),
		),
	)
}

// RenameFolderRequest : тело запроса на переименование папки
type RenameFolderRequest struct {
	Name string `json:"name" example:"Архив"`
}

func (r RenameFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
			validation.By(nameWithoutSlash),
		),
	)
}

// MoveFolderRequest : тело запроса на перемещение папки.
// ParentUUID = null означает перемещение в корень.
type MoveFolderRequest struct {
	ParentUUID *string `json:"parent_uuid,omitempty" example:"qwdj1q4o34u34ih759ou1"`
}

func nameWithoutSlash(value interface{}) error {
	name, _ := value.(string)
	for _, c := range name {
		if c == '/' {
			return validation.NewError("validation_folder_name", "имя не может содержать символ /")
		}
	}
	return nil
}

// FolderResponse : описывает папку для JSON-ответа
type FolderResponse struct {
	UUID       string  `json:"uuid" example:"qwdj1q4o34u34ih759ou1"`
	Name       string  `json:"name" example:"Проекты"`
	ParentUUID *string `json:"parent_uuid,omitempty"`
	Path       string  `json:"path" example:"/Проекты/2024"`
	CreatedAt  string  `json:"created" example:"2025-08-23T12:34:56Z"`
	UpdatedAt  string  `json:"updated" example:"2025-08-23T12:34:56Z"`
}

// FolderResponseFromModel : конвертирует model.Folder в FolderResponse
func FolderResponseFromModel(folder *model.Folder) FolderResponse {
	return FolderResponse{
		UUID:       folder.UUID,
		Name:       folder.Name,
		ParentUUID: folder.ParentUUID,
		Path:       folder.Path,
		CreatedAt:  folder.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  folder.UpdatedAt.Format(time.RFC3339),
	}
}

// ListFoldersResponse : ответ API со списком папок
type ListFoldersResponse struct {
	Data struct {
		Folders []FolderResponse `json:"folders"`
	} `json:"data"`
	Count int `json:"count" example:"10"`
}

// FolderPathResponse : цепочка папок от корня до запрошенной (для хлебных крошек)
type FolderPathResponse struct {
	Data struct {
		Chain []FolderResponse `json:"chain"`
	} `json:"data"`
}

// ListFoldersResponseFromModels : собирает ответ из списка моделей
func ListFoldersResponseFromModels(folders []model.Folder) ListFoldersResponse {
	resp := ListFoldersResponse{Count: len(folders)}
	resp.Data.Folders = make([]FolderResponse, 0, len(folders))
	for i := range folders {
		resp.Data.Folders = append(resp.Data.Folders, FolderResponseFromModel(&folders[i]))
	}
	return resp
}
