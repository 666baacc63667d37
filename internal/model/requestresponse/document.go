package requestresponse

import (
	"doctree-web-server/internal/model"
	"time"
)

// CreateDocumentResponse : описывает ответ при создании документа
type CreateDocumentResponse struct {
	Data CreateDocumentData `json:"data"`
}

type CreateDocumentData struct {
	JSON map[string]interface{} `json:"json,omitempty"`
	File string                 `json:"file"`
}

// GetDocumentResponse : описывает ответ для одного документа
type GetDocumentResponse struct {
	Data      GetDocumentData `json:"data"`
	ExpiresIn string          `json:"expires_in,omitempty"`
}

type GetDocumentData struct {
	Document DocumentResponse `json:"document,omitempty"`
}

// DocumentResponse : описывает документ для JSON-ответа
type DocumentResponse struct {
	UUID             string  `json:"id" example:"qwdj1q4o34u34ih759ou1"`
	FilenameOriginal string  `json:"name" example:"report.pdf"`
	FolderUUID       *string `json:"folder_uuid,omitempty"`
	MimeType         string  `json:"mime" example:"application/pdf"`
	SizeBytes        int64   `json:"size" example:"2048"`
	CreatedAt        string  `json:"created" example:"2025-08-23T12:34:56Z"`
	GetURL           string  `json:"get_url,omitempty"`
}

// DocumentResponseFromModel : конвертирует model.Document в DocumentResponse
func DocumentResponseFromModel(doc *model.Document, getURL string) DocumentResponse {
	return DocumentResponse{
		UUID:             doc.UUID,
		FilenameOriginal: doc.FilenameOriginal,
		FolderUUID:       doc.FolderUUID,
		MimeType:         doc.MimeType,
		SizeBytes:        doc.SizeBytes,
		CreatedAt:        doc.CreatedAt.Format(time.RFC3339),
		GetURL:           getURL,
	}
}

// MoveDocumentRequest : тело запроса на перемещение документа в папку.
// FolderUUID = null означает "без папки".
type MoveDocumentRequest struct {
	FolderUUID *string `json:"folder_uuid,omitempty" example:"qwdj1q4o34u34ih759ou1"`
}

// ResponseMessage : общий ответ для подтверждения действий
type ResponseMessage struct {
	Response map[string]interface{} `json:"response,omitempty"`
	Error    *ErrorResponse         `json:"error,omitempty"`
	Data     interface{}            `json:"data,omitempty"`
}

// SuccessResponse : стандартный ответ успешного выполнения операции
type SuccessResponse struct {
	Message string `json:"message" example:"Операция выполнена успешно"`
}

// ListDocumentsResponse : ответ API со списком документов
type ListDocumentsResponse struct {
	Data struct {
		Docs []DocumentResponse `json:"docs"`
	} `json:"data"`
	NextCursor string `json:"next_cursor,omitempty" example:"2025-08-23T12:34:56Z"`
	Count      int    `json:"count" example:"10"`
}
