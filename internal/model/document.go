package model

import "time"

type Document struct {
	UUID             string     `db:"uuid" json:"uuid"`
	OwnerUUID        string     `db:"owner_uuid" json:"owner_uuid"`
	FolderUUID       *string    `db:"folder_uuid" json:"folder_uuid,omitempty"`
	Name             string     `db:"name" json:"name"`
	FilenameOriginal string     `db:"filename_original" json:"filename_original"`
	SizeBytes        int64      `db:"size_bytes" json:"size_bytes"`
	MimeType         string     `db:"mime_type" json:"mime_type"`
	Sha256           string     `db:"sha256" json:"sha256"`
	StoragePath      string     `db:"storage_path" json:"storage_path"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// DocumentResponse : элемент списка документов с готовой pre-signed ссылкой
type DocumentResponse struct {
	UUID         string    `json:"uuid"`
	Title        string    `json:"name"`
	FolderUUID   *string   `json:"folder_uuid,omitempty"`
	PresignedURL string    `json:"presigned_url"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	CreatedAt    time.Time `json:"created_at"`
}

type GetDocumentResult struct {
	Document *Document
	GetURL   string // pre-signed URL для скачивания файла
}
