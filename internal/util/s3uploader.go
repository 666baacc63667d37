package util

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// S3Uploader : фоновая загрузка файлов по pre-signed PUT URL
type S3Uploader struct {
	client   *http.Client
	wg       sync.WaitGroup
	errors   chan error
	progress chan int64
}

func NewS3Uploader() *S3Uploader {
	return &S3Uploader{
		client: &http.Client{
			Timeout: 60 * time.Minute, // Для очень больших файлов
		},
		errors:   make(chan error, 10),
		progress: make(chan int64, 100),
	}
}

// UploadFileAsync : асинхронная загрузка файла
func (u *S3Uploader) UploadFileAsync(presignedURL string, filePath string) {
	u.wg.Add(1)

	go func() {
		defer u.wg.Done()

		err := u.uploadFile(presignedURL, filePath)
		if err != nil {
			u.errors <- fmt.Errorf("ошибка загрузки %s: %w", filepath.Base(filePath), err)
		} else {
			u.progress <- -1 // Сигнал завершения
		}
	}()
}

// uploadFile : синхронная реализация загрузки
func (u *S3Uploader) uploadFile(presignedURL string, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()
	defer os.Remove(filePath)

	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	req, err := http.NewRequest("PUT", presignedURL, file)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.ContentLength = fileInfo.Size()
	req.Header.Set("Content-Type", ContentTypeFor(filePath))

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ошибка загрузки: статус %d", resp.StatusCode)
	}

	return nil
}

// ContentTypeFor : определяет MIME type файла по расширению
func ContentTypeFor(filename string) string {
	switch filepath.Ext(filename) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".md":
		return "text/markdown"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

// Wait : ожидание завершения всех загрузок
func (u *S3Uploader) Wait() error {
	u.wg.Wait()
	close(u.errors)
	close(u.progress)

	if len(u.errors) > 0 {
		return <-u.errors // Возвращаем первую ошибку
	}
	return nil
}

// Errors : канал с ошибками загрузок
func (u *S3Uploader) Errors() <-chan error {
	return u.errors
}

// Progress : канал с прогрессом загрузок
func (u *S3Uploader) Progress() <-chan int64 {
	return u.progress
}
