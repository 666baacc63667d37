package service

import "errors"

// Ошибки движка папок. Каждый отказ валидации различим для обработчиков,
// чтобы те могли вернуть корректный HTTP-статус (errors.Is).
var (
	// ErrFolderNotFound : папка не существует или принадлежит другому пользователю
	ErrFolderNotFound = errors.New("папка не найдена")

	// ErrTargetNotFound : целевая папка перемещения не существует у пользователя
	ErrTargetNotFound = errors.New("целевая папка не найдена")

	// ErrInvalidMove : перемещение папки в саму себя или в собственного потомка
	ErrInvalidMove = errors.New("недопустимое перемещение папки")

	// ErrInvalidFolderName : пустое имя или имя с разделителем пути
	ErrInvalidFolderName = errors.New("недопустимое имя папки")

	// ErrDocumentNotFound : документ не существует или принадлежит другому пользователю
	ErrDocumentNotFound = errors.New("документ не найден")
)
