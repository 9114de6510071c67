package models

import "errors"

// Доменные ошибки. Репозитории и сервисы оборачивают их через %w,
// хендлеры разрешают в HTTP-статус через errors.Is.
var (
	ErrUsernameTaken      = errors.New("пользователь с таким username уже существует")
	ErrEmailTaken         = errors.New("пользователь с таким email уже существует")
	ErrPasswordMismatch   = errors.New("пароли не совпадают")
	ErrPasswordIncorrect  = errors.New("неверный старый пароль")
	ErrCredentialsInvalid = errors.New("неверный username или пароль")
	ErrTokenExpired       = errors.New("токен истёк")
	ErrUserInactive       = errors.New("пользователь деактивирован")
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrUserHasPosts       = errors.New("у пользователя есть посты, удаление невозможно")

	ErrTitleTaken    = errors.New("пост с таким заголовком уже существует")
	ErrPostNotFound  = errors.New("пост не найден или не принадлежит вам")
	ErrNoPosts       = errors.New("у вас нет ни одного поста")
	ErrPostsNotFound = errors.New("подходящие посты не найдены")
	ErrFileNotFound  = errors.New("файл не найден")
	ErrFileTooLarge  = errors.New("размер файла превышает допустимый")
	ErrUploadFailed  = errors.New("ошибка загрузки файла")
	ErrPersistFailed = errors.New("ошибка сохранения информации о файле")
)
