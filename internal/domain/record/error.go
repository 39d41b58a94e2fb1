package record

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrValidation  = errors.New("invalid record data")
	ErrRejected    = errors.New("record rejected by server")
	ErrTransport   = errors.New("remote store unavailable")
	ErrPersistence = errors.New("local cache write failed")
)

// FieldError - ошибка конкретного поля черновика
type FieldError struct {
	Field   string
	Message string
}

// ValidationError собирает все ошибки полей, найденные до любого I/O
type ValidationError struct {
	Fields []FieldError
}

// Add добавляет ошибку поля
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil возвращает nil, если ошибок полей нет
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransportError - сеть недоступна, таймаут, 5xx или битый ответ сервера
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s: HTTP %d: %v", ErrTransport, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrTransport, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// PersistenceError - локальный кэш не смог сохранить данные, дальше отступать некуда
type PersistenceError struct {
	Namespace string
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence, e.Namespace, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// IsTransport сообщает, можно ли переключиться на локальный кэш
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
