// Package remote - HTTP-адаптер API сервера. Каждый вызов возвращает Result
// с явным статусом, по которому репозиторий решает, уходить ли в локальный кэш.
package remote

import (
	"errors"

	"ridejournal/internal/domain/record"
)

type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusRejected
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusRejected:
		return "rejected"
	default:
		return "unavailable"
	}
}

type Result[T any] struct {
	Status Status
	Value  T
	Err    error
}

func ok[T any](v T) Result[T] {
	return Result[T]{Status: StatusOK, Value: v}
}

// resultOf классифицирует ошибку запроса. Все, что не 404 и не отказ
// сервера, считается недоступностью: сеть, таймаут, 5xx, битый ответ.
func resultOf[T any](err error) Result[T] {
	switch {
	case errors.Is(err, record.ErrNotFound):
		return Result[T]{Status: StatusNotFound, Err: err}
	case errors.Is(err, record.ErrRejected):
		return Result[T]{Status: StatusRejected, Err: err}
	default:
		return Result[T]{Status: StatusUnavailable, Err: err}
	}
}
