package backend

import (
	"errors"
	"fmt"
)

// ErrNoData — бэкенд ответил 404 на эндпоинте, где это означает
// «данных ещё нет», а не ошибку.
var ErrNoData = errors.New("Данных ещё нет.")

type FetchError struct {
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Неуспешный статус ответа: %d", e.Status)
}

type SubmissionError struct {
	Status int
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("Не удалось создать ордер: статус %d", e.Status)
}
