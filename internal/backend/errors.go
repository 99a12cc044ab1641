// Package backend реализует клиент внешнего inventory API: адаптер
// исходящих HTTP-запросов, операции аутентификации и CRUD-операции
// над коллекцией товаров.
//
// Ошибки разделены по происхождению: NetworkError — транспортный сбой,
// APIError — ответ сервера с неуспешным статусом, AuthError — отказ в
// аутентификации, ErrProductNotFound — неизвестный идентификатор товара.
package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrProductNotFound возвращается, когда внешний API не знает товар с таким id.
var ErrProductNotFound = errors.New("product not found")

// NetworkError транспортная ошибка: запрос не дошёл до внешнего API
// или ответ не был получен.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError ответ внешнего API с неуспешным HTTP-статусом.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// AuthError отказ внешнего API в аутентификации. Message содержит
// сообщение сервера, если оно было, иначе общий текст.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// errorBody частичная структура тела ошибки внешнего API.
// Сервер отдаёт либо {"error": ...}, либо {"message": ...}.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// decodeAPIError читает тело неуспешного ответа и собирает APIError.
// Непарсящееся тело не считается ошибкой, остаётся статус-текст.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}
	if parsed.Error != "" {
		apiErr.Message = parsed.Error
	} else if parsed.Message != "" {
		apiErr.Message = parsed.Message
	}
	return apiErr
}
