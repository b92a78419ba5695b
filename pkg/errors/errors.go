package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrNotFound возвращается, когда каталог не содержит запрошенный товар
var ErrNotFound = stderrors.New("not found")

// ErrInvalidFilter возвращается при некорректных параметрах фильтрации
var ErrInvalidFilter = stderrors.New("invalid filter")

// NetworkError описывает любую ошибку обращения к удаленному API каталога.
// Пользователю показывается общее предложение повторить попытку.
type NetworkError struct {
	Op     string // операция, например "list products"
	Status int    // HTTP статус ответа, 0 если ответа не было
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op + ": network error"
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError создает NetworkError для операции op
func NewNetworkError(op string, status int, err error) *NetworkError {
	return &NetworkError{Op: op, Status: status, Err: err}
}

// IsNotFound сообщает, содержит ли цепочка ошибок ErrNotFound
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}

// IsNetwork сообщает, содержит ли цепочка ошибок NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return stderrors.As(err, &netErr)
}
