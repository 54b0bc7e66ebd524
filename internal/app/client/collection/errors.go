package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated - мутация коллекции владельца без активной сессии
	// или ответ 401 от хранилища.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound - хранилище сообщило, что записи с таким id нет.
	ErrNotFound = errors.New("record not found")
	// ErrReadOnly - мутация коллекции, доступной только для чтения.
	ErrReadOnly = errors.New("collection is read-only")
	// ErrRemoteFailure - любой другой отказ хранилища; проверяется через errors.Is.
	ErrRemoteFailure = errors.New("remote failure")
)

// RemoteError оборачивает ошибку хранилища вместе с операцией и таблицей.
type RemoteError struct {
	Op    string
	Table string
	Err   error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteFailure
}

func wrapRemote(op, table string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrNotFound) {
		return err
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return err
	}
	return &RemoteError{Op: op, Table: table, Err: err}
}
