package errors

import (
	"errors"
	"runtime"

	errorsGo "github.com/go-errors/errors"

	"github.com/srlehn/fbcon/internal/consts"
)

func As(err error, target any) bool { return errorsGo.As(err, target) }

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Join(errs ...error) error {
	err := errors.Join(errs...)
	if err == nil {
		return nil
	}
	return errorsGo.Wrap(err, 1)
}

// New wraps obj into a stack carrying error.
// Unlike github.com/go-errors/errors.New() it returns nil for nil.
func New(obj any) error {
	if obj == nil {
		return nil
	}
	// keep the origin of the failure
	if errGo, ok := obj.(*errorsGo.Error); ok {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

func Unwrap(err error) error { return errorsGo.Unwrap(err) }

type Error = errorsGo.Error

func Errorf(format string, a ...any) error { return errorsGo.Errorf(format, a...) }

func Wrap(e any, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

// NilParam returns an error naming the calling function if any of the arguments are nil
func NilParam(args ...any) error {
	for i := range args {
		if args[i] == nil {
			return errMsg(consts.ErrNilParam, 2)
		}
	}
	if len(args) == 0 {
		return errMsg(consts.ErrNilParam, 2)
	}
	return nil
}

func errMsg(sentinel error, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return Wrap(sentinel, skip)
	}
	return errorsGo.WrapPrefix(sentinel, runtime.FuncForPC(pc).Name()+`()`, skip+1)
}
