package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
)

func nilParamCaller(v any) error { return errors.NilParam(v) }

func TestNilParam(t *testing.T) {
	assert.NoError(t, nilParamCaller(1))

	err := nilParamCaller(nil)
	assert.True(t, errors.Is(err, consts.ErrNilParam))
	assert.Contains(t, err.Error(), `nilParamCaller()`)
	assert.Contains(t, err.Error(), consts.ErrNilParam.Error())

	assert.True(t, errors.Is(errors.NilParam(), consts.ErrNilParam))
}

func TestJoin(t *testing.T) {
	assert.NoError(t, errors.Join(nil, nil))

	a, b := stderrors.New(`a`), stderrors.New(`b`)
	err := errors.Join(a, nil, b)
	assert.True(t, errors.Is(err, a))
	assert.True(t, errors.Is(err, b))
	var errGo *errors.Error
	assert.True(t, errors.As(err, &errGo))
}

func TestNew(t *testing.T) {
	assert.Nil(t, errors.New(nil))
	err := errors.New(consts.ErrUnbound)
	assert.True(t, errors.Is(err, consts.ErrUnbound))
	assert.Same(t, err, errors.New(err))
}
