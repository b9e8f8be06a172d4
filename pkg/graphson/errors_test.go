package graphson

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeError_Error(t *testing.T) {
	err := NewDecodeError(ErrCodeMissingField, RootPath().Index(2), "required field %q is missing", "id")
	assert.Equal(t, `[MISSING_FIELD] required field "id" is missing at $[2]`, err.Error())

	wrapped := WrapDecodeError(ErrCodeInvalidDocument, RootPath(), "input is not valid JSON", fmt.Errorf("boom"))
	assert.Equal(t, "[INVALID_DOCUMENT] input is not valid JSON at $: boom", wrapped.Error())
}

func TestDecodeError_IsMatchesByCode(t *testing.T) {
	err := NewDecodeError(ErrCodeTypeMismatch, RootPath(), "label is not a string")
	assert.True(t, errors.Is(err, &DecodeError{Code: ErrCodeTypeMismatch}))
	assert.False(t, errors.Is(err, &DecodeError{Code: ErrCodeMissingField}))
}

func TestDecodeError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := WrapDecodeError(ErrCodeInvalidDocument, RootPath(), "bad input", cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestEncodeError_Error(t *testing.T) {
	err := NewEncodeError(ErrCodeUnsupportedWidthPolicy, "unknown integer width policy %q", "int16")
	assert.Equal(t, `[UNSUPPORTED_WIDTH_POLICY] unknown integer width policy "int16"`, err.Error())
	assert.True(t, errors.Is(err, &EncodeError{Code: ErrCodeUnsupportedWidthPolicy}))
	assert.False(t, errors.Is(err, &EncodeError{Code: ErrCodeInternalInvariant}))
}

func TestTranslationError_WrapsStageFailure(t *testing.T) {
	cause := NewDecodeError(ErrCodeUnrecognizedShape, RootPath().Key("rows"), "unknown shape")
	err := NewTranslationError(StageDecode, cause).WithContext("input_bytes", 128)

	assert.Contains(t, err.Error(), "decode")
	assert.Contains(t, err.Error(), "UNRECOGNIZED_SHAPE")
	assert.Equal(t, 128, err.Context["input_bytes"])

	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, ErrCodeUnrecognizedShape, derr.Code)
	assert.Equal(t, "$.rows", derr.Path.String())
}
