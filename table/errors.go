package table

import (
	"github.com/agilira/go-errors"
)

// Construction-time error codes. These are the only errors the
// package ever produces — once a Table is built, Insert/Find/Erase
// report outcomes as booleans: no operation can partially succeed,
// and absence/fullness are normal outcomes, not errors.
const (
	ErrCodeInvalidCapacity  errors.ErrorCode = "TABLE_INVALID_CAPACITY"
	ErrCodeInvalidKeySize   errors.ErrorCode = "TABLE_INVALID_KEY_SIZE"
	ErrCodeInvalidValueSize errors.ErrorCode = "TABLE_INVALID_VALUE_SIZE"
	ErrCodeBufferTooSmall   errors.ErrorCode = "TABLE_BUFFER_TOO_SMALL"
	ErrCodeBufferMisaligned errors.ErrorCode = "TABLE_BUFFER_MISALIGNED"
)

const (
	msgInvalidCapacity  = "table capacity N must be greater than 0"
	msgInvalidKeySize   = "table key size K must be greater than 0"
	msgInvalidValueSize = "table value size V must be greater than 0"
	msgBufferTooSmall   = "buffer is smaller than CalcMemSize(config)"
	msgBufferMisaligned = "buffer is not 8-byte aligned"
)

func newErrInvalidCapacity(n uint32) error {
	return errors.NewWithField(ErrCodeInvalidCapacity, msgInvalidCapacity, "n", n)
}

func newErrInvalidKeySize(k uint32) error {
	return errors.NewWithField(ErrCodeInvalidKeySize, msgInvalidKeySize, "k", k)
}

func newErrInvalidValueSize(v uint32) error {
	return errors.NewWithField(ErrCodeInvalidValueSize, msgInvalidValueSize, "v", v)
}

func newErrBufferTooSmall(need, got uint64) error {
	return errors.NewWithContext(ErrCodeBufferTooSmall, msgBufferTooSmall, map[string]interface{}{
		"required_bytes": need,
		"provided_bytes": got,
	})
}

func newErrBufferMisaligned(addr uintptr) error {
	return errors.NewWithContext(ErrCodeBufferMisaligned, msgBufferMisaligned, map[string]interface{}{
		"address_mod_8": addr % 8,
	})
}

// IsInvalidConfig reports whether err was caused by an invalid Config
// (capacity, key size or value size).
func IsInvalidConfig(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidCapacity) ||
		errors.HasCode(err, ErrCodeInvalidKeySize) ||
		errors.HasCode(err, ErrCodeInvalidValueSize)
}

// IsInvalidBuffer reports whether err was caused by a buffer that is
// too small or insufficiently aligned.
func IsInvalidBuffer(err error) bool {
	return errors.HasCode(err, ErrCodeBufferTooSmall) || errors.HasCode(err, ErrCodeBufferMisaligned)
}
