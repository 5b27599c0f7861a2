package errno

import (
	"fmt"
	"strings"
)

// BizError carries a business error code together with its underlying
// cause. Boundary code matches on it with errors.As to pick a status.
type BizError interface {
	error
	Errno() *Errno
	Message() string
	Unwrap() error
}

type simpleBizError struct {
	errno *Errno
	cause error
	field string
}

// NewSimpleBizError wraps a cause with a business code. The optional field
// argument fills the %s placeholder of parameter errors ("body", "query",
// the offending field name).
func NewSimpleBizError(e *Errno, cause error, field ...string) BizError {
	be := &simpleBizError{errno: e, cause: cause}
	if len(field) > 0 {
		be.field = field[0]
	}
	return be
}

func (e *simpleBizError) Errno() *Errno {
	return e.errno
}

// Message renders the user-facing message with the field hint applied.
// The cause is never included; it is for logs only.
func (e *simpleBizError) Message() string {
	if strings.Contains(e.errno.Message, "%s") {
		return strings.TrimSpace(fmt.Sprintf(e.errno.Message, e.field))
	}
	return e.errno.Message
}

func (e *simpleBizError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message(), e.cause)
	}
	return e.Message()
}

func (e *simpleBizError) Unwrap() error {
	return e.cause
}

// Is lets errors.Is(err, errno.ErrNotFound) see through the wrapper.
func (e *simpleBizError) Is(target error) bool {
	return target == e.errno
}
