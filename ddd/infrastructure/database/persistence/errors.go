package persistence

import (
	"errors"

	"gorm.io/gorm"

	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
)

// wrapStoreError translates driver errors into the business taxonomy:
// missing rows become ErrNotFound, everything else is a database error
// whose detail stays attached for logging but never reaches clients.
func wrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.NewSimpleBizError(errno.ErrNotFound, err)
	}
	return errno.NewSimpleBizError(errno.ErrDatabase, err)
}
