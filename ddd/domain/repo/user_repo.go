package repo

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
)

// UserRepository reads account records owned by the auth service. This
// service never writes users.
type UserRepository interface {
	Count(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]*entity.User, error)
}
