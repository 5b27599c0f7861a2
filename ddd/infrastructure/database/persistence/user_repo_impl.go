package persistence

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
	drepo "github.com/M0nkiiii/Screentime-Management/ddd/domain/repo"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/dao"
)

type userRepositoryImpl struct {
	dao *dao.UserDao
}

func NewUserRepository() drepo.UserRepository {
	return &userRepositoryImpl{dao: dao.NewUserDao()}
}

func (r *userRepositoryImpl) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, wrapStoreError(err)
	}
	return count, nil
}

func (r *userRepositoryImpl) ListAll(ctx context.Context) ([]*entity.User, error) {
	pos, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	res := make([]*entity.User, 0, len(pos))
	for _, p := range pos {
		res = append(res, &entity.User{
			UUID:      p.UUID,
			Username:  p.Username,
			Email:     p.Email,
			CreatedAt: p.CreatedAt,
		})
	}
	return res, nil
}
