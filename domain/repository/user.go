package repository

import (
	"context"

	"video-gateway/domain/model"
)

// IUser resolves authenticated principals. The gateway only ever reads;
// registration and token issuance belong to the identity service.
type IUser interface {
	GetByUserName(ctx context.Context, userName string) (model.User, error)
}
