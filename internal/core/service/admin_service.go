package service

import (
	"context"
	"sync"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/ports"
)

// AdminService backs the admin console: one bulk concurrent fetch for the
// three tables, and a single delete entrypoint keyed by target type.
type AdminService struct {
	api ports.AdminAPI
}

func NewAdminService(api ports.AdminAPI) *AdminService {
	return &AdminService{api: api}
}

// AdminData holds the three independent tables shown in the console tabs.
type AdminData struct {
	Users    []domain.AdminUser
	Posts    []domain.AdminPost
	Comments []domain.AdminComment
}

// FetchAll loads users, posts, and comments with three concurrent requests.
// Any single failure fails the whole load.
func (s *AdminService) FetchAll(ctx context.Context, token string) (*AdminData, error) {
	var (
		data AdminData
		errs [3]error
		wg   sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		data.Users, errs[0] = s.api.ListUsers(ctx, token)
	}()
	go func() {
		defer wg.Done()
		data.Posts, errs[1] = s.api.ListAllPosts(ctx, token)
	}()
	go func() {
		defer wg.Done()
		data.Comments, errs[2] = s.api.ListAllComments(ctx, token)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &data, nil
}

// Delete removes one record of the given target type. Deleting the account
// the actor is authenticated as is rejected before any request is issued.
func (s *AdminService) Delete(ctx context.Context, token string, actor *domain.User, target string, id int64) error {
	switch target {
	case domain.AdminTargetUser:
		if actor != nil && actor.ID == id {
			return domain.ErrSelfDelete
		}
		return s.api.DeleteUser(ctx, token, id)
	case domain.AdminTargetPost:
		return s.api.HardDeletePost(ctx, token, id)
	case domain.AdminTargetComment:
		return s.api.DeleteAnyComment(ctx, token, id)
	default:
		return &domain.ValidationError{Field: "type", Message: "unknown delete target: " + target}
	}
}
