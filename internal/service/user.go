package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/imgvet/imgvet/internal/model"
	"github.com/imgvet/imgvet/internal/repository"
)

// ErrUserNotFound indicates the requested username has never been seen.
var ErrUserNotFound = errors.New("user not found")

// UserService answers read-only queries about a user's accepted images.
type UserService struct {
	store RecordStore
}

// NewUserService creates a new UserService.
func NewUserService(store RecordStore) *UserService {
	return &UserService{store: store}
}

// UserImages is a user's accepted image history.
type UserImages struct {
	User    *model.User
	Records []*model.ImageRecord
	Total   int64
}

// GetUserImages returns the accepted image records for a username. Unlike
// batch ingestion, a lookup never creates the user.
func (s *UserService) GetUserImages(ctx context.Context, username string) (*UserImages, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	records, err := s.store.ListImages(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list image records: %w", err)
	}

	count, err := s.store.CountImages(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count image records: %w", err)
	}

	return &UserImages{
		User:    user,
		Records: records,
		Total:   count,
	}, nil
}
