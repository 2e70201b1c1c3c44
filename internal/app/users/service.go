// Package users coordinates account registration.
package users

import (
	"context"
)

// Store captures the persistence needs for user workflows.
type Store interface {
	CreateUser(ctx context.Context, username, password, fullname string) (string, error)
}

// Service coordinates user-related operations.
type Service interface {
	Register(ctx context.Context, username, password, fullname string) (string, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Register(ctx context.Context, username, password, fullname string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.CreateUser(ctx, username, password, fullname)
}
