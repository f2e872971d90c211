// Package service contains the business logic.
//
// It sits between the handler and repository layers. Services delegate to
// the stores and log every mutation with the request-scoped logger. Store
// errors are returned unchanged so their message reaches the client.
package service

import (
	"context"

	"github.com/deppfellow/pos-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Resource is the service of one API resource.
type Resource[T, In any] struct {
	name   string
	store  repository.Store[T, In]
	logger *zerolog.Logger
}

// NewResource wraps store. name labels log events; logger is used when the
// request context carries none.
func NewResource[T, In any](name string, store repository.Store[T, In], logger *zerolog.Logger) *Resource[T, In] {
	return &Resource[T, In]{name: name, store: store, logger: logger}
}

func (r *Resource[T, In]) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	if r.logger != nil {
		return r.logger
	}
	return zerolog.Ctx(ctx)
}

func (r *Resource[T, In]) List(ctx context.Context) ([]T, error) {
	return r.store.List(ctx)
}

func (r *Resource[T, In]) Search(ctx context.Context, term string) ([]T, error) {
	items, err := r.store.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	r.log(ctx).Debug().
		Str("resource", r.name).
		Str("term", term).
		Int("matches", len(items)).
		Msg("search")

	return items, nil
}

// Get returns nil without error when id matches nothing.
func (r *Resource[T, In]) Get(ctx context.Context, id string) (*T, error) {
	return r.store.Get(ctx, id)
}

func (r *Resource[T, In]) Create(ctx context.Context, in In) (int64, error) {
	id, err := r.store.Create(ctx, in)
	if err != nil {
		return 0, err
	}

	r.log(ctx).Info().
		Str("resource", r.name).
		Int64("id", id).
		Msg("created")

	return id, nil
}

func (r *Resource[T, In]) Update(ctx context.Context, id string, in In) error {
	if err := r.store.Update(ctx, id, in); err != nil {
		return err
	}

	r.log(ctx).Info().
		Str("resource", r.name).
		Str("id", id).
		Msg("updated")

	return nil
}

func (r *Resource[T, In]) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}

	r.log(ctx).Info().
		Str("resource", r.name).
		Str("id", id).
		Msg("deleted")

	return nil
}
