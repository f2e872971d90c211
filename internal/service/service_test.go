package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/pos-backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records calls and returns canned results.
type fakeStore struct {
	items   []model.Supplier
	created int64
	err     error

	updatedID string
	deletedID string
	lastTerm  string
}

func (f *fakeStore) List(ctx context.Context) ([]model.Supplier, error) {
	return f.items, f.err
}

func (f *fakeStore) Search(ctx context.Context, term string) ([]model.Supplier, error) {
	f.lastTerm = term
	return f.items, f.err
}

func (f *fakeStore) Get(ctx context.Context, id string) (*model.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if id == "1" && f.items[i].SupplierID == 1 {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Create(ctx context.Context, in model.SupplierInput) (int64, error) {
	return f.created, f.err
}

func (f *fakeStore) Update(ctx context.Context, id string, in model.SupplierInput) error {
	f.updatedID = id
	return f.err
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return f.err
}

func ctxWithBuffer() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	return logger.WithContext(context.Background()), &buf
}

func TestCreateLogsMutation(t *testing.T) {
	store := &fakeStore{created: 5}
	svc := NewResource("supplier", store, nil)
	ctx, buf := ctxWithBuffer()

	id, err := svc.Create(ctx, model.SupplierInput{})
	require.NoError(t, err)

	assert.Equal(t, int64(5), id)
	assert.Contains(t, buf.String(), `"resource":"supplier"`)
	assert.Contains(t, buf.String(), `"id":5`)
	assert.Contains(t, buf.String(), `"message":"created"`)
}

func TestStoreErrorIsReturnedUnchanged(t *testing.T) {
	failure := errors.New("Table 'diane.Supplier' doesn't exist")
	store := &fakeStore{err: failure}
	svc := NewResource("supplier", store, nil)
	ctx, buf := ctxWithBuffer()

	_, err := svc.Create(ctx, model.SupplierInput{})
	assert.Same(t, failure, err)

	assert.Same(t, failure, svc.Update(ctx, "1", model.SupplierInput{}))
	assert.Same(t, failure, svc.Delete(ctx, "1"))

	_, err = svc.List(ctx)
	assert.Same(t, failure, err)

	assert.Empty(t, buf.String())
}

func TestGetMissingIsNil(t *testing.T) {
	store := &fakeStore{items: []model.Supplier{{SupplierID: 1}}}
	svc := NewResource("supplier", store, nil)

	got, err := svc.Get(context.Background(), "2")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.Get(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.SupplierID)
}

func TestUpdateAndDeletePassIDThrough(t *testing.T) {
	store := &fakeStore{}
	svc := NewResource("supplier", store, nil)
	ctx, buf := ctxWithBuffer()

	require.NoError(t, svc.Update(ctx, "7", model.SupplierInput{}))
	require.NoError(t, svc.Delete(ctx, "8"))

	assert.Equal(t, "7", store.updatedID)
	assert.Equal(t, "8", store.deletedID)
	assert.Contains(t, buf.String(), `"message":"updated"`)
	assert.Contains(t, buf.String(), `"message":"deleted"`)
}

func TestFallsBackToServiceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	svc := NewResource("supplier", &fakeStore{}, &logger)

	require.NoError(t, svc.Delete(context.Background(), "3"))

	assert.Contains(t, buf.String(), `"id":"3"`)
}

func TestSearchPassesTermThrough(t *testing.T) {
	store := &fakeStore{items: []model.Supplier{{SupplierID: 1}}}
	svc := NewResource("supplier", store, nil)

	got, err := svc.Search(context.Background(), "acme")
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, "acme", store.lastTerm)
}
