package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"go-jobportal-api/internal/storage"
)

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Store(ctx context.Context, r io.Reader, opt storage.PutOptions) (string, error) {
	args := m.Called(ctx, r, opt)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Open(ctx context.Context, blobID string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, blobID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
