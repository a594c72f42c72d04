package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"
)

// MockIAccountReader is a testify mock of IAccountReader.
type MockIAccountReader struct {
	mock.Mock
}

var _ IAccountReader = (*MockIAccountReader)(nil)

// NewMockIAccountReader registers expectation checks on test cleanup.
func NewMockIAccountReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIAccountReader {
	m := &MockIAccountReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIAccountReader) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*Account)
	return row, args.Error(1)
}

func (m *MockIAccountReader) FindByName(ctx context.Context, name string) (*Account, error) {
	args := m.Called(ctx, name)
	row, _ := args.Get(0).(*Account)
	return row, args.Error(1)
}

func (m *MockIAccountReader) List(ctx context.Context) ([]*Account, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*Account)
	return rows, args.Error(1)
}
