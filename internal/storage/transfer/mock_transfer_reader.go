package transfer

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"
)

// MockITransferReader is a testify mock of ITransferReader.
type MockITransferReader struct {
	mock.Mock
}

var _ ITransferReader = (*MockITransferReader)(nil)

// NewMockITransferReader registers expectation checks on test cleanup.
func NewMockITransferReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockITransferReader {
	m := &MockITransferReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockITransferReader) List(ctx context.Context, filter *TransferFilter) ([]*Transfer, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*Transfer)
	return rows, args.Error(1)
}

func (m *MockITransferReader) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}
