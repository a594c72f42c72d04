package event

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"
)

// MockIEventReader is a testify mock of IEventReader.
type MockIEventReader struct {
	mock.Mock
}

var _ IEventReader = (*MockIEventReader)(nil)

// NewMockIEventReader registers expectation checks on test cleanup.
func NewMockIEventReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIEventReader {
	m := &MockIEventReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIEventReader) FindByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*Event)
	return row, args.Error(1)
}

func (m *MockIEventReader) List(ctx context.Context, filter *EventFilter) ([]*Event, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*Event)
	return rows, args.Error(1)
}
