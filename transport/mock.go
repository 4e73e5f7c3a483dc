package transport

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockChannel is a testify-based mock implementation of the Channel
// interface.
type MockChannel struct {
	mock.Mock
}

var _ Channel = (*MockChannel)(nil)

func NewMockChannel() *MockChannel {
	return &MockChannel{}
}

func (m *MockChannel) Write(p []byte) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockChannel) ReadUntil(delim []byte) ([]byte, error) {
	args := m.Called(delim)
	if data := args.Get(0); data != nil {
		return data.([]byte), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockChannel) DiscardBuffers() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockChannel) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockOpener is a testify-based mock implementation of the Opener interface.
type MockOpener struct {
	mock.Mock
}

var _ Opener = (*MockOpener)(nil)

func NewMockOpener() *MockOpener {
	return &MockOpener{}
}

func (m *MockOpener) Enumerate() ([]string, error) {
	args := m.Called()
	if eps := args.Get(0); eps != nil {
		return eps.([]string), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOpener) Open(endpoint string, readTimeout time.Duration) (Channel, error) {
	args := m.Called(endpoint, readTimeout)
	if ch := args.Get(0); ch != nil {
		return ch.(Channel), args.Error(1)
	}

	return nil, args.Error(1)
}
