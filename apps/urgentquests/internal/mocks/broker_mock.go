package mocks

import (
	"context"
	"sync"
)

type MockBrokerClient struct {
	mu       sync.Mutex
	messages map[string][]any
}

func NewMockBrokerClient() *MockBrokerClient {
	return &MockBrokerClient{
		mu:       sync.Mutex{},
		messages: map[string][]any{},
	}
}

func (m *MockBrokerClient) Publish(_ context.Context, queue string, messages ...any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages[queue] = append(m.messages[queue], messages...)
	return nil
}

func (m *MockBrokerClient) Messages(queue string) []any {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]any{}, m.messages[queue]...)
}

func (m *MockBrokerClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = map[string][]any{}
}
