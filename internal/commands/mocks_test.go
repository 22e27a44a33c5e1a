package commands

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/okra-platform/cspoet/internal/build"
	"github.com/okra-platform/cspoet/internal/config"
)

type mockConfigLoader struct {
	mock.Mock
}

func (m *mockConfigLoader) LoadConfig(path string) (*config.Config, string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*config.Config), args.String(1), args.Error(2)
}

type mockBuilder struct {
	mock.Mock
}

func (m *mockBuilder) Generate(ctx context.Context) ([]build.Output, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]build.Output), args.Error(1)
}

func (m *mockBuilder) Build(ctx context.Context) (*build.Result, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*build.Result), args.Error(1)
}

func (m *mockBuilder) OutputDir() string {
	return m.Called().String(0)
}

type mockBuilderFactory struct {
	mock.Mock
}

func (m *mockBuilderFactory) NewBuilder(cfg *config.Config, projectRoot string) Builder {
	args := m.Called(cfg, projectRoot)
	return args.Get(0).(Builder)
}

type mockSignalNotifier struct {
	mock.Mock
}

func (m *mockSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	m.Called(c, sig)
}

func (m *mockSignalNotifier) Stop(c chan<- os.Signal) {
	m.Called(c)
}

type mockOutput struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockOutput) Printf(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, fmt.Sprintf(format, args...))
}

func (m *mockOutput) Println(args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, fmt.Sprintln(args...))
}
