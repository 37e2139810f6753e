package testutil

import (
	"context"

	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/reglet-dev/scriptbox/domain/naming"
	"github.com/reglet-dev/scriptbox/domain/ports"
	"github.com/stretchr/testify/mock"
)

// MockScriptRuntime is a testify mock of ports.ScriptRuntime.
type MockScriptRuntime struct {
	mock.Mock
}

var _ ports.ScriptRuntime = (*MockScriptRuntime)(nil)

func (m *MockScriptRuntime) Name() string {
	return m.Called().String(0)
}

func (m *MockScriptRuntime) ReservedWords() naming.ReservedWordSet {
	return m.Called().Get(0).(naming.ReservedWordSet)
}

func (m *MockScriptRuntime) Dialect() entities.Dialect {
	return m.Called().Get(0).(entities.Dialect)
}

func (m *MockScriptRuntime) NewEngine(ctx context.Context) (ports.Engine, error) {
	args := m.Called(ctx)
	engine, _ := args.Get(0).(ports.Engine)
	return engine, args.Error(1)
}

// MockEngine is a testify mock of ports.Engine.
type MockEngine struct {
	mock.Mock
}

var _ ports.Engine = (*MockEngine)(nil)

func (m *MockEngine) Runtime() string {
	return m.Called().String(0)
}

func (m *MockEngine) Stage(slot string, entries []ports.HostEntry) error {
	return m.Called(slot, entries).Error(0)
}

func (m *MockEngine) Eval(ctx context.Context, src string) (any, error) {
	args := m.Called(ctx, src)
	return args.Get(0), args.Error(1)
}

func (m *MockEngine) Get(name string) (any, bool) {
	args := m.Called(name)
	return args.Get(0), args.Bool(1)
}

func (m *MockEngine) Call(ctx context.Context, name string, callArgs ...any) (any, error) {
	args := m.Called(ctx, name, callArgs)
	return args.Get(0), args.Error(1)
}

func (m *MockEngine) Close() error {
	return m.Called().Error(0)
}
