package engine_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.autols.dev/autols/pkg/domain"
	"go.autols.dev/autols/pkg/engine"
	"go.autols.dev/autols/pkg/ports"
	"go.autols.dev/autols/pkg/ports/mocks"
	"go.uber.org/mock/gomock"
)

type monitorMocks struct {
	source  *mocks.MockDetachSource
	runtime *mocks.MockRuntime
	events  chan ports.DetachEvent
}

// setupMonitor creates a monitor over a mock host with an open event
// stream feeding it.
func setupMonitor(t *testing.T, policy domain.StopPolicy) (*engine.Monitor, monitorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := monitorMocks{
		source:  mocks.NewMockDetachSource(ctrl),
		runtime: mocks.NewMockRuntime(ctrl),
		events:  make(chan ports.DetachEvent),
	}

	m.source.EXPECT().Events().Return((<-chan ports.DetachEvent)(m.events)).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	return engine.NewMonitor(policy, m.source, m.runtime, logger), m
}

func TestMonitor_StopsIdleServer(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		monitor, m := setupMonitor(t, domain.StopPolicy{Enable: true})

		m.runtime.EXPECT().Client(gomock.Any(), domain.ClientID(7)).
			Return(ports.Client{ID: 7, Server: "lua_ls"}, true)
		m.runtime.EXPECT().Stop(gomock.Any(), domain.ClientID(7)).Return(nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- monitor.Run(ctx) }()

		m.events <- ports.DetachEvent{Client: 7, Buffer: 3}
		synctest.Wait()

		cancel()
		require.NoError(t, <-done)
	})
}

func TestMonitor_KeepsServerWithRemainingBuffers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		monitor, m := setupMonitor(t, domain.StopPolicy{Enable: true})

		// No Stop expectation: a client still serving buffers stays up.
		m.runtime.EXPECT().Client(gomock.Any(), domain.ClientID(7)).
			Return(ports.Client{ID: 7, Server: "lua_ls", Buffers: []domain.BufferID{4}}, true)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- monitor.Run(ctx) }()

		m.events <- ports.DetachEvent{Client: 7, Buffer: 3}
		synctest.Wait()

		cancel()
		require.NoError(t, <-done)
	})
}

func TestMonitor_SkipsExcludedServer(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		monitor, m := setupMonitor(t, domain.StopPolicy{
			Enable:  true,
			Exclude: domain.NewServerSet("gopls"),
		})

		m.runtime.EXPECT().Client(gomock.Any(), domain.ClientID(2)).
			Return(ports.Client{ID: 2, Server: "gopls"}, true)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- monitor.Run(ctx) }()

		m.events <- ports.DetachEvent{Client: 2, Buffer: 1}
		synctest.Wait()

		cancel()
		require.NoError(t, <-done)
	})
}

func TestMonitor_IgnoresDeadClient(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		monitor, m := setupMonitor(t, domain.StopPolicy{Enable: true})

		m.runtime.EXPECT().Client(gomock.Any(), domain.ClientID(9)).
			Return(ports.Client{}, false)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- monitor.Run(ctx) }()

		m.events <- ports.DetachEvent{Client: 9, Buffer: 1}
		synctest.Wait()

		cancel()
		require.NoError(t, <-done)
	})
}

func TestMonitor_SurvivesStopFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		monitor, m := setupMonitor(t, domain.StopPolicy{Enable: true})

		first := m.runtime.EXPECT().Client(gomock.Any(), domain.ClientID(1)).
			Return(ports.Client{ID: 1, Server: "lua_ls"}, true)
		m.runtime.EXPECT().Stop(gomock.Any(), domain.ClientID(1)).
			Return(errors.New("client is busy"))

		m.runtime.EXPECT().Client(gomock.Any(), domain.ClientID(2)).
			Return(ports.Client{ID: 2, Server: "pyright"}, true).After(first)
		m.runtime.EXPECT().Stop(gomock.Any(), domain.ClientID(2)).Return(nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- monitor.Run(ctx) }()

		m.events <- ports.DetachEvent{Client: 1, Buffer: 1}
		m.events <- ports.DetachEvent{Client: 2, Buffer: 2}
		synctest.Wait()

		cancel()
		require.NoError(t, <-done)
	})
}

func TestMonitor_DisabledPolicyReturnsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockDetachSource(ctrl)
	runtime := mocks.NewMockRuntime(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	// No expectations at all: a disabled monitor must not touch the host.
	monitor := engine.NewMonitor(domain.StopPolicy{}, source, runtime, logger)
	assert.NoError(t, monitor.Run(context.Background()))
}

func TestMonitor_StopsWhenSourceCloses(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		monitor, m := setupMonitor(t, domain.StopPolicy{Enable: true})

		done := make(chan error, 1)
		go func() { done <- monitor.Run(context.Background()) }()

		close(m.events)
		require.NoError(t, <-done)
	})
}
