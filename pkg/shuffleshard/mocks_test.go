// Mocks of runtime.Snapshot, runtime.Loader and shuffleshard.Router,
// written in the style of gomock's generated code.

package shuffleshard_test

import (
	context "context"
	reflect "reflect"

	runtime "github.com/buildbarn/bb-shuffle-shard/pkg/runtime"
	shuffleshard "github.com/buildbarn/bb-shuffle-shard/pkg/shuffleshard"
	gomock "go.uber.org/mock/gomock"
)

// MockSnapshot is a mock of Snapshot interface.
type MockSnapshot struct {
	ctrl     *gomock.Controller
	recorder *MockSnapshotMockRecorder
}

// MockSnapshotMockRecorder is the mock recorder for MockSnapshot.
type MockSnapshotMockRecorder struct {
	mock *MockSnapshot
}

// NewMockSnapshot creates a new mock instance.
func NewMockSnapshot(ctrl *gomock.Controller) *MockSnapshot {
	mock := &MockSnapshot{ctrl: ctrl}
	mock.recorder = &MockSnapshotMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSnapshot) EXPECT() *MockSnapshotMockRecorder {
	return m.recorder
}

// GetInteger mocks base method.
func (m *MockSnapshot) GetInteger(key string, defaultValue uint64) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInteger", key, defaultValue)
	ret0, _ := ret[0].(uint64)
	return ret0
}

// GetInteger indicates an expected call of GetInteger.
func (mr *MockSnapshotMockRecorder) GetInteger(key, defaultValue any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInteger", reflect.TypeOf((*MockSnapshot)(nil).GetInteger), key, defaultValue)
}

// MockLoader is a mock of Loader interface.
type MockLoader struct {
	ctrl     *gomock.Controller
	recorder *MockLoaderMockRecorder
}

// MockLoaderMockRecorder is the mock recorder for MockLoader.
type MockLoaderMockRecorder struct {
	mock *MockLoader
}

// NewMockLoader creates a new mock instance.
func NewMockLoader(ctrl *gomock.Controller) *MockLoader {
	mock := &MockLoader{ctrl: ctrl}
	mock.recorder = &MockLoaderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLoader) EXPECT() *MockLoaderMockRecorder {
	return m.recorder
}

// Snapshot mocks base method.
func (m *MockLoader) Snapshot() runtime.Snapshot {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Snapshot")
	ret0, _ := ret[0].(runtime.Snapshot)
	return ret0
}

// Snapshot indicates an expected call of Snapshot.
func (mr *MockLoaderMockRecorder) Snapshot() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Snapshot", reflect.TypeOf((*MockLoader)(nil).Snapshot))
}

// MockRouter is a mock of Router interface.
type MockRouter struct {
	ctrl     *gomock.Controller
	recorder *MockRouterMockRecorder
}

// MockRouterMockRecorder is the mock recorder for MockRouter.
type MockRouterMockRecorder struct {
	mock *MockRouter
}

// NewMockRouter creates a new mock instance.
func NewMockRouter(ctrl *gomock.Controller) *MockRouter {
	mock := &MockRouter{ctrl: ctrl}
	mock.recorder = &MockRouterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRouter) EXPECT() *MockRouterMockRecorder {
	return m.recorder
}

// RouteRequest mocks base method.
func (m *MockRouter) RouteRequest(ctx context.Context, tenantID, path string) (*shuffleshard.RoutingDecision, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RouteRequest", ctx, tenantID, path)
	ret0, _ := ret[0].(*shuffleshard.RoutingDecision)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RouteRequest indicates an expected call of RouteRequest.
func (mr *MockRouterMockRecorder) RouteRequest(ctx, tenantID, path any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RouteRequest", reflect.TypeOf((*MockRouter)(nil).RouteRequest), ctx, tenantID, path)
}
