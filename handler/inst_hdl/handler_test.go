/*
 * Copyright 2024 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package inst_hdl

import (
	"context"
	"database/sql/driver"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SENERGY-Platform/go-service-base/srv-base"
	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/SENERGY-Platform/lab-instance-manager/util"
	"github.com/y-du/go-log-level/level"
)

func TestMain(m *testing.M) {
	_, err := util.InitLogger(srv_base.LoggerConfig{Level: level.Error, Terminal: true})
	if err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stgHdlMock struct {
	mu        sync.Mutex
	instances map[string]lib_model.Instance
	createErr error
	ports     []int
}

func newStgHdlMock() *stgHdlMock {
	return &stgHdlMock{instances: make(map[string]lib_model.Instance)}
}

func (m *stgHdlMock) BeginTransaction(ctx context.Context) (driver.Tx, error) {
	return stubTx{}, nil
}

func (m *stgHdlMock) ListInst(ctx context.Context, filter lib_model.InstanceFilter) (map[string]lib_model.Instance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	instances := make(map[string]lib_model.Instance)
	for id, inst := range m.instances {
		if filter.State != "" && inst.State != filter.State {
			continue
		}
		instances[id] = inst
	}
	return instances, nil
}

func (m *stgHdlMock) CreateInst(ctx context.Context, itf driver.Tx, inst lib_model.Instance) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.instances[inst.ID] = inst
	return nil
}

func (m *stgHdlMock) ReadInst(ctx context.Context, id string) (lib_model.Instance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inst, ok := m.instances[id]
	if !ok {
		return lib_model.Instance{}, lib_model.NewNotFoundError(errors.New("instance not found"))
	}
	return inst, nil
}

func (m *stgHdlMock) UpdateInst(ctx context.Context, itf driver.Tx, inst lib_model.Instance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.instances[inst.ID]; !ok {
		return lib_model.NewNotFoundError(errors.New("instance not found"))
	}
	m.instances[inst.ID] = inst
	return nil
}

func (m *stgHdlMock) DeleteInst(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.instances[id]; !ok {
		return lib_model.NewNotFoundError(errors.New("instance not found"))
	}
	delete(m.instances, id)
	return nil
}

func (m *stgHdlMock) ListPorts(ctx context.Context) ([]int, error) {
	return m.ports, nil
}

type orchHdlMock struct {
	mu           sync.Mutex
	startErr     error
	healthState  lib_model.InstanceState
	healthMsg    string
	destroyErr   error
	destroyCalls []string
}

func (m *orchHdlMock) Provision(inst lib_model.Instance) (lib_model.Instance, error) {
	inst.Ports = []int{8000, 8089}
	inst.Endpoints = lib_model.Endpoints{Web: "127.0.0.1:8000", Mgmt: "127.0.0.1:8089"}
	inst.NetworkID = "lab-" + inst.ID + "_default"
	return inst, nil
}

func (m *orchHdlMock) Start(ctx context.Context, inst lib_model.Instance) (map[string]string, error) {
	if m.startErr != nil {
		return nil, m.startErr
	}
	return map[string]string{"node": "ctr-1"}, nil
}

func (m *orchHdlMock) Stop(ctx context.Context, inst lib_model.Instance) error {
	return nil
}

func (m *orchHdlMock) Destroy(ctx context.Context, inst lib_model.Instance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroyCalls = append(m.destroyCalls, inst.ID)
	return m.destroyErr
}

func (m *orchHdlMock) Health(ctx context.Context, inst lib_model.Instance) (lib_model.InstanceState, string, error) {
	return m.healthState, m.healthMsg, nil
}

func (m *orchHdlMock) Logs(ctx context.Context, inst lib_model.Instance, component string, tail int) (string, error) {
	return "log line", nil
}

type credHdlMock struct{}

func (credHdlMock) Generate(ctx context.Context, iID string, ingest bool) (lib_model.Credentials, error) {
	c := lib_model.Credentials{AdminUser: "admin", AdminPassword: "pw", AccessToken: "at"}
	if ingest {
		c.IngestToken = "it"
	}
	return c, nil
}

type seederMock struct {
	ports []int
}

func (m *seederMock) Seed(ports []int) {
	m.ports = append(m.ports, ports...)
}

func newTestHandler(stgHdl *stgHdlMock, orchHdl *orchHdlMock) *Handler {
	return New(stgHdl, orchHdl, credHdlMock{}, &seederMock{}, time.Second, 168, time.Millisecond*10)
}

func validRequest() lib_model.InstanceCreateRequest {
	return lib_model.InstanceCreateRequest{
		Name:     "soc-drill-1",
		TTLHours: 24,
		Labels:   map[string]string{"team": "blue"},
		Config: lib_model.InstanceConfig{
			Topology: lib_model.TopologyStandalone,
			Version:  "9.2.1",
		},
	}
}

func TestHandler_Create(t *testing.T) {
	stgHdl := newStgHdlMock()
	h := newTestHandler(stgHdl, &orchHdlMock{})
	inst, err := h.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatal(err)
	}
	if inst.State != lib_model.StateProvisioning {
		t.Errorf("state != 'provisioning': %s", inst.State)
	}
	if inst.Credentials.AdminPassword == "" {
		t.Error("credentials not generated")
	}
	want := inst.Created.Add(time.Hour * 24)
	if !inst.Expires.Equal(want) {
		t.Errorf("expires != created+24h: %s", inst.Expires)
	}
	if _, ok := stgHdl.instances[inst.ID]; !ok {
		t.Error("instance not persisted")
	}
	if inst.Config.MemoryMB != defaultMemoryMB {
		t.Errorf("memory default not applied: %d", inst.Config.MemoryMB)
	}
}

func TestHandler_CreateDuplicateName(t *testing.T) {
	stgHdl := newStgHdlMock()
	h := newTestHandler(stgHdl, &orchHdlMock{})
	first, err := h.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatal(err)
	}
	second, err := h.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID {
		t.Error("duplicate instance id")
	}
	if len(stgHdl.instances) != 2 {
		t.Errorf("instances != 2: %d", len(stgHdl.instances))
	}
}

func TestHandler_CreateInvalidInput(t *testing.T) {
	h := newTestHandler(newStgHdlMock(), &orchHdlMock{})
	tests := []struct {
		name   string
		mutate func(req *lib_model.InstanceCreateRequest)
	}{
		{"empty name", func(req *lib_model.InstanceCreateRequest) { req.Name = "" }},
		{"upper case name", func(req *lib_model.InstanceCreateRequest) { req.Name = "Soc-Drill" }},
		{"leading dash", func(req *lib_model.InstanceCreateRequest) { req.Name = "-soc" }},
		{"zero ttl", func(req *lib_model.InstanceCreateRequest) { req.TTLHours = 0 }},
		{"excessive ttl", func(req *lib_model.InstanceCreateRequest) { req.TTLHours = 169 }},
		{"unknown topology", func(req *lib_model.InstanceCreateRequest) { req.Config.Topology = "mesh" }},
		{"memory too low", func(req *lib_model.InstanceCreateRequest) { req.Config.MemoryMB = 256 }},
		{"memory too high", func(req *lib_model.InstanceCreateRequest) { req.Config.MemoryMB = 16384 }},
		{"cpu too high", func(req *lib_model.InstanceCreateRequest) { req.Config.CPUCores = 8 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := h.Create(context.Background(), req)
			var iie *lib_model.InvalidInputError
			if !errors.As(err, &iie) {
				t.Errorf("unexpected error type: %T", err)
			}
		})
	}
}

func TestHandler_CreatePersistErrRollsBack(t *testing.T) {
	stgHdl := newStgHdlMock()
	stgHdl.createErr = lib_model.NewInternalError(errors.New("db down"))
	orchHdl := &orchHdlMock{}
	h := newTestHandler(stgHdl, orchHdl)
	if _, err := h.Create(context.Background(), validRequest()); err == nil {
		t.Error("err == nil")
	}
	if len(orchHdl.destroyCalls) != 1 {
		t.Errorf("destroy calls != 1: %d", len(orchHdl.destroyCalls))
	}
}

func seedInstance(stgHdl *stgHdlMock, state lib_model.InstanceState, expires time.Time) lib_model.Instance {
	inst := lib_model.Instance{
		InstanceBase: lib_model.InstanceBase{
			ID:      "test-id",
			Name:    "test-inst",
			State:   state,
			Created: time.Now().UTC().Add(-time.Hour),
			Expires: expires,
		},
		Ports: []int{8000},
	}
	stgHdl.instances[inst.ID] = inst
	return inst
}

func TestHandler_Start(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateProvisioning, time.Now().Add(time.Hour))
	h := newTestHandler(stgHdl, &orchHdlMock{})
	if err := h.Start(context.Background(), "test-id"); err != nil {
		t.Fatal(err)
	}
	inst := stgHdl.instances["test-id"]
	if inst.State != lib_model.StateStarting {
		t.Errorf("state != 'starting': %s", inst.State)
	}
	if inst.Started == nil {
		t.Error("started == nil")
	}
	if inst.Containers["node"] != "ctr-1" {
		t.Errorf("containers not recorded: %v", inst.Containers)
	}
}

func TestHandler_StartInvalidState(t *testing.T) {
	for _, state := range []lib_model.InstanceState{lib_model.StateRunning, lib_model.StateStarting, lib_model.StateStopping} {
		stgHdl := newStgHdlMock()
		seedInstance(stgHdl, state, time.Now().Add(time.Hour))
		h := newTestHandler(stgHdl, &orchHdlMock{})
		err := h.Start(context.Background(), "test-id")
		var ise *lib_model.InvalidStateError
		if !errors.As(err, &ise) {
			t.Errorf("%s: unexpected error type: %T", state, err)
		}
	}
}

func TestHandler_StartNotFound(t *testing.T) {
	h := newTestHandler(newStgHdlMock(), &orchHdlMock{})
	err := h.Start(context.Background(), "unknown")
	var nfe *lib_model.NotFoundError
	if !errors.As(err, &nfe) {
		t.Errorf("unexpected error type: %T", err)
	}
}

func TestHandler_StartOrchErr(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateProvisioning, time.Now().Add(time.Hour))
	orchHdl := &orchHdlMock{startErr: errors.New("port is already allocated")}
	h := newTestHandler(stgHdl, orchHdl)
	err := h.Start(context.Background(), "test-id")
	var fe *lib_model.FailedError
	if !errors.As(err, &fe) {
		t.Errorf("unexpected error type: %T", err)
	}
	inst := stgHdl.instances["test-id"]
	if inst.State != lib_model.StateError {
		t.Errorf("state != 'error': %s", inst.State)
	}
	if inst.Message == "" {
		t.Error("message empty")
	}
}

func TestHandler_StartBusy(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateProvisioning, time.Now().Add(time.Hour))
	h := newTestHandler(stgHdl, &orchHdlMock{})
	m := h.instMu.Get("test-id")
	if err := m.TryLock("other operation"); err != nil {
		t.Fatal(err)
	}
	defer m.Unlock()
	err := h.Start(context.Background(), "test-id")
	var rbe *lib_model.ResourceBusyError
	if !errors.As(err, &rbe) {
		t.Errorf("unexpected error type: %T", err)
	}
}

func TestHandler_Stop(t *testing.T) {
	stgHdl := newStgHdlMock()
	inst := seedInstance(stgHdl, lib_model.StateRunning, time.Now().Add(time.Hour))
	now := time.Now().UTC()
	inst.Started = &now
	stgHdl.instances[inst.ID] = inst
	h := newTestHandler(stgHdl, &orchHdlMock{})
	if err := h.Stop(context.Background(), "test-id"); err != nil {
		t.Fatal(err)
	}
	got := stgHdl.instances["test-id"]
	if got.State != lib_model.StateStopped {
		t.Errorf("state != 'stopped': %s", got.State)
	}
	if got.Started != nil {
		t.Error("started != nil")
	}
}

func TestHandler_StopIdempotent(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateRunning, time.Now().Add(time.Hour))
	h := newTestHandler(stgHdl, &orchHdlMock{})
	if err := h.Stop(context.Background(), "test-id"); err != nil {
		t.Fatal(err)
	}
	if err := h.Stop(context.Background(), "test-id"); err != nil {
		t.Errorf("repeated stop: %s", err)
	}
	if stgHdl.instances["test-id"].State != lib_model.StateStopped {
		t.Errorf("state != 'stopped': %s", stgHdl.instances["test-id"].State)
	}
}

func TestHandler_StartStopStartNoPortLeak(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateProvisioning, time.Now().Add(time.Hour))
	h := newTestHandler(stgHdl, &orchHdlMock{})
	if err := h.Start(context.Background(), "test-id"); err != nil {
		t.Fatal(err)
	}
	if err := h.Stop(context.Background(), "test-id"); err != nil {
		t.Fatal(err)
	}
	if err := h.Start(context.Background(), "test-id"); err != nil {
		t.Fatal(err)
	}
	inst := stgHdl.instances["test-id"]
	if len(inst.Ports) != 1 {
		t.Errorf("ports changed across restart: %v", inst.Ports)
	}
}

func TestHandler_Delete(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateRunning, time.Now().Add(time.Hour))
	orchHdl := &orchHdlMock{}
	h := newTestHandler(stgHdl, orchHdl)
	if err := h.Delete(context.Background(), "test-id"); err != nil {
		t.Fatal(err)
	}
	if len(stgHdl.instances) != 0 {
		t.Error("instance not removed")
	}
	if len(orchHdl.destroyCalls) != 1 {
		t.Errorf("destroy calls != 1: %d", len(orchHdl.destroyCalls))
	}
}

func TestHandler_DeleteDestroyErrStillRemoves(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateRunning, time.Now().Add(time.Hour))
	orchHdl := &orchHdlMock{destroyErr: lib_model.NewFailedError(errors.New("daemon unavailable"))}
	h := newTestHandler(stgHdl, orchHdl)
	if err := h.Delete(context.Background(), "test-id"); err != nil {
		t.Fatal(err)
	}
	if len(stgHdl.instances) != 0 {
		t.Error("instance not removed")
	}
}

func TestHandler_Health(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateStarting, time.Now().Add(time.Hour))
	orchHdl := &orchHdlMock{healthState: lib_model.StateRunning}
	h := newTestHandler(stgHdl, orchHdl)
	state, err := h.Health(context.Background(), "test-id")
	if err != nil {
		t.Fatal(err)
	}
	if state != lib_model.StateRunning {
		t.Errorf("state != 'running': %s", state)
	}
	if stgHdl.instances["test-id"].State != lib_model.StateRunning {
		t.Error("verdict not persisted")
	}
}

func TestHandler_HealthNotObservable(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateProvisioning, time.Now().Add(time.Hour))
	orchHdl := &orchHdlMock{healthState: lib_model.StateStopped}
	h := newTestHandler(stgHdl, orchHdl)
	state, err := h.Health(context.Background(), "test-id")
	if err != nil {
		t.Fatal(err)
	}
	if state != lib_model.StateProvisioning {
		t.Errorf("state != 'provisioning': %s", state)
	}
	if stgHdl.instances["test-id"].State != lib_model.StateProvisioning {
		t.Error("stored state overwritten")
	}
}

func TestHandler_WaitForReady(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateStarting, time.Now().Add(time.Hour))
	h := newTestHandler(stgHdl, &orchHdlMock{healthState: lib_model.StateRunning})
	if err := h.WaitForReady(context.Background(), "test-id", time.Second); err != nil {
		t.Error("err != nil")
	}
}

func TestHandler_WaitForReadyFatal(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateStarting, time.Now().Add(time.Hour))
	h := newTestHandler(stgHdl, &orchHdlMock{healthState: lib_model.StateError, healthMsg: "container 'node' is dead"})
	err := h.WaitForReady(context.Background(), "test-id", time.Second)
	var fe *lib_model.FailedError
	if !errors.As(err, &fe) {
		t.Errorf("unexpected error type: %T", err)
	}
}

func TestHandler_WaitForReadyTimeout(t *testing.T) {
	stgHdl := newStgHdlMock()
	seedInstance(stgHdl, lib_model.StateStarting, time.Now().Add(time.Hour))
	h := newTestHandler(stgHdl, &orchHdlMock{healthState: lib_model.StateStarting})
	err := h.WaitForReady(context.Background(), "test-id", time.Millisecond*50)
	var toe *lib_model.TimeoutError
	if !errors.As(err, &toe) {
		t.Errorf("unexpected error type: %T", err)
	}
}

func TestHandler_ExtendTTL(t *testing.T) {
	stgHdl := newStgHdlMock()
	h := newTestHandler(stgHdl, &orchHdlMock{})
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()
	seedInstance(stgHdl, lib_model.StateRunning, fixed.Add(time.Hour*100))
	inst, err := h.ExtendTTL(context.Background(), "test-id", 2)
	if err != nil {
		t.Fatal(err)
	}
	if !inst.Expires.Equal(fixed.Add(time.Hour * 102)) {
		t.Errorf("expires != expires+2h: %s", inst.Expires)
	}
	inst, err = h.ExtendTTL(context.Background(), "test-id", 5000)
	if err != nil {
		t.Fatal(err)
	}
	if !inst.Expires.Equal(fixed.Add(time.Hour * 168)) {
		t.Errorf("expires not capped at now+168h: %s", inst.Expires)
	}
	_, err = h.ExtendTTL(context.Background(), "test-id", 0)
	var iie *lib_model.InvalidInputError
	if !errors.As(err, &iie) {
		t.Errorf("unexpected error type: %T", err)
	}
}

func TestHandler_ReconcileExpired(t *testing.T) {
	stgHdl := newStgHdlMock()
	orchHdl := &orchHdlMock{}
	h := newTestHandler(stgHdl, orchHdl)
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()
	expired := lib_model.Instance{
		InstanceBase: lib_model.InstanceBase{ID: "expired-id", State: lib_model.StateRunning, Expires: fixed.Add(-time.Minute)},
		Ports:        []int{8000},
	}
	live := lib_model.Instance{
		InstanceBase: lib_model.InstanceBase{ID: "live-id", State: lib_model.StateRunning, Expires: fixed.Add(time.Hour)},
		Ports:        []int{8001},
	}
	stgHdl.instances[expired.ID] = expired
	stgHdl.instances[live.ID] = live
	h.ReconcileExpired(context.Background())
	if _, ok := stgHdl.instances["expired-id"]; ok {
		t.Error("expired instance not removed")
	}
	if _, ok := stgHdl.instances["live-id"]; !ok {
		t.Error("live instance removed")
	}
	if len(orchHdl.destroyCalls) != 1 || orchHdl.destroyCalls[0] != "expired-id" {
		t.Errorf("unexpected destroy calls: %v", orchHdl.destroyCalls)
	}
}

func TestHandler_ReconcileExpiredSkipsBusy(t *testing.T) {
	stgHdl := newStgHdlMock()
	orchHdl := &orchHdlMock{}
	h := newTestHandler(stgHdl, orchHdl)
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()
	expired := lib_model.Instance{
		InstanceBase: lib_model.InstanceBase{ID: "expired-id", State: lib_model.StateRunning, Expires: fixed.Add(-time.Minute)},
	}
	stgHdl.instances[expired.ID] = expired
	m := h.instMu.Get("expired-id")
	if err := m.TryLock("other operation"); err != nil {
		t.Fatal(err)
	}
	h.ReconcileExpired(context.Background())
	m.Unlock()
	if _, ok := stgHdl.instances["expired-id"]; !ok {
		t.Error("busy instance removed")
	}
	h.ReconcileExpired(context.Background())
	if _, ok := stgHdl.instances["expired-id"]; ok {
		t.Error("expired instance not removed on second pass")
	}
}

func TestHandler_LifecycleWithExpiry(t *testing.T) {
	stgHdl := newStgHdlMock()
	orchHdl := &orchHdlMock{healthState: lib_model.StateRunning}
	h := newTestHandler(stgHdl, orchHdl)
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()
	req := validRequest()
	req.TTLHours = 1
	inst, err := h.Create(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if err = h.Start(context.Background(), inst.ID); err != nil {
		t.Fatal(err)
	}
	state, err := h.Health(context.Background(), inst.ID)
	if err != nil {
		t.Fatal(err)
	}
	if state != lib_model.StateRunning {
		t.Errorf("state != 'running': %s", state)
	}
	timeNow = func() time.Time { return fixed.Add(time.Hour * 2) }
	h.ReconcileExpired(context.Background())
	instances, err := h.List(context.Background(), lib_model.InstanceFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(instances) != 0 {
		t.Errorf("instances != 0: %d", len(instances))
	}
	if len(orchHdl.destroyCalls) != 1 || orchHdl.destroyCalls[0] != inst.ID {
		t.Errorf("unexpected destroy calls: %v", orchHdl.destroyCalls)
	}
}

func TestHandler_Init(t *testing.T) {
	stgHdl := newStgHdlMock()
	stgHdl.ports = []int{8000, 8089}
	seeder := &seederMock{}
	h := New(stgHdl, &orchHdlMock{}, credHdlMock{}, seeder, time.Second, 168, time.Millisecond*10)
	if err := h.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(seeder.ports) != 2 {
		t.Errorf("seeded ports != 2: %v", seeder.ports)
	}
}
