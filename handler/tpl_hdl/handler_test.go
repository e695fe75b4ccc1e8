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

package tpl_hdl

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"gopkg.in/yaml.v3"
)

func newTestHandler(t *testing.T) *Handler {
	p, err := filepath.Abs("../../include/templates")
	if err != nil {
		t.Fatal(err)
	}
	h, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func testContext(topology lib_model.Topology) lib_model.TemplateContext {
	return lib_model.TemplateContext{
		ID:    "2f28ac06-9178-4233-b431-dfd5c9f4c741",
		Name:  "soc-drill-1",
		Image: "ghcr.io/senergy-platform/siem-lab-node",
		Ports: map[string][]int{
			lib_model.WebRole:     {8000, 8001},
			lib_model.MgmtRole:    {8089, 8090},
			lib_model.IngestRole:  {8088, 8091, 8092},
			lib_model.ForwardRole: {9997, 9998, 9999},
			lib_model.ClusterRole: {8200},
			lib_model.DeployRole:  {8300},
		},
		Credentials: lib_model.Credentials{
			AdminUser:     "admin",
			AdminPassword: "test-pw",
			AccessToken:   "test-at",
			IngestToken:   "test-it",
		},
		Config: lib_model.InstanceConfig{
			Topology:          topology,
			Version:           "9.2.1",
			Indexers:          3,
			SearchHeads:       2,
			ReplicationFactor: 2,
			SearchFactor:      2,
			MemoryMB:          2048,
			CPUCores:          1.5,
			IngestEnabled:     true,
			RealtimeSearch:    true,
			MgmtAPIEnabled:    true,
			Overrides:         map[string]string{"maxKBps": "1024"},
		},
	}
}

func TestHandler_PortDemands(t *testing.T) {
	h := newTestHandler(t)
	counts := map[lib_model.Topology]int{
		lib_model.TopologyStandalone:         4,
		lib_model.TopologyDistributedMinimal: 10,
		lib_model.TopologyDistributedCluster: 11,
		lib_model.TopologyFull:               12,
	}
	for topology, total := range counts {
		cfg := testContext(topology).Config
		if topology == lib_model.TopologyStandalone {
			cfg.Indexers = 1
			cfg.SearchHeads = 1
		}
		demands, err := h.PortDemands(cfg)
		if err != nil {
			t.Errorf("%s: err != nil: %s", topology, err)
			continue
		}
		n := 0
		for _, d := range demands {
			n += d.Count
		}
		if n != total {
			t.Errorf("%s: total != %d: %d", topology, total, n)
		}
	}
}

func TestHandler_PortDemandsUnknownTopology(t *testing.T) {
	h := newTestHandler(t)
	cfg := testContext("mesh").Config
	_, err := h.PortDemands(cfg)
	var iie *lib_model.InvalidInputError
	if !errors.As(err, &iie) {
		t.Errorf("unexpected error type: %T", err)
	}
}

func TestHandler_PortDemandsInvalidConfig(t *testing.T) {
	h := newTestHandler(t)
	cfg := testContext(lib_model.TopologyDistributedCluster).Config
	cfg.ReplicationFactor = 3
	cfg.Indexers = 2
	_, err := h.PortDemands(cfg)
	var iie *lib_model.InvalidInputError
	if !errors.As(err, &iie) {
		t.Errorf("unexpected error type: %T", err)
	}
	cfg = testContext(lib_model.TopologyStandalone).Config
	cfg.SearchHeads = 2
	_, err = h.PortDemands(cfg)
	if !errors.As(err, &iie) {
		t.Errorf("unexpected error type: %T", err)
	}
}

func TestHandler_Render(t *testing.T) {
	h := newTestHandler(t)
	for topology, services := range map[lib_model.Topology]int{
		lib_model.TopologyStandalone:         1,
		lib_model.TopologyDistributedMinimal: 5,
		lib_model.TopologyDistributedCluster: 6,
		lib_model.TopologyFull:               7,
	} {
		tCtx := testContext(topology)
		if topology == lib_model.TopologyStandalone {
			tCtx.Config.Indexers = 1
			tCtx.Config.SearchHeads = 1
		}
		rendered, err := h.Render(tCtx)
		if err != nil {
			t.Errorf("%s: err != nil: %s", topology, err)
			continue
		}
		var descriptor struct {
			Services map[string]any `yaml:"services"`
		}
		if err = yaml.Unmarshal(rendered.Descriptor, &descriptor); err != nil {
			t.Errorf("%s: invalid yaml: %s", topology, err)
			continue
		}
		if len(descriptor.Services) != services {
			t.Errorf("%s: len(services) != %d: %d", topology, services, len(descriptor.Services))
		}
		conf := string(rendered.ProductConfig)
		if !strings.Contains(conf, "serverName = soc-drill-1") {
			t.Errorf("%s: server name missing in product config", topology)
		}
		if !strings.Contains(conf, "maxKBps = 1024") {
			t.Errorf("%s: override missing in product config", topology)
		}
	}
}

func TestHandler_RenderCredentialsInjected(t *testing.T) {
	h := newTestHandler(t)
	rendered, err := h.Render(testContext(lib_model.TopologyFull))
	if err != nil {
		t.Fatal(err)
	}
	descriptor := string(rendered.Descriptor)
	if !strings.Contains(descriptor, "test-pw") {
		t.Error("admin password missing in descriptor")
	}
	if !strings.Contains(descriptor, "test-it") {
		t.Error("ingest token missing in descriptor")
	}
}
