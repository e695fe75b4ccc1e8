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

package orch_hdl

import (
	"fmt"
	"os"
	"path"
	"sort"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"gopkg.in/yaml.v3"
)

// Provision allocates host ports, renders the topology and writes the
// compose project of the instance. On error all acquired resources are
// released again.
func (h *Handler) Provision(inst lib_model.Instance) (lib_model.Instance, error) {
	demands, err := h.tplHdl.PortDemands(inst.Config)
	if err != nil {
		return lib_model.Instance{}, err
	}
	rolePorts := make(map[string][]int)
	var allPorts []int
	for _, demand := range demands {
		ports, err := h.allocHdl.Allocate(demand.Base, demand.Count)
		if err != nil {
			h.allocHdl.Release(allPorts)
			return lib_model.Instance{}, err
		}
		rolePorts[demand.Role] = ports
		allPorts = append(allPorts, ports...)
	}
	rendered, err := h.tplHdl.Render(lib_model.TemplateContext{
		ID:          inst.ID,
		Name:        inst.Name,
		Image:       h.image,
		Ports:       rolePorts,
		Credentials: inst.Credentials,
		Config:      inst.Config,
	})
	if err != nil {
		h.allocHdl.Release(allPorts)
		return lib_model.Instance{}, err
	}
	iPath := h.instancePath(inst.ID)
	if err = h.writeProject(iPath, rendered); err != nil {
		os.RemoveAll(iPath)
		h.allocHdl.Release(allPorts)
		return lib_model.Instance{}, err
	}
	volumes, err := parseVolumes(rendered.Descriptor)
	if err != nil {
		os.RemoveAll(iPath)
		h.allocHdl.Release(allPorts)
		return lib_model.Instance{}, err
	}
	project := h.projectName(inst.ID)
	sort.Ints(allPorts)
	inst.Ports = allPorts
	inst.Endpoints = endpoints(rolePorts)
	inst.NetworkID = project + "_default"
	for _, vol := range volumes {
		inst.VolumeIDs = append(inst.VolumeIDs, project+"_"+vol)
	}
	return inst, nil
}

func (h *Handler) writeProject(iPath string, rendered lib_model.RenderedTopology) error {
	if err := os.MkdirAll(iPath, h.perm); err != nil {
		return lib_model.NewInternalError(err)
	}
	if err := os.WriteFile(path.Join(iPath, descriptorFileName), rendered.Descriptor, 0660); err != nil {
		return lib_model.NewInternalError(err)
	}
	if err := os.WriteFile(path.Join(iPath, productConfFileName), rendered.ProductConfig, 0660); err != nil {
		return lib_model.NewInternalError(err)
	}
	return nil
}

func endpoints(rolePorts map[string][]int) lib_model.Endpoints {
	ep := lib_model.Endpoints{}
	if ports := rolePorts[lib_model.WebRole]; len(ports) > 0 {
		ep.Web = hostAddr(ports[0])
	}
	if ports := rolePorts[lib_model.MgmtRole]; len(ports) > 0 {
		ep.Mgmt = hostAddr(ports[0])
	}
	if ports := rolePorts[lib_model.IngestRole]; len(ports) > 0 {
		ep.Ingest = hostAddr(ports[0])
	}
	if ports := rolePorts[lib_model.ForwardRole]; len(ports) > 0 {
		ep.Forward = hostAddr(ports[0])
	}
	return ep
}

func hostAddr(port int) string {
	return fmt.Sprintf("127.0.0.1:%d", port)
}

func parseVolumes(descriptor []byte) ([]string, error) {
	var doc struct {
		Volumes map[string]any `yaml:"volumes"`
	}
	if err := yaml.Unmarshal(descriptor, &doc); err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	var volumes []string
	for name := range doc.Volumes {
		volumes = append(volumes, name)
	}
	sort.Strings(volumes)
	return volumes, nil
}
