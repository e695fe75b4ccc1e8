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
	"bytes"
	"fmt"
	"os"
	"path"
	"sync"
	"text/template"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"gopkg.in/yaml.v3"
)

const (
	descriptorTplSuffix = ".yaml.tmpl"
	productConfTplName  = "server.conf.tmpl"
)

// Handler renders topology descriptors and product configurations from
// the template files of the working directory. Templates are read per
// render pass, UpdateTemplates swaps them without a restart.
type Handler struct {
	wrkSpacePath string
	mu           sync.RWMutex
}

func New(workdirPath string) (*Handler, error) {
	if !path.IsAbs(workdirPath) {
		return nil, fmt.Errorf("workspace path must be absolute")
	}
	if err := os.MkdirAll(workdirPath, 0770); err != nil {
		return nil, err
	}
	return &Handler{wrkSpacePath: workdirPath}, nil
}

func (h *Handler) WorkspacePath() string {
	return h.wrkSpacePath
}

// Lock blocks render passes while the template workspace is replaced.
func (h *Handler) Lock() {
	h.mu.Lock()
}

func (h *Handler) Unlock() {
	h.mu.Unlock()
}

// PortDemands returns the host port requirements of the configured
// topology, ordered deterministically by role.
func (h *Handler) PortDemands(cfg lib_model.InstanceConfig) ([]lib_model.PortDemand, error) {
	strategy, ok := topologyStrategies[cfg.Topology]
	if !ok {
		return nil, lib_model.NewInvalidInputError(fmt.Errorf("unknown topology '%s'", cfg.Topology))
	}
	if err := strategy.validate(cfg); err != nil {
		return nil, lib_model.NewInvalidInputError(err)
	}
	return strategy.demands(cfg), nil
}

// Render produces the compose descriptor and product configuration for
// the given context. The descriptor is checked to parse as YAML before
// it is handed out.
func (h *Handler) Render(tCtx lib_model.TemplateContext) (lib_model.RenderedTopology, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	strategy, ok := topologyStrategies[tCtx.Config.Topology]
	if !ok {
		return lib_model.RenderedTopology{}, lib_model.NewInvalidInputError(fmt.Errorf("unknown topology '%s'", tCtx.Config.Topology))
	}
	if err := strategy.validate(tCtx.Config); err != nil {
		return lib_model.RenderedTopology{}, lib_model.NewInvalidInputError(err)
	}
	descriptor, err := h.execute(string(tCtx.Config.Topology)+descriptorTplSuffix, tCtx)
	if err != nil {
		return lib_model.RenderedTopology{}, err
	}
	var probe map[string]any
	if err = yaml.Unmarshal(descriptor, &probe); err != nil {
		return lib_model.RenderedTopology{}, lib_model.NewInternalError(fmt.Errorf("rendering '%s' produced invalid yaml: %s", tCtx.Config.Topology, err))
	}
	productConf, err := h.execute(productConfTplName, tCtx)
	if err != nil {
		return lib_model.RenderedTopology{}, err
	}
	return lib_model.RenderedTopology{
		Descriptor:    descriptor,
		ProductConfig: productConf,
	}, nil
}

func (h *Handler) execute(name string, tCtx lib_model.TemplateContext) ([]byte, error) {
	raw, err := os.ReadFile(path.Join(h.wrkSpacePath, name))
	if err != nil {
		return nil, lib_model.NewInternalError(fmt.Errorf("reading template '%s': %s", name, err))
	}
	tpl, err := template.New(name).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, lib_model.NewInternalError(fmt.Errorf("parsing template '%s': %s", name, err))
	}
	var buf bytes.Buffer
	if err = tpl.Execute(&buf, tCtx); err != nil {
		return nil, lib_model.NewInternalError(fmt.Errorf("executing template '%s': %s", name, err))
	}
	return buf.Bytes(), nil
}
