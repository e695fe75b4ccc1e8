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
	"context"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
)

type tplHandler interface {
	PortDemands(cfg lib_model.InstanceConfig) ([]lib_model.PortDemand, error)
	Render(tCtx lib_model.TemplateContext) (lib_model.RenderedTopology, error)
}

type allocHandler interface {
	Allocate(base int, count int) ([]int, error)
	Release(ports []int)
}

type composeClient interface {
	Up(ctx context.Context, project, descriptorPath string) error
	Down(ctx context.Context, project, descriptorPath string, removeVolumes bool) error
	PS(ctx context.Context, project string) ([]string, error)
	Inspect(ctx context.Context, ctrID string) (lib_model.ContainerState, error)
	Logs(ctx context.Context, ctrID string, tail int) (string, error)
}
