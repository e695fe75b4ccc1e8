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

package model

// PortDemand describes how many host ports a topology role requires and
// from which base the allocator should start probing.
type PortDemand struct {
	Role  string
	Base  int
	Count int
}

// TemplateContext is the input of a topology render pass. Ports maps a
// role to the host ports allocated for it, in allocation order.
type TemplateContext struct {
	ID          string
	Name        string
	Image       string
	Ports       map[string][]int
	Credentials Credentials
	Config      InstanceConfig
}

// RenderedTopology holds the materializable documents of a render pass.
type RenderedTopology struct {
	Descriptor    []byte
	ProductConfig []byte
}

type ContainerState struct {
	Service string
	Status  string
	Health  string
}

const (
	CtrStatusRunning    = "running"
	CtrStatusCreated    = "created"
	CtrStatusRestarting = "restarting"
	CtrStatusExited     = "exited"
	CtrStatusDead       = "dead"
	CtrStatusPaused     = "paused"
)

const (
	CtrHealthy   = "healthy"
	CtrUnhealthy = "unhealthy"
	CtrStarting  = "starting"
)
