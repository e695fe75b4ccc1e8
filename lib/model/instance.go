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

import "time"

type InstanceState = string

type Topology = string

type InstanceBase struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	State   InstanceState     `json:"state"`
	Config  InstanceConfig    `json:"config"`
	Labels  map[string]string `json:"labels"`
	Created time.Time         `json:"created"`
	Started *time.Time        `json:"started"`
	Expires time.Time         `json:"expires"`
}

type Instance struct {
	InstanceBase
	Credentials Credentials       `json:"credentials"`
	Endpoints   Endpoints         `json:"endpoints"`
	Containers  map[string]string `json:"containers"` // {ref:ctrID}
	Ports       []int             `json:"ports"`
	NetworkID   string            `json:"network_id"`
	VolumeIDs   []string          `json:"volume_ids"`
	Message     string            `json:"message"` // only set if State == StateError
}

type InstanceConfig struct {
	Topology          Topology          `json:"topology"`
	Version           string            `json:"version"`
	Indexers          int               `json:"indexers"`
	SearchHeads       int               `json:"search_heads"`
	ReplicationFactor int               `json:"replication_factor"`
	SearchFactor      int               `json:"search_factor"`
	MemoryMB          int               `json:"memory_mb"`
	CPUCores          float64           `json:"cpu_cores"`
	IngestEnabled     bool              `json:"ingest_enabled"`
	RealtimeSearch    bool              `json:"realtime_search"`
	MgmtAPIEnabled    bool              `json:"mgmt_api_enabled"`
	Overrides         map[string]string `json:"overrides"`
}

type Credentials struct {
	AdminUser     string `json:"admin_user"`
	AdminPassword string `json:"admin_password"`
	AccessToken   string `json:"access_token"`
	IngestToken   string `json:"ingest_token,omitempty"`
}

type Endpoints struct {
	Web     string `json:"web"`
	Mgmt    string `json:"mgmt"`
	Ingest  string `json:"ingest"`
	Forward string `json:"forward"`
}

type InstanceCreateRequest struct {
	Name     string            `json:"name"`
	TTLHours int64             `json:"ttl_hours"`
	Labels   map[string]string `json:"labels"`
	Config   InstanceConfig    `json:"config"`
}

type InstanceTTLRequest struct {
	Hours int64 `json:"hours"`
}

type InstanceFilter struct {
	State  InstanceState
	Labels map[string]string
}
