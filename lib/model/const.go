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

const ServiceName = "lab-instance-manager"

const (
	HeaderRequestID = "X-Request-ID"
	HeaderApiVer    = "X-Api-Version"
	HeaderSrvName   = "X-Service"
)

const (
	InstancesPath     = "instances"
	InstStartPath     = "start"
	InstStopPath      = "stop"
	InstHealthPath    = "health"
	InstLogsPath      = "logs"
	InstTTLPath       = "ttl"
	InstWaitPath      = "wait"
	TemplatesPath     = "templates"
	TplVersionsPath   = "versions"
	JobsPath          = "jobs"
	JobsCancelPath    = "cancel"
	SrvInfoPath       = "info"
)

const (
	StatePending      InstanceState = "pending"
	StateProvisioning InstanceState = "provisioning"
	StateStarting     InstanceState = "starting"
	StateRunning      InstanceState = "running"
	StateStopping     InstanceState = "stopping"
	StateStopped      InstanceState = "stopped"
	StateError        InstanceState = "error"
	StateTerminated   InstanceState = "terminated"
)

var InstanceStateMap = map[InstanceState]struct{}{
	StatePending:      {},
	StateProvisioning: {},
	StateStarting:     {},
	StateRunning:      {},
	StateStopping:     {},
	StateStopped:      {},
	StateError:        {},
	StateTerminated:   {},
}

const (
	TopologyStandalone         Topology = "standalone"
	TopologyDistributedMinimal Topology = "distributed_minimal"
	TopologyDistributedCluster Topology = "distributed_clustered"
	TopologyFull               Topology = "full"
)

var TopologyMap = map[Topology]struct{}{
	TopologyStandalone:         {},
	TopologyDistributedMinimal: {},
	TopologyDistributedCluster: {},
	TopologyFull:               {},
}

const (
	WebRole     = "web"
	MgmtRole    = "mgmt"
	IngestRole  = "ingest"
	ForwardRole = "forward"
	ClusterRole = "cluster"
	DeployRole  = "deploy"
)

const (
	MinTTLHours int64 = 1
	MaxTTLHours int64 = 168
)

const (
	MinMemoryMB = 512
	MaxMemoryMB = 8192
	MinCPUCores = 0.5
	MaxCPUCores = 4.0
	MinRoles    = 1
	MaxRoles    = 10
	MinFactor   = 1
	MaxFactor   = 3
)

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCanceled  JobStatus = "canceled"
	JobCompleted JobStatus = "completed"
	JobError     JobStatus = "error"
	JobOK        JobStatus = "ok"
)

var JobStateMap = map[JobStatus]struct{}{
	JobPending:   {},
	JobRunning:   {},
	JobCanceled:  {},
	JobCompleted: {},
	JobError:     {},
	JobOK:        {},
}
