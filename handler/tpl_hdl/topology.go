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
	"fmt"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
)

// Container side ports of the product. Host ports are allocated upward
// from these bases so mappings stay recognizable.
const (
	webPortBase     = 8000
	mgmtPortBase    = 8089
	ingestPortBase  = 8088
	forwardPortBase = 9997
	clusterPortBase = 8200
	deployPortBase  = 8300
)

type topologyStrategy struct {
	validate func(cfg lib_model.InstanceConfig) error
	demands  func(cfg lib_model.InstanceConfig) []lib_model.PortDemand
}

// The strategy set is closed, adding a topology means adding a template
// and an entry here.
var topologyStrategies = map[lib_model.Topology]topologyStrategy{
	lib_model.TopologyStandalone: {
		validate: validateStandalone,
		demands: func(cfg lib_model.InstanceConfig) []lib_model.PortDemand {
			return []lib_model.PortDemand{
				{Role: lib_model.WebRole, Base: webPortBase, Count: 1},
				{Role: lib_model.MgmtRole, Base: mgmtPortBase, Count: 1},
				{Role: lib_model.IngestRole, Base: ingestPortBase, Count: 1},
				{Role: lib_model.ForwardRole, Base: forwardPortBase, Count: 1},
			}
		},
	},
	lib_model.TopologyDistributedMinimal: {
		validate: validateDistributed,
		demands:  distributedDemands,
	},
	lib_model.TopologyDistributedCluster: {
		validate: validateClustered,
		demands: func(cfg lib_model.InstanceConfig) []lib_model.PortDemand {
			return append(distributedDemands(cfg), lib_model.PortDemand{Role: lib_model.ClusterRole, Base: clusterPortBase, Count: 1})
		},
	},
	lib_model.TopologyFull: {
		validate: validateClustered,
		demands: func(cfg lib_model.InstanceConfig) []lib_model.PortDemand {
			return append(distributedDemands(cfg),
				lib_model.PortDemand{Role: lib_model.ClusterRole, Base: clusterPortBase, Count: 1},
				lib_model.PortDemand{Role: lib_model.DeployRole, Base: deployPortBase, Count: 1})
		},
	},
}

func distributedDemands(cfg lib_model.InstanceConfig) []lib_model.PortDemand {
	return []lib_model.PortDemand{
		{Role: lib_model.WebRole, Base: webPortBase, Count: cfg.SearchHeads},
		{Role: lib_model.MgmtRole, Base: mgmtPortBase, Count: cfg.SearchHeads},
		{Role: lib_model.IngestRole, Base: ingestPortBase, Count: cfg.Indexers},
		{Role: lib_model.ForwardRole, Base: forwardPortBase, Count: cfg.Indexers},
	}
}

func validateStandalone(cfg lib_model.InstanceConfig) error {
	if cfg.Indexers > 1 || cfg.SearchHeads > 1 {
		return fmt.Errorf("topology '%s' does not scale roles", cfg.Topology)
	}
	return nil
}

func validateDistributed(cfg lib_model.InstanceConfig) error {
	if cfg.Indexers < lib_model.MinRoles || cfg.Indexers > lib_model.MaxRoles {
		return fmt.Errorf("indexers must be in [%d %d]: %d", lib_model.MinRoles, lib_model.MaxRoles, cfg.Indexers)
	}
	if cfg.SearchHeads < lib_model.MinRoles || cfg.SearchHeads > lib_model.MaxRoles {
		return fmt.Errorf("search heads must be in [%d %d]: %d", lib_model.MinRoles, lib_model.MaxRoles, cfg.SearchHeads)
	}
	return nil
}

func validateClustered(cfg lib_model.InstanceConfig) error {
	if err := validateDistributed(cfg); err != nil {
		return err
	}
	if cfg.ReplicationFactor < lib_model.MinFactor || cfg.ReplicationFactor > lib_model.MaxFactor {
		return fmt.Errorf("replication factor must be in [%d %d]: %d", lib_model.MinFactor, lib_model.MaxFactor, cfg.ReplicationFactor)
	}
	if cfg.SearchFactor < lib_model.MinFactor || cfg.SearchFactor > cfg.ReplicationFactor {
		return fmt.Errorf("search factor must be in [%d %d]: %d", lib_model.MinFactor, cfg.ReplicationFactor, cfg.SearchFactor)
	}
	if cfg.ReplicationFactor > cfg.Indexers {
		return fmt.Errorf("replication factor exceeds indexer count: %d > %d", cfg.ReplicationFactor, cfg.Indexers)
	}
	return nil
}
