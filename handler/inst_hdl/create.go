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
	"fmt"
	"regexp"
	"time"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/SENERGY-Platform/lab-instance-manager/util"
	"github.com/google/uuid"
)

var nameRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

const (
	defaultVersion     = "latest"
	defaultMemoryMB    = 2048
	defaultCPUCores    = 1.0
	defaultRoleCount   = 1
	defaultFactorCount = 1
)

// Create validates the request, provisions the compose project and
// persists the new instance. The instance is not started.
func (h *Handler) Create(ctx context.Context, req lib_model.InstanceCreateRequest) (lib_model.Instance, error) {
	if err := h.validateRequest(&req); err != nil {
		return lib_model.Instance{}, err
	}
	iID := uuid.NewString()
	credentials, err := h.credHdl.Generate(ctx, iID, req.Config.IngestEnabled)
	if err != nil {
		return lib_model.Instance{}, err
	}
	now := timeNow().UTC()
	inst := lib_model.Instance{
		InstanceBase: lib_model.InstanceBase{
			ID:      iID,
			Name:    req.Name,
			State:   lib_model.StatePending,
			Config:  req.Config,
			Labels:  req.Labels,
			Created: now,
			Expires: now.Add(time.Duration(req.TTLHours) * time.Hour),
		},
		Credentials: credentials,
	}
	inst, err = h.orchHdl.Provision(inst)
	if err != nil {
		return lib_model.Instance{}, err
	}
	inst.State = lib_model.StateProvisioning
	if err = h.create(ctx, inst); err != nil {
		if dErr := h.orchHdl.Destroy(ctx, inst); dErr != nil {
			util.Logger.Errorf("rolling back instance '%s': %s", inst.ID, dErr)
		}
		return lib_model.Instance{}, err
	}
	util.Logger.Infof("created instance '%s' (%s, expires %s)", inst.ID, inst.Config.Topology, inst.Expires.Format(time.RFC3339))
	return inst, nil
}

func (h *Handler) create(ctx context.Context, inst lib_model.Instance) error {
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	tx, err := h.stgHdl.BeginTransaction(ctxWt)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	ctxWt2, cf2 := context.WithTimeout(ctx, h.dbTimeout)
	defer cf2()
	if err = h.stgHdl.CreateInst(ctxWt2, tx, inst); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return lib_model.NewInternalError(err)
	}
	return nil
}

func (h *Handler) validateRequest(req *lib_model.InstanceCreateRequest) error {
	if !nameRegex.MatchString(req.Name) {
		return lib_model.NewInvalidInputError(fmt.Errorf("invalid name '%s'", req.Name))
	}
	if req.TTLHours < lib_model.MinTTLHours || req.TTLHours > h.maxTTLHours {
		return lib_model.NewInvalidInputError(fmt.Errorf("ttl must be in [%d %d] hours: %d", lib_model.MinTTLHours, h.maxTTLHours, req.TTLHours))
	}
	if _, ok := lib_model.TopologyMap[req.Config.Topology]; !ok {
		return lib_model.NewInvalidInputError(fmt.Errorf("unknown topology '%s'", req.Config.Topology))
	}
	applyDefaults(&req.Config)
	if req.Config.MemoryMB < lib_model.MinMemoryMB || req.Config.MemoryMB > lib_model.MaxMemoryMB {
		return lib_model.NewInvalidInputError(fmt.Errorf("memory must be in [%d %d] mb: %d", lib_model.MinMemoryMB, lib_model.MaxMemoryMB, req.Config.MemoryMB))
	}
	if req.Config.CPUCores < lib_model.MinCPUCores || req.Config.CPUCores > lib_model.MaxCPUCores {
		return lib_model.NewInvalidInputError(fmt.Errorf("cpu cores must be in [%.1f %.1f]: %.2f", lib_model.MinCPUCores, lib_model.MaxCPUCores, req.Config.CPUCores))
	}
	return nil
}

func applyDefaults(cfg *lib_model.InstanceConfig) {
	if cfg.Version == "" {
		cfg.Version = defaultVersion
	}
	if cfg.MemoryMB == 0 {
		cfg.MemoryMB = defaultMemoryMB
	}
	if cfg.CPUCores == 0 {
		cfg.CPUCores = defaultCPUCores
	}
	if cfg.Indexers == 0 {
		cfg.Indexers = defaultRoleCount
	}
	if cfg.SearchHeads == 0 {
		cfg.SearchHeads = defaultRoleCount
	}
	if cfg.ReplicationFactor == 0 {
		cfg.ReplicationFactor = defaultFactorCount
	}
	if cfg.SearchFactor == 0 {
		cfg.SearchFactor = defaultFactorCount
	}
}
