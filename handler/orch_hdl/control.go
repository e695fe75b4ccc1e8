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
	"errors"
	"os"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/SENERGY-Platform/lab-instance-manager/util"
)

// Start brings the compose project up and returns the containers of
// the project keyed by service name.
func (h *Handler) Start(ctx context.Context, inst lib_model.Instance) (map[string]string, error) {
	ctxWt, cf := context.WithTimeout(ctx, h.cmdTimeout)
	defer cf()
	project := h.projectName(inst.ID)
	if err := h.client.Up(ctxWt, project, h.descriptorPath(inst.ID)); err != nil {
		return nil, err
	}
	return h.containers(ctx, project)
}

func (h *Handler) Stop(ctx context.Context, inst lib_model.Instance) error {
	ctxWt, cf := context.WithTimeout(ctx, h.cmdTimeout)
	defer cf()
	return h.client.Down(ctxWt, h.projectName(inst.ID), h.descriptorPath(inst.ID), false)
}

// Destroy removes containers, volumes, the project directory and the
// port reservations of the instance. Every step runs even if earlier
// ones fail so a partially provisioned instance can still be removed.
func (h *Handler) Destroy(ctx context.Context, inst lib_model.Instance) error {
	var errs []error
	dPath := h.descriptorPath(inst.ID)
	if _, err := os.Stat(dPath); err == nil {
		ctxWt, cf := context.WithTimeout(ctx, h.cmdTimeout)
		defer cf()
		if err = h.client.Down(ctxWt, h.projectName(inst.ID), dPath, true); err != nil {
			util.Logger.Errorf("destroying instance '%s': %s", inst.ID, err)
			errs = append(errs, err)
		}
	}
	if err := os.RemoveAll(h.instancePath(inst.ID)); err != nil {
		util.Logger.Errorf("destroying instance '%s': %s", inst.ID, err)
		errs = append(errs, err)
	}
	h.allocHdl.Release(inst.Ports)
	if len(errs) > 0 {
		return lib_model.NewFailedError(errors.Join(errs...))
	}
	return nil
}

func (h *Handler) containers(ctx context.Context, project string) (map[string]string, error) {
	ctxWt, cf := context.WithTimeout(ctx, h.cmdTimeout)
	defer cf()
	ids, err := h.client.PS(ctxWt, project)
	if err != nil {
		return nil, err
	}
	containers := make(map[string]string)
	for _, id := range ids {
		state, err := h.client.Inspect(ctxWt, id)
		if err != nil {
			return nil, err
		}
		containers[state.Service] = id
	}
	return containers, nil
}
