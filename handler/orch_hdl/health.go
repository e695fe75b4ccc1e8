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
	"fmt"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
)

// Health derives an instance state verdict from the live container
// states of the project. The message names the containers that keep
// the instance from running.
func (h *Handler) Health(ctx context.Context, inst lib_model.Instance) (lib_model.InstanceState, string, error) {
	ctxWt, cf := context.WithTimeout(ctx, h.cmdTimeout)
	defer cf()
	ids, err := h.client.PS(ctxWt, h.projectName(inst.ID))
	if err != nil {
		return lib_model.StateError, fmt.Sprintf("listing containers: %s", err), nil
	}
	if len(ids) == 0 {
		return lib_model.StateStopped, "", nil
	}
	running := 0
	settled := true
	var degraded []string
	for _, id := range ids {
		state, err := h.client.Inspect(ctxWt, id)
		if err != nil {
			return lib_model.StateError, fmt.Sprintf("inspecting container '%s': %s", id, err), nil
		}
		switch state.Status {
		case lib_model.CtrStatusRunning:
			running++
			switch state.Health {
			case "", lib_model.CtrHealthy:
			case lib_model.CtrStarting:
				settled = false
			default:
				settled = false
				degraded = append(degraded, fmt.Sprintf("%s %s", state.Service, state.Health))
			}
		case lib_model.CtrStatusCreated, lib_model.CtrStatusRestarting:
			settled = false
		case lib_model.CtrStatusDead:
			return lib_model.StateError, fmt.Sprintf("container '%s' is dead", state.Service), nil
		default:
			settled = false
			degraded = append(degraded, fmt.Sprintf("%s %s", state.Service, state.Status))
		}
	}
	if running == 0 {
		return lib_model.StateStopped, "", nil
	}
	if running == len(ids) && settled {
		return lib_model.StateRunning, "", nil
	}
	msg := ""
	if len(degraded) > 0 {
		msg = fmt.Sprintf("degraded: %v", degraded)
	}
	return lib_model.StateStarting, msg, nil
}
