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
	"time"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/SENERGY-Platform/lab-instance-manager/util"
)

// States in which the live container verdict is authoritative. Outside
// of these the stored state reflects an ongoing operation and is not
// overwritten by polling.
var observableStates = map[lib_model.InstanceState]struct{}{
	lib_model.StateStarting: {},
	lib_model.StateRunning:  {},
	lib_model.StateStopped:  {},
	lib_model.StateError:    {},
}

// Health probes the containers of the instance and returns the derived
// state. A changed verdict is written back to storage.
func (h *Handler) Health(ctx context.Context, iID string) (lib_model.InstanceState, error) {
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	inst, err := h.stgHdl.ReadInst(ctxWt, iID)
	if err != nil {
		return "", err
	}
	if _, ok := observableStates[inst.State]; !ok {
		return inst.State, nil
	}
	verdict, msg, err := h.orchHdl.Health(ctx, inst)
	if err != nil {
		return "", err
	}
	if verdict != inst.State || msg != inst.Message {
		inst.State = verdict
		inst.Message = msg
		if err = h.persist(ctx, inst); err != nil {
			util.Logger.Errorf("persisting health verdict of instance '%s': %s", iID, err)
		}
	}
	return verdict, nil
}

// WaitForReady polls the instance health until it reports running, the
// instance fails or the timeout elapses.
func (h *Handler) WaitForReady(ctx context.Context, iID string, timeout time.Duration) error {
	ctxWt, cf := context.WithTimeout(ctx, timeout)
	defer cf()
	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()
	for {
		state, err := h.Health(ctx, iID)
		if err != nil {
			return err
		}
		switch state {
		case lib_model.StateRunning:
			return nil
		case lib_model.StateError:
			return lib_model.NewFailedError(fmt.Errorf("instance '%s' entered error state", iID))
		case lib_model.StateStopped:
			return lib_model.NewFailedError(fmt.Errorf("instance '%s' stopped while waiting", iID))
		}
		select {
		case <-ticker.C:
		case <-ctxWt.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lib_model.NewTimeoutError(fmt.Errorf("instance '%s' not running after %s", iID, timeout))
		}
	}
}
