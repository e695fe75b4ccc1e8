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

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/SENERGY-Platform/lab-instance-manager/util"
)

var startableStates = map[lib_model.InstanceState]struct{}{
	lib_model.StatePending:      {},
	lib_model.StateProvisioning: {},
	lib_model.StateStopped:      {},
}

func (h *Handler) Start(ctx context.Context, iID string) error {
	m := h.instMu.Get(iID)
	if err := m.TryLock(fmt.Sprintf("starting instance '%s'", iID)); err != nil {
		return lib_model.NewResourceBusyError(err)
	}
	defer m.Unlock()
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	inst, err := h.stgHdl.ReadInst(ctxWt, iID)
	if err != nil {
		return err
	}
	if _, ok := startableStates[inst.State]; !ok {
		return lib_model.NewInvalidStateError(fmt.Errorf("instance '%s' cannot be started from state '%s'", iID, inst.State))
	}
	containers, err := h.orchHdl.Start(ctx, inst)
	if err != nil {
		inst.State = lib_model.StateError
		inst.Message = err.Error()
		if pErr := h.persist(ctx, inst); pErr != nil {
			util.Logger.Errorf("persisting error state of instance '%s': %s", iID, pErr)
		}
		return lib_model.NewFailedError(err)
	}
	now := timeNow().UTC()
	inst.State = lib_model.StateStarting
	inst.Started = &now
	inst.Containers = containers
	inst.Message = ""
	if err = h.persist(ctx, inst); err != nil {
		return err
	}
	util.Logger.Infof("started instance '%s'", iID)
	return nil
}

func (h *Handler) Stop(ctx context.Context, iID string) error {
	m := h.instMu.Get(iID)
	if err := m.TryLock(fmt.Sprintf("stopping instance '%s'", iID)); err != nil {
		return lib_model.NewResourceBusyError(err)
	}
	defer m.Unlock()
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	inst, err := h.stgHdl.ReadInst(ctxWt, iID)
	if err != nil {
		return err
	}
	if inst.State == lib_model.StateStopped {
		return nil
	}
	if err = h.orchHdl.Stop(ctx, inst); err != nil {
		return err
	}
	inst.State = lib_model.StateStopped
	inst.Started = nil
	inst.Message = ""
	if err = h.persist(ctx, inst); err != nil {
		return err
	}
	util.Logger.Infof("stopped instance '%s'", iID)
	return nil
}

// Delete tears the instance down and removes it from storage. Teardown
// is best effort, a partially destroyed stack does not keep the
// registry entry alive.
func (h *Handler) Delete(ctx context.Context, iID string) error {
	m := h.instMu.Get(iID)
	if err := m.TryLock(fmt.Sprintf("deleting instance '%s'", iID)); err != nil {
		return lib_model.NewResourceBusyError(err)
	}
	defer m.Unlock()
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	inst, err := h.stgHdl.ReadInst(ctxWt, iID)
	if err != nil {
		return err
	}
	if err = h.orchHdl.Destroy(ctx, inst); err != nil {
		util.Logger.Errorf("destroying instance '%s': %s", iID, err)
	}
	ctxWt2, cf2 := context.WithTimeout(ctx, h.dbTimeout)
	defer cf2()
	if err = h.stgHdl.DeleteInst(ctxWt2, iID); err != nil {
		return err
	}
	util.Logger.Infof("deleted instance '%s'", iID)
	return nil
}
