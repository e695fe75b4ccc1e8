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

// ExtendTTL adds the given hours to the expiry, capped at now plus
// the configured maximum.
func (h *Handler) ExtendTTL(ctx context.Context, iID string, hours int64) (lib_model.Instance, error) {
	if hours < lib_model.MinTTLHours {
		return lib_model.Instance{}, lib_model.NewInvalidInputError(fmt.Errorf("ttl must be at least %d hours: %d", lib_model.MinTTLHours, hours))
	}
	m := h.instMu.Get(iID)
	if err := m.TryLock(fmt.Sprintf("extending ttl of instance '%s'", iID)); err != nil {
		return lib_model.Instance{}, lib_model.NewResourceBusyError(err)
	}
	defer m.Unlock()
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	inst, err := h.stgHdl.ReadInst(ctxWt, iID)
	if err != nil {
		return lib_model.Instance{}, err
	}
	inst.Expires = inst.Expires.Add(time.Duration(hours) * time.Hour)
	if limit := timeNow().UTC().Add(time.Duration(h.maxTTLHours) * time.Hour); inst.Expires.After(limit) {
		inst.Expires = limit
	}
	if err = h.persist(ctx, inst); err != nil {
		return lib_model.Instance{}, err
	}
	util.Logger.Infof("extended ttl of instance '%s' to %s", iID, inst.Expires.Format(time.RFC3339))
	return inst, nil
}

// ReconcileExpired tears down and removes all instances past their
// expiry. Instances with an operation in flight are skipped and picked
// up by the next pass.
func (h *Handler) ReconcileExpired(ctx context.Context) {
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	instances, err := h.stgHdl.ListInst(ctxWt, lib_model.InstanceFilter{})
	if err != nil {
		util.Logger.Errorf("listing instances for expiry reconciliation: %s", err)
		return
	}
	now := timeNow().UTC()
	for _, inst := range instances {
		if inst.Expires.After(now) {
			continue
		}
		m := h.instMu.Get(inst.ID)
		if err = m.TryLock(fmt.Sprintf("reconciling expired instance '%s'", inst.ID)); err != nil {
			util.Logger.Warningf("skipping expired instance '%s': %s", inst.ID, err)
			continue
		}
		if err = h.orchHdl.Destroy(ctx, inst); err != nil {
			util.Logger.Errorf("destroying expired instance '%s': %s", inst.ID, err)
		}
		ctxWt2, cf2 := context.WithTimeout(ctx, h.dbTimeout)
		if err = h.stgHdl.DeleteInst(ctxWt2, inst.ID); err != nil {
			util.Logger.Errorf("removing expired instance '%s': %s", inst.ID, err)
		} else {
			util.Logger.Infof("removed expired instance '%s' (expired %s)", inst.ID, inst.Expires.Format(time.RFC3339))
		}
		cf2()
		m.Unlock()
	}
}

// PeriodicReconciliation runs expiry sweeps until the context ends.
// Sweeps run sequentially, a slow teardown delays the next pass.
func (h *Handler) PeriodicReconciliation(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			h.ReconcileExpired(ctx)
		case <-ctx.Done():
			return
		}
	}
}
