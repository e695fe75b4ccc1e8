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
	"time"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/SENERGY-Platform/lab-instance-manager/util"
	"github.com/SENERGY-Platform/lab-instance-manager/util/context_hdl"
)

var timeNow = time.Now

// Handler implements the instance lifecycle. Mutating operations on an
// instance are serialized through a per instance mutex, concurrent
// mutations are rejected instead of queued.
type Handler struct {
	stgHdl       storageHandler
	orchHdl      orchestrationHandler
	credHdl      credentialHandler
	seeder       portSeeder
	dbTimeout    time.Duration
	maxTTLHours  int64
	pollInterval time.Duration
	instMu       *util.KeyedMutex
}

func New(stgHdl storageHandler, orchHdl orchestrationHandler, credHdl credentialHandler, seeder portSeeder, dbTimeout time.Duration, maxTTLHours int64, pollInterval time.Duration) *Handler {
	return &Handler{
		stgHdl:       stgHdl,
		orchHdl:      orchHdl,
		credHdl:      credHdl,
		seeder:       seeder,
		dbTimeout:    dbTimeout,
		maxTTLHours:  maxTTLHours,
		pollInterval: pollInterval,
		instMu:       util.NewKeyedMutex(),
	}
}

// Init restores the port reservations of persisted instances.
func (h *Handler) Init(ctx context.Context) error {
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	ports, err := h.stgHdl.ListPorts(ctxWt)
	if err != nil {
		return err
	}
	h.seeder.Seed(ports)
	if len(ports) > 0 {
		util.Logger.Infof("restored %d port reservations", len(ports))
	}
	return nil
}

func (h *Handler) List(ctx context.Context, filter lib_model.InstanceFilter) (map[string]lib_model.Instance, error) {
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	return h.stgHdl.ListInst(ctxWt, filter)
}

func (h *Handler) Get(ctx context.Context, iID string) (lib_model.Instance, error) {
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	return h.stgHdl.ReadInst(ctxWt, iID)
}

func (h *Handler) Logs(ctx context.Context, iID, component string, tail int) (string, error) {
	ctxWt, cf := context.WithTimeout(ctx, h.dbTimeout)
	defer cf()
	inst, err := h.stgHdl.ReadInst(ctxWt, iID)
	if err != nil {
		return "", err
	}
	return h.orchHdl.Logs(ctx, inst, component, tail)
}

func (h *Handler) persist(ctx context.Context, inst lib_model.Instance) error {
	ch := context_hdl.New()
	defer ch.CancelAll()
	tx, err := h.stgHdl.BeginTransaction(ch.Add(context.WithTimeout(ctx, h.dbTimeout)))
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err = h.stgHdl.UpdateInst(ch.Add(context.WithTimeout(ctx, h.dbTimeout)), tx, inst); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return lib_model.NewInternalError(err)
	}
	return nil
}
