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

package storage_hdl

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
)

const instColumns = "`id`, `name`, `state`, `topology`, `version`, `indexers`, `search_heads`, `repl_factor`, `search_factor`, `memory_mb`, `cpu_cores`, `ingest_enabled`, `realtime_search`, `mgmt_api_enabled`, `admin_user`, `admin_passwd`, `access_token`, `ingest_token`, `web_endpoint`, `mgmt_endpoint`, `ingest_endpoint`, `forward_endpoint`, `network_id`, `message`, `created`, `started`, `expires`"

func (h *Handler) CreateInst(ctx context.Context, itf driver.Tx, inst lib_model.Instance) error {
	tx := itf.(*sql.Tx)
	_, err := tx.ExecContext(ctx, "INSERT INTO `instances` ("+instColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		inst.ID, inst.Name, inst.State, inst.Config.Topology, inst.Config.Version, inst.Config.Indexers, inst.Config.SearchHeads, inst.Config.ReplicationFactor, inst.Config.SearchFactor, inst.Config.MemoryMB, inst.Config.CPUCores, inst.Config.IngestEnabled, inst.Config.RealtimeSearch, inst.Config.MgmtAPIEnabled, inst.Credentials.AdminUser, inst.Credentials.AdminPassword, inst.Credentials.AccessToken, inst.Credentials.IngestToken, inst.Endpoints.Web, inst.Endpoints.Mgmt, inst.Endpoints.Ingest, inst.Endpoints.Forward, inst.NetworkID, inst.Message, inst.Created, inst.Started, inst.Expires)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	if err = h.insertAssets(ctx, tx, inst); err != nil {
		return err
	}
	return nil
}

func (h *Handler) ReadInst(ctx context.Context, id string) (lib_model.Instance, error) {
	row := h.db.QueryRowContext(ctx, "SELECT "+instColumns+" FROM `instances` WHERE `id` = ?", id)
	inst, err := scanInst(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return lib_model.Instance{}, lib_model.NewNotFoundError(errors.New("instance not found"))
		}
		return lib_model.Instance{}, lib_model.NewInternalError(err)
	}
	if err = h.readAssets(ctx, &inst); err != nil {
		return lib_model.Instance{}, err
	}
	return inst, nil
}

func genListInstFilter(filter lib_model.InstanceFilter) (string, []any) {
	var fc []string
	var val []any
	if filter.State != "" {
		fc = append(fc, "`state` = ?")
		val = append(val, filter.State)
	}
	if len(fc) > 0 {
		return " WHERE " + strings.Join(fc, " AND "), val
	}
	return "", nil
}

func (h *Handler) ListInst(ctx context.Context, filter lib_model.InstanceFilter) (map[string]lib_model.Instance, error) {
	q := "SELECT " + instColumns + " FROM `instances`"
	fc, val := genListInstFilter(filter)
	if fc != "" {
		q += fc
	}
	rows, err := h.db.QueryContext(ctx, q+" ORDER BY `created`", val...)
	if err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	defer rows.Close()
	var insts []lib_model.Instance
	for rows.Next() {
		inst, err := scanInst(rows)
		if err != nil {
			return nil, lib_model.NewInternalError(err)
		}
		insts = append(insts, inst)
	}
	if err = rows.Err(); err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	instances := make(map[string]lib_model.Instance)
	for _, inst := range insts {
		if err = h.readAssets(ctx, &inst); err != nil {
			return nil, err
		}
		if !labelsMatch(inst.Labels, filter.Labels) {
			continue
		}
		instances[inst.ID] = inst
	}
	return instances, nil
}

func (h *Handler) UpdateInst(ctx context.Context, itf driver.Tx, inst lib_model.Instance) error {
	tx := itf.(*sql.Tx)
	res, err := tx.ExecContext(ctx, "UPDATE `instances` SET `state` = ?, `access_token` = ?, `web_endpoint` = ?, `mgmt_endpoint` = ?, `ingest_endpoint` = ?, `forward_endpoint` = ?, `network_id` = ?, `message` = ?, `started` = ?, `expires` = ? WHERE `id` = ?",
		inst.State, inst.Credentials.AccessToken, inst.Endpoints.Web, inst.Endpoints.Mgmt, inst.Endpoints.Ingest, inst.Endpoints.Forward, inst.NetworkID, inst.Message, inst.Started, inst.Expires, inst.ID)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	if n < 1 {
		var c int
		if err = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM `instances` WHERE `id` = ?", inst.ID).Scan(&c); err != nil {
			return lib_model.NewInternalError(err)
		}
		if c < 1 {
			return lib_model.NewNotFoundError(errors.New("instance not found"))
		}
	}
	for _, table := range []string{"instance_containers", "instance_ports", "instance_volumes"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM `"+table+"` WHERE `inst_id` = ?", inst.ID); err != nil {
			return lib_model.NewInternalError(err)
		}
	}
	return h.insertRuntimeAssets(ctx, tx, inst)
}

func (h *Handler) DeleteInst(ctx context.Context, id string) error {
	res, err := h.db.ExecContext(ctx, "DELETE FROM `instances` WHERE `id` = ?", id)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	if n < 1 {
		return lib_model.NewNotFoundError(errors.New("instance not found"))
	}
	return nil
}

func (h *Handler) insertAssets(ctx context.Context, tx *sql.Tx, inst lib_model.Instance) error {
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO `instance_labels` (`inst_id`, `name`, `value`) VALUES (?, ?, ?)")
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	defer stmt.Close()
	for name, value := range inst.Labels {
		if _, err = stmt.ExecContext(ctx, inst.ID, name, value); err != nil {
			return lib_model.NewInternalError(err)
		}
	}
	stmt2, err := tx.PrepareContext(ctx, "INSERT INTO `instance_overrides` (`inst_id`, `name`, `value`) VALUES (?, ?, ?)")
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	defer stmt2.Close()
	for name, value := range inst.Config.Overrides {
		if _, err = stmt2.ExecContext(ctx, inst.ID, name, value); err != nil {
			return lib_model.NewInternalError(err)
		}
	}
	return h.insertRuntimeAssets(ctx, tx, inst)
}

func (h *Handler) insertRuntimeAssets(ctx context.Context, tx *sql.Tx, inst lib_model.Instance) error {
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO `instance_containers` (`inst_id`, `srv_ref`, `ctr_id`) VALUES (?, ?, ?)")
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	defer stmt.Close()
	for ref, cID := range inst.Containers {
		if _, err = stmt.ExecContext(ctx, inst.ID, ref, cID); err != nil {
			return lib_model.NewInternalError(err)
		}
	}
	stmt2, err := tx.PrepareContext(ctx, "INSERT INTO `instance_ports` (`inst_id`, `port`) VALUES (?, ?)")
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	defer stmt2.Close()
	for _, p := range inst.Ports {
		if _, err = stmt2.ExecContext(ctx, inst.ID, p); err != nil {
			return lib_model.NewInternalError(err)
		}
	}
	stmt3, err := tx.PrepareContext(ctx, "INSERT INTO `instance_volumes` (`inst_id`, `vol_id`) VALUES (?, ?)")
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	defer stmt3.Close()
	for _, vID := range inst.VolumeIDs {
		if _, err = stmt3.ExecContext(ctx, inst.ID, vID); err != nil {
			return lib_model.NewInternalError(err)
		}
	}
	return nil
}

func (h *Handler) readAssets(ctx context.Context, inst *lib_model.Instance) error {
	labels, err := h.selectKV(ctx, "SELECT `name`, `value` FROM `instance_labels` WHERE `inst_id` = ?", inst.ID)
	if err != nil {
		return err
	}
	inst.Labels = labels
	overrides, err := h.selectKV(ctx, "SELECT `name`, `value` FROM `instance_overrides` WHERE `inst_id` = ?", inst.ID)
	if err != nil {
		return err
	}
	if len(overrides) > 0 {
		inst.Config.Overrides = overrides
	}
	containers, err := h.selectKV(ctx, "SELECT `srv_ref`, `ctr_id` FROM `instance_containers` WHERE `inst_id` = ?", inst.ID)
	if err != nil {
		return err
	}
	if len(containers) > 0 {
		inst.Containers = containers
	}
	rows, err := h.db.QueryContext(ctx, "SELECT `port` FROM `instance_ports` WHERE `inst_id` = ?", inst.ID)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	defer rows.Close()
	for rows.Next() {
		var p int
		if err = rows.Scan(&p); err != nil {
			return lib_model.NewInternalError(err)
		}
		inst.Ports = append(inst.Ports, p)
	}
	if err = rows.Err(); err != nil {
		return lib_model.NewInternalError(err)
	}
	rows2, err := h.db.QueryContext(ctx, "SELECT `vol_id` FROM `instance_volumes` WHERE `inst_id` = ?", inst.ID)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	defer rows2.Close()
	for rows2.Next() {
		var vID string
		if err = rows2.Scan(&vID); err != nil {
			return lib_model.NewInternalError(err)
		}
		inst.VolumeIDs = append(inst.VolumeIDs, vID)
	}
	if err = rows2.Err(); err != nil {
		return lib_model.NewInternalError(err)
	}
	return nil
}

func (h *Handler) selectKV(ctx context.Context, query, id string) (map[string]string, error) {
	rows, err := h.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	defer rows.Close()
	kv := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			return nil, lib_model.NewInternalError(err)
		}
		kv[name] = value
	}
	if err = rows.Err(); err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	return kv, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInst(row rowScanner) (lib_model.Instance, error) {
	var inst lib_model.Instance
	var ct, st, et []uint8
	err := row.Scan(&inst.ID, &inst.Name, &inst.State, &inst.Config.Topology, &inst.Config.Version, &inst.Config.Indexers, &inst.Config.SearchHeads, &inst.Config.ReplicationFactor, &inst.Config.SearchFactor, &inst.Config.MemoryMB, &inst.Config.CPUCores, &inst.Config.IngestEnabled, &inst.Config.RealtimeSearch, &inst.Config.MgmtAPIEnabled, &inst.Credentials.AdminUser, &inst.Credentials.AdminPassword, &inst.Credentials.AccessToken, &inst.Credentials.IngestToken, &inst.Endpoints.Web, &inst.Endpoints.Mgmt, &inst.Endpoints.Ingest, &inst.Endpoints.Forward, &inst.NetworkID, &inst.Message, &ct, &st, &et)
	if err != nil {
		return lib_model.Instance{}, err
	}
	if inst.Created, err = time.Parse(tLayout, string(ct)); err != nil {
		return lib_model.Instance{}, err
	}
	if len(st) > 0 {
		ts, err := time.Parse(tLayout, string(st))
		if err != nil {
			return lib_model.Instance{}, err
		}
		inst.Started = &ts
	}
	if inst.Expires, err = time.Parse(tLayout, string(et)); err != nil {
		return lib_model.Instance{}, err
	}
	return inst, nil
}

func labelsMatch(labels, want map[string]string) bool {
	for name, value := range want {
		if labels[name] != value {
			return false
		}
	}
	return true
}
