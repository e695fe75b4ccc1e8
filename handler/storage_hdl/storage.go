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

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
)

const tLayout = "2006-01-02 15:04:05.000000"

type Handler struct {
	db *sql.DB
}

func New(db *sql.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) BeginTransaction(ctx context.Context) (driver.Tx, error) {
	tx, e := h.db.BeginTx(ctx, nil)
	if e != nil {
		return nil, lib_model.NewInternalError(e)
	}
	return tx, nil
}

// ListPorts returns the host ports of all stored instances, used to
// seed the allocator on startup.
func (h *Handler) ListPorts(ctx context.Context) ([]int, error) {
	rows, err := h.db.QueryContext(ctx, "SELECT `port` FROM `instance_ports`")
	if err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	defer rows.Close()
	var ports []int
	for rows.Next() {
		var p int
		if err = rows.Scan(&p); err != nil {
			return nil, lib_model.NewInternalError(err)
		}
		ports = append(ports, p)
	}
	if err = rows.Err(); err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	return ports, nil
}
