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
	"database/sql/driver"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
)

type storageHandler interface {
	BeginTransaction(ctx context.Context) (driver.Tx, error)
	ListInst(ctx context.Context, filter lib_model.InstanceFilter) (map[string]lib_model.Instance, error)
	CreateInst(ctx context.Context, itf driver.Tx, inst lib_model.Instance) error
	ReadInst(ctx context.Context, id string) (lib_model.Instance, error)
	UpdateInst(ctx context.Context, itf driver.Tx, inst lib_model.Instance) error
	DeleteInst(ctx context.Context, id string) error
	ListPorts(ctx context.Context) ([]int, error)
}

type orchestrationHandler interface {
	Provision(inst lib_model.Instance) (lib_model.Instance, error)
	Start(ctx context.Context, inst lib_model.Instance) (map[string]string, error)
	Stop(ctx context.Context, inst lib_model.Instance) error
	Destroy(ctx context.Context, inst lib_model.Instance) error
	Health(ctx context.Context, inst lib_model.Instance) (lib_model.InstanceState, string, error)
	Logs(ctx context.Context, inst lib_model.Instance, component string, tail int) (string, error)
}

type credentialHandler interface {
	Generate(ctx context.Context, iID string, ingest bool) (lib_model.Credentials, error)
}

type portSeeder interface {
	Seed(ports []int)
}
