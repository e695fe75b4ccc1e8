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

package handler

import (
	"context"
	"time"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/SENERGY-Platform/lab-instance-manager/util/dir_fs"
)

type InstanceHandler interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, req lib_model.InstanceCreateRequest) (lib_model.Instance, error)
	List(ctx context.Context, filter lib_model.InstanceFilter) (map[string]lib_model.Instance, error)
	Get(ctx context.Context, iID string) (lib_model.Instance, error)
	Start(ctx context.Context, iID string) error
	Stop(ctx context.Context, iID string) error
	Delete(ctx context.Context, iID string) error
	Health(ctx context.Context, iID string) (lib_model.InstanceState, error)
	WaitForReady(ctx context.Context, iID string, timeout time.Duration) error
	ExtendTTL(ctx context.Context, iID string, hours int64) (lib_model.Instance, error)
	Logs(ctx context.Context, iID, component string, tail int) (string, error)
	ReconcileExpired(ctx context.Context)
	PeriodicReconciliation(ctx context.Context, interval time.Duration)
}

// TemplateHandler guards the template workspace used for render
// passes. Lock blocks rendering while templates are swapped.
type TemplateHandler interface {
	WorkspacePath() string
	Lock()
	Unlock()
}

type TemplateTransferHandler interface {
	ListVersions(ctx context.Context) ([]string, error)
	Get(ctx context.Context, version string) (dir_fs.DirFS, error)
}

type JobHandler interface {
	Create(desc string, tFunc func(context.Context, context.CancelFunc) error) (string, error)
	Get(id string) (lib_model.Job, error)
	Cancel(id string) error
	List(filter lib_model.JobFilter) []lib_model.Job
	PurgeJobs(maxAge int64) int
}
