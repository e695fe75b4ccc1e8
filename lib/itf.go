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

package lib

import (
	"context"
	"time"

	"github.com/SENERGY-Platform/lab-instance-manager/lib/model"
)

// Api is the upward facing surface of the instance manager. Mutating
// operations on existing instances return a job ID, reads and create
// are synchronous.
type Api interface {
	CreateInstance(ctx context.Context, req model.InstanceCreateRequest) (model.Instance, error)
	GetInstances(ctx context.Context, filter model.InstanceFilter) (map[string]model.Instance, error)
	GetInstance(ctx context.Context, iID string) (model.Instance, error)
	StartInstance(ctx context.Context, iID string) (string, error)
	StopInstance(ctx context.Context, iID string) (string, error)
	DeleteInstance(ctx context.Context, iID string) (string, error)
	GetInstanceHealth(ctx context.Context, iID string) (model.InstanceState, error)
	WaitForInstance(ctx context.Context, iID string, timeout time.Duration) (string, error)
	ExtendInstanceTTL(ctx context.Context, iID string, hours int64) (model.Instance, error)
	GetInstanceLogs(ctx context.Context, iID, component string, tail int) (string, error)
	UpdateTemplates(ctx context.Context, version string) (string, error)
	GetTemplateVersions(ctx context.Context) ([]string, error)
	GetJobs(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	GetJob(ctx context.Context, jID string) (model.Job, error)
	CancelJob(ctx context.Context, jID string) error
}
