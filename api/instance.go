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

package api

import (
	"context"
	"fmt"
	"time"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
)

func (a *Api) CreateInstance(ctx context.Context, req lib_model.InstanceCreateRequest) (lib_model.Instance, error) {
	return a.instanceHandler.Create(ctx, req)
}

func (a *Api) GetInstances(ctx context.Context, filter lib_model.InstanceFilter) (map[string]lib_model.Instance, error) {
	return a.instanceHandler.List(ctx, filter)
}

func (a *Api) GetInstance(ctx context.Context, iID string) (lib_model.Instance, error) {
	return a.instanceHandler.Get(ctx, iID)
}

func (a *Api) StartInstance(_ context.Context, iID string) (string, error) {
	return a.jobHandler.Create(fmt.Sprintf("start instance '%s'", iID), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.instanceHandler.Start(ctx, iID)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) StopInstance(_ context.Context, iID string) (string, error) {
	return a.jobHandler.Create(fmt.Sprintf("stop instance '%s'", iID), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.instanceHandler.Stop(ctx, iID)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) DeleteInstance(_ context.Context, iID string) (string, error) {
	return a.jobHandler.Create(fmt.Sprintf("delete instance '%s'", iID), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.instanceHandler.Delete(ctx, iID)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) GetInstanceHealth(ctx context.Context, iID string) (lib_model.InstanceState, error) {
	return a.instanceHandler.Health(ctx, iID)
}

func (a *Api) WaitForInstance(_ context.Context, iID string, timeout time.Duration) (string, error) {
	return a.jobHandler.Create(fmt.Sprintf("wait for instance '%s'", iID), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.instanceHandler.WaitForReady(ctx, iID, timeout)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) ExtendInstanceTTL(ctx context.Context, iID string, hours int64) (lib_model.Instance, error) {
	return a.instanceHandler.ExtendTTL(ctx, iID, hours)
}

func (a *Api) GetInstanceLogs(ctx context.Context, iID, component string, tail int) (string, error) {
	return a.instanceHandler.Logs(ctx, iID, component, tail)
}
