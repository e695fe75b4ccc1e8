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

package orch_hdl

import (
	"context"
	"fmt"
	"strings"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
)

// Logs returns the tail of the container logs of the instance. With a
// component set only services containing it are included.
func (h *Handler) Logs(ctx context.Context, inst lib_model.Instance, component string, tail int) (string, error) {
	ctxWt, cf := context.WithTimeout(ctx, h.cmdTimeout)
	defer cf()
	ids, err := h.client.PS(ctxWt, h.projectName(inst.ID))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	matched := false
	for _, id := range ids {
		state, err := h.client.Inspect(ctxWt, id)
		if err != nil {
			return "", err
		}
		if component != "" && !strings.Contains(state.Service, component) {
			continue
		}
		matched = true
		logs, err := h.client.Logs(ctxWt, id, tail)
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("==> %s <==\n", state.Service))
		sb.WriteString(logs)
		if !strings.HasSuffix(logs, "\n") {
			sb.WriteString("\n")
		}
	}
	if component != "" && !matched {
		return "", lib_model.NewNotFoundError(fmt.Errorf("no component matching '%s'", component))
	}
	return sb.String(), nil
}
