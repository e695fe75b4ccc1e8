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

package compose_hdl

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/SENERGY-Platform/lab-instance-manager/util"
)

const composeServiceLabel = "com.docker.compose.service"

// Client drives container stacks through the compose CLI plugin. Output
// of failed commands is preserved as diagnostic in the returned error.
type Client struct {
	bin string
}

func New(bin string) *Client {
	return &Client{bin: bin}
}

func (c *Client) Up(ctx context.Context, project, descriptorPath string) error {
	out, err := c.run(ctx, "compose", "-p", project, "-f", descriptorPath, "up", "-d")
	if err != nil {
		return lib_model.NewFailedError(fmt.Errorf("compose up '%s': %s: %s", project, err, out))
	}
	return nil
}

func (c *Client) Down(ctx context.Context, project, descriptorPath string, removeVolumes bool) error {
	args := []string{"compose", "-p", project, "-f", descriptorPath, "down"}
	if removeVolumes {
		args = append(args, "-v")
	}
	out, err := c.run(ctx, args...)
	if err != nil {
		return lib_model.NewFailedError(fmt.Errorf("compose down '%s': %s: %s", project, err, out))
	}
	return nil
}

// PS returns the container IDs of a project, including stopped ones.
func (c *Client) PS(ctx context.Context, project string) ([]string, error) {
	out, err := c.run(ctx, "compose", "-p", project, "ps", "-a", "-q")
	if err != nil {
		return nil, lib_model.NewInternalError(fmt.Errorf("compose ps '%s': %s: %s", project, err, out))
	}
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			ids = append(ids, line)
		}
	}
	return ids, nil
}

func (c *Client) Inspect(ctx context.Context, ctrID string) (lib_model.ContainerState, error) {
	out, err := c.run(ctx, "inspect", ctrID)
	if err != nil {
		return lib_model.ContainerState{}, lib_model.NewInternalError(fmt.Errorf("inspect '%s': %s: %s", ctrID, err, out))
	}
	return parseInspect([]byte(out))
}

func (c *Client) Logs(ctx context.Context, ctrID string, tail int) (string, error) {
	args := []string{"logs"}
	if tail > 0 {
		args = append(args, "--tail", strconv.Itoa(tail))
	}
	args = append(args, ctrID)
	out, err := c.run(ctx, args...)
	if err != nil {
		return "", lib_model.NewInternalError(fmt.Errorf("logs '%s': %s: %s", ctrID, err, out))
	}
	return out, nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.bin, args...)
	util.Logger.Debugf("exec: %s %s", c.bin, strings.Join(args, " "))
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func parseInspect(raw []byte) (lib_model.ContainerState, error) {
	var items []struct {
		State struct {
			Status string `json:"Status"`
			Health *struct {
				Status string `json:"Status"`
			} `json:"Health"`
		} `json:"State"`
		Config struct {
			Labels map[string]string `json:"Labels"`
		} `json:"Config"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return lib_model.ContainerState{}, lib_model.NewInternalError(err)
	}
	if len(items) == 0 {
		return lib_model.ContainerState{}, lib_model.NewNotFoundError(fmt.Errorf("container not found"))
	}
	item := items[0]
	state := lib_model.ContainerState{
		Service: item.Config.Labels[composeServiceLabel],
		Status:  item.State.Status,
	}
	if item.State.Health != nil {
		state.Health = item.State.Health.Status
	}
	return state, nil
}
