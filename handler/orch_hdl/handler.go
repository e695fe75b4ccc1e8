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
	"fmt"
	"io/fs"
	"os"
	"path"
	"time"
)

const (
	descriptorFileName  = "compose.yaml"
	productConfFileName = "server.conf"
	projectPrefix       = "lab-"
)

// Handler materializes rendered topologies as compose projects and
// drives their container lifecycle. Each instance owns a directory
// under the workspace holding its descriptor and product config.
type Handler struct {
	tplHdl     tplHandler
	allocHdl   allocHandler
	client     composeClient
	wrkSpcPath string
	image      string
	perm       fs.FileMode
	cmdTimeout time.Duration
}

func New(tplHdl tplHandler, allocHdl allocHandler, client composeClient, workspacePath, productImage string, perm fs.FileMode, cmdTimeout time.Duration) (*Handler, error) {
	if !path.IsAbs(workspacePath) {
		return nil, fmt.Errorf("workspace path must be absolute")
	}
	if err := os.MkdirAll(workspacePath, perm); err != nil {
		return nil, err
	}
	return &Handler{
		tplHdl:     tplHdl,
		allocHdl:   allocHdl,
		client:     client,
		wrkSpcPath: workspacePath,
		image:      productImage,
		perm:       perm,
		cmdTimeout: cmdTimeout,
	}, nil
}

func (h *Handler) projectName(iID string) string {
	return projectPrefix + iID
}

func (h *Handler) instancePath(iID string) string {
	return path.Join(h.wrkSpcPath, iID)
}

func (h *Handler) descriptorPath(iID string) string {
	return path.Join(h.wrkSpcPath, iID, descriptorFileName)
}
