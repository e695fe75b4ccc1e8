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

package tpl_transfer_hdl

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"time"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/SENERGY-Platform/lab-instance-manager/util/dir_fs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Handler fetches versioned topology template sets from a git
// repository. Versions are repository tags.
type Handler struct {
	wrkSpcPath  string
	repoURL     string
	perm        fs.FileMode
	httpTimeout time.Duration
}

func New(workspacePath, repoURL string, perm fs.FileMode, httpTimeout time.Duration) (*Handler, error) {
	if !path.IsAbs(workspacePath) {
		return nil, fmt.Errorf("workspace path must be absolute")
	}
	return &Handler{
		wrkSpcPath:  workspacePath,
		repoURL:     repoURL,
		perm:        perm,
		httpTimeout: httpTimeout,
	}, nil
}

func (h *Handler) InitWorkspace() error {
	return os.MkdirAll(h.wrkSpcPath, h.perm)
}

func (h *Handler) ListVersions(ctx context.Context) ([]string, error) {
	if h.repoURL == "" {
		return nil, lib_model.NewInternalError(fmt.Errorf("no template repository configured"))
	}
	dir, err := os.MkdirTemp(h.wrkSpcPath, "list_")
	if err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	defer os.RemoveAll(dir)
	ctxWt, cf := context.WithTimeout(ctx, h.httpTimeout)
	defer cf()
	repo, err := git.PlainCloneContext(ctxWt, dir, false, &git.CloneOptions{
		URL:               h.repoURL,
		NoCheckout:        true,
		RecurseSubmodules: git.NoRecurseSubmodules,
		Tags:              git.AllTags,
	})
	if err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	iter, err := repo.Tags()
	if err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	defer iter.Close()
	var versions []string
	for {
		ref, err := iter.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, lib_model.NewInternalError(err)
		}
		versions = append(versions, ref.Name().Short())
	}
	return versions, nil
}

// Get clones the template set at the given tag and returns it as a
// directory the caller copies into the render workspace.
func (h *Handler) Get(ctx context.Context, version string) (dir dir_fs.DirFS, err error) {
	if h.repoURL == "" {
		return "", lib_model.NewInternalError(fmt.Errorf("no template repository configured"))
	}
	tDir, err := os.MkdirTemp(h.wrkSpcPath, "clone_")
	if err != nil {
		return "", lib_model.NewInternalError(err)
	}
	defer func() {
		if err != nil {
			os.RemoveAll(tDir)
		}
	}()
	ctxWt, cf := context.WithTimeout(ctx, h.httpTimeout)
	defer cf()
	_, err = git.PlainCloneContext(ctxWt, tDir, false, &git.CloneOptions{
		URL:               h.repoURL,
		ReferenceName:     plumbing.NewTagReferenceName(version),
		SingleBranch:      true,
		Depth:             1,
		RecurseSubmodules: git.NoRecurseSubmodules,
		Tags:              git.NoTags,
	})
	if err != nil {
		return "", lib_model.NewNotFoundError(fmt.Errorf("template version '%s': %s", version, err))
	}
	if err = os.RemoveAll(path.Join(tDir, ".git")); err != nil {
		return "", lib_model.NewInternalError(err)
	}
	dir, err = dir_fs.New(tDir)
	if err != nil {
		return "", lib_model.NewInternalError(err)
	}
	return dir, nil
}
