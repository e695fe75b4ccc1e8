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
	"os"

	"github.com/SENERGY-Platform/lab-instance-manager/util/dir_fs"
)

// UpdateTemplates fetches the template set at the given version and
// swaps it into the render workspace. Render passes are blocked for
// the duration of the swap, running instances are not touched.
func (a *Api) UpdateTemplates(_ context.Context, version string) (string, error) {
	return a.jobHandler.Create(fmt.Sprintf("update templates to '%s'", version), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		dir, err := a.transferHandler.Get(ctx, version)
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir.Path())
		a.templateHandler.Lock()
		defer a.templateHandler.Unlock()
		if err = dir_fs.Copy(dir, a.templateHandler.WorkspacePath()); err != nil {
			return err
		}
		return ctx.Err()
	})
}

func (a *Api) GetTemplateVersions(ctx context.Context) ([]string, error) {
	return a.transferHandler.ListVersions(ctx)
}
