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

package http_hdl

import (
	"errors"
	"net/http"

	"github.com/SENERGY-Platform/lab-instance-manager/lib"
	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/gin-gonic/gin"
)

type templatesUpdateRequest struct {
	Version string `json:"version"`
}

func postTemplatesUpdateH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		req := templatesUpdateRequest{}
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		if req.Version == "" {
			_ = gc.Error(lib_model.NewInvalidInputError(errors.New("missing template version")))
			return
		}
		jID, err := a.UpdateTemplates(gc.Request.Context(), req.Version)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}

func getTemplateVersionsH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		versions, err := a.GetTemplateVersions(gc.Request.Context())
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, versions)
	}
}
