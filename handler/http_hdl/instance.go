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
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SENERGY-Platform/lab-instance-manager/lib"
	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/gin-gonic/gin"
)

const instIdParam = "i"

type instancesQuery struct {
	State  string `form:"state"`
	Labels string `form:"labels"`
}

type instanceLogsQuery struct {
	Component string `form:"component"`
	Tail      int    `form:"tail"`
}

type instanceWaitQuery struct {
	Timeout string `form:"timeout"`
}

func getInstancesH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		query := instancesQuery{}
		if err := gc.ShouldBindQuery(&query); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		filter := lib_model.InstanceFilter{}
		if query.State != "" {
			if _, ok := lib_model.InstanceStateMap[query.State]; !ok {
				_ = gc.Error(lib_model.NewInvalidInputError(fmt.Errorf("unknown instance state '%s'", query.State)))
				return
			}
			filter.State = query.State
		}
		if query.Labels != "" {
			filter.Labels = make(map[string]string)
			for _, item := range strings.Split(query.Labels, ",") {
				name, value, ok := strings.Cut(item, "=")
				if !ok {
					_ = gc.Error(lib_model.NewInvalidInputError(fmt.Errorf("invalid label filter '%s'", item)))
					return
				}
				filter.Labels[name] = value
			}
		}
		instances, err := a.GetInstances(gc.Request.Context(), filter)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, instances)
	}
}

func postInstanceH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		req := lib_model.InstanceCreateRequest{}
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		inst, err := a.CreateInstance(gc.Request.Context(), req)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusCreated, inst)
	}
}

func getInstanceH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		inst, err := a.GetInstance(gc.Request.Context(), gc.Param(instIdParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, inst)
	}
}

func deleteInstanceH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		jID, err := a.DeleteInstance(gc.Request.Context(), gc.Param(instIdParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}

func patchInstanceStartH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		jID, err := a.StartInstance(gc.Request.Context(), gc.Param(instIdParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}

func patchInstanceStopH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		jID, err := a.StopInstance(gc.Request.Context(), gc.Param(instIdParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}

func getInstanceHealthH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		state, err := a.GetInstanceHealth(gc.Request.Context(), gc.Param(instIdParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, map[string]string{"state": state})
	}
}

func getInstanceLogsH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		query := instanceLogsQuery{}
		if err := gc.ShouldBindQuery(&query); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		logs, err := a.GetInstanceLogs(gc.Request.Context(), gc.Param(instIdParam), query.Component, query.Tail)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, logs)
	}
}

func patchInstanceTTLH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		req := lib_model.InstanceTTLRequest{}
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		inst, err := a.ExtendInstanceTTL(gc.Request.Context(), gc.Param(instIdParam), req.Hours)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, inst)
	}
}

func postInstanceWaitH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		query := instanceWaitQuery{}
		if err := gc.ShouldBindQuery(&query); err != nil {
			_ = gc.Error(lib_model.NewInvalidInputError(err))
			return
		}
		timeout := time.Minute * 5
		if query.Timeout != "" {
			d, err := time.ParseDuration(query.Timeout)
			if err != nil {
				_ = gc.Error(lib_model.NewInvalidInputError(err))
				return
			}
			timeout = d
		}
		jID, err := a.WaitForInstance(gc.Request.Context(), gc.Param(instIdParam), timeout)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}
