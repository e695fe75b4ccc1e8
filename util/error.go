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

package util

import (
	"errors"
	"net/http"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
)

func GetErrCode(err error) *int {
	c := GetStatusCode(err)
	if c > 0 {
		return &c
	}
	return nil
}

func GetStatusCode(err error) int {
	var nfe *lib_model.NotFoundError
	if errors.As(err, &nfe) {
		return http.StatusNotFound
	}
	var iie *lib_model.InvalidInputError
	if errors.As(err, &iie) {
		return http.StatusBadRequest
	}
	var ise *lib_model.InvalidStateError
	if errors.As(err, &ise) {
		return http.StatusConflict
	}
	var rbe *lib_model.ResourceBusyError
	if errors.As(err, &rbe) {
		return http.StatusConflict
	}
	var ree *lib_model.ResourceExhaustedError
	if errors.As(err, &ree) {
		return http.StatusServiceUnavailable
	}
	var toe *lib_model.TimeoutError
	if errors.As(err, &toe) {
		return http.StatusGatewayTimeout
	}
	var fe *lib_model.FailedError
	if errors.As(err, &fe) {
		return http.StatusInternalServerError
	}
	var ie *lib_model.InternalError
	if errors.As(err, &ie) {
		return http.StatusInternalServerError
	}
	return 0
}
