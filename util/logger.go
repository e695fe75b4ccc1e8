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
	"os"

	"github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/y-du/go-log-level"
)

var Logger *log_level.Logger

func InitLogger(c srv_base.LoggerConfig) (out *os.File, err error) {
	out, err = srv_base.InitLogger(c)
	Logger = srv_base.Logger
	return
}
