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
	"github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/y-du/go-log-level/level"
)

type DatabaseConfig struct {
	Host       string `json:"host" env_var:"DB_HOST"`
	Port       uint   `json:"port" env_var:"DB_PORT"`
	User       string `json:"user" env_var:"DB_USER"`
	Passwd     string `json:"passwd" env_var:"DB_PASSWD"`
	Name       string `json:"name" env_var:"DB_NAME"`
	Timeout    int64  `json:"timeout" env_var:"DB_TIMEOUT"`
	SchemaPath string `json:"schema_path" env_var:"DB_SCHEMA_PATH"`
}

type OrchestrationConfig struct {
	WorkdirPath  string `json:"workdir_path" env_var:"OH_WORKDIR_PATH"`
	ProductImage string `json:"product_image" env_var:"OH_PRODUCT_IMAGE"`
	ComposeBin   string `json:"compose_bin" env_var:"OH_COMPOSE_BIN"`
	Timeout      int64  `json:"timeout" env_var:"OH_TIMEOUT"`
}

type TemplateHandlerConfig struct {
	WorkdirPath  string `json:"workdir_path" env_var:"TH_WORKDIR_PATH"`
	TransferPath string `json:"transfer_path" env_var:"TH_TRANSFER_PATH"`
	RepoURL      string `json:"repo_url" env_var:"TH_REPO_URL"`
	Timeout      int64  `json:"timeout" env_var:"TH_TIMEOUT"`
}

type AllocatorConfig struct {
	ProbeLimit int `json:"probe_limit" env_var:"AH_PROBE_LIMIT"`
}

type AuthConfig struct {
	BaseUrl string `json:"base_url" env_var:"AUTH_BASE_URL"`
	Timeout int64  `json:"timeout" env_var:"AUTH_TIMEOUT"`
}

type InstanceHandlerConfig struct {
	MaxTTLHours       int64 `json:"max_ttl_hours" env_var:"IH_MAX_TTL_HOURS"`
	HealthPollDelay   int64 `json:"health_poll_delay" env_var:"IH_HEALTH_POLL_DELAY"`
	ReconcileInterval int64 `json:"reconcile_interval" env_var:"IH_RECONCILE_INTERVAL"`
}

type JobsConfig struct {
	BufferSize  int   `json:"buffer_size" env_var:"JOBS_BUFFER_SIZE"`
	MaxNumber   int   `json:"max_number" env_var:"JOBS_MAX_NUMBER"`
	CCHInterval int   `json:"cch_interval" env_var:"JOBS_CCH_INTERVAL"`
	PHInterval  int64 `json:"ph_interval" env_var:"JOBS_PH_INTERVAL"`
	MaxAge      int64 `json:"max_age" env_var:"JOBS_MAX_AGE"`
}

type Config struct {
	ServerPort      uint                  `json:"server_port" env_var:"SERVER_PORT"`
	Logger          srv_base.LoggerConfig `json:"logger" env_var:"LOGGER_CONFIG"`
	Database        DatabaseConfig        `json:"database" env_var:"DATABASE_CONFIG"`
	Orchestration   OrchestrationConfig   `json:"orchestration" env_var:"OH_CONFIG"`
	TemplateHandler TemplateHandlerConfig `json:"template_handler" env_var:"TH_CONFIG"`
	Allocator       AllocatorConfig       `json:"allocator" env_var:"AH_CONFIG"`
	Auth            AuthConfig            `json:"auth" env_var:"AUTH_CONFIG"`
	InstanceHandler InstanceHandlerConfig `json:"instance_handler" env_var:"IH_CONFIG"`
	Jobs            JobsConfig            `json:"jobs" env_var:"JOBS_CONFIG"`
}

func NewConfig(path string) (*Config, error) {
	cfg := Config{
		ServerPort: 80,
		Logger: srv_base.LoggerConfig{
			Level:        level.Warning,
			Utc:          true,
			Microseconds: true,
			Terminal:     true,
		},
		Database: DatabaseConfig{
			Host:       "core-db",
			Port:       3306,
			Name:       "lab_instance_manager",
			Timeout:    5000000000,
			SchemaPath: "include/storage_schema.sql",
		},
		Orchestration: OrchestrationConfig{
			WorkdirPath:  "/opt/lab-instance-manager/instances",
			ProductImage: "ghcr.io/senergy-platform/siem-lab-node",
			ComposeBin:   "docker",
			Timeout:      120000000000,
		},
		TemplateHandler: TemplateHandlerConfig{
			WorkdirPath:  "/opt/lab-instance-manager/templates",
			TransferPath: "/opt/lab-instance-manager/transfer",
			Timeout:      30000000000,
		},
		Allocator: AllocatorConfig{
			ProbeLimit: 1000,
		},
		Auth: AuthConfig{
			Timeout: 10000000000,
		},
		InstanceHandler: InstanceHandlerConfig{
			MaxTTLHours:       168,
			HealthPollDelay:   5000000000,
			ReconcileInterval: 60000000000,
		},
		Jobs: JobsConfig{
			BufferSize:  50,
			MaxNumber:   10,
			CCHInterval: 500000,
			PHInterval:  300000000000,
			MaxAge:      3600000000,
		},
	}
	err := srv_base.LoadConfig(&path, &cfg, nil, nil, nil)
	return &cfg, err
}
