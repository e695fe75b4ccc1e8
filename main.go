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

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/SENERGY-Platform/go-cc-job-handler/ccjh"
	"github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/SENERGY-Platform/go-service-base/srv-base/types"
	"github.com/SENERGY-Platform/lab-instance-manager/api"
	"github.com/SENERGY-Platform/lab-instance-manager/handler/alloc_hdl"
	"github.com/SENERGY-Platform/lab-instance-manager/handler/compose_hdl"
	"github.com/SENERGY-Platform/lab-instance-manager/handler/cred_hdl"
	"github.com/SENERGY-Platform/lab-instance-manager/handler/http_hdl"
	"github.com/SENERGY-Platform/lab-instance-manager/handler/inst_hdl"
	"github.com/SENERGY-Platform/lab-instance-manager/handler/job_hdl"
	"github.com/SENERGY-Platform/lab-instance-manager/handler/orch_hdl"
	"github.com/SENERGY-Platform/lab-instance-manager/handler/storage_hdl"
	"github.com/SENERGY-Platform/lab-instance-manager/handler/tpl_hdl"
	"github.com/SENERGY-Platform/lab-instance-manager/handler/tpl_transfer_hdl"
	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/SENERGY-Platform/lab-instance-manager/util"
	"github.com/SENERGY-Platform/lab-instance-manager/util/db_hdl"
	"github.com/SENERGY-Platform/lab-instance-manager/util/dir_fs"
)

var version string

const defaultTemplatesPath = "include/templates"

func main() {
	srv_base.PrintInfo(lib_model.ServiceName, version)

	flags := util.NewFlags()

	config, err := util.NewConfig(flags.ConfPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logFile, err := util.InitLogger(config.Logger)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		var logFileError *srv_base.LogFileError
		if errors.As(err, &logFileError) {
			os.Exit(1)
		}
	}
	if logFile != nil {
		defer logFile.Close()
	}

	util.Logger.Debugf("config: %s", srv_base.ToJsonStr(config))

	ctx, cf := context.WithCancel(context.Background())
	defer cf()

	db, err := db_hdl.NewDB(config.Database.Host, config.Database.Port, config.Database.User, config.Database.Passwd, config.Database.Name)
	if err != nil {
		util.Logger.Error(err)
		return
	}
	defer db.Close()

	if err = db_hdl.InitDB(ctx, db, config.Database.SchemaPath, time.Second*2); err != nil {
		util.Logger.Error(err)
		return
	}

	storageHandler := storage_hdl.New(db)

	templateHandler, err := tpl_hdl.New(config.TemplateHandler.WorkdirPath)
	if err != nil {
		util.Logger.Error(err)
		return
	}

	if err = seedTemplates(templateHandler.WorkspacePath()); err != nil {
		util.Logger.Error(err)
		return
	}

	transferHandler, err := tpl_transfer_hdl.New(config.TemplateHandler.TransferPath, config.TemplateHandler.RepoURL, 0770, time.Duration(config.TemplateHandler.Timeout))
	if err != nil {
		util.Logger.Error(err)
		return
	}
	if err = transferHandler.InitWorkspace(); err != nil {
		util.Logger.Error(err)
		return
	}

	allocHandler := alloc_hdl.New(config.Allocator.ProbeLimit)

	composeClient := compose_hdl.New(config.Orchestration.ComposeBin)

	orchestrationHandler, err := orch_hdl.New(templateHandler, allocHandler, composeClient, config.Orchestration.WorkdirPath, config.Orchestration.ProductImage, 0770, time.Duration(config.Orchestration.Timeout))
	if err != nil {
		util.Logger.Error(err)
		return
	}

	credentialHandler := cred_hdl.New(config.Auth.BaseUrl, time.Duration(config.Auth.Timeout))

	instanceHandler := inst_hdl.New(storageHandler, orchestrationHandler, credentialHandler, allocHandler, time.Duration(config.Database.Timeout), config.InstanceHandler.MaxTTLHours, time.Duration(config.InstanceHandler.HealthPollDelay))

	ccHandler := ccjh.New(config.Jobs.BufferSize)
	jobHandler := job_hdl.New(ctx, ccHandler)

	mApi := api.New(instanceHandler, templateHandler, transferHandler, jobHandler)

	httpEngine := http_hdl.New(mApi, map[string]string{
		lib_model.HeaderApiVer:  version,
		lib_model.HeaderSrvName: lib_model.ServiceName,
	})

	listener, err := net.Listen("tcp", ":"+strconv.FormatInt(int64(config.ServerPort), 10))
	if err != nil {
		util.Logger.Error(err)
		return
	}

	if err = instanceHandler.Init(ctx); err != nil {
		util.Logger.Error(err)
		return
	}

	if err = ccHandler.RunAsync(config.Jobs.MaxNumber, time.Duration(config.Jobs.CCHInterval*1000)); err != nil {
		util.Logger.Error(err)
		return
	}

	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		instanceHandler.PeriodicReconciliation(ctx, time.Duration(config.InstanceHandler.ReconcileInterval))
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(time.Duration(config.Jobs.PHInterval))
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := jobHandler.PurgeJobs(config.Jobs.MaxAge); n > 0 {
					util.Logger.Debugf("purged %d jobs", n)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	srv_base.StartServer(&http.Server{Handler: httpEngine}, listener, srv_base_types.DefaultShutdownSignals)

	cf()
	ccHandler.Stop()
	wg.Wait()
}

// seedTemplates populates an empty render workspace with the bundled
// topology templates.
func seedTemplates(dstPath string) error {
	entries, err := os.ReadDir(dstPath)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return nil
	}
	dir, err := dir_fs.New(defaultTemplatesPath)
	if err != nil {
		return err
	}
	return dir_fs.Copy(dir, dstPath)
}
