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

package cred_hdl

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	adminUser    = "admin"
	passwordSize = 18
)

// Handler generates per instance credentials. Access tokens come from
// an external issuer if one is configured, otherwise a local opaque
// token is minted.
type Handler struct {
	baseUrl     string
	httpClient  *retryablehttp.Client
	httpTimeout time.Duration
}

func New(baseUrl string, httpTimeout time.Duration) *Handler {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	return &Handler{
		baseUrl:     baseUrl,
		httpClient:  client,
		httpTimeout: httpTimeout,
	}
}

func (h *Handler) Generate(ctx context.Context, iID string, ingest bool) (lib_model.Credentials, error) {
	pw, err := randomSecret(passwordSize)
	if err != nil {
		return lib_model.Credentials{}, lib_model.NewInternalError(err)
	}
	credentials := lib_model.Credentials{
		AdminUser:     adminUser,
		AdminPassword: pw,
	}
	if ingest {
		credentials.IngestToken = uuid.NewString()
	}
	if h.baseUrl != "" {
		credentials.AccessToken, err = h.issueToken(ctx, iID)
	} else {
		credentials.AccessToken, err = randomSecret(passwordSize)
	}
	if err != nil {
		return lib_model.Credentials{}, err
	}
	return credentials, nil
}

func (h *Handler) issueToken(ctx context.Context, iID string) (string, error) {
	body, err := json.Marshal(map[string]string{"subject": iID, "audience": lib_model.ServiceName})
	if err != nil {
		return "", lib_model.NewInternalError(err)
	}
	ctxWt, cf := context.WithTimeout(ctx, h.httpTimeout)
	defer cf()
	req, err := retryablehttp.NewRequestWithContext(ctxWt, http.MethodPost, h.baseUrl+"/tokens", bytes.NewReader(body))
	if err != nil {
		return "", lib_model.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", lib_model.NewInternalError(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", lib_model.NewInternalError(fmt.Errorf("token issuer returned %d", resp.StatusCode))
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", lib_model.NewInternalError(err)
	}
	if payload.Token == "" {
		return "", lib_model.NewInternalError(fmt.Errorf("token issuer returned empty token"))
	}
	return payload.Token, nil
}

func randomSecret(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
