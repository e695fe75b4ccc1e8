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

package context_hdl

import "context"

// Handler collects cancel functions of derived contexts so callers can
// defer a single CancelAll instead of one cancel per context.
type Handler struct {
	cancelFuncs []context.CancelFunc
}

func New() *Handler {
	return &Handler{}
}

func (h *Handler) Add(ctx context.Context, cf context.CancelFunc) context.Context {
	h.cancelFuncs = append(h.cancelFuncs, cf)
	return ctx
}

func (h *Handler) CancelAll() {
	for _, cf := range h.cancelFuncs {
		cf()
	}
	h.cancelFuncs = nil
}
