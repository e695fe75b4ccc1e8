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

package alloc_hdl

import (
	"fmt"
	"net"
	"sync"

	lib_model "github.com/SENERGY-Platform/lab-instance-manager/lib/model"
)

// Handler reserves host ports for instance endpoints. A port counts as
// taken if it is reserved by a live instance or if binding it fails.
// A probed port can still be grabbed by another process before compose
// binds it, the window is accepted and surfaces as a start error.
type Handler struct {
	probeLimit int
	probeFunc  func(p int) bool
	mu         sync.Mutex
	reserved   map[int]struct{}
}

func New(probeLimit int) *Handler {
	return &Handler{
		probeLimit: probeLimit,
		probeFunc:  probePort,
		reserved:   make(map[int]struct{}),
	}
}

// Seed marks ports as reserved without probing, used on startup to
// restore reservations of persisted instances.
func (h *Handler) Seed(ports []int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range ports {
		h.reserved[p] = struct{}{}
	}
}

// Allocate returns count free ports starting the search at base. Ports
// are reserved atomically, on exhaustion nothing stays reserved.
func (h *Handler) Allocate(base int, count int) ([]int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var ports []int
	for p := base; p < base+h.probeLimit; p++ {
		if p > 65535 {
			break
		}
		if _, ok := h.reserved[p]; ok {
			continue
		}
		if !h.probeFunc(p) {
			continue
		}
		h.reserved[p] = struct{}{}
		ports = append(ports, p)
		if len(ports) == count {
			return ports, nil
		}
	}
	for _, p := range ports {
		delete(h.reserved, p)
	}
	return nil, lib_model.NewResourceExhaustedError(fmt.Errorf("no %d free ports from %d within %d", count, base, h.probeLimit))
}

func (h *Handler) Release(ports []int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range ports {
		delete(h.reserved, p)
	}
}

func (h *Handler) Reserved() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.reserved)
}

func probePort(p int) bool {
	l, err := net.Listen("tcp", fmt.Sprintf(":%d", p))
	if err != nil {
		return false
	}
	l.Close()
	return true
}
