// Copyright (c) 2026 NitikBatik. All rights reserved.

package workspace

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/session"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/view"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/uuid"
)

// Registry holds the live workspaces, keyed by visitor id.
type Registry struct {
	client      *apiclient.Client
	revocations session.Revocations
	idleTTL     time.Duration
	sleep       view.SleepFunc
	now         func() time.Time

	mu      sync.Mutex
	entries map[string]*Workspace
}

// RegistryOption configures a [Registry].
type RegistryOption func(*Registry)

// WithSleep replaces the wait used between retry attempts.
func WithSleep(sleep view.SleepFunc) RegistryOption {
	return func(registry *Registry) { registry.sleep = sleep }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) RegistryOption {
	return func(registry *Registry) { registry.now = now }
}

// NewRegistry creates an empty registry.
//
// # Parameters
//   - client: shared backend client, handed to every workspace.
//   - revocations: token revocation list used on logout.
//   - idleTTL: how long an untouched workspace survives.
func NewRegistry(client *apiclient.Client, revocations session.Revocations, idleTTL time.Duration, options ...RegistryOption) *Registry {
	registry := &Registry{
		client:      client,
		revocations: revocations,
		idleTTL:     idleTTL,
		now:         time.Now,
		entries:     make(map[string]*Workspace),
	}
	for _, option := range options {
		option(registry)
	}
	return registry
}

/*
Resolve returns the workspace of a visitor, creating it when needed.

Description: An unknown or malformed visitor id gets a fresh workspace. A
well-formed id whose workspace was evicted keeps its id, so the visitor cookie
stays stable.

Returns:
  - *Workspace: never nil
  - bool: true when a new visitor id was minted (the cookie must be set)
*/
func (registry *Registry) Resolve(visitorID string) (*Workspace, bool) {
	now := registry.now()

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if workspace, ok := registry.entries[visitorID]; ok {
		workspace.touch(now)
		return workspace, false
	}

	minted := false
	if !uuid.Valid(visitorID) {
		visitorID = uuid.New()
		minted = true
	}

	workspace := New(visitorID, registry.client, registry.revocations, registry.sleep)
	workspace.touch(now)
	registry.entries[visitorID] = workspace

	return workspace, minted
}

// Len returns the number of live workspaces.
func (registry *Registry) Len() int {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return len(registry.entries)
}

// Sweep evicts workspaces idle for longer than the TTL and returns how many.
func (registry *Registry) Sweep() int {
	cutoff := registry.now().Add(-registry.idleTTL)

	registry.mu.Lock()
	defer registry.mu.Unlock()

	evicted := 0
	for id, workspace := range registry.entries {
		if workspace.LastSeen().Before(cutoff) {
			delete(registry.entries, id)
			evicted++
		}
	}
	return evicted
}

// Run sweeps periodically until ctx is done.
func (registry *Registry) Run(ctx context.Context, logger *slog.Logger) {
	ticker := time.NewTicker(constants.WorkspaceJanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if evicted := registry.Sweep(); evicted > 0 {
				logger.Debug("workspaces_evicted",
					slog.Int("evicted", evicted),
					slog.Int("live", registry.Len()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}
