// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ws streams rumor lifecycle events to WebSocket subscribers.
//
// A Hub fans every published models.Event out to the connected clients.
// Clients are read-only: whatever they send is discarded, and pings keep
// idle connections alive. A client that cannot keep up is dropped instead
// of slowing the publisher.
package ws

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/vera-node/internal/logger"
	"github.com/MKhiriev/vera-node/internal/metrics"
	"github.com/MKhiriev/vera-node/models"
)

// broadcastBuffer is how many events may wait for the hub loop before
// Publish starts dropping them.
const broadcastBuffer = 256

type Hub struct {
	clients map[*client]struct{}

	register   chan *client
	unregister chan *client
	broadcast  chan models.Event

	// done is closed when Run returns; later registrations are refused.
	done chan struct{}

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewHub(m *metrics.Metrics, logger *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan models.Event, broadcastBuffer),
		done:       make(chan struct{}),
		metrics:    m,
		logger:     logger,
	}
}

// Run owns the client set until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			h.logger.Info().Msg("event hub stopped")
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.metrics.EventClientConnected()
			h.logger.Debug().Str("remote", c.remote).Msg("event subscriber connected")

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}

		case event := <-h.broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Err(err).Str("func", "*Hub.Run").Msg("event encoding failed")
				continue
			}
			for c := range h.clients {
				if !c.accepts(event) {
					continue
				}
				select {
				case c.send <- payload:
				default:
					h.logger.Warn().Str("remote", c.remote).Msg("slow event subscriber dropped")
					h.drop(c)
				}
			}
		}
	}
}

// Publish queues event for delivery and never blocks the caller.
func (h *Hub) Publish(event models.Event) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn().Str("type", string(event.Type)).Str("rumor_id", event.RumorID).Msg("event queue full, event dropped")
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.metrics.EventClientDisconnected()
}

// join hands c to the hub loop. It reports false once the hub has stopped.
func (h *Hub) join(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
