package ui

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"ashfall/ui/internal/bus"
	"ashfall/ui/internal/console"
)

// SubscriberConn is the write side of a viewer connection. *websocket.Conn
// satisfies it; tests substitute an in-memory fake.
type SubscriberConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// textMessage mirrors websocket.TextMessage so the host package does not
// depend on the transport.
const textMessage = 1

type viewer struct {
	conn SubscriberConn
	mu   sync.Mutex
}

func (v *viewer) write(data []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.conn.WriteMessage(textMessage, data)
}

// Host owns the active screen selection and the set of connected viewers. It
// is the sole consumer of the inventory core's public surface: refresh and
// filter-change events trigger a re-render of the active screen, which is
// then broadcast to every viewer.
type Host struct {
	mu      sync.Mutex
	active  string
	viewers map[string]*viewer

	store   *Store
	filter  *Filter[Item]
	bus     *bus.Bus
	console *console.Console
	unsubs  []func()
}

func NewHost(b *bus.Bus, c *console.Console, store *Store, filter *Filter[Item]) *Host {
	if c == nil {
		c = console.New(console.Config{})
	}
	return &Host{
		active:  ScreenInventory,
		viewers: make(map[string]*viewer),
		store:   store,
		filter:  filter,
		bus:     b,
		console: c,
	}
}

// Initialize wires the store and the refresh subscriptions. The inventory
// screen re-renders on every refresh or filter change while it is active.
func (h *Host) Initialize() error {
	if err := h.store.Initialize(); err != nil {
		return fmt.Errorf("initialize inventory store: %w", err)
	}

	h.unsubs = append(h.unsubs,
		h.bus.Subscribe(EventInventoryRefresh, func(any) {
			h.refreshIfActive(ScreenInventory)
		}),
		h.bus.Subscribe(EventInventoryChanged, func(any) {
			h.refreshIfActive(ScreenInventory)
		}),
		h.bus.Subscribe(EventInspectorDisplay, func(payload any) {
			if data, ok := payload.(InspectorPayload); ok {
				h.broadcastInspector(data)
			}
		}),
	)

	h.console.System("Interface host ready")
	return nil
}

// Dispose drops the host's bus subscriptions and closes every viewer.
func (h *Host) Dispose() {
	for _, unsub := range h.unsubs {
		unsub()
	}
	h.unsubs = nil

	h.mu.Lock()
	viewers := h.viewers
	h.viewers = make(map[string]*viewer)
	h.mu.Unlock()
	for _, v := range viewers {
		v.conn.Close()
	}
}

func (h *Host) Store() *Store {
	return h.store
}

func (h *Host) Filter() *Filter[Item] {
	return h.filter
}

// ActiveScreen returns the current screen id.
func (h *Host) ActiveScreen() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// SetScreen switches the active screen and pushes its markup to all viewers.
// Unknown screens are rejected with a logged warning.
func (h *Host) SetScreen(id string) {
	if !knownScreen(id) {
		h.console.Warning("Unknown screen: %s", id)
		return
	}
	h.mu.Lock()
	h.active = id
	h.mu.Unlock()

	h.broadcastScreen(id, h.RenderScreen(id))
}

// RenderScreen produces the markup for any screen id.
func (h *Host) RenderScreen(id string) string {
	switch id {
	case ScreenInventory:
		return h.store.GenerateContent()
	case ScreenCharacter:
		return generateCharacterContent()
	case ScreenQuests:
		return generateQuestContent()
	case ScreenMap:
		return generateMapContent()
	case ScreenSettings:
		return generateSettingsContent()
	}
	return `<div class="screen-content">Unknown screen</div>`
}

// Subscribe registers a viewer connection, sends it the active screen, and
// returns its id.
func (h *Host) Subscribe(conn SubscriberConn) string {
	id := "viewer-" + uuid.NewString()
	v := &viewer{conn: conn}

	h.mu.Lock()
	h.viewers[id] = v
	active := h.active
	h.mu.Unlock()

	data, err := json.Marshal(h.screenMessage(active, h.RenderScreen(active)))
	if err == nil {
		if err := v.write(data); err != nil {
			h.dropViewer(id)
			return id
		}
	}
	h.console.Info("Viewer connected: %s", id)
	return id
}

// Unsubscribe removes a viewer and closes its connection.
func (h *Host) Unsubscribe(id string) {
	h.dropViewer(id)
}

// ViewerCount reports the number of connected viewers.
func (h *Host) ViewerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

func (h *Host) refreshIfActive(screen string) {
	if h.ActiveScreen() != screen {
		return
	}
	h.broadcastScreen(screen, h.RenderScreen(screen))
}

func (h *Host) broadcastScreen(screen, markup string) {
	data, err := json.Marshal(h.screenMessage(screen, markup))
	if err != nil {
		h.console.Error("Failed to marshal screen message: %v", err)
		return
	}
	h.broadcast(data)
}

func (h *Host) broadcastInspector(payload InspectorPayload) {
	data, err := json.Marshal(InspectorMessage{
		Type:     "inspector",
		Object:   payload.Object,
		Category: payload.Category,
	})
	if err != nil {
		h.console.Error("Failed to marshal inspector message: %v", err)
		return
	}
	h.broadcast(data)
}

func (h *Host) broadcast(data []byte) {
	h.mu.Lock()
	viewers := make(map[string]*viewer, len(h.viewers))
	for id, v := range h.viewers {
		viewers[id] = v
	}
	h.mu.Unlock()

	for id, v := range viewers {
		if err := v.write(data); err != nil {
			h.console.Warning("Failed to send update to %s: %v", id, err)
			h.dropViewer(id)
		}
	}
}

func (h *Host) dropViewer(id string) {
	h.mu.Lock()
	v, ok := h.viewers[id]
	if ok {
		delete(h.viewers, id)
	}
	h.mu.Unlock()
	if ok {
		v.conn.Close()
	}
}

func (h *Host) screenMessage(screen, markup string) ScreenMessage {
	return ScreenMessage{
		Type:       "screen",
		Screen:     screen,
		Markup:     markup,
		ServerTime: time.Now().UnixMilli(),
	}
}
