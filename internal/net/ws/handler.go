package ws

import (
	"encoding/json"
	"log"
	nethttp "net/http"

	"github.com/gorilla/websocket"

	ui "ashfall/ui"
)

type HandlerConfig struct {
	Logger *log.Logger
}

// Handler upgrades interface clients to WebSocket sessions and translates
// their messages into host and inventory operations. Rendered markup flows
// back through the host's broadcast path, never from here.
type Handler struct {
	host     *ui.Host
	logger   *log.Logger
	upgrader websocket.Upgrader
}

func NewHandler(host *ui.Host, cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *nethttp.Request) bool {
			return true
		},
	}

	return &Handler{
		host:     host,
		logger:   logger,
		upgrader: upgrader,
	}
}

func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed: %v", err)
		return
	}

	viewerID := h.host.Subscribe(conn)
	defer h.host.Unsubscribe(viewerID)

	store := h.host.Store()
	filter := h.host.Filter()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Printf("discarding malformed message from %s: %v", viewerID, err)
			continue
		}

		switch msg.Type {
		case "screen":
			h.host.SetScreen(msg.Screen)
		case "filter":
			filter.SetFilter(msg.Category)
		case "search":
			filter.SetSearch(msg.Query)
		case "sort":
			filter.CycleSort()
		case "reset-filters":
			filter.Reset()
		case "item-click":
			store.HandleItemClick(msg.ItemID)
		case "item-use":
			store.UseItem(msg.ItemID)
		case "item-equip":
			store.EquipItem(msg.ItemID)
		case "item-drop":
			store.Drop(msg.ItemID)
		case "item-add":
			if msg.Item == nil {
				h.logger.Printf("item-add from %s without item", viewerID)
				continue
			}
			store.AddItem(*msg.Item)
		case "item-remove":
			store.RemoveItem(msg.ItemID)
		case "drop-junk":
			store.DropJunk()
		case "clear":
			store.Clear()
		default:
			h.logger.Printf("unknown message type %q from %s", msg.Type, viewerID)
		}
	}
}

type clientMessage struct {
	Type     string   `json:"type"`
	Screen   string   `json:"screen,omitempty"`
	Category string   `json:"category,omitempty"`
	Query    string   `json:"query,omitempty"`
	ItemID   string   `json:"itemId,omitempty"`
	Item     *ui.Item `json:"item,omitempty"`
}
