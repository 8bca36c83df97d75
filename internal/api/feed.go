package api

import (
	"net/http"
	"strconv"
	"sync"

	"taskreef/internal/model"
	"taskreef/pkg/logger"

	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Message struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Feed keeps one websocket session per user so the mini-app can play the
// chest-opening animation as soon as a redemption lands.
type Feed struct {
	mu    sync.RWMutex
	conns map[int64]*websocket.Conn
}

func NewFeed() *Feed {
	return &Feed{
		conns: make(map[int64]*websocket.Conn),
	}
}

func NewFeedRoutes(handler *gin.RouterGroup, feed *Feed) {
	h := handler.Group("/ws")
	h.GET("/:telegram_id", feed.handleWebSocket)
}

func (f *Feed) handleWebSocket(c *gin.Context) {
	log := logger.Logger()

	telegramID, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil {
		log.Error("failed to parse telegram_id", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid telegram_id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	f.mu.Lock()
	if old, ok := f.conns[telegramID]; ok {
		old.Close()
	}
	f.conns[telegramID] = conn
	f.mu.Unlock()

	go f.readLoop(telegramID, conn)
}

// readLoop drains client frames until the peer goes away, then drops the
// session. The feed is push-only; inbound payloads are ignored.
func (f *Feed) readLoop(telegramID int64, conn *websocket.Conn) {
	defer func() {
		conn.Close()
		f.mu.Lock()
		if f.conns[telegramID] == conn {
			delete(f.conns, telegramID)
		}
		f.mu.Unlock()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Logger().Info("websocket unexpected close",
					zap.Int64("telegram_id", telegramID),
					zap.Error(err))
			}
			return
		}
	}
}

// AnnounceChest pushes a chest_opened event to the user's session, if one
// is connected. Best-effort: a closed or absent session is dropped
// silently.
func (f *Feed) AnnounceChest(telegramID int64, outcome *model.RewardOutcome) {
	f.mu.RLock()
	conn, ok := f.conns[telegramID]
	f.mu.RUnlock()
	if !ok {
		return
	}

	payload, err := json.Marshal(Message{
		Type: "chest_opened",
		Payload: map[string]any{
			"chest_type":      string(outcome.ChestTier),
			"rarity":          string(outcome.Rarity),
			"item_id":         outcome.ItemID,
			"item_name":       outcome.ItemName,
			"item_added":      outcome.ItemAdded,
			"current_streak":  outcome.CurrentStreak,
			"inventory_count": outcome.InventoryCount,
		},
	})
	if err != nil {
		logger.Logger().Error("failed to marshal feed message", zap.Error(err))
		return
	}

	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		logger.Logger().Info("failed to push feed message",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
	}
}
