package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ModerationEvent ส่งให้ dashboard ของ super admin แบบ realtime
type ModerationEvent struct {
	Event         string          `json:"event"` // PENDING_QUEUED | POST_DECIDED
	PendingPostID uint            `json:"pendingPostId"`
	PostType      entity.PostType `json:"postType,omitempty"`
	AdminID       uint            `json:"adminId,omitempty"`
	Approved      *bool           `json:"approved,omitempty"`
	At            time.Time       `json:"at"`
}

// ModerationHub คือศูนย์กลาง feed ของงาน moderation
// event เป็น lossy: ไม่มีใครฟังก็ทิ้ง ไม่ block งานฝั่ง service
type ModerationHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan ModerationEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewModerationHub() *ModerationHub {
	return &ModerationHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan ModerationEvent, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *ModerationHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ===== services.ModerationFeed =====

func (h *ModerationHub) PendingQueued(post *entity.PendingPost) {
	h.publish(ModerationEvent{
		Event:         "PENDING_QUEUED",
		PendingPostID: post.ID,
		PostType:      post.Type,
		AdminID:       post.AdminID,
		At:            time.Now(),
	})
}

func (h *ModerationHub) PostDecided(postID uint, approved bool) {
	h.publish(ModerationEvent{
		Event:         "POST_DECIDED",
		PendingPostID: postID,
		Approved:      &approved,
		At:            time.Now(),
	})
}

func (h *ModerationHub) publish(ev ModerationEvent) {
	select {
	case h.broadcast <- ev:
	default:
		// buffer เต็ม — ทิ้ง ไม่ยอม block การตัดสิน
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS อัปเกรด connection แล้วค้างไว้จนฝั่ง client ปิด
func (h *ModerationHub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	h.register <- conn

	// client ไม่ต้องส่งอะไร อ่านเพื่อรอ close อย่างเดียว
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
