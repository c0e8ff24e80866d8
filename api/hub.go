package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hoshinonyaruko/snake-sim/structs"
)

const (
	writeTimeout = 5 * time.Second
	clientBuffer = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub 把每帧快照推送给所有websocket客户端。
// 客户端跟不上时直接丢帧，不阻塞模拟。
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
	closed  bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]chan []byte)}
}

// Serve 升级连接并一直推送，直到客户端断开
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, first structs.Frame) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	out := make(chan []byte, clientBuffer)
	// 注册之前先放入当前帧，注册之后通道只由hub关闭
	if msg, err := json.Marshal(first); err == nil {
		out <- msg
	}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return conn.Close()
	}
	h.clients[conn] = out
	h.mu.Unlock()

	// 读循环只用来发现断开
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(conn)
				return
			}
		}
	}()

	for msg := range out {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.remove(conn)
			break
		}
	}
	return conn.Close()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if out, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(out)
	}
}

// BroadcastFrame 序列化一次，发给所有客户端
func (h *Hub) BroadcastFrame(f structs.Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}
	msg, err := json.Marshal(f)
	if err != nil {
		log.Printf("marshal frame %d: %v", f.Tick, err)
		return
	}
	for _, out := range h.clients {
		select {
		case out <- msg:
		default:
		}
	}
}

// Clients 当前连接数
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close 断开所有客户端
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn, out := range h.clients {
		delete(h.clients, conn)
		close(out)
	}
}
