package realtime

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"mockup-canvas-server/modules/common/model"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 모든 origin 허용 (프론트엔드 도메인이 여러 개)
		return true
	},
}

// Client - job을 구독 중인 websocket 연결
type Client struct {
	id     string
	conn   *websocket.Conn
	jobID  string
	userID string
	send   chan []byte
}

// Session - 한 job의 구독자 묶음
type Session struct {
	jobID        string
	clients      map[string]*Client
	mutex        sync.Mutex
	createdAt    time.Time
	lastActivity time.Time
}

// Metrics - 허브 카운터
type Metrics struct {
	TotalSessions     int       `json:"totalSessions"`
	ActiveSessions    int       `json:"activeSessions"`
	TotalConnections  int       `json:"totalConnections"`
	CurrentClients    int       `json:"currentClients"`
	PublishedMessages int       `json:"publishedMessages"`
	StartTime         time.Time `json:"startTime"`
	Uptime            string    `json:"uptime"`
}

// SnapshotFunc - 구독 직후 보낼 현재 job 상태 (없으면 nil)
type SnapshotFunc func(jobID string) *model.JobEvent

// Hub - job별 세션 관리 + 상태 전이 브로드캐스트
type Hub struct {
	sessions map[string]*Session
	mutex    sync.RWMutex
	metrics  Metrics
	nextID   int
	snapshot SnapshotFunc
}

// NewHub - 허브 생성
func NewHub(snapshot SnapshotFunc) *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
		metrics:  Metrics{StartTime: time.Now()},
		snapshot: snapshot,
	}
}

// getOrCreateSession - 세션 가져오기 또는 생성
func (h *Hub) getOrCreateSession(jobID string) *Session {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	session, exists := h.sessions[jobID]
	if !exists {
		now := time.Now()
		session = &Session{
			jobID:        jobID,
			clients:      make(map[string]*Client),
			createdAt:    now,
			lastActivity: now,
		}
		h.sessions[jobID] = session
		h.metrics.TotalSessions++
		h.metrics.ActiveSessions++
		log.Printf("✅ [Hub] Created session for job %s (Active: %d)", jobID, h.metrics.ActiveSessions)
	}
	return session
}

// register - 클라이언트 추가
func (h *Hub) register(jobID, userID string, conn *websocket.Conn) (*Session, *Client) {
	h.mutex.Lock()
	h.nextID++
	id := fmt.Sprintf("%s#%d", userID, h.nextID)
	h.metrics.TotalConnections++
	h.mutex.Unlock()

	client := &Client{
		id:     id,
		conn:   conn,
		jobID:  jobID,
		userID: userID,
		send:   make(chan []byte, 256),
	}

	session := h.getOrCreateSession(jobID)
	session.mutex.Lock()
	session.clients[id] = client
	session.lastActivity = time.Now()
	count := len(session.clients)
	session.mutex.Unlock()

	log.Printf("👤 [Hub] %s subscribed to job %s (Clients: %d)", userID, jobID, count)
	return session, client
}

// removeClient - 클라이언트를 세션에서 제거
func (s *Session) removeClient(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if client, exists := s.clients[id]; exists {
		close(client.send)
		delete(s.clients, id)
		s.lastActivity = time.Now()
		log.Printf("👋 [Hub] %s left job %s (Remaining: %d)", client.userID, s.jobID, len(s.clients))
	}
}

// broadcast - 세션 전체에 전송 (버퍼가 찬 클라이언트는 끊음)
func (s *Session) broadcast(message []byte) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sent := 0
	for id, client := range s.clients {
		select {
		case client.send <- message:
			sent++
		default:
			close(client.send)
			delete(s.clients, id)
		}
	}
	s.lastActivity = time.Now()
	return sent
}

// Publish - job 이벤트를 구독자에게 전송
func (h *Hub) Publish(event model.JobEvent) {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}

	h.mutex.RLock()
	session, exists := h.sessions[event.JobID]
	h.mutex.RUnlock()
	if !exists {
		return
	}

	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ [Hub] Error marshaling event: %v", err)
		return
	}

	sent := session.broadcast(message)

	h.mutex.Lock()
	h.metrics.PublishedMessages++
	h.mutex.Unlock()

	if sent > 0 {
		log.Printf("📢 [Hub] job %s %s=%s%s → %d client(s)", event.JobID, event.Type, event.Status, event.State, sent)
	}
}

// PublishState - 오케스트레이터 상태 전이
func (h *Hub) PublishState(jobID, state string) {
	h.Publish(model.JobEvent{Type: "state", JobID: jobID, State: state})
}

// PublishJob - job 상태 변경 (processing/completed/failed/user_cancelled)
func (h *Hub) PublishJob(job *model.MockupJob) {
	h.Publish(EventFromJob(job))
}

// EventFromJob - job 레코드 → 이벤트
func EventFromJob(job *model.MockupJob) model.JobEvent {
	return model.JobEvent{
		Type:         "status",
		JobID:        job.JobID,
		Status:       job.Status,
		State:        job.State,
		ErrorKind:    job.ErrorKind,
		ErrorMessage: job.ErrorMessage,
		ResultURL:    job.ResultURL,
		Timestamp:    job.UpdatedAt.UnixMilli(),
	}
}

// HandleWebSocket - GET /ws?job=<id>&user=<id>
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("job")
	userID := r.URL.Query().Get("user")
	if jobID == "" {
		http.Error(w, `{"error": "job parameter is required"}`, http.StatusBadRequest)
		return
	}
	if userID == "" {
		userID = "anonymous"
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ [Hub] WebSocket upgrade failed: %v", err)
		return
	}

	session, client := h.register(jobID, userID, conn)

	// 현재 상태 먼저 전송 (구독 전에 끝난 job 대비)
	if h.snapshot != nil {
		if event := h.snapshot(jobID); event != nil {
			if message, err := json.Marshal(event); err == nil {
				client.send <- message
			}
		}
	}

	go client.writePump()
	go client.readPump(session)
}

// readPump - 클라이언트 메시지는 무시, 연결 종료만 감지
func (c *Client) readPump(session *Session) {
	defer func() {
		session.removeClient(c.id)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("⚠️  [Hub] WebSocket error: %v", err)
			}
			return
		}
	}
}

// writePump - send 채널 → websocket
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("⚠️  [Hub] WebSocket write error: %v", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// cleanupEmptySessions - 구독자가 없는 세션 정리
func (h *Hub) cleanupEmptySessions() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	cleaned := 0
	for jobID, session := range h.sessions {
		session.mutex.Lock()
		isEmpty := len(session.clients) == 0
		session.mutex.Unlock()

		if isEmpty {
			delete(h.sessions, jobID)
			h.metrics.ActiveSessions--
			cleaned++
		}
	}

	if cleaned > 0 {
		log.Printf("🧹 [Hub] Cleaned up %d empty sessions (Active: %d)", cleaned, h.metrics.ActiveSessions)
	}
	return cleaned
}

// StartCleanupRoutine - 5분마다 빈 세션 정리
func (h *Hub) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			h.cleanupEmptySessions()
		}
	}()
	log.Printf("🔄 [Hub] Started session cleanup routine (every 5min)")
}

// Metrics - 현재 카운터 스냅샷
func (h *Hub) Metrics() Metrics {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	m := h.metrics
	for _, session := range h.sessions {
		session.mutex.Lock()
		m.CurrentClients += len(session.clients)
		session.mutex.Unlock()
	}
	m.Uptime = time.Since(m.StartTime).Round(time.Second).String()
	return m
}
