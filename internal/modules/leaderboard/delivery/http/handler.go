package http

import (
	"net/http"
	"time"

	leaderboardService "anoa.com/internfundraiser/internal/modules/leaderboard/service"
	"anoa.com/internfundraiser/pkg/dto"
	"anoa.com/internfundraiser/pkg/logger"
	"anoa.com/internfundraiser/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

type LeaderboardHandler struct {
	service  leaderboardService.LeaderboardService
	interval time.Duration
	upgrader websocket.Upgrader
}

// NewLeaderboardHandler pushes a fresh snapshot to websocket subscribers every interval.
// Browser origins must appear in allowedOrigins; requests without an Origin header are accepted.
func NewLeaderboardHandler(service leaderboardService.LeaderboardService, interval time.Duration, allowedOrigins []string) *LeaderboardHandler {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = struct{}{}
	}

	return &LeaderboardHandler{
		service:  service,
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := origins[origin]
				return ok
			},
		},
	}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.service.GetLeaderboard(c.Request.Context())
	if err != nil {
		response.Failure(c, err, "Error fetching leaderboard data")
		return
	}

	response.Success(c, entries)
}

func (h *LeaderboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.GetSummary(c.Request.Context())
	if err != nil {
		response.Failure(c, err, "Error computing leaderboard summary")
		return
	}

	response.Success(c, summary)
}

func (h *LeaderboardHandler) StreamLeaderboard(c *gin.Context) {
	log := logger.FromContext(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("failed to upgrade websocket", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()

	// Drain client frames so close messages are noticed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	push := func() error {
		snapshot, err := h.service.GetSnapshot(ctx)
		var msg dto.Response
		if err != nil {
			log.Error("failed to build leaderboard snapshot", zap.Error(err))
			msg = dto.Response{Success: false, Message: "Error fetching leaderboard data"}
		} else {
			msg = dto.Response{Success: true, Data: snapshot}
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(msg)
	}

	if err := push(); err != nil {
		log.Debug("websocket write failed", zap.Error(err))
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := push(); err != nil {
				log.Debug("websocket write failed", zap.Error(err))
				return
			}
		}
	}
}
