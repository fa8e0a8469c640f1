package notifications

import (
	"net/http"
	"time"

	"artisan-storefront/internal/api/respond"
	"artisan-storefront/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

func List(c *gin.Context) {
	items, err := middleware.CurrentStore(c).Notifications(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items})
}

type Stream struct {
	Upgrader websocket.Upgrader
	Log      *logrus.Entry
}

// NewStream accepts upgrades only from allowedOrigin; an empty origin allows any.
func NewStream(allowedOrigin string, log *logrus.Entry) *Stream {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Stream{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "" || origin == "" || origin == allowedOrigin
			},
		},
		Log: log,
	}
}

// Serve pushes added/expired notification events to the socket until the
// client goes away or the session closes.
func (s *Stream) Serve(c *gin.Context) {
	st := middleware.CurrentStore(c)
	events, cancel, err := st.Subscribe(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	defer cancel()

	conn, err := s.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Reads only serve to notice the client closing.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"),
					time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				s.Log.WithError(err).Debug("websocket write failed")
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-gone:
			return
		}
	}
}
