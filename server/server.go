package server

import (
	"embed"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/lguibr/solopong/bollywood"
	"github.com/lguibr/solopong/internal/log"
	"golang.org/x/net/websocket"
)

//go:embed static/index.html
var staticFiles embed.FS

// Server exposes one session over HTTP and WebSocket.
type Server struct {
	engine     *bollywood.Engine
	sessionPID *bollywood.PID
	logger     *log.Logger
	viewerSeq  atomic.Uint64
}

func New(engine *bollywood.Engine, sessionPID *bollywood.PID, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		engine:     engine,
		sessionPID: sessionPID,
		logger:     logger,
	}
}

// Routes wires every endpoint onto a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleIndex())
	mux.HandleFunc("/state", s.HandleGetState())
	mux.HandleFunc("/reset", s.HandleReset())
	// No Handshake: terminal clients dial without an Origin header.
	mux.Handle("/subscribe", websocket.Server{Handler: s.HandleSubscribe()})
	return mux
}

func (s *Server) nextViewerID(addr string) string {
	return fmt.Sprintf("viewer-%d@%s", s.viewerSeq.Add(1), addr)
}
