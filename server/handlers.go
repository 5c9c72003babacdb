// File: server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lguibr/solopong/codec"
	"github.com/lguibr/solopong/game"
	"golang.org/x/net/websocket"
)

const (
	// askTimeout bounds how long an HTTP request waits on the session actor.
	askTimeout = 500 * time.Millisecond
	// writeTimeout bounds one frame write; a viewer that stops reading
	// fails its next write and is dropped.
	writeTimeout = 2 * time.Second
)

// wsSink writes frames to one websocket connection.
type wsSink struct {
	conn    *websocket.Conn
	codec   codec.Codec
	timeout time.Duration
}

func (w *wsSink) Deliver(frame game.Frame) error {
	data, err := w.codec.Marshal(frame)
	if err != nil {
		return err
	}
	if err := w.conn.SetWriteDeadline(time.Now().Add(w.timeout)); err != nil {
		return err
	}
	if w.codec.Binary() {
		return websocket.Message.Send(w.conn, data)
	}
	return websocket.Message.Send(w.conn, string(data))
}

// HandleSubscribe registers the connection as a viewer of the session and
// forwards its pointer messages until it goes away.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.Request().RemoteAddr
		defer func() {
			if r := recover(); r != nil {
				s.logger.Errorf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s", connectionAddr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		c, err := codec.Lookup(ws.Request().URL.Query().Get("codec"))
		if err != nil {
			s.logger.Warnf("HandleSubscribe: %s: %v", connectionAddr, err)
			_ = websocket.JSON.Send(ws, map[string]string{"error": err.Error()})
			return
		}

		viewerID := s.nextViewerID(connectionAddr)
		s.engine.Send(s.sessionPID, game.Subscribe{ID: viewerID, Sink: &wsSink{conn: ws, codec: c, timeout: writeTimeout}}, nil)
		s.logger.Infof("HandleSubscribe: %s connected (codec %s)", viewerID, c.Name())

		s.readLoop(ws, viewerID)

		s.engine.Send(s.sessionPID, game.Unsubscribe{ID: viewerID}, nil)
		s.logger.Infof("HandleSubscribe: %s disconnected", viewerID)
	}
}

// readLoop forwards pointer messages to the session until the connection
// fails.
func (s *Server) readLoop(conn *websocket.Conn, viewerID string) {
	for {
		var move game.PointerMove
		err := websocket.JSON.Receive(conn, &move)
		if err != nil {
			if isClosedErr(err) {
				return
			}
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				s.logger.Debugf("ReadLoop: %s sent malformed pointer message: %v", viewerID, err)
				continue
			}
			s.logger.Warnf("ReadLoop: error receiving from %s: %v", viewerID, err)
			return
		}
		s.engine.Send(s.sessionPID, move, nil)
	}
}

func isClosedErr(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	return strings.Contains(err.Error(), "use of closed network connection")
}

// HandleGetState returns the session's current frame as JSON.
func (s *Server) HandleGetState() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Errorf("PANIC recovered in HandleGetState: %v\nStack trace:\n%s", rec, string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		reply, err := s.engine.Ask(s.sessionPID, game.GetFrameRequest{}, askTimeout)
		if err != nil {
			s.logger.Warnf("HandleGetState: %v", err)
			http.Error(w, "Session unavailable", http.StatusServiceUnavailable)
			return
		}
		frame, ok := reply.(game.Frame)
		if !ok {
			s.logger.Errorf("HandleGetState: unexpected reply type %T", reply)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(frame); err != nil {
			s.logger.Warnf("HandleGetState: writing response: %v", err)
		}
	}
}

// HandleReset restarts the session.
func (s *Server) HandleReset() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		s.engine.Send(s.sessionPID, game.ResetSession{}, nil)
		w.WriteHeader(http.StatusAccepted)
	}
}

// HandleIndex serves the canvas page.
func (s *Server) HandleIndex() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		page, err := staticFiles.ReadFile("static/index.html")
		if err != nil {
			s.logger.Errorf("HandleIndex: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}
}
