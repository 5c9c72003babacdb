// Command pongterm watches and plays a solopong session from a terminal.
// w/s (or k/j) move the paddle, q quits.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"
	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/solopong/game"
	"github.com/lguibr/solopong/internal/log"
	"github.com/lguibr/solopong/render"
)

func main() {
	addr := flag.String("addr", "localhost:3001", "server host:port")
	cols := flag.Int("cols", 80, "render width in characters")
	rows := flag.Int("rows", 25, "render height in lines")
	color := flag.Bool("color", true, "colored output")
	step := flag.Float64("step", 25, "pointer movement per key press")
	logLevel := flag.String("log-level", "error", "log level")
	flag.Parse()

	logger := log.New(os.Stderr, log.LevelFromString(*logLevel))
	if err := run(*addr, render.Options{Cols: *cols, Rows: *rows, Color: *color}, *step, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(addr string, opts render.Options, step float64, logger *log.Logger) error {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/subscribe", RawQuery: "codec=json"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", u.String(), err)
	}
	defer conn.Close()

	// The first frame tells us the playfield size the pointer moves in.
	first, err := readFrame(conn)
	if err != nil {
		return fmt.Errorf("reading first frame: %w", err)
	}
	pointer := newVirtualPointer(first.Snapshot.Field.Height, step)

	helpers.ClearScreen()
	disconnected := make(chan error, 1)
	go func() {
		for {
			frame, err := readFrame(conn)
			if err != nil {
				logger.Debugf("reading from server: %v", err)
				select {
				case disconnected <- err:
				default:
				}
				return
			}
			fmt.Print("\033[H" + render.RenderToASCII(frame, opts))
		}
	}()

	restore, err := setRawMode(os.Stdin.Fd())
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	defer restore()

	interruptSignalChannel := make(chan os.Signal, 1)
	signal.Notify(interruptSignalChannel, os.Interrupt)
	go func() {
		<-interruptSignalChannel
		restore()
		os.Exit(0)
	}()

	keys := make(chan byte)
	go readKeys(os.Stdin, keys, disconnected)

	err = pumpKeys(keys, disconnected, pointer, func(move game.PointerMove) error {
		return conn.WriteJSON(move)
	})
	if err == nil {
		fmt.Println("Quitting game")
	}
	return err
}

// readKeys forwards single bytes from r until it fails. The error goes to
// errs so the key loop stops too.
func readKeys(r io.Reader, keys chan<- byte, errs chan<- error) {
	singleByteBuffer := make([]byte, 1)
	for {
		if _, err := r.Read(singleByteBuffer); err != nil {
			select {
			case errs <- fmt.Errorf("reading stdin: %w", err):
			default:
			}
			return
		}
		keys <- singleByteBuffer[0]
	}
}

// pumpKeys turns key presses into pointer moves until the user quits or
// a failure arrives on stop. Quitting returns nil.
func pumpKeys(keys <-chan byte, stop <-chan error, pointer *virtualPointer, send func(game.PointerMove) error) error {
	for {
		select {
		case err := <-stop:
			return fmt.Errorf("session ended: %w", err)
		case key := <-keys:
			switch pointer.handleKey(key) {
			case keyQuit:
				return nil
			case keyMoved:
				if err := send(game.PointerMove{Y: pointer.y}); err != nil {
					return fmt.Errorf("sending to server: %w", err)
				}
			}
		}
	}
}

func readFrame(conn *websocket.Conn) (game.Frame, error) {
	var frame game.Frame
	_, data, err := conn.ReadMessage()
	if err != nil {
		return frame, err
	}
	err = json.Unmarshal(data, &frame)
	return frame, err
}
