package spectate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mpihlak/goracer/log"
	"github.com/mpihlak/goracer/pkg/race"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler streams a headless race to every websocket client. Each
// connection gets its own race with both cars on autopilot.
type Handler struct {
	settings      race.Settings
	frameInterval time.Duration // wall-clock pacing of frames
	frameStep     time.Duration // simulated time per frame
}

type Option func(h *Handler)

// WithFrameInterval sets how often a frame is simulated and sent.
func WithFrameInterval(d time.Duration) Option {
	return func(h *Handler) {
		h.frameInterval = d
	}
}

// WithFrameStep sets the simulated time of one frame.
func WithFrameStep(d time.Duration) Option {
	return func(h *Handler) {
		h.frameStep = d
	}
}

func NewHandler(s race.Settings, opts ...Option) *Handler {
	h := &Handler{
		settings:      s,
		frameInterval: time.Second / 60,
		frameStep:     time.Second / 60,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", log.ErrorField(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go readPump(conn, cancel)

	log.Info("spectator connected", log.String("remote", r.RemoteAddr))
	err = h.stream(ctx, conn)
	switch {
	case err == nil:
		log.Info("spectator race finished", log.String("remote", r.RemoteAddr))
	case errors.Is(err, context.Canceled):
		log.Info("spectator left", log.String("remote", r.RemoteAddr))
	default:
		log.Warn("spectator stream failed", log.String("remote", r.RemoteAddr), log.ErrorField(err))
	}
}

// readPump discards incoming messages and cancels the stream once the
// client goes away.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("spectator read", log.ErrorField(err))
			}
			return
		}
	}
}

func writeJSON(conn *websocket.Conn, msg Message) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

// stream runs one race to the end, sending a snapshot after every frame and
// the result last.
func (h *Handler) stream(ctx context.Context, conn *websocket.Conn) error {
	rc, err := race.New(h.settings, race.WithAutopilot())
	if err != nil {
		return fmt.Errorf("new race: %w", err)
	}
	rc.Begin()

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	var (
		d        *race.Driver
		writeErr error
	)
	d = race.NewDriver(rc, race.WithFrameHook(func(r *race.Race) {
		if writeErr != nil {
			return
		}
		writeErr = writeJSON(conn, Message{Type: TypeSnapshot, Payload: NewSnapshot(r, d.Frames())})
		if writeErr != nil {
			stop()
		}
	}))

	err = d.Run(runCtx, pace(runCtx, h.frameInterval, h.frameStep))
	if writeErr != nil {
		return fmt.Errorf("write snapshot: %w", writeErr)
	}
	if err != nil {
		return err
	}
	if !rc.Phase().Terminal() {
		// Frame clock closed underneath us
		return ctx.Err()
	}

	if err := writeJSON(conn, Message{Type: TypeResult, Payload: rc.Result()}); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "race over"),
		time.Now().Add(writeWait))
}

// pace emits a synthetic clock advancing by step, one reading per interval
// of wall-clock time. The channel is closed when ctx ends.
func pace(ctx context.Context, interval, step time.Duration) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var now time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				now = now.Add(step)
				select {
				case out <- now:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
