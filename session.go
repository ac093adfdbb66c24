package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Conn is the slice of *websocket.Conn the hub needs. Tests substitute fakes.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// session is the outbound half of one client connection. Frames are enqueued
// onto a buffered channel and drained by a single write pump, so everything
// enqueued under a room's lock reaches the wire in processing order.
type session struct {
	id   string
	conn Conn

	send chan []byte
	done chan struct{}
	once sync.Once
}

func newSession(id string, conn Conn) *session {
	return &session{
		id:   id,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}
}

// enqueue hands a frame to the write pump without blocking. A full buffer
// means the consumer has stalled well past anything latency-tolerable; the
// caller drops the connection in that case.
func (s *session) enqueue(data []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.send <- data:
		return true
	default:
		return false
	}
}

func (s *session) close() {
	s.once.Do(func() {
		close(s.done)
	})
}

// run drains the send queue until the session closes or a write fails.
func (s *session) run(onWriteError func()) {
	defer s.conn.Close()
	for {
		select {
		case <-s.done:
			return
		case data := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.close()
				if onWriteError != nil {
					onWriteError()
				}
				return
			}
		}
	}
}
