package types

import (
	"time"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"
)

// writeWait bounds every write to a watcher; a watcher that cannot take a
// message in time is disconnected.
const writeWait = 10 * time.Second

type Watcher struct {
	id   string
	conn *websocket.Conn
}

func NewWatcher(conn *websocket.Conn) *Watcher {
	return &Watcher{
		id:   uuid.NewV4().String(),
		conn: conn,
	}
}

func (w *Watcher) GetId() string {
	return w.id
}

func (w *Watcher) WriteJSON(v interface{}) error {
	if err := w.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return w.conn.WriteJSON(v)
}

func (w *Watcher) WriteMessage(data []byte) error {
	if err := w.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return w.conn.WriteMessage(websocket.TextMessage, data)
}
