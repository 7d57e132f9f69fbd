package socketapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/delta/pon-sentimen-dashboard/session"
)

const (
	maxMessageSize = 4096
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
)

type client struct {
	conn *websocket.Conn
	sess session.Session
	send chan interface{}
	done chan struct{}
	id   uuid.UUID
}

type Client interface {
	WritePump()
	ReadPump()
	Send() chan interface{}
	Done() <-chan struct{}
	GetSession() session.Session
	GetUUID() string
}

func NewClient(done chan struct{}, send chan interface{}, conn *websocket.Conn, sess session.Session) Client {
	return &client{
		conn: conn,
		sess: sess,
		send: send,
		done: done,
		id:   uuid.New(),
	}
}

func (c *client) Done() <-chan struct{} {
	return c.done
}

func (c *client) Send() chan interface{} {
	return c.send
}

func (c *client) GetSession() session.Session {
	return c.sess
}

func (c *client) GetUUID() string {
	return c.id.String()
}

type errorMessage struct {
	Error string `json:"error"`
}

// predict classifies text and returns the JSON frame to send back
func (c *client) predict(ctx context.Context, text string) string {
	var l = socketApiLogger.WithFields(logrus.Fields{
		"method": "client.predict",
		"client": c.GetUUID(),
	})

	var reply interface{}
	if p, err := getPredictor(); err != nil {
		reply = errorMessage{err.Error()}
	} else if pred, err := p.Predict(ctx, text); err != nil {
		reply = errorMessage{err.Error()}
	} else {
		if err := session.SetLastPrediction(c.sess, pred.Label); err != nil {
			l.Warnf("Could not store last prediction: %+v", err)
		}
		reply = pred
	}

	b, err := json.Marshal(reply)
	if err != nil {
		l.Errorf("Failed marshalling reply: %+v", err)
		b, _ = json.Marshal(errorMessage{err.Error()})
	}
	return string(b)
}

func (c *client) ReadPump() {
	var l = socketApiLogger.WithFields(logrus.Fields{
		"method": "client.ReadPump",
		"client": c.GetUUID(),
	})

	ctx, cancel := context.WithCancel(context.Background())

	defer func() {
		l.Debugf("Closing connection")
		cancel()
		close(c.send)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, bytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				l.Errorf("Error in receving from websocket: '%v'", err)
			}
			break
		}

		if msgType != websocket.TextMessage {
			l.Warnf("Dropping client sending a non-text frame")
			break
		}

		reply := "pong"
		if string(bytes) != "ping" {
			reply = c.predict(ctx, string(bytes))
		}

		select {
		case c.send <- reply:
		case <-c.done:
			return
		}
	}
}

func (c *client) WritePump() {
	var l = socketApiLogger.WithFields(logrus.Fields{
		"method": "client.WritePump",
		"client": c.GetUUID(),
	})

	pingTicker := time.NewTicker(pingPeriod)

	defer func() {
		l.Debugf("Closing connection")
		pingTicker.Stop()
		c.conn.Close()
		close(c.done)
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			text, isString := msg.(string)
			if !isString {
				l.Errorf("Message should be a string. Given %T", msg)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
				l.Errorf("Error writing message. Stopping. '%v'", err)
				return
			}

		case <-pingTicker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				l.Errorf("Error sending ping message. Stopping. '%v'", err)
				return
			}
		}
	}
}
