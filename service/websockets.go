package service

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Comcast/kmpviz/util"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ws handles one websocket connection.
//
// Each connection gets its own Controller, which starts with the
// configured pattern.  Ops are processed in the order they arrive,
// and each one gets a Reply.
func (s *Service) ws(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{}
	if s.cfg.AllowAllOrigins {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}

	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		util.Warnf("ws upgrade error %v", err)
		return
	}
	defer c.Close()

	var (
		ctx  = r.Context()
		id   = uuid.NewString()
		ctl  = NewController(s.cfg.Pattern)
		done = make(chan struct{})
	)
	defer close(done)

	// A read blocks, so close the connection to stop it when the
	// request context is done.
	go func() {
		select {
		case <-ctx.Done():
			c.Close()
		case <-done:
		}
	}()

	util.Logf("ws %s open from %s", id, r.RemoteAddr)
	defer util.Logf("ws %s closed", id)

	for {
		_, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				util.Logf("ws %s read error %v", id, err)
			}
			return
		}

		var reply *Reply

		var op Op
		if err := json.Unmarshal(message, &op); err != nil {
			reply = erred(fmt.Errorf("can't parse: %w", err))
		} else if reply, err = op.Do(ctx, ctl, s.cfg.Width); err != nil {
			util.Logf("ws %s op error %v", id, err)
			reply = erred(err)
		}

		util.Logf("ws %s %s -> %s", id, message, ctl.Tracker())

		if err = c.WriteJSON(reply); err != nil {
			util.Warnf("ws %s write error %v", id, err)
			return
		}
	}
}
