package handler

import (
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/bytearena/visgraph/common/utils"
	"github.com/bytearena/visgraph/vizserver/types"
	"github.com/gorilla/websocket"
)

func Websocket(watchers *types.WatcherMap) func(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		watcher := types.NewWatcher(c)
		watchers.Set(watcher.GetId(), watcher)

		eventchan := make(chan interface{}, 64)
		notify.Start(types.EventChannel, eventchan)

		defer func() {
			notify.Stop(types.EventChannel, eventchan)
			watchers.Remove(watcher.GetId())
			c.Close()
		}()

		// the client may post its scene as soon as it got this
		if err := watcher.WriteJSON(types.Event{Type: types.EventInit}); err != nil {
			utils.Debug("viz-server", "Could not send init event;"+err.Error())
			return
		}

		// reading is mandatory to notice when the websocket is closed client side
		clientclosedsocket := make(chan struct{})
		go func() {
			defer close(clientclosedsocket)
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-clientclosedsocket:
				return
			case event := <-eventchan:
				data, ok := event.(string)
				utils.Assert(ok, "Failed to cast event into string")

				if err := watcher.WriteMessage([]byte(data)); err != nil {
					return
				}
			}
		}
	}
}
