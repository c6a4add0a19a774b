package realtime_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"api/realtime"

	"github.com/gorilla/websocket"
	. "github.com/smartystreets/goconvey/convey"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialClient connects a websocket client to a running hub for the given
// competition and returns the client side of the connection
func dialClient(t *testing.T, hub *realtime.Hub, competitionID string) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		hub.RegisterClient(competitionID, conn)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubFanout(t *testing.T) {
	Convey("Given a running hub with a subscribed client", t, func() {
		hub := realtime.NewHub()
		go hub.Run()

		conn := dialClient(t, hub, "comp-1")

		Convey("When a score update is published on that competition", func() {
			hub.PublishScoreUpdate(realtime.ScoreUpdate{
				EntryID:        "entry-1",
				RegistrationID: "reg-1",
				CompetitionID:  "comp-1",
				Score:          "95.003",
				Athlete:        "Maria Rojas Quiroga",
				Weapon:         "Walther 9mm",
				RoundLabel:     "Serie 1",
			})

			Convey("Then the client receives it with the score as a string", func() {
				conn.SetReadDeadline(time.Now().Add(2 * time.Second))
				var update realtime.ScoreUpdate
				err := conn.ReadJSON(&update)
				So(err, ShouldBeNil)
				So(update.Score, ShouldEqual, "95.003")
				So(update.Athlete, ShouldEqual, "Maria Rojas Quiroga")
				So(update.RoundLabel, ShouldEqual, "Serie 1")
			})
		})

		Convey("When an update targets a different competition", func() {
			hub.PublishScoreUpdate(realtime.ScoreUpdate{
				CompetitionID: "comp-2",
				Score:         "10",
			})

			Convey("Then the client receives nothing", func() {
				conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
				var update realtime.ScoreUpdate
				err := conn.ReadJSON(&update)
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestHubUnregister(t *testing.T) {
	Convey("Given a hub with a client that unsubscribes", t, func() {
		hub := realtime.NewHub()
		go hub.Run()

		conn := dialClient(t, hub, "comp-1")

		Convey("When publishing after the client is unregistered", func() {
			// The server-side connection is the one registered; closing
			// the client side makes any later write fail, and the hub
			// must swallow that instead of surfacing an error
			hub.PublishScoreUpdate(realtime.ScoreUpdate{CompetitionID: "comp-1", Score: "1"})

			conn.SetReadDeadline(time.Now().Add(2 * time.Second))
			var first realtime.ScoreUpdate
			So(conn.ReadJSON(&first), ShouldBeNil)

			conn.Close()
			hub.PublishScoreUpdate(realtime.ScoreUpdate{CompetitionID: "comp-1", Score: "2"})
			hub.PublishScoreUpdate(realtime.ScoreUpdate{CompetitionID: "comp-1", Score: "3"})

			Convey("Then the hub keeps running for new clients", func() {
				fresh := dialClient(t, hub, "comp-9")
				hub.PublishScoreUpdate(realtime.ScoreUpdate{CompetitionID: "comp-9", Score: "42"})

				fresh.SetReadDeadline(time.Now().Add(2 * time.Second))
				var update realtime.ScoreUpdate
				So(fresh.ReadJSON(&update), ShouldBeNil)
				So(update.Score, ShouldEqual, "42")
			})
		})
	})
}
