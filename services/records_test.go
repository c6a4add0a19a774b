package services_test

import (
	"testing"

	"api/models"
	"api/services"

	. "github.com/smartystreets/goconvey/convey"
)

func strPtr(s string) *string {
	return &s
}

func TestChainRecords(t *testing.T) {
	Convey("Given a supersession chain of three records", t, func() {
		// r1 (first holder) <- r2 <- r3 (current)
		rows := []models.Record{
			{ID: "r2", Score: 95, PredecessorID: strPtr("r1")},
			{ID: "r1", Score: 90},
			{ID: "r3", Score: 98, PredecessorID: strPtr("r2"), IsCurrent: true},
		}

		Convey("When chaining them", func() {
			chain := services.ChainRecords(rows)

			Convey("Then the walk starts at the current record, newest first", func() {
				So(chain, ShouldHaveLength, 3)
				So(chain[0].ID, ShouldEqual, "r3")
				So(chain[1].ID, ShouldEqual, "r2")
				So(chain[2].ID, ShouldEqual, "r1")
			})

			Convey("Then only the head is current", func() {
				So(chain[0].IsCurrent, ShouldBeTrue)
				So(chain[1].IsCurrent, ShouldBeFalse)
				So(chain[2].IsCurrent, ShouldBeFalse)
			})
		})
	})

	Convey("Given a single record with no predecessor", t, func() {
		rows := []models.Record{{ID: "r1", Score: 90, IsCurrent: true}}

		Convey("Then the chain is just that record", func() {
			chain := services.ChainRecords(rows)
			So(chain, ShouldHaveLength, 1)
			So(chain[0].ID, ShouldEqual, "r1")
		})
	})

	Convey("Given rows with no current head", t, func() {
		rows := []models.Record{{ID: "r1", Score: 90}}

		Convey("Then the chain is empty", func() {
			So(services.ChainRecords(rows), ShouldBeNil)
		})
	})

	Convey("Given a dangling predecessor reference", t, func() {
		rows := []models.Record{
			{ID: "r3", Score: 98, PredecessorID: strPtr("gone"), IsCurrent: true},
		}

		Convey("Then the walk stops at the missing link", func() {
			chain := services.ChainRecords(rows)
			So(chain, ShouldHaveLength, 1)
		})
	})
}
