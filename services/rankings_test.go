package services

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func groupRounds(scores ...float64) []RoundScore {
	rounds := make([]RoundScore, 0, len(scores))
	for i, score := range scores {
		rounds = append(rounds, RoundScore{
			DisciplineID:   "d1",
			DisciplineName: "TIRO DE PRECISION",
			CategoryID:     "c1",
			CategoryName:   "Open",
			EntryID:        fmt.Sprintf("e%d", i+1),
			AthleteID:      fmt.Sprintf("a%d", i+1),
			AthleteName:    fmt.Sprintf("Athlete %d", i+1),
			ClubID:         fmt.Sprintf("club%d", i+1),
			ClubName:       fmt.Sprintf("Club %d", i+1),
			Score:          score,
			SortKey:        score,
		})
	}
	return rounds
}

func TestRankGroup(t *testing.T) {
	Convey("Given a group with exactly 2 entries", t, func() {
		ranked := RankGroup(groupRounds(95, 88))

		Convey("Only the winner accrues points", func() {
			So(ranked, ShouldHaveLength, 2)
			So(ranked[0].EntryID, ShouldEqual, "e1")
			So(ranked[0].Points, ShouldEqual, 10)
			So(ranked[1].Points, ShouldEqual, 0)
		})
	})

	Convey("Given a group with exactly 3 entries", t, func() {
		ranked := RankGroup(groupRounds(80, 95, 70))

		Convey("Only the top two accrue points", func() {
			So(ranked[0].AthleteID, ShouldEqual, "a2")
			So(ranked[0].Points, ShouldEqual, 10)
			So(ranked[1].Points, ShouldEqual, 7)
			So(ranked[2].Points, ShouldEqual, 0)
		})
	})

	Convey("Given a group with 5 entries", t, func() {
		ranked := RankGroup(groupRounds(50, 40, 30, 20, 10))

		Convey("Everyone accrues points, 5th from the table", func() {
			So(ranked[0].Points, ShouldEqual, 10)
			So(ranked[1].Points, ShouldEqual, 7)
			So(ranked[2].Points, ShouldEqual, 5)
			So(ranked[3].Points, ShouldEqual, 4)
			So(ranked[4].Points, ShouldEqual, 3)
		})
	})

	Convey("Given a group with 8 entries", t, func() {
		ranked := RankGroup(groupRounds(80, 70, 60, 50, 40, 30, 20, 10))

		Convey("Positions beyond the table score a single point", func() {
			So(ranked[5].Points, ShouldEqual, 2)
			So(ranked[6].Points, ShouldEqual, 1)
			So(ranked[7].Points, ShouldEqual, 1)
		})
	})

	Convey("Given a single lonely entry", t, func() {
		ranked := RankGroup(groupRounds(99))

		Convey("It is listed but scores nothing", func() {
			So(ranked, ShouldHaveLength, 1)
			So(ranked[0].Position, ShouldEqual, 1)
			So(ranked[0].Points, ShouldEqual, 0)
		})
	})

	Convey("Given an entry with several rounds", t, func() {
		rounds := groupRounds(50, 60)
		rounds = append(rounds, RoundScore{
			DisciplineID: "d1", CategoryID: "c1",
			EntryID: "e1", AthleteID: "a1", Score: 45, SortKey: 45,
		})
		ranked := RankGroup(rounds)

		Convey("Its rounds are summed into one aggregate total", func() {
			So(ranked[0].EntryID, ShouldEqual, "e1")
			So(ranked[0].Total, ShouldEqual, 95)
			So(ranked[1].Total, ShouldEqual, 60)
		})
	})

	Convey("Given two entries tied on score where one carries a finer sort key", t, func() {
		rounds := groupRounds(16, 16)
		rounds[0].SortKey = 16.0001
		ranked := RankGroup(rounds)

		Convey("The sort key decides the order", func() {
			So(ranked[0].EntryID, ShouldEqual, "e1")
			So(ranked[0].Points, ShouldEqual, 10)
			So(ranked[1].Points, ShouldEqual, 0)
		})
	})
}

func TestAggregateSeason(t *testing.T) {
	Convey("Given rounds spanning two categories of one discipline", t, func() {
		rounds := groupRounds(90, 80, 70, 60)
		second := groupRounds(55, 65)
		for i := range second {
			second[i].CategoryID = "c2"
			second[i].CategoryName = "Damas"
		}
		rounds = append(rounds, second...)

		athletes, clubs := AggregateSeason(rounds)

		Convey("Athlete points accumulate across categories", func() {
			standings := athletes["TIRO DE PRECISION"]
			So(standings, ShouldNotBeEmpty)
			// a1 wins the open category (10) and loses the two-entry
			// second category (0) for 10 points over 2 events
			var a1 AthleteStanding
			for _, s := range standings {
				if s.AthleteID == "a1" {
					a1 = s
				}
			}
			So(a1.Points, ShouldEqual, 10)
			So(a1.Events, ShouldEqual, 2)
		})

		Convey("Standings are sorted by points descending", func() {
			standings := athletes["TIRO DE PRECISION"]
			for i := 1; i < len(standings); i++ {
				So(standings[i-1].Points, ShouldBeGreaterThanOrEqualTo, standings[i].Points)
			}
		})

		Convey("Clubs earn one point per podium placement", func() {
			points := map[string]int{}
			for _, club := range clubs {
				points[club.ClubID] = club.Points
			}
			// club1: 1st in open plus 2nd in the second category
			So(points["club1"], ShouldEqual, 2)
			So(points["club2"], ShouldEqual, 2)
			So(points["club3"], ShouldEqual, 1)
			So(points["club4"], ShouldEqual, 0)
		})

		Convey("Club table is sorted by points descending", func() {
			for i := 1; i < len(clubs); i++ {
				So(clubs[i-1].Points, ShouldBeGreaterThanOrEqualTo, clubs[i].Points)
			}
		})
	})

	Convey("Given no rounds at all", t, func() {
		athletes, clubs := AggregateSeason(nil)

		Convey("Both tables come back empty", func() {
			So(athletes, ShouldBeEmpty)
			So(clubs, ShouldBeEmpty)
		})
	})
}
