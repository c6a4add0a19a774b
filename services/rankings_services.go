package services

import (
	"fmt"
	"sort"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/utils/scoring"
)

// RoundScore is one counted scored round flattened for aggregation
type RoundScore struct {
	DisciplineID   string
	DisciplineName string
	CategoryID     string
	CategoryName   string
	EntryID        string
	AthleteID      string
	AthleteName    string
	ClubID         string
	ClubName       string
	Score          float64
	SortKey        float64
}

// RankedEntry is one entry's position inside a discipline/category group
type RankedEntry struct {
	EntryID     string  `json:"entry_id"`
	AthleteID   string  `json:"athlete_id"`
	AthleteName string  `json:"athlete_name"`
	ClubID      string  `json:"club_id"`
	ClubName    string  `json:"club_name"`
	Total       float64 `json:"total"`
	SortKey     float64 `json:"-"`
	Position    int     `json:"position"`
	Points      int     `json:"points"`
}

// AthleteStanding accumulates one athlete's season points in a discipline
type AthleteStanding struct {
	AthleteID   string  `json:"athlete_id"`
	AthleteName string  `json:"athlete_name"`
	ClubName    string  `json:"club_name"`
	Points      int     `json:"points"`
	Events      int     `json:"events"`
	BestScore   float64 `json:"best_score"`
}

// ClubStanding accumulates podium points per club
type ClubStanding struct {
	ClubID   string `json:"club_id"`
	ClubName string `json:"club_name"`
	Points   int    `json:"points"`
	Podiums  int    `json:"podiums"`
}

// AnnualRankings is the ranking query output: athlete standings grouped
// by discipline name plus the club table
type AnnualRankings struct {
	Year     int                          `json:"year"`
	Athletes map[string][]AthleteStanding `json:"athletes"`
	Clubs    []ClubStanding               `json:"clubs"`
}

// positionPoints is the point table for ranked positions 1st through
// 6th. Positions beyond it still inside the quorum score 1 point
var positionPoints = [...]int{10, 7, 5, 4, 3, 2}

// rankedPositions applies the quorum rule: with 2 competing entries only
// the winner scores, with 3 the top two, with 4 or more everyone.
// A single entry has nobody to beat and scores nothing
func rankedPositions(entryCount int) int {
	switch {
	case entryCount < 2:
		return 0
	case entryCount == 2:
		return 1
	case entryCount == 3:
		return 2
	default:
		return entryCount
	}
}

func pointsForPosition(position int) int {
	if position >= 1 && position <= len(positionPoints) {
		return positionPoints[position-1]
	}
	return 1
}

// RankGroup aggregates rounds of one (discipline, category) group by
// entry, orders by sort key and assigns positions and quorum points
func RankGroup(rounds []RoundScore) []RankedEntry {
	byEntry := map[string]*RankedEntry{}
	var order []string
	for _, round := range rounds {
		entry, ok := byEntry[round.EntryID]
		if !ok {
			entry = &RankedEntry{
				EntryID:     round.EntryID,
				AthleteID:   round.AthleteID,
				AthleteName: round.AthleteName,
				ClubID:      round.ClubID,
				ClubName:    round.ClubName,
			}
			byEntry[round.EntryID] = entry
			order = append(order, round.EntryID)
		}
		entry.Total += round.Score
		entry.SortKey += round.SortKey
	}

	ranked := make([]RankedEntry, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byEntry[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SortKey > ranked[j].SortKey
	})

	quorum := rankedPositions(len(ranked))
	for i := range ranked {
		ranked[i].Position = i + 1
		if i < quorum {
			ranked[i].Points = pointsForPosition(i + 1)
		}
	}
	return ranked
}

// AggregateSeason groups rounds per (discipline, category), ranks each
// group and folds the per-group points into athlete and club standings
func AggregateSeason(rounds []RoundScore) (map[string][]AthleteStanding, []ClubStanding) {
	type groupKey struct {
		disciplineID string
		categoryID   string
	}
	groups := map[groupKey][]RoundScore{}
	var groupOrder []groupKey
	disciplineNames := map[string]string{}
	for _, round := range rounds {
		key := groupKey{round.DisciplineID, round.CategoryID}
		if _, ok := groups[key]; !ok {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], round)
		disciplineNames[round.DisciplineID] = round.DisciplineName
	}

	type athleteKey struct {
		disciplineID string
		athleteID    string
	}
	athleteTotals := map[athleteKey]*AthleteStanding{}
	var athleteOrder []athleteKey
	clubTotals := map[string]*ClubStanding{}
	var clubOrder []string

	for _, key := range groupOrder {
		for _, entry := range RankGroup(groups[key]) {
			aKey := athleteKey{key.disciplineID, entry.AthleteID}
			standing, ok := athleteTotals[aKey]
			if !ok {
				standing = &AthleteStanding{
					AthleteID:   entry.AthleteID,
					AthleteName: entry.AthleteName,
					ClubName:    entry.ClubName,
				}
				athleteTotals[aKey] = standing
				athleteOrder = append(athleteOrder, aKey)
			}
			standing.Points += entry.Points
			standing.Events++
			if entry.Total > standing.BestScore {
				standing.BestScore = entry.Total
			}

			if entry.Position <= 3 && entry.ClubID != "" {
				club, ok := clubTotals[entry.ClubID]
				if !ok {
					club = &ClubStanding{ClubID: entry.ClubID, ClubName: entry.ClubName}
					clubTotals[entry.ClubID] = club
					clubOrder = append(clubOrder, entry.ClubID)
				}
				club.Points++
				club.Podiums++
			}
		}
	}

	athletes := map[string][]AthleteStanding{}
	for _, key := range athleteOrder {
		name := disciplineNames[key.disciplineID]
		athletes[name] = append(athletes[name], *athleteTotals[key])
	}
	for name := range athletes {
		standings := athletes[name]
		sort.SliceStable(standings, func(i, j int) bool {
			return standings[i].Points > standings[j].Points
		})
		athletes[name] = standings
	}

	clubs := make([]ClubStanding, 0, len(clubOrder))
	for _, id := range clubOrder {
		clubs = append(clubs, *clubTotals[id])
	}
	sort.SliceStable(clubs, func(i, j int) bool {
		return clubs[i].Points > clubs[j].Points
	})

	return athletes, clubs
}

// ComputeAnnualRankings loads every counted round of the season and
// aggregates the athlete and club tables. Counted means: finalized
// competitions starting in the year, approved non-guest registrations,
// rounds not disqualified
func ComputeAnnualRankings(year int) (AnnualRankings, error) {
	start := time.Now()

	var results []models.Result
	err := database.DB.
		Joins("JOIN registrations ON registrations.id = results.registration_id").
		Joins("JOIN competitions ON competitions.id = registrations.competition_id").
		Where("results.disqualified = false").
		Where("registrations.state = ? AND registrations.is_guest = false", models.RegistrationApproved).
		Where("competitions.status = ?", models.CompetitionFinalized).
		Where("EXTRACT(YEAR FROM competitions.start_date) = ?", year).
		Preload("Entry.Discipline").
		Preload("Entry.Category").
		Preload("Registration.Athlete").
		Preload("Registration.Club").
		Find(&results).Error
	if err != nil {
		return AnnualRankings{}, fmt.Errorf("failed to load season results: %w", err)
	}

	rounds := make([]RoundScore, 0, len(results))
	for _, result := range results {
		round, ok := flattenResult(result)
		if !ok {
			continue
		}
		rounds = append(rounds, round)
	}

	athletes, clubs := AggregateSeason(rounds)
	metrics.RecordDBOperation("compute_rankings", "results", start)
	return AnnualRankings{Year: year, Athletes: athletes, Clubs: clubs}, nil
}

// flattenResult projects one stored round into the aggregation input.
// The sort key defaults to the score; FBI rounds may carry a finer
// grained override inside the raw payload
func flattenResult(result models.Result) (RoundScore, bool) {
	entry := result.Entry
	registration := result.Registration
	if entry == nil || registration == nil || entry.Discipline == nil || entry.Category == nil {
		return RoundScore{}, false
	}

	round := RoundScore{
		DisciplineID:   entry.DisciplineID,
		DisciplineName: entry.Discipline.Name,
		CategoryID:     entry.CategoryID,
		CategoryName:   entry.Category.Name,
		EntryID:        entry.ID,
		AthleteID:      registration.AthleteID,
		Score:          result.Score,
		SortKey:        result.Score,
	}
	if registration.Athlete != nil {
		round.AthleteName = registration.Athlete.DisplayName()
	}
	if registration.ClubID != nil {
		round.ClubID = *registration.ClubID
	}
	if registration.Club != nil {
		round.ClubName = registration.Club.Name
	}

	if scoring.Classify(entry.Discipline.Name) == scoring.FamilyFBI {
		if override, ok := result.RawDetails["sort_key"]; ok {
			switch v := override.(type) {
			case float64:
				round.SortKey = v
			case int:
				round.SortKey = float64(v)
			}
		}
	}
	return round, true
}
