package scoring

import (
	"encoding/json"
	"strconv"
)

// TieBreak carries the tie-resolution metadata produced next to a score.
// It is returned explicitly instead of being written back into the raw
// payload, so the input map is never mutated
type TieBreak struct {
	// FinalHitsFive is the number of hits left in the 5-point zone after
	// FBI penalty removal. Zero for every other family
	FinalHitsFive int `json:"final_hits_5"`
	// SortKey orders entries within a ranking group. Equal to the score
	// except for FBI rounds, where remaining 5-zone hits break ties
	SortKey float64 `json:"sort_key"`
}

// Score is the result of computing one round
type Score struct {
	Points   float64
	TieBreak TieBreak
}

type scoreFunc func(raw map[string]interface{}) Score

var dispatch = map[Family]scoreFunc{
	FamilyClay:          scoreClay,
	FamilyFBI:           scoreFBI,
	FamilyOlympicPistol: scorePrecision,
	FamilyMatchPistol:   scoreMatchPistol,
	FamilySilhouette:    scoreSilhouette,
	FamilyIPSC:          scoreIPSC,
	FamilyRunningTarget: scoreRunningTarget,
	FamilyPrecision:     scorePrecision,
}

// Compute calculates the final score for one round of the given
// discipline. It never fails: malformed numeric fields coerce to zero so
// a single bad field cannot reject a whole submission (the raw payload
// is kept for audit either way)
func Compute(disciplineName string, raw map[string]interface{}) Score {
	if raw == nil {
		raw = map[string]interface{}{}
	}
	return dispatch[Classify(disciplineName)](raw)
}

// scoreClay sums the 1-flags of the r1/r2/semi/final hit arrays. Arrays
// sometimes arrive JSON-encoded as strings and must be decoded first
func scoreClay(raw map[string]interface{}) Score {
	total := 0
	for _, key := range []string{"r1", "r2", "semi", "final"} {
		total += sumHitFlags(raw[key])
	}

	points := float64(total)
	if truthy(raw["ganador_desempate"]) {
		points += 0.001
	}
	return Score{Points: points, TieBreak: TieBreak{SortKey: points}}
}

// scoreFBI removes one hit per penalty point, scanning zones 5 down to 0
// and taking from the first zone that still has hits. The original
// system's comment says "remove worst shots" but its removal order
// actually empties the highest populated zone first; that literal order
// is kept here deliberately
func scoreFBI(raw map[string]interface{}) Score {
	hits := map[int]int{}
	for z := 0; z <= 5; z++ {
		hits[z] = getInt(raw, "zona_"+strconv.Itoa(z))
	}

	penalties := getInt(raw, "penalizacion_total")
	for i := 0; i < penalties; i++ {
		for _, zone := range []int{5, 4, 3, 2, 1, 0} {
			if hits[zone] > 0 {
				hits[zone]--
				break
			}
		}
	}

	points := 0.0
	for z := 1; z <= 5; z++ {
		points += float64(hits[z] * z)
	}

	return Score{
		Points: points,
		TieBreak: TieBreak{
			FinalHitsFive: hits[5],
			SortKey:       points + float64(hits[5])*0.0001,
		},
	}
}

// scoreMatchPistol weighs slow-fire and rapid-fire hits per zone, plus a
// milli-point per center X
func scoreMatchPistol(raw map[string]interface{}) Score {
	total := 0
	for z := 1; z <= 10; z++ {
		zs := strconv.Itoa(z)
		total += (getInt(raw, "lenta_"+zs) + getInt(raw, "rapida_"+zs)) * z
	}

	extra := float64(getInt(raw, "xs")) * 0.001
	if truthy(raw["ganador_desempate"]) {
		extra += 0.00001
	}

	points := float64(total) + extra
	return Score{Points: points, TieBreak: TieBreak{SortKey: points}}
}

// scoreSilhouette combines the 8 lane counts in symmetric pairs with
// increasing weights per distance
func scoreSilhouette(raw map[string]interface{}) Score {
	lane := func(n int) int { return getInt(raw, "carril_"+strconv.Itoa(n)) }

	points := float64(lane(1)+lane(5))*1 +
		float64(lane(2)+lane(6))*1.5 +
		float64(lane(3)+lane(7))*2 +
		float64(lane(4)+lane(8))*2.5

	if truthy(raw["ganador_desempate"]) {
		points += 0.001
	}
	return Score{Points: points, TieBreak: TieBreak{SortKey: points}}
}

// scoreIPSC passes through the match points computed by the external
// IPSC scoring software
func scoreIPSC(raw map[string]interface{}) Score {
	points := getFloat(raw, "match_points")
	return Score{Points: points, TieBreak: TieBreak{SortKey: points}}
}

// scoreRunningTarget sums hare and boar zone hits; the tie-break winner
// gets a hundredth added to the X count before scaling
func scoreRunningTarget(raw map[string]interface{}) Score {
	total := 0
	for z := 1; z <= 5; z++ {
		zs := strconv.Itoa(z)
		total += (getInt(raw, "liebre_"+zs) + getInt(raw, "jabali_"+zs)) * z
	}

	xs := float64(getInt(raw, "xs"))
	if truthy(raw["ganador_desempate"]) {
		xs += 0.01
	}

	points := float64(total) + xs*0.001
	return Score{Points: points, TieBreak: TieBreak{SortKey: points}}
}

// scorePrecision covers bench rest, carbine, olympic pistol and every
// other discipline that reports a pre-totaled round score
func scorePrecision(raw map[string]interface{}) Score {
	points := getFloat(raw, "puntaje_total_ronda") + float64(getInt(raw, "xs"))*0.001
	if truthy(raw["ganador_desempate"]) {
		points += 0.0001
	}
	return Score{Points: points, TieBreak: TieBreak{SortKey: points}}
}

// sumHitFlags counts the 1-flags in a hit array that may arrive as a
// real array or as a JSON-encoded string. Anything else counts 0
func sumHitFlags(value interface{}) int {
	if s, ok := value.(string); ok {
		var decoded []interface{}
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return 0
		}
		value = decoded
	}

	list, ok := value.([]interface{})
	if !ok {
		return 0
	}

	total := 0
	for _, item := range list {
		switch v := item.(type) {
		case float64:
			if v == 1 {
				total++
			}
		case int:
			if v == 1 {
				total++
			}
		case json.Number:
			if n, err := v.Float64(); err == nil && n == 1 {
				total++
			}
		}
	}
	return total
}

// getInt reads an integer field, degrading to 0 on any parse failure
func getInt(raw map[string]interface{}, key string) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

// getFloat reads a float field, degrading to 0.0 on any parse failure
func getFloat(raw map[string]interface{}, key string) float64 {
	switch v := raw[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if n, err := v.Float64(); err == nil {
			return n
		}
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return 0
}

// truthy mirrors the loose truth test the original system applied to the
// tie-break flag: false, 0, "", "0" and "false" are all falsy
func truthy(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		return v != "" && v != "0" && v != "false"
	}
	return false
}
