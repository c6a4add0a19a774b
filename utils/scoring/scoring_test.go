package scoring_test

import (
	"testing"

	"api/utils/scoring"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given discipline names of every family", t, func() {
		cases := map[string]scoring.Family{
			"Tiro al Vuelo":           scoring.FamilyClay,
			"ESCOPETA FOSA OLIMPICA":  scoring.FamilyClay,
			"Skeet Mixto":             scoring.FamilyClay,
			"Tiro Helice":             scoring.FamilyClay,
			"Curso FBI":               scoring.FamilyFBI,
			"Pistola Match":           scoring.FamilyMatchPistol,
			"PISTOLA OLIMPICA":        scoring.FamilyOlympicPistol,
			"Pistola Olímpica Damas":  scoring.FamilyOlympicPistol,
			"Silueta Metalica":        scoring.FamilySilhouette,
			"IPSC Handgun":            scoring.FamilyIPSC,
			"Tiro Practico":           scoring.FamilyIPSC,
			"Liebre Corrida":          scoring.FamilyRunningTarget,
			"Jabali a 50m":            scoring.FamilyRunningTarget,
			"Bench Rest":              scoring.FamilyPrecision,
			"Carabina 22":             scoring.FamilyPrecision,
		}

		Convey("Then each name should classify into its family", func() {
			for name, want := range cases {
				So(scoring.Classify(name), ShouldEqual, want)
			}
		})

		Convey("And earlier families should win over later markers", func() {
			// ESCOPETA beats the PRACTICO marker further down the chain
			So(scoring.Classify("ESCOPETA PRACTICO"), ShouldEqual, scoring.FamilyClay)
			// FBI beats PISTOLA
			So(scoring.Classify("PISTOLA FBI"), ShouldEqual, scoring.FamilyFBI)
		})

		Convey("And OLIMPICA only matters inside the pistol branch", func() {
			So(scoring.Classify("CARABINA OLIMPICA"), ShouldEqual, scoring.FamilyPrecision)
		})
	})
}

func TestComputeClay(t *testing.T) {
	Convey("Given a clay round with hit arrays", t, func() {
		raw := map[string]interface{}{
			"r1":                []interface{}{float64(1), float64(0), float64(1)},
			"r2":                []interface{}{float64(1), float64(1)},
			"ganador_desempate": true,
		}

		Convey("Then the score is the hit count plus the tie-break bonus", func() {
			score := scoring.Compute("Tiro al Vuelo", raw)
			So(score.Points, ShouldAlmostEqual, 3.001)
		})

		Convey("When an array arrives JSON-encoded as a string", func() {
			raw["semi"] = "[1,1,0,1]"

			Convey("Then it is decoded and counted", func() {
				score := scoring.Compute("TRAP", raw)
				So(score.Points, ShouldAlmostEqual, 6.001)
			})
		})

		Convey("When an array field is garbage", func() {
			raw["final"] = "not json"
			raw["semi"] = 42.0

			Convey("Then those fields count zero instead of failing", func() {
				score := scoring.Compute("SKEET", raw)
				So(score.Points, ShouldAlmostEqual, 3.001)
			})
		})
	})
}

func TestComputeFBI(t *testing.T) {
	Convey("Given an FBI round with zone hits and penalties", t, func() {
		raw := map[string]interface{}{
			"zona_5": 3.0, "zona_4": 2.0, "zona_3": 1.0,
			"zona_2": 0.0, "zona_1": 0.0, "zona_0": 1.0,
			"penalizacion_total": 2.0,
		}

		Convey("Then penalties strip the first populated zone scanning 5 down to 0", func() {
			// Both penalty passes find zone 5 populated first, so the
			// removal comes out of the 5-point zone (the original
			// system's literal behavior, kept on purpose).
			score := scoring.Compute("Curso FBI", raw)
			So(score.Points, ShouldAlmostEqual, 1*5+2*4+1*3)
			So(score.TieBreak.FinalHitsFive, ShouldEqual, 1)
		})

		Convey("Then the sort key refines ties with the remaining 5-zone hits", func() {
			score := scoring.Compute("Curso FBI", raw)
			So(score.TieBreak.SortKey, ShouldAlmostEqual, 16.0001)
		})

		Convey("When there are no penalties", func() {
			raw["penalizacion_total"] = 0.0

			Convey("Then every zone counts fully and zone 0 scores nothing", func() {
				score := scoring.Compute("FBI", raw)
				So(score.Points, ShouldAlmostEqual, 3*5+2*4+1*3)
				So(score.TieBreak.FinalHitsFive, ShouldEqual, 3)
			})
		})

		Convey("When penalties exceed the total hits", func() {
			raw["penalizacion_total"] = 50.0

			Convey("Then the score bottoms out at zero", func() {
				score := scoring.Compute("FBI", raw)
				So(score.Points, ShouldEqual, 0)
			})
		})
	})
}

func TestComputeMatchPistol(t *testing.T) {
	Convey("Given a match pistol round", t, func() {
		raw := map[string]interface{}{
			"lenta_10": 3.0, "rapida_10": 2.0,
			"lenta_9": 1.0, "rapida_8": 2.0,
			"xs": 4.0,
		}

		Convey("Then slow and rapid hits weigh by zone plus X milli-points", func() {
			score := scoring.Compute("Pistola Match", raw)
			So(score.Points, ShouldAlmostEqual, 50+9+16+0.004)
		})

		Convey("When the tie-break flag is set", func() {
			raw["ganador_desempate"] = true

			Convey("Then the bonus is a hundred-thousandth", func() {
				score := scoring.Compute("Pistola Match", raw)
				So(score.Points, ShouldAlmostEqual, 75.00401)
			})
		})
	})

	Convey("Given an olympic pistol round", t, func() {
		raw := map[string]interface{}{
			"puntaje_total_ronda": 561.0,
			"xs":                  12.0,
			"ganador_desempate":   true,
		}

		Convey("Then it scores the pre-totaled value plus Xs and the bonus", func() {
			score := scoring.Compute("Pistola Olimpica", raw)
			So(score.Points, ShouldAlmostEqual, 561.0121)
		})
	})
}

func TestComputeSilhouette(t *testing.T) {
	Convey("Given a silhouette round with 8 lanes", t, func() {
		raw := map[string]interface{}{
			"carril_1": 5.0, "carril_5": 5.0,
			"carril_2": 4.0, "carril_6": 4.0,
			"carril_3": 3.0, "carril_7": 3.0,
			"carril_4": 2.0, "carril_8": 2.0,
		}

		Convey("Then symmetric lane pairs weigh 1, 1.5, 2 and 2.5", func() {
			score := scoring.Compute("Silueta Metalica", raw)
			So(score.Points, ShouldAlmostEqual, 10*1+8*1.5+6*2+4*2.5)
		})
	})
}

func TestComputeIPSC(t *testing.T) {
	Convey("Given an IPSC round", t, func() {
		Convey("Then match points pass through untouched", func() {
			score := scoring.Compute("IPSC Handgun", map[string]interface{}{"match_points": 87.43})
			So(score.Points, ShouldAlmostEqual, 87.43)
		})
	})
}

func TestComputeRunningTarget(t *testing.T) {
	Convey("Given a hare and boar round", t, func() {
		raw := map[string]interface{}{
			"liebre_5": 2.0, "jabali_5": 1.0,
			"liebre_3": 2.0, "jabali_1": 4.0,
			"xs": 3.0,
		}

		Convey("Then zone hits weigh by zone value plus X milli-points", func() {
			score := scoring.Compute("Liebre Corrida", raw)
			So(score.Points, ShouldAlmostEqual, 15+6+4+0.003)
		})

		Convey("When the tie-break flag is set", func() {
			raw["ganador_desempate"] = 1.0

			Convey("Then the bonus lands on the X count before scaling", func() {
				score := scoring.Compute("Jabali", raw)
				So(score.Points, ShouldAlmostEqual, 25+3.01*0.001)
			})
		})
	})
}

func TestComputeDegradation(t *testing.T) {
	Convey("Given payloads with malformed numeric fields", t, func() {
		Convey("Then unparseable ints coerce to zero", func() {
			score := scoring.Compute("Bench Rest", map[string]interface{}{
				"puntaje_total_ronda": 95.5,
				"xs":                  "not-a-number",
			})
			So(score.Points, ShouldAlmostEqual, 95.5)
		})

		Convey("Then unparseable floats coerce to zero", func() {
			score := scoring.Compute("Bench Rest", map[string]interface{}{
				"puntaje_total_ronda": map[string]interface{}{},
			})
			So(score.Points, ShouldEqual, 0)
		})

		Convey("Then a nil payload scores zero without panicking", func() {
			score := scoring.Compute("Pistola Match", nil)
			So(score.Points, ShouldEqual, 0)
		})

		Convey("Then numeric strings still parse", func() {
			score := scoring.Compute("Carabina", map[string]interface{}{
				"puntaje_total_ronda": "88.5",
				"xs":                  "2",
			})
			So(score.Points, ShouldAlmostEqual, 88.502)
		})
	})
}

func TestComputeMonotonicity(t *testing.T) {
	Convey("Given a match pistol round", t, func() {
		base := map[string]interface{}{"lenta_7": 2.0, "rapida_9": 1.0}

		Convey("Then adding hits never lowers the score", func() {
			previous := scoring.Compute("Pistola Match", base).Points
			for hits := 3.0; hits <= 10; hits++ {
				raw := map[string]interface{}{"lenta_7": hits, "rapida_9": 1.0}
				current := scoring.Compute("Pistola Match", raw).Points
				So(current, ShouldBeGreaterThanOrEqualTo, previous)
				previous = current
			}
		})

		Convey("Then scores are never negative for valid payloads", func() {
			So(scoring.Compute("Pistola Match", base).Points, ShouldBeGreaterThanOrEqualTo, 0)
			So(scoring.Compute("FBI", map[string]interface{}{}).Points, ShouldEqual, 0)
		})
	})
}
