package scoring

import "strings"

// Family is the closed set of scoring algorithms. Every discipline maps
// to exactly one family through Classify
type Family int

const (
	FamilyClay Family = iota
	FamilyFBI
	FamilyOlympicPistol
	FamilyMatchPistol
	FamilySilhouette
	FamilyIPSC
	FamilyRunningTarget
	FamilyPrecision
)

func (f Family) String() string {
	switch f {
	case FamilyClay:
		return "clay"
	case FamilyFBI:
		return "fbi"
	case FamilyOlympicPistol:
		return "olympic_pistol"
	case FamilyMatchPistol:
		return "match_pistol"
	case FamilySilhouette:
		return "silhouette"
	case FamilyIPSC:
		return "ipsc"
	case FamilyRunningTarget:
		return "running_target"
	}
	return "precision"
}

// Classify maps a discipline name to its scoring family. Matching is a
// case-insensitive substring check and order matters: the first family
// whose markers match wins, everything else falls through to precision
func Classify(disciplineName string) Family {
	name := strings.ToUpper(disciplineName)

	contains := func(markers ...string) bool {
		for _, m := range markers {
			if strings.Contains(name, m) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("VUELO", "ESCOPETA", "TRAP", "SKEET", "HELICE"):
		return FamilyClay
	case contains("FBI"):
		return FamilyFBI
	case contains("MATCH", "PISTOLA"):
		if contains("OLIMPICA", "OLÍMPICA") {
			return FamilyOlympicPistol
		}
		return FamilyMatchPistol
	case contains("SILUETA", "METALICA"):
		return FamilySilhouette
	case contains("IPSC", "PRACTICO"):
		return FamilyIPSC
	case contains("LIEBRE", "JABALI"):
		return FamilyRunningTarget
	}
	return FamilyPrecision
}
