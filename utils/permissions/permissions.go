package permissions

import "api/models"

// IsAdmin reports whether the user holds the federation admin role
func IsAdmin(user models.User) bool {
	return user.Role == models.RoleAdmin
}

// IsJudge reports whether the user can record and disqualify scores
func IsJudge(user models.User) bool {
	return user.Role == models.RoleJudge || user.Role == models.RoleAdmin
}

// IsClub reports whether the user manages a club roster
func IsClub(user models.User) bool {
	return user.Role == models.RoleClub
}

// CanManageCompetitions covers creation, transitions and expenses
func CanManageCompetitions(user models.User) bool {
	return user.Role == models.RoleAdmin
}

// CanRegisterAthletes covers registration submission on behalf of athletes
func CanRegisterAthletes(user models.User) bool {
	return user.Role == models.RoleAdmin || user.Role == models.RoleClub
}
