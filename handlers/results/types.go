package results

import (
	"sync"
	"time"

	"api/config"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrResultNotFound     = "Result not found"
	ErrNoPermissionScore  = "User does not have permission to record scores"
	ErrInvalidRequest     = "Invalid request data"
	ErrSubmissionCooldown = "Too many submissions for this registration, wait before retrying"
)

// SubmitResultRequest model for recording a scored round
type SubmitResultRequest struct {
	RegistrationID string                 `json:"registration_id" binding:"required"`
	EntryID        string                 `json:"entry_id"`
	RoundLabel     string                 `json:"round_label" binding:"required"`
	RawDetails     map[string]interface{} `json:"raw_details" binding:"required"`
}

// DisqualifyRequest model for disqualifying a round
type DisqualifyRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// submissionThrottle slows down repeated score submissions against the
// same registration, using the tiered cooldowns from config
type submissionThrottle struct {
	mu       sync.Mutex
	attempts map[string]*submissionState
	cfg      config.RateLimitConfig
}

type submissionState struct {
	count         int
	cooldownUntil time.Time
}

func newSubmissionThrottle(cfg config.RateLimitConfig) *submissionThrottle {
	return &submissionThrottle{
		attempts: make(map[string]*submissionState),
		cfg:      cfg,
	}
}

// Allow records one submission attempt and reports whether it may
// proceed. Crossing a threshold starts the matching cooldown
func (t *submissionThrottle) Allow(registrationID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.attempts[registrationID]
	if !ok {
		state = &submissionState{}
		t.attempts[registrationID] = state
	}

	now := time.Now()
	if now.Before(state.cooldownUntil) {
		return false
	}

	state.count++
	switch {
	case state.count >= t.cfg.AttemptsThreshold2:
		state.cooldownUntil = now.Add(t.cfg.CooldownDuration2)
		state.count = 0
	case state.count >= t.cfg.AttemptsThreshold1:
		state.cooldownUntil = now.Add(t.cfg.CooldownDuration1)
	}
	return true
}
