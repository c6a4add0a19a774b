package results

import (
	"testing"
	"time"

	"api/config"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSubmissionThrottle(t *testing.T) {
	Convey("Given a throttle with a low first threshold", t, func() {
		throttle := newSubmissionThrottle(config.RateLimitConfig{
			AttemptsThreshold1: 3,
			CooldownDuration1:  time.Hour,
			AttemptsThreshold2: 10,
			CooldownDuration2:  2 * time.Hour,
		})

		Convey("Submissions below the threshold pass", func() {
			So(throttle.Allow("reg-1"), ShouldBeTrue)
			So(throttle.Allow("reg-1"), ShouldBeTrue)
		})

		Convey("Crossing the threshold starts a cooldown", func() {
			So(throttle.Allow("reg-1"), ShouldBeTrue)
			So(throttle.Allow("reg-1"), ShouldBeTrue)
			So(throttle.Allow("reg-1"), ShouldBeTrue)
			So(throttle.Allow("reg-1"), ShouldBeFalse)
		})

		Convey("Registrations are throttled independently", func() {
			So(throttle.Allow("reg-1"), ShouldBeTrue)
			So(throttle.Allow("reg-1"), ShouldBeTrue)
			So(throttle.Allow("reg-1"), ShouldBeTrue)
			So(throttle.Allow("reg-1"), ShouldBeFalse)
			So(throttle.Allow("reg-2"), ShouldBeTrue)
		})
	})
}
