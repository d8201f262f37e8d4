package usecase

import "time"

// timeNow is swapped out in tests that pin the clock.
var timeNow = time.Now
