package quiz

import "time"

// timerTickMsg is sent every second to refresh the elapsed-time display.
// It carries wall-clock time and mutates no quiz state.
type timerTickMsg time.Time
