package utils

// MaxLevel is the hopper capacity in percent.
const MaxLevel = 100

// CriticalLevel is the threshold below which the dashboard warns the owner.
const CriticalLevel = 20

// ClampLevel keeps a food level inside the valid 0-100 range.
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// IsLevelCritical reports whether the hopper needs a refill soon.
func IsLevelCritical(level int) bool {
	return level < CriticalLevel
}

// LevelStatus returns a string describing the hopper state.
func LevelStatus(level int) string {
	if level <= 0 {
		return "empty"
	}
	if IsLevelCritical(level) {
		return "critical"
	}
	return "sufficient"
}
