package domain

const (
	// MoodLogCap es la cantidad máxima de entradas que conserva el diario de ánimo.
	MoodLogCap = 90

	DefaultMoodScore = 3
	DefaultMoodEmoji = "😐"
	MoodDateLayout   = "2006-01-02"
)

type MoodEntry struct {
	Date  string `json:"date"`
	Mood  int    `json:"mood"`
	Emoji string `json:"emoji"`
	Note  string `json:"note"`
}

// TrimMoodLog conserva solo las últimas MoodLogCap entradas.
func TrimMoodLog(entries []MoodEntry) []MoodEntry {
	if len(entries) <= MoodLogCap {
		return entries
	}
	return entries[len(entries)-MoodLogCap:]
}
