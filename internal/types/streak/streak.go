package streak

// HistoryRetention is the number of fully-participated days kept in GroupHistory.StreakHistory.
const HistoryRetention = 30

// UserRecord is the per-user state persisted under the user's Discord id.
// CurrentStreak >= 1 exactly when LastCompletionDate is set.
type UserRecord struct {
	Username           string  `json:"username"`
	CompletedQuestions []int64 `json:"completedQuestions"`
	CurrentStreak      int     `json:"currentStreak"`
	LastCompletionDate *string `json:"lastCompletionDate"`
}

// NewUserRecord returns the empty record used for users never seen before.
func NewUserRecord() UserRecord {
	return UserRecord{CompletedQuestions: []int64{}}
}

// HasCompleted reports whether questionID is already recorded.
func (u UserRecord) HasCompleted(questionID int64) bool {
	for _, q := range u.CompletedQuestions {
		if q == questionID {
			return true
		}
	}
	return false
}

// LastDate returns the last completion day, or "" when the user has none.
func (u UserRecord) LastDate() string {
	if u.LastCompletionDate == nil {
		return ""
	}
	return *u.LastCompletionDate
}

// Clone returns a copy that shares no slices or pointers with u.
func (u UserRecord) Clone() UserRecord {
	c := u
	c.CompletedQuestions = append(make([]int64, 0, len(u.CompletedQuestions)), u.CompletedQuestions...)
	if u.LastCompletionDate != nil {
		d := *u.LastCompletionDate
		c.LastCompletionDate = &d
	}
	return c
}

type GroupSnapshot struct {
	Streak                  int            `json:"streak"`
	LastEvaluatedDate       string         `json:"lastEvaluatedDate"`
	ParticipatingUsers      []string       `json:"participatingUsers"`
	MissingUsers            []string       `json:"missingUsers"`
	RequiredUsers           []string       `json:"requiredUsers"`
	AllRequiredParticipated bool           `json:"allRequiredParticipated"`
	IndividualStreaks       map[string]int `json:"individualStreaks"`
}

type GroupHistoryEntry struct {
	Date         string   `json:"date"`
	Streak       int      `json:"streak"`
	Participants []string `json:"participants"`
}

type GroupHistory struct {
	StreakHistory  []GroupHistoryEntry `json:"streakHistory"`
	MaxStreak      int                 `json:"maxStreak"`
	TotalGroupDays int                 `json:"totalGroupDays"`
	FirstGroupDay  *string             `json:"firstGroupDay"`
}

func NewGroupHistory() GroupHistory {
	return GroupHistory{StreakHistory: []GroupHistoryEntry{}}
}

// HasDate reports whether an entry for date is retained.
func (h GroupHistory) HasDate(date string) bool {
	for _, e := range h.StreakHistory {
		if e.Date == date {
			return true
		}
	}
	return false
}

// Recent returns up to n most recent entries, oldest first.
func (h GroupHistory) Recent(n int) []GroupHistoryEntry {
	if n >= len(h.StreakHistory) {
		return h.StreakHistory
	}
	return h.StreakHistory[len(h.StreakHistory)-n:]
}
