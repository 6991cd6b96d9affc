package streak

// UserStanding is a stored user record together with the id it lives under.
type UserStanding struct {
	UserID string `json:"userId"`
	UserRecord
}

// CompletedCount is the leaderboard ordering key.
func (u UserStanding) CompletedCount() int {
	return len(u.CompletedQuestions)
}

type GroupStats struct {
	Today          string         `json:"today"`
	Leaderboard    []UserStanding `json:"leaderboard"`
	TotalQuestions int            `json:"totalQuestions"`
	// AveragePerUser is rounded to one decimal place.
	AveragePerUser float64 `json:"averagePerUser"`
	ActiveToday    int     `json:"activeToday"`
}

type PlayerStats struct {
	UserStanding
	Rank int `json:"rank"`
}

// Completion is the outcome of a successful complete command.
type Completion struct {
	UserID string        `json:"userId"`
	Record UserRecord    `json:"record"`
	Group  GroupSnapshot `json:"group"`
}

// KVReport is the connectivity probe served on the debug route.
type KVReport struct {
	Backend        string         `json:"backend"`
	Timestamp      string         `json:"timestamp"`
	WriteTest      string         `json:"writeTest"`
	ReadTest       string         `json:"readTest"`
	UserListExists bool           `json:"userListExists"`
	UserCount      int            `json:"userCount"`
	TotalKeys      int            `json:"totalKeys"`
	AllKeys        []string       `json:"allKeys"`
	SampleUser     *UserStanding  `json:"sampleUser,omitempty"`
	GroupData      *GroupSnapshot `json:"groupData"`
	Error          string         `json:"error,omitempty"`
}
