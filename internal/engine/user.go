// Package engine holds the pure streak state machine: applying a completion
// to a user's record, deriving the group streak from the required members'
// records, and folding group snapshots into the history ledger.
//
// Nothing in this package performs I/O; callers load and persist records.
package engine

import (
	"errors"

	"github.com/bobrandy13/LeetcodeBot/internal/calendar"
	"github.com/bobrandy13/LeetcodeBot/internal/types/streak"
)

var ErrAlreadyCompleted = errors.New("question already completed")

// Outcome classifies how a completion affected the user's streak.
type Outcome int

const (
	OutcomeFirst Outcome = iota
	OutcomeSameDay
	OutcomeConsecutive
	OutcomeBroken
	// OutcomeInvalidDate: the stored date could not be parsed; streak restarted at 1.
	OutcomeInvalidDate
	// OutcomeClockAnomaly: today precedes the stored date; record left untouched.
	OutcomeClockAnomaly
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFirst:
		return "first"
	case OutcomeSameDay:
		return "same_day"
	case OutcomeConsecutive:
		return "consecutive"
	case OutcomeBroken:
		return "broken"
	case OutcomeInvalidDate:
		return "invalid_date"
	case OutcomeClockAnomaly:
		return "clock_anomaly"
	default:
		return "unknown"
	}
}

// Anomalous reports whether the outcome was recovered from bad data.
func (o Outcome) Anomalous() bool {
	return o == OutcomeInvalidDate || o == OutcomeClockAnomaly
}

// ApplyCompletion advances rec's streak for a completion on today.
// It must run once per new completion; rec is not modified.
func ApplyCompletion(rec streak.UserRecord, today string) (streak.UserRecord, Outcome) {
	out := rec.Clone()

	if out.LastCompletionDate == nil {
		out.CurrentStreak = 1
		out.LastCompletionDate = &today
		return out, OutcomeFirst
	}

	var outcome Outcome
	d, err := calendar.DayDistance(*out.LastCompletionDate, today)
	switch {
	case err != nil:
		out.CurrentStreak = 1
		outcome = OutcomeInvalidDate
	case d < 0:
		return out, OutcomeClockAnomaly
	case d == 0:
		// Legacy records may carry a zero streak next to a date.
		if out.CurrentStreak < 1 {
			out.CurrentStreak = 1
		}
		outcome = OutcomeSameDay
	case d == 1:
		out.CurrentStreak++
		outcome = OutcomeConsecutive
	default:
		out.CurrentStreak = 1
		outcome = OutcomeBroken
	}

	out.LastCompletionDate = &today
	return out, outcome
}

// RegisterCompletion appends questionID to rec and applies the completion.
// An already recorded question returns ErrAlreadyCompleted and rec unchanged.
func RegisterCompletion(rec streak.UserRecord, questionID int64, today string) (streak.UserRecord, Outcome, error) {
	if rec.HasCompleted(questionID) {
		return rec, 0, ErrAlreadyCompleted
	}

	next := rec.Clone()
	next.CompletedQuestions = append(next.CompletedQuestions, questionID)

	next, outcome := ApplyCompletion(next, today)
	return next, outcome, nil
}
