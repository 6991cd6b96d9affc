package services

import (
	"strconv"
	"strings"

	"github.com/bobrandy13/LeetcodeBot/utils"
)

// ProblemLookup resolves LeetCode problems for display. Lookups never fail
// hard; unknown problems just come back as not found.
type ProblemLookup interface {
	ByID(id int64) (utils.Problem, bool)
	Find(query string) (utils.Problem, bool)
}

// ProblemService answers from the bundled static catalog.
type ProblemService struct{}

func NewProblemService() *ProblemService {
	return &ProblemService{}
}

func (s *ProblemService) ByID(id int64) (utils.Problem, bool) {
	return utils.FindProblem(id)
}

// Find accepts a frontend id ("1") or a title slug ("two-sum").
func (s *ProblemService) Find(query string) (utils.Problem, bool) {
	query = strings.TrimSpace(query)
	if id, err := strconv.ParseInt(query, 10, 64); err == nil {
		if p, ok := utils.FindProblem(id); ok {
			return p, true
		}
	}
	return utils.FindProblemBySlug(strings.ToLower(query))
}
