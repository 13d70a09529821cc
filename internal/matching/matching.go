// Package matching scores open jobs against a seeker's profile. It holds no
// state; every query recomputes the ranking from scratch.
package matching

import (
	"sort"

	"github.com/equibridge/backend/internal/models"
)

// A profession match outweighs any realistic number of skill overlaps.
const professionMatchWeight = 10

// RankedJob is a job annotated with its match metadata for one seeker.
type RankedJob struct {
	*models.Job
	SkillMatchCount   int  `json:"skill_match_count"`
	IsProfessionMatch bool `json:"is_profession_match"`
	MatchScore        int  `json:"match_score"`
}

// Rank orders jobs by match score descending. Ties keep their input order
// (stable sort), so equally-scored jobs stay in posting order.
func Rank(jobs []*models.Job, seekerSkills []string, profession string) []RankedJob {
	skillSet := make(map[string]struct{}, len(seekerSkills))
	for _, s := range seekerSkills {
		skillSet[s] = struct{}{}
	}

	ranked := make([]RankedJob, 0, len(jobs))
	for _, j := range jobs {
		matches := 0
		for _, req := range j.RequiredSkills {
			if _, ok := skillSet[req]; ok {
				matches++
			}
		}
		professionMatch := profession != "" && j.Profession == profession
		score := matches
		if professionMatch {
			score += professionMatchWeight
		}
		ranked = append(ranked, RankedJob{
			Job:               j,
			SkillMatchCount:   matches,
			IsProfessionMatch: professionMatch,
			MatchScore:        score,
		})
	}

	sort.SliceStable(ranked, func(i, k int) bool {
		return ranked[i].MatchScore > ranked[k].MatchScore
	})
	return ranked
}
