package matching

import (
	"testing"

	"github.com/google/uuid"

	"github.com/equibridge/backend/internal/models"
)

func job(title, profession string, skills ...string) *models.Job {
	return &models.Job{
		ID:             uuid.New(),
		Title:          title,
		Profession:     profession,
		RequiredSkills: skills,
	}
}

// ---------------------------------------------------------------------------
// 1. TestSkillOverlapCounting
// ---------------------------------------------------------------------------

func TestSkillOverlapCounting(t *testing.T) {
	jobs := []*models.Job{
		job("Data Entry", "", "typing", "excel", "english"),
	}
	ranked := Rank(jobs, []string{"typing", "english", "hindi"}, "")
	if len(ranked) != 1 {
		t.Fatalf("ranked: got %d jobs, want 1", len(ranked))
	}
	if ranked[0].SkillMatchCount != 2 {
		t.Errorf("skill matches: got %d, want 2", ranked[0].SkillMatchCount)
	}
	if ranked[0].MatchScore != 2 {
		t.Errorf("score: got %d, want 2", ranked[0].MatchScore)
	}
	if ranked[0].IsProfessionMatch {
		t.Error("no profession given, should not be a profession match")
	}
}

// ---------------------------------------------------------------------------
// 2. TestProfessionOutweighsSkills
// ---------------------------------------------------------------------------

func TestProfessionOutweighsSkills(t *testing.T) {
	jobs := []*models.Job{
		job("Stitching", "Tailor", "stitching", "embroidery", "cutting"),
		job("Accounts Assistant", "Accountant"),
	}
	ranked := Rank(jobs, []string{"stitching", "embroidery", "cutting"}, "Accountant")
	if ranked[0].Title != "Accounts Assistant" {
		t.Errorf("profession match should rank first, got %q", ranked[0].Title)
	}
	if !ranked[0].IsProfessionMatch || ranked[0].MatchScore != 10 {
		t.Errorf("profession match score: got %+v", ranked[0])
	}
	if ranked[1].MatchScore != 3 {
		t.Errorf("skill-only score: got %d, want 3", ranked[1].MatchScore)
	}
}

// ---------------------------------------------------------------------------
// 3. TestDescendingOrder
// ---------------------------------------------------------------------------

func TestDescendingOrder(t *testing.T) {
	jobs := []*models.Job{
		job("No Match", "", "welding"),
		job("One Skill", "", "typing"),
		job("Two Skills", "", "typing", "excel"),
	}
	ranked := Rank(jobs, []string{"typing", "excel"}, "")
	want := []string{"Two Skills", "One Skill", "No Match"}
	for i, title := range want {
		if ranked[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, ranked[i].Title, title)
		}
	}
}

// ---------------------------------------------------------------------------
// 4. TestStableTiesKeepPostingOrder
// ---------------------------------------------------------------------------

func TestStableTiesKeepPostingOrder(t *testing.T) {
	jobs := []*models.Job{
		job("First Posted", "", "typing"),
		job("Second Posted", "", "typing"),
		job("Third Posted", "", "typing"),
	}
	ranked := Rank(jobs, []string{"typing"}, "")
	want := []string{"First Posted", "Second Posted", "Third Posted"}
	for i, title := range want {
		if ranked[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, ranked[i].Title, title)
		}
	}
}

// ---------------------------------------------------------------------------
// 5. TestEmptyInputs
// ---------------------------------------------------------------------------

func TestEmptyInputs(t *testing.T) {
	if got := Rank(nil, []string{"typing"}, "Tailor"); len(got) != 0 {
		t.Errorf("nil jobs: got %d ranked, want 0", len(got))
	}
	ranked := Rank([]*models.Job{job("Anything", "Tailor", "stitching")}, nil, "")
	if ranked[0].MatchScore != 0 {
		t.Errorf("no skills, no profession: score got %d, want 0", ranked[0].MatchScore)
	}
}
