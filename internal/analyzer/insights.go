package analyzer

import (
	"math"
	"regexp"
	"strings"

	"resume-engine/pkg/models"
)

var numberedRe = regexp.MustCompile(`\d`)

// densityCeiling is the per-keyword density, in percent of resume words,
// above which a keyword counts as overused.
const densityCeiling = 2.0

// BuildInsights derives the optimization rollup from a gap analysis. It is a
// pure projection: calling it twice on the same analysis gives the same
// insights, and it never mutates the analysis.
func (a *Analyzer) BuildInsights(resume *models.ParsedResumeData, req *models.JobRequirements, gap *models.GapAnalysisResult) *models.OptimizationInsights {
	out := &models.OptimizationInsights{
		OverallScore:    gap.OverallScore,
		ATSScore:        gap.ATSScore,
		KeywordDensity:  gap.Keywords.Density,
		MatchedKeywords: gap.Keywords.MatchedKeywords,
		MissingKeywords: gap.Keywords.MissingKeywords,
	}

	out.SectionBreakdown = a.sectionBreakdown(resume, gap)
	out.OverusedKeywords = overused(resume, gap)
	out.SuggestedKeywords = suggested(gap)
	out.IndustryFit = a.industryFit(resume, req)

	top := gap.Recommendations
	if len(top) > 3 {
		top = top[:3]
	}
	out.TopRecommendations = top

	return out
}

// sectionBreakdown scores each resume section independently so the caller can
// show where the document is weakest.
func (a *Analyzer) sectionBreakdown(resume *models.ParsedResumeData, gap *models.GapAnalysisResult) []models.SectionScore {
	var breakdown []models.SectionScore

	summaryScore := 0.0
	if words := len(strings.Fields(resume.Summary)); words > 0 {
		switch {
		case words >= 30 && words <= 80:
			summaryScore = 100
		case words < 30:
			summaryScore = math.Round(float64(words) / 30 * 100)
		default:
			summaryScore = 70
		}
	}
	breakdown = append(breakdown, models.SectionScore{Section: "summary", Score: summaryScore})

	expScore := 0.0
	if len(resume.Experience) > 0 {
		expScore = 50
		quantified := 0
		verbed := 0
		for _, exp := range resume.Experience {
			if numberedRe.MatchString(exp.Description) {
				quantified++
			}
			if len(a.lex.FindAll(exp.Description, a.lex.ActionVerbs)) > 0 {
				verbed++
			}
		}
		expScore += 25 * ratio(quantified, len(resume.Experience))
		expScore += 25 * ratio(verbed, len(resume.Experience))
		expScore = math.Round(expScore)
	}
	breakdown = append(breakdown, models.SectionScore{Section: "experience", Score: expScore})

	breakdown = append(breakdown, models.SectionScore{Section: "skills", Score: gap.Skills.Score})
	breakdown = append(breakdown, models.SectionScore{Section: "education", Score: gap.Education.Score})

	projScore := 0.0
	if len(resume.Projects) > 0 {
		projScore = 60
		teched := 0
		for _, proj := range resume.Projects {
			if len(proj.Technologies) > 0 {
				teched++
			}
		}
		projScore += 40 * ratio(teched, len(resume.Projects))
		projScore = math.Round(projScore)
	}
	breakdown = append(breakdown, models.SectionScore{Section: "projects", Score: projScore})

	return breakdown
}

// overused lists matched keywords whose individual density exceeds the
// ceiling.
func overused(resume *models.ParsedResumeData, gap *models.GapAnalysisResult) []string {
	words := len(strings.Fields(resume.AllText()))
	if words == 0 {
		return nil
	}

	var out []string
	for _, kw := range gap.Keywords.MatchedKeywords {
		count := gap.Keywords.Occurrences[kw]
		if float64(count)/float64(words)*100 > densityCeiling {
			out = append(out, kw)
		}
	}
	return out
}

// suggested is the short list of missing keywords worth adding first:
// missing required skills ahead of everything else.
func suggested(gap *models.GapAnalysisResult) []string {
	seen := map[string]bool{}
	var out []string
	add := func(kw string) {
		if !seen[kw] && len(out) < 8 {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	for _, kw := range gap.Skills.MissingRequiredSkills {
		add(kw)
	}
	for _, kw := range gap.Keywords.MissingKeywords {
		add(kw)
	}
	return out
}

// industryFit is the share of the posting's industry keywords the resume
// speaks to. Postings with no industry vocabulary fit trivially.
func (a *Analyzer) industryFit(resume *models.ParsedResumeData, req *models.JobRequirements) float64 {
	if len(req.IndustryKeywords) == 0 {
		return 100
	}
	matched := len(a.lex.FindAll(resume.AllText(), req.IndustryKeywords))
	return math.Round(ratio(matched, len(req.IndustryKeywords)) * 100)
}
