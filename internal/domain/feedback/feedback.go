package feedback

import (
	"encoding/json"
	"fmt"
	"strings"
)

const SystemInstruction = "You are an expert career counselor helping graduates improve their skills to match job requirements."

const notSpecified = "Not specified"

type Profile struct {
	Skills     []string
	Education  string
	Experience string
}

type Requirements struct {
	Skills     []string
	Education  string
	Experience string
}

type Report struct {
	Feedback        string
	SkillGaps       []string
	Recommendations []string
}

const promptTemplate = `Analyze the following graduate profile against the job requirements and provide:
1. A comprehensive feedback summary
2. List of skill gaps
3. Actionable recommendations for improvement

Graduate Profile:
- Skills: %s
- Education: %s
- Experience: %s

Job Requirements:
- Required Skills: %s
- Education: %s
- Experience: %s

Provide your response in the following JSON format:
{
    "feedback": "Comprehensive feedback text...",
    "skill_gaps": ["gap1", "gap2", ...],
    "recommendations": ["recommendation1", "recommendation2", ...]
}`

// BuildPrompt renders the user message sent to the chat model.
func BuildPrompt(p Profile, r Requirements) string {
	return fmt.Sprintf(promptTemplate,
		joinSkills(p.Skills),
		orNotSpecified(p.Education),
		orNotSpecified(p.Experience),
		joinSkills(r.Skills),
		orNotSpecified(r.Education),
		orNotSpecified(r.Experience),
	)
}

type modelReport struct {
	Feedback        string   `json:"feedback"`
	SkillGaps       []string `json:"skill_gaps"`
	Recommendations []string `json:"recommendations"`
}

// ParseReport extracts the structured report the prompt asks for. When the
// completion is not that JSON object the raw text becomes the feedback and
// both lists stay empty.
func ParseReport(raw string) Report {
	text := strings.TrimSpace(raw)
	passthrough := Report{Feedback: text, SkillGaps: []string{}, Recommendations: []string{}}

	body := stripCodeFence(text)
	if !strings.HasPrefix(body, "{") {
		return passthrough
	}

	var m modelReport
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		return passthrough
	}
	if strings.TrimSpace(m.Feedback) == "" {
		return passthrough
	}

	return Report{
		Feedback:        strings.TrimSpace(m.Feedback),
		SkillGaps:       cleanList(m.SkillGaps),
		Recommendations: cleanList(m.Recommendations),
	}
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func joinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}
