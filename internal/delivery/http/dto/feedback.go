package dto

type GraduateProfile struct {
	Skills     []string `json:"skills"`
	Education  string   `json:"education"`
	Experience string   `json:"experience,omitempty"`
}

type JobRequirements struct {
	Skills     []string `json:"skills"`
	Education  string   `json:"education,omitempty"`
	Experience string   `json:"experience,omitempty"`
}

type FeedbackRequest struct {
	GraduateProfile *GraduateProfile `json:"graduate_profile"`
	JobRequirements *JobRequirements `json:"job_requirements"`
}

type FeedbackResponse struct {
	Feedback        string   `json:"feedback"`
	SkillGaps       []string `json:"skillGaps"`
	Recommendations []string `json:"recommendations"`
}
