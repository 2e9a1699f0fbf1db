package llm

// GeminiRequest is the generateContent request body.
type GeminiRequest struct {
	Contents         []GeminiContent   `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// GeminiContent is a single turn in the conversation.
type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

// GeminiPart is one text fragment of a turn.
type GeminiPart struct {
	Text string `json:"text"`
}

// GenerationConfig tunes the model's sampling.
type GenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

// GeminiResponse is the generateContent response body.
type GeminiResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
}

// GeminiCandidate is one generated completion.
type GeminiCandidate struct {
	Content      GeminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

// PlanResponse is the JSON contract the model must return: the full plan
// rendered as markdown plus the same plan in structured form.
type PlanResponse struct {
	PlanMarkdown   string         `json:"plan_markdown"`
	PlanStructured PlanStructured `json:"plan_structured"`
}

// PlanStructured is the machine-readable half of the plan.
type PlanStructured struct {
	Weeks []PlanWeek `json:"weeks"`
}

// PlanWeek is one training week.
type PlanWeek struct {
	Number         int           `json:"week_number"`
	Theme          string        `json:"theme"`
	TargetVolumeKM float64       `json:"target_volume_km"`
	Sessions       []PlanSession `json:"sessions"`
}

// PlanSession is one training session within a week.
type PlanSession struct {
	Day         string `json:"day"`
	Activity    string `json:"activity"`
	DurationMin int    `json:"duration_min"`
	TargetZone  string `json:"target_zone,omitempty"`
	RPE         string `json:"rpe,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// GeneratedPlan is a validated plan plus its generation metadata.
type GeneratedPlan struct {
	ID          string         `json:"id"`
	GeneratedAt string         `json:"generated_at"`
	Model       string         `json:"model"`
	Attempts    int            `json:"attempts"`
	Markdown    string         `json:"plan_markdown"`
	Structured  PlanStructured `json:"plan_structured"`
}
