package scoring

// Fixed vocabularies for the deterministic scorer, tuned to the
// candidate's product-management domain. Matching is case-insensitive
// substring containment against the job description.
var strongKeywords = []string{
	"product manager", "product management", "roadmap", "strategy",
	"user research", "stakeholder", "metrics", "okr", "kpi",
	"consumer", "b2c", "prioritization", "cross-functional",
}

var moderateKeywords = []string{
	"sql", "a/b test", "agile", "scrum", "analytics", "amplitude",
	"mixpanel", "jira", "data-driven", "user interview",
}

var gapKeywords = []string{
	"engineering manager", "software engineer", "coding", "programming",
	"machine learning engineer", "ml engineer", "b2b", "enterprise",
	"sales cycle", "procurement",
}

// messageRule maps matched keywords to one human-readable sentence.
// A rule fires once no matter how many of its keywords matched.
type messageRule struct {
	keywords []string
	message  string
}

var strengthRules = []messageRule{
	{[]string{"product manager", "product management"}, "7 years of product management experience (9/10 self-rating)"},
	{[]string{"roadmap", "strategy"}, "Strong product strategy and roadmap planning experience"},
	{[]string{"user research"}, "200+ user interviews conducted, built research practice from scratch"},
	{[]string{"stakeholder", "cross-functional"}, "Proven stakeholder management with C-suite and cross-functional teams"},
	{[]string{"metrics", "okr", "kpi"}, "Data-driven decision maker, strong with OKRs and product metrics"},
	{[]string{"consumer", "b2c"}, "Deep consumer/B2C product experience (3M+ MAU)"},
	{[]string{"sql", "analytics"}, "Can pull own data and run basic SQL queries"},
	{[]string{"a/b test"}, "Experience designing and running A/B experiments"},
}

var gapRules = []messageRule{
	{[]string{"engineering manager", "software engineer", "coding", "programming"}, "Not a technical IC - can discuss architecture but cannot implement code"},
	{[]string{"machine learning engineer", "ml engineer"}, "No ML engineering background - would need strong ML partner for deep technical work"},
	{[]string{"b2b", "enterprise", "sales cycle", "procurement"}, "Limited enterprise/B2B experience - background is consumer and SMB products"},
}

const (
	genericStrength = "General product management background"
	genericGap      = "Role may require skills not prominently featured in my background"
	directorGap     = "Haven't managed other PMs directly - cross-functional leadership only"
)

var summaryByRecommendation = map[string]string{
	"good_fit":  "Based on the job description, this looks like a strong match. My core skills align well with what you're looking for. Happy to dig into any specific areas.",
	"consider":  "There's decent overlap here, but some gaps worth discussing. I can ramp up on some areas, but you should know what you'd be getting into.",
	"not_ideal": "I want to be honest - this might not be the best fit. The role emphasizes skills that aren't my strengths. I'd rather tell you now than waste your time.",
}
