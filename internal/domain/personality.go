package domain

const (
	TypeCategoryTechnical     = "Technical"
	TypeCategoryCollaborative = "Collaborative"
	TypeCategoryLeadership    = "Leadership"
	TypeCategoryCreative      = "Creative"
)

// PersonalityType is static reference data for one of the 16 team types.
type PersonalityType struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
	IdealRole   string   `json:"ideal_role"`
}

// PersonalityTypes lists all 16 types in definition order. The order is
// load-bearing: it fixes the tie-break for the classifier's primary type.
var PersonalityTypes = []PersonalityType{
	{
		Code:        "DSTA",
		Name:        "Data Strategist",
		Category:    TypeCategoryTechnical,
		Description: "Analytical, organized, pragmatic. Solves business problems based on data and evidence.",
		Strengths:   []string{"Strategic thinking", "Business acumen", "Analytical approach", "Structured methodology"},
		IdealRole:   "Senior Data Scientist, Data Strategy Consultant",
	},
	{
		Code:        "DVRT",
		Name:        "Data Virtuoso",
		Category:    TypeCategoryTechnical,
		Description: "Practical, adaptable, specialist in techniques and tools. Optimizes data pipelines.",
		Strengths:   []string{"Technical expertise", "Practical problem-solving", "Tool mastery", "Execution focus"},
		IdealRole:   "Data Engineer, Infrastructure Specialist",
	},
	{
		Code:        "DLOG",
		Name:        "Data Logician",
		Category:    TypeCategoryTechnical,
		Description: "Investigative, logical, creative in solving complex technical problems.",
		Strengths:   []string{"Logical reasoning", "Algorithmic thinking", "Systematic analysis", "Technical creativity"},
		IdealRole:   "ML Engineer, Research Scientist",
	},
	{
		Code:        "DVIS",
		Name:        "Data Visionary",
		Category:    TypeCategoryTechnical,
		Description: "Imaginative, idealistic, disruptive. Innovator in research and experimentation.",
		Strengths:   []string{"Innovation", "Future thinking", "Creative solutions", "Research focus"},
		IdealRole:   "AI Research Scientist, Innovation Specialist",
	},
	{
		Code:        "DCOL",
		Name:        "Data Collaborator",
		Category:    TypeCategoryCollaborative,
		Description: "Supports colleagues, creates harmony, works well in teams.",
		Strengths:   []string{"Team collaboration", "Relationship building", "Harmony creation", "Support facilitation"},
		IdealRole:   "Data Analyst, Team Facilitator",
	},
	{
		Code:        "DSUP",
		Name:        "Data Supporter",
		Category:    TypeCategoryCollaborative,
		Description: "Empathetic, offers emotional and technical support, creates visualizations.",
		Strengths:   []string{"Empathy", "Support provision", "Visualization skills", "Team support"},
		IdealRole:   "Data Visualization Specialist, Support Analyst",
	},
	{
		Code:        "DADV",
		Name:        "Data Advocate",
		Category:    TypeCategoryCollaborative,
		Description: "Defends data quality and governance, aligned with rules and ethics.",
		Strengths:   []string{"Governance focus", "Ethical awareness", "Quality assurance", "Compliance knowledge"},
		IdealRole:   "Data Governance Analyst, Compliance Specialist",
	},
	{
		Code:        "DINT",
		Name:        "Data Integrator",
		Category:    TypeCategoryCollaborative,
		Description: "Integrates systems and teams, ensures data flow across the organization.",
		Strengths:   []string{"System integration", "Cross-team coordination", "Data flow management", "Bridge building"},
		IdealRole:   "Integration Engineer, Solution Architect",
	},
	{
		Code:        "DCOM",
		Name:        "Data Commander",
		Category:    TypeCategoryLeadership,
		Description: "Assertive leader, results-oriented, focused on deadlines and decisions.",
		Strengths:   []string{"Assertive leadership", "Results focus", "Decision making", "Project driving"},
		IdealRole:   "Technical Lead, Engineering Manager",
	},
	{
		Code:        "DEXE",
		Name:        "Data Executive",
		Category:    TypeCategoryLeadership,
		Description: "Organized, efficient, focuses on goal alignment and results.",
		Strengths:   []string{"Strategic management", "Goal alignment", "Process optimization", "Resource organization"},
		IdealRole:   "Data Product Manager, Data Director",
	},
	{
		Code:        "DINN",
		Name:        "Data Innovator",
		Category:    TypeCategoryLeadership,
		Description: "Explores emerging technologies, disruptive and strategic.",
		Strengths:   []string{"Innovation focus", "Emerging tech exploration", "Disruptive thinking", "Strategic vision"},
		IdealRole:   "Innovation Specialist, Emerging Tech Lead",
	},
	{
		Code:        "DPRO",
		Name:        "Data Protagonist",
		Category:    TypeCategoryLeadership,
		Description: "Charismatic, drives data-driven culture and communicates vision effectively.",
		Strengths:   []string{"Charismatic leadership", "Culture building", "Vision communication", "Inspiration"},
		IdealRole:   "Head of Analytics, Strategic Director",
	},
	{
		Code:        "DCRT",
		Name:        "Data Creator",
		Category:    TypeCategoryCreative,
		Description: "Creative, enthusiastic, develops new solutions and data products.",
		Strengths:   []string{"Creative problem-solving", "Product development", "Innovation", "Enthusiasm"},
		IdealRole:   "Creative Data Scientist, Product Developer",
	},
	{
		Code:        "DCOMM",
		Name:        "Data Communicator",
		Category:    TypeCategoryCreative,
		Description: "Translates data into impactful stories, excellent at storytelling.",
		Strengths:   []string{"Storytelling", "Communication skills", "Data translation", "Engagement"},
		IdealRole:   "Data Storyteller, Communication Specialist",
	},
	{
		Code:        "DENT",
		Name:        "Data Entrepreneur",
		Category:    TypeCategoryCreative,
		Description: "Fast, opportunistic, creates innovation and data-driven businesses.",
		Strengths:   []string{"Opportunity recognition", "Fast execution", "Business creation", "Risk taking"},
		IdealRole:   "Data Startup Founder, Business Developer",
	},
	{
		Code:        "DACT",
		Name:        "Data Activist",
		Category:    TypeCategoryCreative,
		Description: "Ethical, defends privacy, justice and social impact in data.",
		Strengths:   []string{"Ethical awareness", "Privacy advocacy", "Social impact", "Responsible practices"},
		IdealRole:   "Ethics Specialist, Privacy Advocate",
	},
}

// PersonalityTypeByCode returns the type for a code, or nil when unknown.
func PersonalityTypeByCode(code string) *PersonalityType {
	for i := range PersonalityTypes {
		if PersonalityTypes[i].Code == code {
			return &PersonalityTypes[i]
		}
	}
	return nil
}

// KnownTypeCode reports whether code names one of the 16 types.
func KnownTypeCode(code string) bool {
	return PersonalityTypeByCode(code) != nil
}
