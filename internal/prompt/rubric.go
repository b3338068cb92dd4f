package prompt

// Rubric is the ordered list of dimensions an evaluation scores.
// Order matters: prompts enumerate dimensions in rubric order.
type Rubric struct {
	QuestionType string
	Label        string
	Dimensions   []string
}

// rubrics is loaded once and never mutated after init.
var rubrics = map[string]Rubric{
	"design": {
		QuestionType: "design",
		Label:        "Design",
		Dimensions: []string{
			"Problem Structuring & Clarification",
			"User-Centric Thinking",
			"Solution Creativity & Breadth",
			"Prioritization & Tradeoffs",
			"Metrics Definition",
			"Communication & Storytelling",
		},
	},
	"improvement": {
		QuestionType: "improvement",
		Label:        "Improvement",
		Dimensions: []string{
			"Diagnosis of Current State",
			"User Impact Awareness",
			"Creativity of Solutions",
			"Prioritization & ROI Thinking",
			"Metrics for Measuring Improvement",
			"Communication",
		},
	},
	"rca": {
		QuestionType: "rca",
		Label:        "RCA",
		Dimensions: []string{
			"Problem Understanding & Clarification",
			"Hypothesis Generation",
			"Logical Depth",
			"Use of Data & Metrics",
			"Conclusion & Next Steps",
			"Communication",
		},
	},
	"guesstimate": {
		QuestionType: "guesstimate",
		Label:        "Guesstimate",
		Dimensions: []string{
			"Problem Breakdown & Structure",
			"Logical Assumptions",
			"Mathematical Accuracy",
			"Sanity Checks",
			"Communication",
		},
	},
}

// LookupRubric returns the rubric for a question type. Unknown types fall
// back to the design rubric so an odd client value never blocks evaluation.
func LookupRubric(questionType string) Rubric {
	if r, ok := rubrics[questionType]; ok {
		return r
	}
	return rubrics["design"]
}

// QuestionTypes lists the catalog's known types.
func QuestionTypes() []string {
	return []string{"design", "improvement", "rca", "guesstimate"}
}
