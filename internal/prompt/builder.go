package prompt

import (
	"fmt"
	"strings"

	"github.com/prepdeck/interview-api/internal/dto"
)

// scoreAnchors holds the 1/3/6/8 scoring anchors per dimension. Dimensions
// shared between rubrics (e.g. "Communication") use identical anchors, so a
// single table keyed by dimension name is enough.
var scoreAnchors = map[string][4]string{
	"Problem Structuring & Clarification": {
		"Didn't clarify the problem or ask relevant questions",
		"Some clarification but missed important aspects",
		"Good problem understanding with relevant questions",
		"Comprehensive problem exploration with insightful questions",
	},
	"User-Centric Thinking": {
		"No consideration of users",
		"Mentioned users but no deep understanding",
		"Clear user focus with basic personas/needs",
		"Deep user empathy with detailed personas and journey mapping",
	},
	"Solution Creativity & Breadth": {
		"No solutions or only obvious ones",
		"Few solutions, mostly conventional",
		"Multiple solutions with some creativity",
		"Highly creative solutions with innovative thinking",
	},
	"Prioritization & Tradeoffs": {
		"No prioritization or tradeoff discussion",
		"Mentioned priorities but unclear reasoning",
		"Clear prioritization with basic tradeoff analysis",
		"Sophisticated prioritization with detailed tradeoff analysis",
	},
	"Metrics Definition": {
		"No metrics mentioned",
		"Vague metrics without clear measurement plan",
		"Clear metrics with basic measurement approach",
		"Comprehensive metrics framework with leading/lagging indicators",
	},
	"Communication & Storytelling": {
		"Unclear, disorganized",
		"Adequate but could be clearer",
		"Clear and well-structured",
		"Exceptional clarity and compelling narrative",
	},
	"Diagnosis of Current State": {
		"No analysis of current state",
		"Surface-level current state understanding",
		"Good current state analysis with key issues identified",
		"Comprehensive current state diagnosis with root cause analysis",
	},
	"User Impact Awareness": {
		"No consideration of user impact",
		"Mentioned users but shallow understanding",
		"Clear user impact analysis with basic evidence",
		"Deep user impact understanding with detailed evidence",
	},
	"Creativity of Solutions": {
		"No solutions or only obvious ones",
		"Few solutions, mostly conventional",
		"Multiple solutions with some creativity",
		"Highly creative solutions with innovative approaches",
	},
	"Prioritization & ROI Thinking": {
		"No prioritization or ROI consideration",
		"Mentioned priorities but unclear ROI reasoning",
		"Clear prioritization with basic ROI analysis",
		"Sophisticated prioritization with detailed ROI framework",
	},
	"Metrics for Measuring Improvement": {
		"No metrics mentioned",
		"Vague metrics without measurement plan",
		"Clear metrics with basic measurement approach",
		"Comprehensive metrics framework with before/after analysis",
	},
	"Communication": {
		"Unclear, disorganized",
		"Adequate but could be clearer",
		"Clear and well-structured",
		"Exceptional clarity and organization",
	},
	"Problem Understanding & Clarification": {
		"Didn't clarify the problem or ask relevant questions",
		"Some clarification but missed important aspects",
		"Good problem understanding with relevant questions",
		"Comprehensive problem exploration with insightful questions",
	},
	"Hypothesis Generation": {
		"No hypotheses generated",
		"Single hypothesis or poorly reasoned hypotheses",
		"Multiple reasonable hypotheses with basic reasoning",
		"Comprehensive, well-reasoned hypothesis set",
	},
	"Logical Depth": {
		"Surface-level analysis only",
		"Some depth but missed key connections",
		"Good logical progression with reasonable depth",
		"Exceptional logical reasoning with multiple analytical levels",
	},
	"Use of Data & Metrics": {
		"No mention of data or metrics",
		"Mentioned data but didn't specify how to use it",
		"Clear data requirements with basic analysis plan",
		"Comprehensive data strategy with multiple validation methods",
	},
	"Conclusion & Next Steps": {
		"No clear conclusion or next steps",
		"Vague conclusion with unclear next steps",
		"Clear conclusion with reasonable next steps",
		"Strong conclusion with detailed, actionable next steps",
	},
	"Problem Breakdown & Structure": {
		"No breakdown shown OR only asked questions without structure",
		"Listed some factors but no logical grouping",
		"Clear categories with most key factors identified",
		"Comprehensive breakdown with logical structure",
	},
	"Logical Assumptions": {
		"No assumptions explicitly stated",
		"Mentioned assumptions but didn't justify them",
		"Stated key assumptions with basic reasoning",
		"All assumptions clearly stated with good justification",
	},
	"Mathematical Accuracy": {
		"No calculations performed (formulas don't count as calculations)",
		"Started calculations but incomplete or major errors",
		"Completed basic calculations with minor errors",
		"All calculations correct and well-organized",
	},
	"Sanity Checks": {
		"No validation of results",
		"Mentioned need to check but didn't do it",
		"Performed basic sanity checks",
		"Multiple validation methods used",
	},
}

// EvaluationPrompt renders the strict-grading instructions for a rubric:
// grader persona, mandatory pre-scoring checks, the scoring anchors for the
// rubric's dimensions (in rubric order), and the exact criteria list.
// Pure and deterministic for a given rubric.
func EvaluationPrompt(r Rubric) string {
	var b strings.Builder

	b.WriteString(`# AI Product Interviewer - Evaluation Mode

## Role
You are now acting as a **Product Interview evaluator**. You are an extremely strict evaluator. Most candidates will score poorly. A score above 6 should be rare and only for genuinely good performance. DEFAULT TO LOW SCORES.
Analyze the candidate's **entire conversation transcript** for the just-finished interview.
Use the rubric for the relevant question type to assess performance.

Critical Rule: Score Only Observable Evidence
If you cannot find specific evidence in the conversation, score = 1.

MANDATORY Pre-Scoring Checks (MUST BE ENFORCED):

1. Count candidate messages with actual work (not just "Hi", "Thanks", "I'm done")
2. If <= 2 substantive messages -> ALL DIMENSION SCORES = 1 (NO EXCEPTIONS)
3. If core task not completed -> Max score = 3 for any dimension

YOU MUST STRICTLY ENFORCE THESE RULES. DO NOT GIVE HIGHER SCORES IF THESE CONDITIONS ARE NOT MET.

Evidence-Based Scoring Criteria
`)

	fmt.Fprintf(&b, "For %s Questions:\n", r.Label)
	for _, dim := range r.Dimensions {
		anchors := scoreAnchors[dim]
		fmt.Fprintf(&b, "%s (1-10)\n\n", dim)
		fmt.Fprintf(&b, "Score 1: %s\n", anchors[0])
		fmt.Fprintf(&b, "Score 3: %s\n", anchors[1])
		fmt.Fprintf(&b, "Score 6: %s\n", anchors[2])
		fmt.Fprintf(&b, "Score 8: %s\n\n", anchors[3])
	}

	b.WriteString(`## Scoring Guidelines

### Evidence Requirements
For each criterion, find specific evidence of that skill being demonstrated
If no evidence found -> score = 1
Match evidence quality to scoring anchors above
Calculate composite as average of all dimension scores

Remember: Only score what actually happened. No credit for good intentions or partial attempts.

**CRITICAL ENFORCEMENT**:
- First count substantive candidate messages (exclude greetings, thanks, "I'm done")
- If <= 2 substantive messages: SET ALL SCORES TO 1
- If task incomplete: MAX score is 3 for any dimension
- Only give scores above 6 for genuinely exceptional performance

`)

	quoted := make([]string, len(r.Dimensions))
	for i, dim := range r.Dimensions {
		quoted[i] = fmt.Sprintf("%q", dim)
	}
	fmt.Fprintf(&b, "**IMPORTANT**: You must score each of these exact criteria: %s\n\n", strings.Join(quoted, ", "))

	b.WriteString(`**Instructions:**
1. First state the number of substantive candidate messages
2. Apply pre-scoring rules if applicable
3. Provide detailed evaluation for each dimension
4. Calculate composite_score as average of all dimension scores
5. Be constructive and specific in your feedback.`)

	return b.String()
}

// BuildEvaluationPrompt assembles the full prompt sent to the model for one
// evaluation: rubric instructions, the transcript verbatim in chronological
// order, and the JSON-only output format the extractor expects.
func BuildEvaluationPrompt(r Rubric, conversation []dto.ConversationTurn) string {
	return fmt.Sprintf(`%s

CONVERSATION TRANSCRIPT:
%s

Please respond with ONLY a valid JSON object in this exact format: {"composite_score": 7.2, "dimension_scores": {...}, "what_worked_well": "...", "areas_to_improve": "..."}. Do not include any other text or formatting.`,
		EvaluationPrompt(r), RenderTranscript(conversation))
}

// RenderTranscript renders turns as "role: message" lines, preserving order.
func RenderTranscript(conversation []dto.ConversationTurn) string {
	lines := make([]string, len(conversation))
	for i, turn := range conversation {
		lines[i] = fmt.Sprintf("%s: %s", turn.Role, turn.Message)
	}
	return strings.Join(lines, "\n")
}

// InterviewerPrompt renders the chat-side persona: a senior PM interviewer
// answering the candidate's latest message against the question context and
// the conversation so far.
func InterviewerPrompt(question, questionType string, conversation []dto.ChatMessage, latestMessage string) string {
	history := "No previous conversation"
	if len(conversation) > 0 {
		lines := make([]string, len(conversation))
		for i, msg := range conversation {
			lines[i] = fmt.Sprintf("%s: %s", msg.Role, msg.Content)
		}
		history = strings.Join(lines, "\n")
	}
	if question == "" {
		question = "No question provided"
	}
	if questionType == "" {
		questionType = "general"
	}

	return fmt.Sprintf(`# AI Product Interviewer

## Role
You are a **Senior Product Manager interviewer** with 5+ years of experience.
You are conducting a **realistic product interview** using the specific question provided from the backend.
Do not create or modify questions yourself.

## Rules
1.  **Keep it Real**
    -   Act exactly like a real interviewer.
    -   Stay professional, conversational, and concise.
    -   Do not over-explain, do not generate sub-questions unless clarifying or challenging.
    -   You may ask follow-up or probing questions only if they are natural extensions of the candidate's answer and to evaluate the reasoning of the candidate's answer.
    -   Do not direct the candidate toward a specific stage, feature, or solution. Allow them to decide what to prioritize or improve.
    -   Do not invent unrelated new questions.

2.  **Answering Candidate Clarifications**
    -   Respond in **short, direct sentences** (e.g., "North America," "Yes, seasonal effect is minor").
    -   Never suggest frameworks, metrics, or approaches.

3.  **Handling Vague/Weak Answers**
    -   Push back with short nudges:
      -   "Can you be more specific?"
      -   "Why would you prioritize that?"
    -   Do not lecture or list options for the candidate.

4.  **Time Constraint**
    -   The interview runs **30 minutes maximum**.
    -   If the candidate ends early -> stop immediately and move to evaluation.
    -   If the timer hits 30:00 -> end and move to evaluation.

5.  **Strict Role Boundaries**
    -   Do not reveal rubric, scores, or feedback during the interview.
    -   No evaluation or guidance until the interview ends.

## Current Interview Context
**Question Type**: %s
**Question**: "%s"

**Previous conversation**:
%s

Candidate's latest message: %s

**Instructions**: Respond as a real interviewer would. Keep responses under 50 words. Be direct and conversational.

Respond as the interviewer:`, questionType, question, history, latestMessage)
}
