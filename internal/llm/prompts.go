package llm

import "fmt"

const systemPrompt = "You are an experienced software engineer reviewing source code. " +
	"Answer concisely and refer to concrete line numbers where possible."

// prompts maps each analysis type to its instruction. The source text
// is appended in a fenced block.
var prompts = map[AnalysisType]string{
	AnalysisReview: "Review the following code. Point out bugs, code smells and " +
		"maintainability problems, most important first.",
	AnalysisSecurity: "Audit the following code for security issues: injection, " +
		"unsafe input handling, secrets, unsafe defaults. Rate each finding by severity.",
	AnalysisExplain: "Explain what the following code does, walking through the " +
		"main control flow and the purpose of each function.",
	AnalysisComplexity: "Identify the most complex parts of the following code and " +
		"suggest concrete refactorings that would reduce their complexity.",
	AnalysisPerformance: "Analyze the following code for performance problems: " +
		"unnecessary allocations, quadratic loops, repeated work, blocking calls.",
	AnalysisDocs: "Write documentation comments for the public functions and " +
		"classes in the following code, matching the language's conventions.",
}

func buildPrompt(typ AnalysisType, source string) (string, error) {
	instruction, ok := prompts[typ]
	if !ok {
		return "", fmt.Errorf("unknown analysis type %q", typ)
	}
	return fmt.Sprintf("%s\n\n```\n%s\n```\n", instruction, source), nil
}
