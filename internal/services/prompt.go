package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const matchSystemPrompt = "You evaluate resume-to-JD matches clearly and concisely."

// BuildMatchMessages creates the two-message exchange for one comparison:
// a system instruction framing the task and a user message carrying both
// texts plus the instruction to answer in four labeled sections. The
// section labels are load-bearing; the reply parser scans for them.
func (pb *PromptBuilder) BuildMatchMessages(resumeText, jobDescription string) (system, user string) {
	user = fmt.Sprintf(`You are an expert in resume matching and screening.

Compare the following resume and job description and return:
1. Matched Skills
2. Missing Skills
3. Match Score (0-100)
4. Suggestions to improve the resume

Resume:
%s

Job Description:
%s
`, resumeText, jobDescription)

	return matchSystemPrompt, user
}
