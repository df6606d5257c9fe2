package ai

import "fmt"

// SystemInstruction is sent ahead of every article.
const SystemInstruction = `
You are an expert in technology research analysis and technical article summarization.
You excel at breaking down complex technology papers into digestible content for your audience.
Your audience includes students, early-career researchers, engineers, and technology leaders.

Summarize the key findings in the following article [ARTICLE].

Focus on:
- Main objectives
- Key findings or contributions
- Methodologies or architectures used
- Implications or applications
- Limitations or future directions

Format:
- Bullet points with key ideas
- A short concluding paragraph
`

var userPromptTemplate = `
Article title: %s

Here is the extracted article content:

%s

Please summarize this article following the system instructions.
`

// BuildPrompt joins the system instruction with the article identifier and
// its extracted text. The text is inserted as is.
func BuildPrompt(articleID string, content string) string {
	return SystemInstruction + "\n\n" + buildUserPrompt(articleID, content)
}

func buildUserPrompt(articleID string, content string) string {
	return fmt.Sprintf(userPromptTemplate, articleID, content)
}
