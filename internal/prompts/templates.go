package prompts

// Templates take their slots in order; see Build for which payload field fills each.
const (
	contentIdeasPrompt = `Given these keywords: %s
Generate 5 content ideas that would be interesting and engaging.
For each idea, provide:
1. A catchy title
2. A brief description
3. Key points to cover

Format the output in markdown.`

	socialPostsPrompt = `Based on this news article:
Title: %s
Description: %s

Create three social media posts with these exact headers:

Twitter Post:
[Create a Twitter post here with hashtags, max 280 chars]

LinkedIn Post:
[Create a LinkedIn post here with professional tone]

Instagram Post:
[Create an Instagram post here with hashtags]

Make sure to keep the headers exactly as shown above.`

	articleIdeasPrompt = `Based on this news article:
Title: %s
Description: %s
URL: %s

Generate 5 creative content ideas that could be created from this news:

For each idea include:
1. Content format (video, blog, infographic, etc.)
2. Target platform
3. Main angle/hook
4. Key points to cover
5. Potential hashtags

Make ideas specific and actionable.
Format in clear markdown with sections.`

	linkedInPostPrompt = `Based on this news article and content idea:
Article Title: %s
Article Description: %s
Content Idea: %s

Create a LinkedIn post with the following structure:
1. Hook (attention-grabbing first line)
2. Interest Peak (compelling statement or statistic)
3. Body (main content with insights, structured in 2-3 paragraphs)
4. Call-to-Action (engaging CTA)
5. 3-5 Relevant Hashtags

Use appropriate emojis and line breaks for better readability.
Format the post in markdown.`

	searchQueryPrompt = `Find detailed information and news about: %s`
)

// LinkedInStructure is the post outline shown next to every generated LinkedIn post.
var LinkedInStructure = []string{"Hook", "Interest Peak", "Body", "CTA", "Hashtags"}

const MAIN_ARTICLE_ANGLE = "Main article theme"

// AlternativeAngles are the extra LinkedIn takes generated for every article.
var AlternativeAngles = []string{
	"Industry impact and trends",
	"Problem-solution perspective",
	"Future implications",
}
