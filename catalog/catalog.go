package catalog

// Tool categories used across the catalog.
const (
	CategoryGenerative = "Generative AI"
	CategoryCode       = "Code AI"
	CategoryImage      = "Image AI"
	CategoryAudioVideo = "Audio/Video AI"
	CategoryBusiness   = "Business AI"
	CategoryResearch   = "Research AI"
)

// ToolPattern classifies URLs for one AI tool. A URL matches when it
// contains any of Hosts (case-insensitive) or matches Expr. Patterns are
// evaluated in catalog order and the first match wins, so more specific
// entries must be declared before broader ones.
type ToolPattern struct {
	Name     string
	Category string
	Hosts    []string // substring literals, lowercase
	Expr     string   // optional regular expression, case-insensitive
}

// Deliberately not in the catalog because their URLs are indistinguishable
// from the host platform: Notion AI (notion.so), Canva Magic Studio
// (canva.com), Slack AI, Zoom AI Companion, Snapchat My AI, WhatsApp and
// Instagram Meta AI surfaces, and X's in-app Grok panel.
var patterns = []ToolPattern{
	// Generative AI
	{Name: "ChatGPT", Category: CategoryGenerative, Hosts: []string{"chat.openai.com", "chatgpt.com"}},
	{Name: "OpenAI Platform", Category: CategoryGenerative, Hosts: []string{"platform.openai.com"}},
	{Name: "Claude", Category: CategoryGenerative, Hosts: []string{"claude.ai"}},
	{Name: "Anthropic Console", Category: CategoryGenerative, Hosts: []string{"console.anthropic.com"}},
	{Name: "Google Gemini", Category: CategoryGenerative, Hosts: []string{"gemini.google.com", "bard.google.com"}},
	{Name: "Google AI Studio", Category: CategoryGenerative, Hosts: []string{"aistudio.google.com", "makersuite.google.com"}},
	{Name: "Microsoft Copilot", Category: CategoryGenerative, Hosts: []string{"copilot.microsoft.com"}, Expr: `bing\.com/(chat|new)`},
	{Name: "Meta AI", Category: CategoryGenerative, Hosts: []string{"meta.ai", "llama.meta.com"}},
	{Name: "Perplexity", Category: CategoryGenerative, Hosts: []string{"perplexity.ai"}},
	{Name: "Mistral Le Chat", Category: CategoryGenerative, Hosts: []string{"chat.mistral.ai", "mistral.ai/le-chat"}},
	{Name: "DeepSeek", Category: CategoryGenerative, Hosts: []string{"chat.deepseek.com", "deepseek.com"}},
	{Name: "Grok", Category: CategoryGenerative, Hosts: []string{"grok.com", "grok.x.ai"}},
	{Name: "Poe", Category: CategoryGenerative, Hosts: []string{"poe.com"}},
	{Name: "HuggingChat", Category: CategoryGenerative, Hosts: []string{"huggingface.co/chat"}},
	{Name: "Pi", Category: CategoryGenerative, Hosts: []string{"pi.ai", "heypi.com"}},
	{Name: "Character.AI", Category: CategoryGenerative, Hosts: []string{"character.ai"}},
	{Name: "You.com", Category: CategoryGenerative, Hosts: []string{"you.com"}},
	{Name: "Qwen Chat", Category: CategoryGenerative, Hosts: []string{"chat.qwen.ai", "tongyi.aliyun.com"}},
	{Name: "Kimi", Category: CategoryGenerative, Hosts: []string{"kimi.moonshot.cn", "kimi.com"}},
	{Name: "Cohere", Category: CategoryGenerative, Hosts: []string{"coral.cohere.com", "dashboard.cohere.com"}},
	{Name: "Groq", Category: CategoryGenerative, Hosts: []string{"groq.com"}},
	{Name: "Together AI", Category: CategoryGenerative, Hosts: []string{"together.ai", "together.xyz"}},
	{Name: "OpenRouter", Category: CategoryGenerative, Hosts: []string{"openrouter.ai"}},
	{Name: "LMArena", Category: CategoryGenerative, Hosts: []string{"lmarena.ai", "chat.lmsys.org"}},

	// Code AI
	{Name: "GitHub Copilot", Category: CategoryCode, Hosts: []string{"copilot.github.com"}, Expr: `github\.com/(features/)?copilot`},
	{Name: "Cursor", Category: CategoryCode, Hosts: []string{"cursor.com", "cursor.sh"}},
	{Name: "Windsurf", Category: CategoryCode, Hosts: []string{"windsurf.com", "codeium.com"}},
	{Name: "Replit", Category: CategoryCode, Hosts: []string{"replit.com"}},
	{Name: "Tabnine", Category: CategoryCode, Hosts: []string{"tabnine.com"}},
	{Name: "Sourcegraph Cody", Category: CategoryCode, Hosts: []string{"sourcegraph.com/cody"}},
	{Name: "v0", Category: CategoryCode, Hosts: []string{"v0.dev"}},
	{Name: "Lovable", Category: CategoryCode, Hosts: []string{"lovable.dev"}},
	{Name: "Bolt", Category: CategoryCode, Hosts: []string{"bolt.new"}},
	{Name: "Amazon Q Developer", Category: CategoryCode, Hosts: []string{"codewhisperer.aws"}, Expr: `aws\.amazon\.com/(q/developer|codewhisperer)`},
	{Name: "Phind", Category: CategoryCode, Hosts: []string{"phind.com"}},
	{Name: "Aider", Category: CategoryCode, Hosts: []string{"aider.chat"}},
	{Name: "JetBrains AI", Category: CategoryCode, Hosts: []string{"jetbrains.com/ai"}},
	{Name: "Devin", Category: CategoryCode, Hosts: []string{"devin.ai", "cognition.ai"}},
	{Name: "CodeRabbit", Category: CategoryCode, Hosts: []string{"coderabbit.ai"}},
	{Name: "Qodo", Category: CategoryCode, Hosts: []string{"qodo.ai", "codium.ai"}},
	{Name: "Continue", Category: CategoryCode, Hosts: []string{"continue.dev"}},

	// Image AI
	{Name: "Midjourney", Category: CategoryImage, Hosts: []string{"midjourney.com"}},
	{Name: "DALL-E", Category: CategoryImage, Hosts: []string{"labs.openai.com"}, Expr: `openai\.com/dall-e`},
	{Name: "Stability AI", Category: CategoryImage, Hosts: []string{"stability.ai", "dreamstudio.ai"}},
	{Name: "Leonardo AI", Category: CategoryImage, Hosts: []string{"leonardo.ai"}},
	{Name: "Ideogram", Category: CategoryImage, Hosts: []string{"ideogram.ai"}},
	{Name: "Adobe Firefly", Category: CategoryImage, Hosts: []string{"firefly.adobe.com"}},
	{Name: "Craiyon", Category: CategoryImage, Hosts: []string{"craiyon.com"}},
	{Name: "Playground AI", Category: CategoryImage, Hosts: []string{"playground.com", "playgroundai.com"}},
	{Name: "Lexica", Category: CategoryImage, Hosts: []string{"lexica.art"}},
	{Name: "Civitai", Category: CategoryImage, Hosts: []string{"civitai.com"}},
	{Name: "Black Forest Labs", Category: CategoryImage, Hosts: []string{"blackforestlabs.ai", "flux1.ai"}},
	{Name: "Bing Image Creator", Category: CategoryImage, Expr: `bing\.com/images/create`},
	{Name: "Recraft", Category: CategoryImage, Hosts: []string{"recraft.ai"}},
	{Name: "NightCafe", Category: CategoryImage, Hosts: []string{"nightcafe.studio"}},

	// Audio/Video AI
	{Name: "ElevenLabs", Category: CategoryAudioVideo, Hosts: []string{"elevenlabs.io"}},
	{Name: "Suno", Category: CategoryAudioVideo, Hosts: []string{"suno.com", "suno.ai"}},
	{Name: "Udio", Category: CategoryAudioVideo, Hosts: []string{"udio.com"}},
	{Name: "Runway", Category: CategoryAudioVideo, Hosts: []string{"runwayml.com"}},
	{Name: "Pika", Category: CategoryAudioVideo, Hosts: []string{"pika.art"}},
	{Name: "Sora", Category: CategoryAudioVideo, Hosts: []string{"sora.com", "sora.chatgpt.com"}},
	{Name: "Synthesia", Category: CategoryAudioVideo, Hosts: []string{"synthesia.io"}},
	{Name: "HeyGen", Category: CategoryAudioVideo, Hosts: []string{"heygen.com"}},
	{Name: "Descript", Category: CategoryAudioVideo, Hosts: []string{"descript.com"}},
	{Name: "Murf", Category: CategoryAudioVideo, Hosts: []string{"murf.ai"}},
	{Name: "Luma", Category: CategoryAudioVideo, Hosts: []string{"lumalabs.ai"}},
	{Name: "Kling", Category: CategoryAudioVideo, Hosts: []string{"klingai.com"}},
	{Name: "D-ID", Category: CategoryAudioVideo, Hosts: []string{"d-id.com"}},
	{Name: "Play.ht", Category: CategoryAudioVideo, Hosts: []string{"play.ht"}},
	{Name: "Resemble AI", Category: CategoryAudioVideo, Hosts: []string{"resemble.ai"}},

	// Business AI
	{Name: "Jasper", Category: CategoryBusiness, Hosts: []string{"jasper.ai"}},
	{Name: "Copy.ai", Category: CategoryBusiness, Hosts: []string{"copy.ai"}},
	{Name: "Writesonic", Category: CategoryBusiness, Hosts: []string{"writesonic.com"}},
	{Name: "Writer", Category: CategoryBusiness, Hosts: []string{"writer.com", "app.writer.com"}},
	{Name: "Grammarly", Category: CategoryBusiness, Hosts: []string{"grammarly.com"}},
	{Name: "QuillBot", Category: CategoryBusiness, Hosts: []string{"quillbot.com"}},
	{Name: "Wordtune", Category: CategoryBusiness, Hosts: []string{"wordtune.com"}},
	{Name: "DeepL Write", Category: CategoryBusiness, Expr: `deepl\.com/(write|chat)`},
	{Name: "Tome", Category: CategoryBusiness, Hosts: []string{"tome.app"}},
	{Name: "Gamma", Category: CategoryBusiness, Hosts: []string{"gamma.app"}},
	{Name: "Beautiful.ai", Category: CategoryBusiness, Hosts: []string{"beautiful.ai"}},
	{Name: "Fireflies", Category: CategoryBusiness, Hosts: []string{"fireflies.ai"}},
	{Name: "Otter", Category: CategoryBusiness, Hosts: []string{"otter.ai"}},
	{Name: "Rytr", Category: CategoryBusiness, Hosts: []string{"rytr.me"}},
	{Name: "Sudowrite", Category: CategoryBusiness, Hosts: []string{"sudowrite.com"}},
	{Name: "HyperWrite", Category: CategoryBusiness, Hosts: []string{"hyperwriteai.com"}},

	// Research AI
	{Name: "NotebookLM", Category: CategoryResearch, Hosts: []string{"notebooklm.google.com", "notebooklm.google"}},
	{Name: "Elicit", Category: CategoryResearch, Hosts: []string{"elicit.com", "elicit.org"}},
	{Name: "Consensus", Category: CategoryResearch, Hosts: []string{"consensus.app"}},
	{Name: "Scite", Category: CategoryResearch, Hosts: []string{"scite.ai"}},
	{Name: "SciSpace", Category: CategoryResearch, Hosts: []string{"scispace.com", "typeset.io"}},
	{Name: "Scholarcy", Category: CategoryResearch, Hosts: []string{"scholarcy.com"}},
	{Name: "ResearchRabbit", Category: CategoryResearch, Hosts: []string{"researchrabbitapp.com"}},
	{Name: "Connected Papers", Category: CategoryResearch, Hosts: []string{"connectedpapers.com"}},
	{Name: "Iris.ai", Category: CategoryResearch, Hosts: []string{"iris.ai"}},
	{Name: "STORM", Category: CategoryResearch, Hosts: []string{"storm.genie.stanford.edu"}},
}

// Patterns returns the full catalog in evaluation order.
func Patterns() []ToolPattern {
	return patterns
}
