package feishu

// Config holds the bot webhook settings. Secret is optional; bots
// without signature verification enabled leave it empty, which disables
// URL signing.
type Config struct {
	Webhook string `env:"FEISHU_WEBHOOK,required"`
	Secret  string `env:"FEISHU_SECRET"`
}
