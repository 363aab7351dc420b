package dingtalk

// Config holds the robot webhook settings. Secret is optional: robots
// protected by keyword or IP allowlist instead of a signing secret leave
// it empty, which disables URL signing entirely.
type Config struct {
	Webhook string `env:"DINGDING_WEBHOOK,required"`
	Secret  string `env:"DINGDING_SECRET"`
}
