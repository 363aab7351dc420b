package sms

// Config holds the cloud SMS provider credentials. AccessKeySecret is the
// HMAC signing key for every request; SignName and TemplateCode identify
// the registered sender signature and message template on the provider
// side and are fixed per deployment.
type Config struct {
	Endpoint        string `env:"SMS_ENDPOINT,required"`
	AccessKeyID     string `env:"SMS_ACCESS_KEY_ID,required"`
	AccessKeySecret string `env:"SMS_ACCESS_KEY_SECRET,required"`
	SignName        string `env:"SMS_SIGN_NAME,required"`
	TemplateCode    string `env:"SMS_TEMPLATE_CODE,required"`
}
