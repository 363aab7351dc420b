package email

// Config holds SMTP transport configuration. The user doubles as the
// default From address when an inbound message does not carry one, which
// is how most transactional relays authenticate the sender identity.
type Config struct {
	SMTPServer string `env:"SMTP_SERVER,required"`
	SMTPPort   int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser   string `env:"SMTP_USER,required"`
	SMTPPass   string `env:"SMTP_PASS,required"`
}
