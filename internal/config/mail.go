package config

// MailConfig holds outbound mail configuration.
type MailConfig struct {
	// FromEmail is the verified sender address.
	FromEmail string
	// ReplyToEmail is the reply-to address on outbound mail.
	ReplyToEmail string
	// Region is the AWS region used for SES.
	Region string
	// AppBaseURL is the public base URL of the web app, used in mail links.
	AppBaseURL string
	// Enabled disables actual sending when false (mail is logged instead).
	Enabled bool
}

// LoadMailConfigFromEnv loads mail configuration from environment variables.
func LoadMailConfigFromEnv() MailConfig {
	return MailConfig{
		FromEmail:    GetEnv("SES_FROM_EMAIL", ""),
		ReplyToEmail: GetEnv("SES_REPLY_TO_EMAIL", ""),
		Region:       GetEnv("SES_AWS_REGION", GetEnv("AWS_DEFAULT_REGION", "ap-south-1")),
		AppBaseURL:   GetEnv("APP_BASE_URL", "http://localhost:3000"),
		Enabled:      GetEnv("MAIL_ENABLED", "true") == "true",
	}
}
