package email

// Config holds the platform mail transport configuration.
// Postmark tokens are optional to support development environments where
// the DevSender is used instead. SenderEmail establishes the sender
// identity for all outbound mail when the custom SMTP transport is not
// enabled in the settings document.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL"`
}
