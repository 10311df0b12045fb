// Package email provides the mail-transport layer of the notification
// pipeline: a provider-agnostic Sender interface with three implementations.
//
//   - SMTPSender delivers through the custom SMTP transport configured in
//     the settings document (host, port, encryption mode, account
//     credentials). Used when the document enables SMTP.
//   - PostmarkSender is the default platform transport, configured from the
//     environment (see Config).
//   - DevSender saves emails to disk for local development.
//
// All implementations validate the Message before sending and send HTML
// mail only. Errors wrap the package sentinels and can be checked with
// errors.Is:
//
//	if errors.Is(err, email.ErrFailedToSend) { ... }
//
// Transport selection belongs to the embedder:
//
//	var sender email.Sender
//	if doc.SMTP.Enabled {
//		sender, err = email.NewSMTPSender(doc.SMTP)
//	} else {
//		sender, err = email.NewPostmarkSenderFromEnv()
//	}
package email
