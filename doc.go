// Package promptforge is the backend for the Promptforge browser extension.
//
// # Overview
//
// The service turns highlighted text into rewritten prompts, explanations,
// social captions, role personas and follow-up suggestions by calling an
// OpenAI-compatible chat-completions upstream. Every paid feature is metered
// against a per-user credit balance held in MongoDB; the deduction and its
// audit record commit in one transaction.
//
// # Packages
//
//   - internal/credits: pricing table, transactional ledger, and the request
//     gate that admits or rejects feature calls
//   - internal/auth: bearer-credential resolution, login session tokens, and
//     the email verification token codec
//   - internal/llm: chat-completions client with ordered model fallback
//   - internal/prompts: the template library behind every feature mode
//   - internal/extract: JSON recovery and line-scan fallbacks for model output
//   - internal/mail: verification email delivery through Mailgun
//   - internal/mongostore: the MongoDB implementation of the credit store
//   - internal/app: the HTTP surface wiring it all together
//
// # Degraded mode
//
// The service deliberately survives the loss of its credit backend: with no
// MongoDB connection every feature request is admitted without charge, the
// balance endpoint reports an unlimited balance, and only login answers 503.
// Clients keep working; billing resumes when the store returns.
//
// # Environment Variables
//
//   - OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_DEFAULT_MODEL: upstream access
//   - MONGODB_URI, MONGODB_DATABASE: credit ledger storage
//   - SESSION_SECRET: HS256 secret for login session tokens
//   - VERIFICATION_SECRET: secret sealing email verification tokens
//   - MAILGUN_DOMAIN, MAILGUN_API_KEY: outbound email credentials
//   - FRONTEND_BASE_URL, VERIFICATION_BASE_URL: link targets for emails
//
// For CLI flags, see cmd/main.go or run the server with --help.
package promptforge
