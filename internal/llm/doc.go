// Package llm is the chat-completions client behind every generation
// feature.
//
// The service talks to an OpenAI-compatible endpoint with a fixed timeout
// and no retries. Where a feature tolerates degraded output quality, it
// passes an ordered candidate list to CompleteWithFallback and the first
// model that answers wins. The Completer interface is what the HTTP layer
// consumes, so handler tests can stub the upstream entirely.
package llm
