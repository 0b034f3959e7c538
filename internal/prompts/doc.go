// Package prompts is the template library for every generation feature:
// tone reframes, prompt conversion, explanations, image analysis, persona
// construction, and the conversation follow-up builders. Templates are
// plain string assembly; nothing here talks to the network.
package prompts
