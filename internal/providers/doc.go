// Package providers implements the model-inference client.
//
// [Ollama] speaks the native Ollama HTTP API: a single synchronous POST
// to the generate endpoint per prompt with streaming disabled, bounded
// by a configurable timeout. Failures surface as [*InferenceError].
package providers
