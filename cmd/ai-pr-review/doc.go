// Ai-pr-review is a CLI that reviews the changes between two git refs
// with a locally hosted Ollama model.
//
// For every file changed between the target (base) and source (feature)
// refs it sends the full file content plus the diff patch to the model
// and collects one review per file, emitted as a path-to-review mapping
// on stdout.
//
// Usage:
//
//	ai-pr-review feature main                 # review feature against main
//	ai-pr-review feature main --format text   # human-readable output
//	ai-pr-review models list                  # show models the endpoint serves
//	ai-pr-review config init                  # write a default config file
package main
