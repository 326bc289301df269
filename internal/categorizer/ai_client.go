package categorizer

import "context"

// AIClient defines the interface to the external classification service.
// This abstraction allows the batch categorization logic to be tested
// independently of external API calls and keeps the provider swappable.
type AIClient interface {
	// Complete sends a prompt to the classifier and returns its raw text
	// response. The call blocks until the transport completes or fails;
	// there is no application-level retry.
	Complete(ctx context.Context, prompt string) (string, error)
}
