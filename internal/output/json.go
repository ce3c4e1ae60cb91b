package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/TheRochVoices/ai-pr-review/internal/review"
)

// JSONWriter outputs reviews as a JSON object mapping file path to
// review text.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, reviews []review.FileReview) error {
	m := make(map[string]string, len(reviews))
	for _, r := range reviews {
		m[r.Path] = r.Comments
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
