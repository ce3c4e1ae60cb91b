package output

import (
	"fmt"
	"io"
	"os"

	"github.com/TheRochVoices/ai-pr-review/internal/review"
)

// Writer writes a sequence of file reviews in a specific format.
type Writer interface {
	Write(w io.Writer, reviews []review.FileReview) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "json":
		return &JSONWriter{}, nil
	case "text":
		return &TextWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReviews writes the reviews to the specified output (file path or stdout).
func WriteReviews(reviews []review.FileReview, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, reviews)
}
