package llm

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const (
	dataPrefix = "data: "
	doneToken  = "[DONE]"
)

// Stream yields response text fragments in arrival order. It is finite and
// cannot be restarted once drained.
type Stream struct {
	body   io.ReadCloser
	reader *bufio.Reader
	done   bool
}

func newStream(body io.ReadCloser) *Stream {
	return &Stream{
		body:   body,
		reader: bufio.NewReader(body),
	}
}

// Recv returns the next non-empty text fragment. io.EOF signals the end of
// the stream, either through the [DONE] sentinel or the connection closing.
// Event lines whose payload is not valid JSON are skipped; the protocol may
// interleave keep-alive comments with data.
func (s *Stream) Recv() (string, error) {
	if s.done {
		return "", io.EOF
	}

	for {
		line, err := s.reader.ReadString('\n')

		if fragment, ok := s.parseLine(line); ok {
			return fragment, nil
		}
		if s.done {
			return "", io.EOF
		}

		if err != nil {
			s.done = true
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", classifyTransportError(err)
		}
	}
}

// parseLine extracts the delta content from one event line. It reports
// whether a fragment was produced and flips s.done on the [DONE] sentinel.
func (s *Stream) parseLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, dataPrefix) {
		return "", false
	}

	data := strings.TrimPrefix(line, dataPrefix)
	if strings.TrimSpace(data) == doneToken {
		s.done = true
		return "", false
	}

	var chunk openai.ChatCompletionStreamResponse
	if err := json.Unmarshal([]byte(data), &chunk); err != nil {
		return "", false
	}
	if len(chunk.Choices) == 0 {
		return "", false
	}
	content := chunk.Choices[0].Delta.Content
	return content, content != ""
}

// Close releases the underlying response body.
func (s *Stream) Close() error {
	return s.body.Close()
}
