package cli

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrNoMessage          = errors.New("no message or text file provided")
	ErrInvalidMessageFile = errors.New("file provided not valid")
)

// messageSource is where encode takes the message from, either the --message literal or the contents of --file
type messageSource struct {
	literal    string
	useLiteral bool
	file       string
	normalize  bool
}

// read returns the message bytes. File contents are used as they are, a literal is NFC normalized when asked to
func (s messageSource) read() ([]byte, error) {
	if s.file != "" {
		contents, err := os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMessageFile, err)
		}
		return contents, nil
	}

	if !s.useLiteral {
		return nil, ErrNoMessage
	}
	if s.normalize {
		return norm.NFC.Bytes([]byte(s.literal)), nil
	}
	return []byte(s.literal), nil
}
