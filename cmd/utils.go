package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Exit, limiting the code to a max of 125 (as recommended by os.Exit).
func exit(code int) {
	if code > 125 {
		code = 125
	}
	os.Exit(code)
}

// headerValue joins args or, without args, the non-empty lines of r into a
// single field value.
func headerValue(args []string, r io.Reader) (string, error) {
	fields := args
	if len(fields) == 0 {
		s := bufio.NewScanner(r)
		for s.Scan() {
			if line := strings.TrimSpace(s.Text()); line != "" {
				fields = append(fields, line)
			}
		}
		if err := s.Err(); err != nil {
			return "", err
		}
	}
	return strings.Join(fields, ", "), nil
}

// withInput calls fn with the contents of path, or stdin for "-", and closes
// the input before returning.
func withInput(path string, stdin io.Reader, fn func(io.Reader) error) error {
	if path == "-" {
		return fn(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	err = fn(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
