// Package terminal implements the line-oriented console used by the session:
// prompts, validated text and integer input, menus and listings.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vyrodovalexey/backpack/internal/model"
)

// ErrInvalidInput is returned when a line that should hold an integer does not.
var ErrInvalidInput = errors.New("invalid number")

// Console reads whole lines from in and writes prompts and listings to out.
// Reading line by line means a malformed answer is discarded together with
// the rest of its line and never leaks into the next prompt.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Console.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Out returns the writer the console prints to.
func (c *Console) Out() io.Writer { return c.out }

// Printf writes formatted text.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes its arguments followed by a newline.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// ReadLine returns the next line without its line break, NFC normalised so
// composed and decomposed accents compare equal. io.EOF is returned only when
// no more input is available.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}

	line = strings.TrimRight(line, "\r\n")
	return norm.NFC.String(line), nil
}

// AskText prompts until a non-empty line is entered and returns it cut to
// limit characters.
func (c *Console) AskText(prompt string, limit int) (string, error) {
	for {
		c.Printf("%s", prompt)

		line, err := c.ReadLine()
		if err != nil {
			return "", err
		}

		line = strings.TrimSpace(line)
		if line != "" {
			return model.Truncate(line, limit), nil
		}

		c.Println("Value cannot be empty. Try again.")
	}
}

// AskInt prompts until a line holding an integer is entered.
func (c *Console) AskInt(prompt string) (int, error) {
	for {
		c.Printf("%s", prompt)

		line, err := c.ReadLine()
		if err != nil {
			return 0, err
		}

		n, err := ParseInt(line)
		if err == nil {
			return n, nil
		}

		c.Println("Invalid number. Try again.")
	}
}

// AskRaw prompts once and returns the trimmed line as typed.
func (c *Console) AskRaw(prompt string) (string, error) {
	c.Printf("%s", prompt)

	line, err := c.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Choose renders a menu and reads the selected key.
func (c *Console) Choose(title string, options []Option) (int, error) {
	RenderMenu(c.out, title, options)
	return c.AskInt("Choose an option: ")
}

// ParseInt parses a whole line as a base 10 integer.
func ParseInt(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, ErrInvalidInput)
	}
	return n, nil
}
