package adaptor

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConsoleHandler is the terminal adaptor: a blocking line reader plus a
// line writer. The flow never touches os.Stdin/os.Stdout directly, which
// keeps sessions scriptable in tests.
type ConsoleHandler struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsoleHandler(in io.Reader, out io.Writer) *ConsoleHandler {
	return &ConsoleHandler{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine writes the prompt and blocks until a full line arrives. The
// returned text is trimmed of surrounding whitespace. A final line
// without a trailing newline is still delivered before EOF is reported.
func (c *ConsoleHandler) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *ConsoleHandler) WriteLine(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}
