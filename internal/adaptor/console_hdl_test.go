package adaptor

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine_PromptsAndTrims(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleHandler(strings.NewReader("  m1  \n"), &out)

	line, err := c.ReadLine("Enter Movie Code: ")
	require.NoError(t, err)
	assert.Equal(t, "m1", line)
	assert.Equal(t, "Enter Movie Code: ", out.String())
}

func TestReadLine_LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleHandler(strings.NewReader("5"), &out)

	line, err := c.ReadLine("Enter Number of Tickets: ")
	require.NoError(t, err)
	assert.Equal(t, "5", line)

	_, err = c.ReadLine("again: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLine_EOFOnEmptyInput(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleHandler(strings.NewReader(""), &out)

	_, err := c.ReadLine("prompt: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestWriteLine_AppendsNewline(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleHandler(strings.NewReader(""), &out)

	c.WriteLine("Tickets: %d", 3)
	assert.Equal(t, "Tickets: 3\n", out.String())
}
