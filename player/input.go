package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"clisk/utils"
)

const skipHint = "(ENTER TO SKIP) "

// Input supplies validated choices to an interactive strategy. Choose and
// Number block until the answer is valid; ok is false when a skippable prompt
// was skipped.
type Input interface {
	Choose(prompt string, choices []string, skippable bool) (choice string, ok bool, err error)
	Number(prompt string, min, max int, skippable bool) (n int, ok bool, err error)
	Say(format string, args ...any)
}

// ConsoleInput reads answers line by line and reprompts on invalid entries.
type ConsoleInput struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsoleInput(in io.Reader, out io.Writer) *ConsoleInput {
	return &ConsoleInput{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (c *ConsoleInput) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Choose accepts an exact choice, or a case-insensitive match when it is
// unambiguous.
func (c *ConsoleInput) Choose(prompt string, choices []string, skippable bool) (string, bool, error) {
	if skippable {
		prompt = skipHint + prompt
	}
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return "", false, err
		}
		if line == "" && skippable {
			c.Say("SKIPPING")
			return "", false, nil
		}
		if utils.Contains(choices, line) {
			return line, true, nil
		}
		if i := utils.FindFold(choices, line); i >= 0 {
			return choices[i], true, nil
		}
		c.Say("%q is not a valid choice (%s)", line, strings.Join(choices, ", "))
	}
}

func (c *ConsoleInput) Number(prompt string, min, max int, skippable bool) (int, bool, error) {
	if skippable {
		prompt = skipHint + prompt
	}
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, false, err
		}
		if line == "" && skippable {
			c.Say("SKIPPING")
			return 0, false, nil
		}
		n, err := strconv.Atoi(line)
		switch {
		case err != nil:
			c.Say("%q is not a number", line)
		case n < min:
			c.Say("Number of troops cannot be less than %d", min)
		case n > max:
			c.Say("Number of troops cannot be more than %d", max)
		default:
			return n, true, nil
		}
	}
}

func (c *ConsoleInput) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("failed to read input: %w", io.EOF)
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}
