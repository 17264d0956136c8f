package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter is the console surface of a search session
type Prompter interface {
	Chooser
	Search() (string, error)
	Confirm(prompt string) (bool, error)
}

// ConsolePrompter reads answers line by line from a terminal or pipe
type ConsolePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewConsolePrompter creates a prompter reading from in and writing prompts to out
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// readLine reads one trimmed line. io.EOF is only returned when nothing was read.
func (p *ConsolePrompter) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// Search prompts for an airport name until a non-empty answer is given
func (p *ConsolePrompter) Search() (string, error) {
	for {
		promptColor.Fprint(p.out, "Search for an airport: ")
		input, err := p.readLine()
		if err != nil {
			return "", err
		}
		if input != "" {
			return input, nil
		}
	}
}

// Choose lists the options and re-asks until one of them is picked by name or number
func (p *ConsolePrompter) Choose(prompt string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("no options to choose from")
	}

	for i, option := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, option)
	}

	for {
		promptColor.Fprintf(p.out, "%s [%s]: ", prompt, strings.Join(options, "/"))
		input, err := p.readLine()
		if err != nil {
			return "", err
		}

		for _, option := range options {
			if input == option {
				return option, nil
			}
		}

		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}

		errorColor.Fprintln(p.out, "Please select one of the available options")
	}
}

// Confirm asks a yes/no question and re-asks on anything else
func (p *ConsolePrompter) Confirm(prompt string) (bool, error) {
	for {
		promptColor.Fprintf(p.out, "%s [y/n]: ", prompt)
		input, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		errorColor.Fprintln(p.out, "Please enter Y or N")
	}
}
