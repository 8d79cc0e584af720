package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

var (
	// Out receives all status output.
	Out io.Writer = os.Stdout
	// In is read by Prompt.
	In io.Reader = os.Stdin

	inMu     sync.Mutex
	inReader *bufio.Reader
	inSource io.Reader
)

func PrintHeader(msg string) {
	fmt.Fprintf(Out, "\n%s%s%s\n", ColorBold, msg, ColorReset)
}

func PrintSuccess(label, detail string) {
	fmt.Fprintf(Out, "  %s✔%s %-15s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

func PrintError(label, detail string) {
	fmt.Fprintf(Out, "  %s✘%s %-15s %s%s\n", ColorRed, ColorReset, label, ColorRed, detail+ColorReset)
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(Out, "  %s!%s %-15s %s%s\n", ColorYellow, ColorReset, label, ColorYellow, detail+ColorReset)
}

// PrintGrid writes each row indented, covered cells as '█' and empty cells as '·'.
func PrintGrid(lines []string) {
	r := strings.NewReplacer("1", "█", "0", "·")
	for _, line := range lines {
		fmt.Fprintf(Out, "    %s\n", r.Replace(line))
	}
}

// Spinner represents a loading indicator
type Spinner struct {
	msg      string
	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
}

// StartSpinner starts a new spinner with the given message
func StartSpinner(msg string) *Spinner {
	s := &Spinner{
		msg:      msg,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer close(s.doneChan)
	chars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for i := 0; ; i = (i + 1) % len(chars) {
		fmt.Fprintf(Out, "\r%s%s%s %s", ColorCyan, chars[i], ColorReset, s.msg)
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
		}
	}
}

// Stop stops the spinner and clears the line. Safe to call multiple times.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	<-s.doneChan // Wait for goroutine to finish
	// Clear line
	fmt.Fprintf(Out, "\r%s\r", strings.Repeat(" ", len(s.msg)+10))
}

// RunSpinner executes the given action while showing a spinner.
func RunSpinner(msg string, action func() error) error {
	s := StartSpinner(msg)
	defer s.Stop()
	return action()
}

// Prompt asks the user for input with a label.
func Prompt(label string, defaultValue string) string {
	fmt.Fprintf(Out, "%s? ", label)
	if defaultValue != "" {
		fmt.Fprintf(Out, "[%s] ", defaultValue)
	}
	fmt.Fprint(Out, ColorCyan) // User input color

	inMu.Lock()
	if inReader == nil || inSource != In {
		inReader = bufio.NewReader(In)
		inSource = In
	}
	input, _ := inReader.ReadString('\n')
	inMu.Unlock()
	fmt.Fprint(Out, ColorReset) // Reset color

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}
