package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Colors for consistent UI
const (
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorReset  = "\033[0m"
)

// PrintWarning displays a warning message with consistent formatting
func PrintWarning(message string) {
	fmt.Printf("%s\nWarning:%s\n", ColorYellow, ColorReset)
	fmt.Printf("%s%s%s\n", ColorYellow, message, ColorReset)
}

// PrintError displays an error message with consistent formatting
func PrintError(message string) {
	fmt.Printf("\n%sError: %s%s\n", ColorRed, message, ColorReset)
}

// PrintSuccess displays a success message with consistent formatting
func PrintSuccess(message string) {
	fmt.Printf("\n%s%s%s\n", ColorGreen, message, ColorReset)
}

// PrintInfo displays an info message with consistent formatting
func PrintInfo(message string) {
	fmt.Printf("%s%s%s", ColorBlue, message, ColorReset)
}

// ReadString reads a string from stdin with trimming
func ReadString(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	PrintInfo(prompt)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// ReadDate reads a date from stdin with validation
func ReadDate(prompt string) (time.Time, error) {
	input := ReadString(prompt)
	if input == "today" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s. Please use YYYY-MM-DD", input)
	}
	return date, nil
}

// ReadPositiveInt reads a positive integer from stdin
func ReadPositiveInt(prompt string) (int, error) {
	input := ReadString(prompt)

	value, err := strconv.Atoi(input)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid number: %s. Please enter a positive integer", input)
	}

	return value, nil
}

// ReadOptionalPositiveInt reads a positive integer, returning 0 when the
// input is left blank so callers can fall back to a default.
func ReadOptionalPositiveInt(prompt string) (int, error) {
	input := ReadString(prompt)
	if input == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(input)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid number: %s. Please enter a positive integer", input)
	}

	return value, nil
}

// ReadDateRange reads end date and number of days to calculate start date
func ReadDateRange() (time.Time, time.Time, error) {
	endDate, err := ReadDate("Enter the end date (YYYY-MM-DD | today): ")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	days, err := ReadPositiveInt("Enter number of days to look back: ")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startDate := endDate.AddDate(0, 0, -days)
	return startDate, endDate, nil
}
