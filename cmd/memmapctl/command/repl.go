package command

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gostonefire/memhashmap"
)

// NewReplCommand returns the repl command, an interactive menu over the three hash map operations
func NewReplCommand(capacity *int64) (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "repl",
		Short: "Interactive hash map menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			hm, info, err := memhashmap.NewMemHashMap(*capacity, nil)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Hash map created with %d slots.\n", info.Capacity)

			return runMenu(hm, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	return cmd
}

// runMenu - Drives the interactive menu loop until the user exits or input runs dry.
// It owns no table state itself, it only calls the three hash map operations and formats
// their outcomes.
func runMenu(hm *memhashmap.MemHashMap, in io.Reader, out io.Writer) error {
	errorText := color.New(color.FgRed)
	successText := color.New(color.FgGreen)

	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "\nHASH TABLE OPERATIONS\n")
		fmt.Fprint(out, "1. Insert Key/Value\n")
		fmt.Fprint(out, "2. Retrieve Value by Key\n")
		fmt.Fprint(out, "3. Remove Key\n")
		fmt.Fprint(out, "4. Performance Test\n")
		fmt.Fprint(out, "5. Exit\n")

		choice, ok := prompt(scanner, out, "Enter your choice: ")
		if !ok {
			return scanner.Err()
		}

		switch choice {
		case "1":
			key, ok := prompt(scanner, out, "Enter key: ")
			if !ok {
				return scanner.Err()
			}
			input, ok := prompt(scanner, out, "Enter value: ")
			if !ok {
				return scanner.Err()
			}
			value, convErr := strconv.ParseInt(input, 10, 64)
			if convErr != nil {
				_, _ = errorText.Fprintf(out, "Error: value must be an integer\n")
				continue
			}
			if insErr := hm.Insert(key, value); insErr != nil {
				_, _ = errorText.Fprintf(out, "Error: %s\n", insErr)
			} else {
				_, _ = successText.Fprintf(out, "Inserted (%s, %d) into the Hash Table.\n", key, value)
			}

		case "2":
			key, ok := prompt(scanner, out, "Enter key: ")
			if !ok {
				return scanner.Err()
			}
			if value, getErr := hm.Retrieve(key); getErr != nil {
				_, _ = errorText.Fprintf(out, "Error: %s\n", getErr)
			} else {
				_, _ = successText.Fprintf(out, "Value at key '%s' is %d.\n", key, value)
			}

		case "3":
			key, ok := prompt(scanner, out, "Enter key: ")
			if !ok {
				return scanner.Err()
			}
			if hm.Remove(key) {
				_, _ = successText.Fprintf(out, "Key '%s' has been removed.\n", key)
			} else {
				_, _ = errorText.Fprintf(out, "Key '%s' not found.\n", key)
			}

		case "4":
			input, ok := prompt(scanner, out, "Enter number of operations for performance testing (e.g., 100, 1000, 10000): ")
			if !ok {
				return scanner.Err()
			}
			operations, convErr := strconv.Atoi(input)
			if convErr != nil || operations <= 0 {
				_, _ = errorText.Fprintf(out, "Error: number of operations must be a positive integer\n")
				continue
			}
			runBench(hm, operations, out)

		case "5":
			fmt.Fprint(out, "Exiting program.\n")
			return nil

		default:
			fmt.Fprint(out, "Invalid choice. Please try again.\n")
		}
	}
}

// prompt - Prints a prompt and reads one line of input, ok is false when input is exhausted
func prompt(scanner *bufio.Scanner, out io.Writer, label string) (input string, ok bool) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		return
	}

	input = scanner.Text()
	ok = true

	return
}
