package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gangaji/mathx"
	"github.com/katalvlaran/gangaji/numfmt"
	"github.com/katalvlaran/gangaji/textx"
)

// demoCmd reproduces the classic sample session: one call per library
// operation with fixed inputs, printed as "<label> = <result>" lines.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the classic sample session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println("Gangaji Example App")
		cmd.Println("===================")

		sum, err := mathx.Add(5, 3, nil)
		if err != nil {
			return fmt.Errorf("add: %w", err)
		}
		cmd.Printf("5 + 3 = %d\n", sum)

		prod, err := mathx.Multiply(5, 3, nil)
		if err != nil {
			return fmt.Errorf("multiply: %w", err)
		}
		cmd.Printf("5 * 3 = %d\n", prod)

		fact, err := mathx.Factorial(5, nil)
		if err != nil {
			return fmt.Errorf("factorial: %w", err)
		}
		cmd.Printf("5! = %d\n", fact)

		cmd.Printf("reverse('hello') = %s\n", textx.Reverse("hello"))
		cmd.Printf("to_upper('hello') = %s\n", textx.ToUpper("hello"))
		cmd.Printf("format_number(42) = %s\n", numfmt.FormatNumber(42))
		return nil
	},
}
