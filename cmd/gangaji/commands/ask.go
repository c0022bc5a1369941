package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gangaji/mathx"
	"github.com/katalvlaran/gangaji/numfmt"
	"github.com/katalvlaran/gangaji/textx"
)

// askCmd represents the interactive operation picker.
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Pick an operation interactively and run it",
	Long: `Guides you through choosing one of the library operations step by step,
prompts for its operands and prints the result.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsk(cmd)
	},
}

// validInt rejects non-integer operand input inside the form itself.
func validInt(s string) error {
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("not an integer: %q", s)
	}
	return nil
}

func runAsk(cmd *cobra.Command) error {
	opts, err := arithmeticOptions(cmd)
	if err != nil {
		return err
	}

	// === SECTION 1: pick the operation ===
	var op string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Operation").
				Description("Select the library operation to run").
				Options(
					huh.NewOption("add — sum two integers", "add"),
					huh.NewOption("multiply — multiply two integers", "multiply"),
					huh.NewOption("factorial — n! for n >= 0", "factorial"),
					huh.NewOption("reverse — reverse a string", "reverse"),
					huh.NewOption("upper — uppercase ASCII letters", "upper"),
					huh.NewOption("lower — lowercase ASCII letters", "lower"),
					huh.NewOption("format — integer to decimal text", "format"),
					huh.NewOption("parse — leading integer from text", "parse"),
				).
				Value(&op),
		),
	)
	if err = form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	// === SECTION 2: operands and execution ===
	switch op {
	case "add", "multiply":
		var rawA, rawB string
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("First operand").Validate(validInt).Value(&rawA),
				huh.NewInput().Title("Second operand").Validate(validInt).Value(&rawB),
			),
		)
		if err = form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}
		a, _ := strconv.ParseInt(rawA, 10, 64)
		b, _ := strconv.ParseInt(rawB, 10, 64)

		var res int64
		if op == "add" {
			res, err = mathx.Add(a, b, opts)
		} else {
			res, err = mathx.Multiply(a, b, opts)
		}
		if err != nil {
			return err
		}
		cmd.Println(numfmt.FormatNumber(res))

	case "factorial":
		var rawN string
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("n").Validate(validInt).Value(&rawN),
			),
		)
		if err = form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}
		n, _ := strconv.ParseInt(rawN, 10, 64)

		res, err := mathx.Factorial(n, opts)
		if err != nil {
			return err
		}
		cmd.Println(numfmt.FormatNumber(res))

	case "reverse", "upper", "lower", "parse":
		var text string
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Text").Value(&text),
			),
		)
		if err = form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}

		switch op {
		case "reverse":
			cmd.Println(textx.Reverse(text))
		case "upper":
			cmd.Println(textx.ToUpper(text))
		case "lower":
			cmd.Println(textx.ToLower(text))
		case "parse":
			n, err := numfmt.ParseNumber(text)
			if err != nil {
				return err
			}
			cmd.Println(numfmt.FormatNumber(n))
		}

	case "format":
		var rawN string
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("n").Validate(validInt).Value(&rawN),
			),
		)
		if err = form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}
		n, _ := strconv.ParseInt(rawN, 10, 64)
		cmd.Println(numfmt.FormatNumber(n))
	}

	return nil
}
