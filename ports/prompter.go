package ports

import "context"

// Prompter asks the user questions on a line-oriented terminal.
// Float and YesNo re-ask until the answer is valid.
type Prompter interface {
	// Say prints an informational line
	Say(format string, args ...interface{})

	// Line asks question and returns the trimmed answer
	Line(ctx context.Context, question string) (string, error)

	// Float asks question until the answer parses as a finite number
	Float(ctx context.Context, question string) (float64, error)

	// YesNo asks question until the answer is y or n
	YesNo(ctx context.Context, question string) (bool, error)
}
