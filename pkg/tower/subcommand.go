package tower

import "github.com/twp-dev/twp/internal/command"

// Subcommand is bound to one subcommand name; nothing runs until Run.
type Subcommand struct {
	client *Client
	name   string
}

// Command returns a Subcommand for name. Underscores become hyphens, so
// Command("list_pipelines") targets "list-pipelines".
func (c *Client) Command(name string) *Subcommand {
	return &Subcommand{
		client: c,
		name:   command.NormalizeSubcommand(name),
	}
}

// Name returns the normalized subcommand name
func (s *Subcommand) Name() string {
	return s.name
}

// Run executes the subcommand with positional args
func (s *Subcommand) Run(args ...string) (string, error) {
	return s.client.Invoke(s.name, args, Options{})
}

// RunWith executes the subcommand with options and positional args
func (s *Subcommand) RunWith(opts Options, args ...string) (string, error) {
	return s.client.Invoke(s.name, args, opts)
}
