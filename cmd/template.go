package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	savings "github.com/subodhkangale07/savings"
	"github.com/subodhkangale07/savings/renderer"
)

type templateCmd struct{}

func (*templateCmd) Name() string     { return "template" }
func (*templateCmd) Synopsis() string { return "list the built-in goal templates" }
func (*templateCmd) Usage() string {
	return `syfe template

  Lists the built-in goal presets. Create a goal from one with
  'syfe add -template <id>'.
`
}

func (c *templateCmd) SetFlags(f *flag.FlagSet) {}

func (c *templateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.TemplatesMarkdown(savings.AllTemplates()))
	return subcommands.ExitSuccess
}
