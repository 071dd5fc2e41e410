package command

import (
	commandHandler "shiftdesk/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewSeedTemplatesHandler)

type Command struct {
	seedTemplatesHandler *commandHandler.SeedTemplatesHandler
}

// NewCommand .
func NewCommand(
	seedTemplatesHandler *commandHandler.SeedTemplatesHandler,
) *Command {
	return &Command{
		seedTemplatesHandler: seedTemplatesHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	seedCmd := &cobra.Command{
		Use:   "seed-templates",
		Short: "為指定門市建立預設的開班檢查表模板",
		Run: func(cmd *cobra.Command, args []string) {
			command, cleanup, err := newCmd()
			if err != nil {
				panic(err)
			}
			defer cleanup()

			command.seedTemplatesHandler.Seed(cmd, args)
		},
	}
	seedCmd.Flags().String("store", "", "store ObjectID (required)")
	rootCmd.AddCommand(seedCmd)
}
