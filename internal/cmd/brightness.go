package cmd

import (
	"log"

	"github.com/hoppxi/osdctl/internal/settings"
	"github.com/hoppxi/osdctl/pkg/backlight"
	"github.com/hoppxi/osdctl/pkg/indicator"
	"github.com/spf13/cobra"
)

var brightnessCmd = &cobra.Command{
	Use:     "brightness {up|down}",
	Aliases: []string{"bright", "b"},
	Short:   "Change screen brightness",
	Args: cobra.MatchAll(
		cobra.ExactArgs(1),
		validActions(actionIncrease, actionDecrease),
	),
	Run: func(cmd *cobra.Command, args []string) {
		act, _ := parseAction(args[0])
		changeBrightness(newBacklight(), newBackend(), act, settings.Load().GetInt("brightness_step"))
	},
}

func changeBrightness(bl backlight.Backlight, be indicator.Backend, act action, step int) {
	switch act {
	case actionIncrease:
		bl.ChangeLevel(step)
	case actionDecrease:
		bl.ChangeLevel(-step)
	}

	level, err := bl.Level()
	if err != nil {
		log.Println("failed to query brightness:", err)
		level = 0
	}

	show(be, indicator.Update{
		Kind:  indicator.Brightness,
		Level: level,
		Icon:  indicator.IconBrightness,
	})
}
