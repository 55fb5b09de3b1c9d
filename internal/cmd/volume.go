package cmd

import (
	"log"

	"github.com/hoppxi/osdctl/internal/settings"
	"github.com/hoppxi/osdctl/pkg/indicator"
	"github.com/hoppxi/osdctl/pkg/mixer"
	"github.com/spf13/cobra"
)

var volumeCmd = &cobra.Command{
	Use:     "volume {up|down|mute}",
	Aliases: []string{"vol", "v"},
	Short:   "Change output volume or toggle mute",
	Args: cobra.MatchAll(
		cobra.ExactArgs(1),
		validActions(actionIncrease, actionDecrease, actionMute),
	),
	Run: func(cmd *cobra.Command, args []string) {
		act, _ := parseAction(args[0])
		changeVolume(newMixer(), newBackend(), act, settings.Load().GetInt("volume_step"))
	},
}

func changeVolume(m mixer.Mixer, be indicator.Backend, act action, step int) {
	// The icon keys off the level as it stood before the change; the
	// bar itself is rebuilt from a second query afterwards.
	prior, err := m.Level()
	if err != nil {
		log.Println("failed to query volume:", err)
	}
	icon := indicator.VolumeIcon(prior)

	switch act {
	case actionIncrease:
		m.SetMuted(false)
		m.ChangeLevel(step)
	case actionDecrease:
		m.SetMuted(false)
		m.ChangeLevel(-step)
	case actionMute:
		m.ToggleMuted()
	}

	level, err := m.Level()
	if err != nil {
		log.Println("failed to query volume:", err)
		level = 0
	}
	muted, _ := m.Muted()

	show(be, indicator.Update{
		Kind:  indicator.Volume,
		Level: level,
		Muted: muted,
		Icon:  icon,
	})
}
