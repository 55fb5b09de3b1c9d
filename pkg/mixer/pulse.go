package mixer

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"
)

// Pulse talks to a PulseAudio (or pipewire-pulse) server. Queries go
// over the native protocol; mutations go through pactl against the
// current default sink, so its stderr stays visible to the user.
type Pulse struct{}

func channelVolumesToPercent(cv proto.ChannelVolumes) int {
	if len(cv) == 0 {
		return 100
	}
	var sum float64
	for _, vol := range cv {
		sum += float64(vol) / float64(proto.VolumeNorm) * 100.0
	}
	pct := int(sum/float64(len(cv)) + 0.5)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

func defaultSinkInfo() (*proto.GetSinkInfoReply, error) {
	c, err := pulse.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create pulse client: %w", err)
	}
	defer c.Close()

	s, err := c.DefaultSink()
	if err != nil {
		return nil, fmt.Errorf("failed to get default sink: %w", err)
	}

	var reply proto.GetSinkInfoReply
	req := proto.GetSinkInfo{SinkIndex: proto.Undefined, SinkName: s.ID()}
	if err := c.RawRequest(&req, &reply); err != nil {
		return nil, fmt.Errorf("failed to request sink info: %w", err)
	}
	return &reply, nil
}

func getDefaultSink() (string, error) {
	out, err := exec.Command("pactl", "get-default-sink").Output()
	if err != nil {
		return "", fmt.Errorf("failed to get default sink: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

func runPactl(args ...string) error {
	cmd := exec.Command("pactl", args...)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pactl %s: %w", strings.Join(args, " "), err)
	}
	return nil
}

func (Pulse) Level() (int, error) {
	reply, err := defaultSinkInfo()
	if err != nil {
		return 0, err
	}
	return channelVolumesToPercent(reply.ChannelVolumes), nil
}

func (Pulse) Muted() (bool, error) {
	reply, err := defaultSinkInfo()
	if err != nil {
		return false, err
	}
	return reply.Mute, nil
}

func (Pulse) ChangeLevel(delta int) error {
	sink, err := getDefaultSink()
	if err != nil {
		return err
	}

	arg := strconv.Itoa(delta) + "%"
	if delta >= 0 {
		arg = "+" + arg
	}
	return runPactl("set-sink-volume", sink, arg)
}

func (Pulse) SetMuted(mute bool) error {
	sink, err := getDefaultSink()
	if err != nil {
		return err
	}

	muteArg := "0"
	if mute {
		muteArg = "1"
	}
	return runPactl("set-sink-mute", sink, muteArg)
}

func (p Pulse) ToggleMuted() error {
	sink, err := getDefaultSink()
	if err != nil {
		return err
	}

	muted, err := p.Muted()
	if err != nil {
		return err
	}

	muteArg := "1"
	if muted {
		muteArg = "0"
	}
	return runPactl("set-sink-mute", sink, muteArg)
}
