package settings

import (
	"sync"

	"github.com/spf13/viper"
)

var (
	once sync.Once
	v    *viper.Viper
)

// Load returns the process-wide settings instance. There is no config
// file; the defaults below can only be overridden through OSDCTL_*
// environment variables (e.g. OSDCTL_BAR_WIDTH=20).
func Load() *viper.Viper {
	once.Do(func() {
		v = viper.New()
		v.SetEnvPrefix("osdctl")
		v.AutomaticEnv()

		v.SetDefault("volume_step", 4)
		v.SetDefault("brightness_step", 8)
		v.SetDefault("bar_width", 25)
		v.SetDefault("notify_timeout_ms", 5000)
	})

	return v
}
