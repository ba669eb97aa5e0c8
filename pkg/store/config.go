package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"baitonavi/pkg/geo"
)

// Config carries everything the app reads from the environment: where the
// catalog lives, the map center, the pin list and the default area label.
type Config struct {
	Path       string
	Center     geo.LatLng
	Pins       []geo.Pin
	Preference string
}

// LoadConfig reads an optional .baitonavi config file plus BAITONAVI_*
// environment overrides. Missing config files are fine; defaults point the
// map at Shibuya with the bundled pin set.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.baitonavi.db")
	v.SetDefault("map.lat", 35.6595)
	v.SetDefault("map.lng", 139.7005)
	v.SetDefault("preference", "渋谷")
	v.SetConfigName(".baitonavi") // .yaml is implicit
	v.SetEnvPrefix("BAITONAVI")
	v.AutomaticEnv()

	if override := os.Getenv("BAITONAVI_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Path:       path,
		Center:     geo.LatLng{Lat: v.GetFloat64("map.lat"), Lng: v.GetFloat64("map.lng")},
		Preference: v.GetString("preference"),
	}
	if err := v.UnmarshalKey("pins", &cfg.Pins); err != nil {
		return nil, err
	}
	if len(cfg.Pins) == 0 {
		cfg.Pins = DefaultPins()
	}
	return cfg, nil
}

// DefaultPins returns the bundled marker set around the default center.
func DefaultPins() []geo.Pin {
	return []geo.Pin{
		{LatLng: geo.LatLng{Lat: 35.6614, Lng: 139.7041}, Title: "居酒屋 やまと 渋谷店"},
		{LatLng: geo.LatLng{Lat: 35.6581, Lng: 139.6964}, Title: "ビストロ ルミエール"},
		{LatLng: geo.LatLng{Lat: 35.6627, Lng: 139.6989}, Title: "カフェ コトリ"},
	}
}
