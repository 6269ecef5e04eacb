package config

import (
	"testing"

	"github.com/galeriafora-cli/galeriafora/filesystem"
	"github.com/galeriafora-cli/galeriafora/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Default fetch limit should be 200", func() {
			_ = Setup()
			So(viper.GetInt(key.FetchDefaultLimit), ShouldEqual, 200)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("fetch.default_limit"), ShouldEqual, "fetch_default_limit")
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field env names carry the application prefix", t, func() {
		f := Default[key.FetchDefaultLimit]
		So(f.Env(), ShouldEqual, "GALERIAFORA_FETCH_DEFAULT_LIMIT")
	})
}
